package ml_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/ml"
)

func TestClient_Predict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var features prediction.FeatureSet
		require.NoError(t, json.NewDecoder(r.Body).Decode(&features))
		require.Equal(t, "F", features.Sector)

		json.NewEncoder(w).Encode(map[string]float64{"predicted_price": 25_000_000})
	}))
	defer srv.Close()

	client := ml.NewClient(srv.URL)

	price, err := client.Predict(context.Background(), prediction.FeatureSet{Sector: "F"})
	require.NoError(t, err)
	require.Equal(t, 25_000_000.0, price)
}

func TestClient_PredictNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := ml.NewClient(srv.URL)

	_, err := client.Predict(context.Background(), prediction.FeatureSet{Sector: "F"})
	require.ErrorIs(t, err, prediction.ErrModelUnavailable)
}

func TestClient_PredictMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := ml.NewClient(srv.URL)

	_, err := client.Predict(context.Background(), prediction.FeatureSet{Sector: "F"})
	require.ErrorIs(t, err, prediction.ErrMalformedResponse)
}

func TestClient_PredictMissingPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := ml.NewClient(srv.URL)

	_, err := client.Predict(context.Background(), prediction.FeatureSet{Sector: "F"})
	require.ErrorIs(t, err, prediction.ErrMalformedResponse)
}

func TestClient_PredictModelError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "sector out of range"})
	}))
	defer srv.Close()

	client := ml.NewClient(srv.URL)

	_, err := client.Predict(context.Background(), prediction.FeatureSet{Sector: "Z"})
	require.ErrorContains(t, err, "sector out of range")
}
