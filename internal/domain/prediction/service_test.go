package prediction_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPredictionService_Predict(t *testing.T) {
	ctx := context.Background()
	features := prediction.FeatureSet{Sector: "F", Block: "2"}

	repo := &mocks.PredictionRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*prediction.Prediction")).Return(nil)
	client := &mocks.PredictionClient{}
	client.On("Predict", ctx, features).Return(25_000_000.0, nil)

	svc := prediction.NewService(repo, client, testLogger())

	p, err := svc.Predict(ctx, features)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, 25_000_000.0, p.PredictedPrice)
	require.Equal(t, "B-17 Sector F, Block 2", p.Location)
	require.False(t, p.CreatedAt.IsZero())
	repo.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestPredictionService_PredictRequiresSector(t *testing.T) {
	svc := prediction.NewService(&mocks.PredictionRepository{}, &mocks.PredictionClient{}, testLogger())

	_, err := svc.Predict(context.Background(), prediction.FeatureSet{})
	require.ErrorIs(t, err, prediction.ErrInvalidInput)
}

func TestPredictionService_ModelFailureIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	features := prediction.FeatureSet{Sector: "C-1"}

	repo := &mocks.PredictionRepository{}
	client := &mocks.PredictionClient{}
	client.On("Predict", ctx, features).Return(0.0, prediction.ErrModelUnavailable)

	svc := prediction.NewService(repo, client, testLogger())

	_, err := svc.Predict(ctx, features)
	require.ErrorIs(t, err, prediction.ErrModelUnavailable)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPredictionService_List(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.PredictionRepository{}
	repo.On("List", ctx).Return([]prediction.Prediction{{ID: "p1"}, {ID: "p2"}}, nil)

	svc := prediction.NewService(repo, &mocks.PredictionClient{}, testLogger())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
