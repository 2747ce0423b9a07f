package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service proxies prediction requests to the external model and records
// successful estimates. A failed call persists nothing and is never retried.
type Service struct {
	repo   Repository
	client Client
	logger *slog.Logger
}

// NewService creates a new prediction service.
func NewService(repo Repository, client Client, logger *slog.Logger) *Service {
	return &Service{repo: repo, client: client, logger: logger}
}

// Predict requests an estimate from the model and stores the result.
func (s *Service) Predict(ctx context.Context, features FeatureSet) (*Prediction, error) {
	if features.Sector == "" {
		return nil, ErrInvalidInput
	}

	price, err := s.client.Predict(ctx, features)
	if err != nil {
		return nil, err
	}

	p := &Prediction{
		ID:             uuid.NewString(),
		Location:       features.Location(),
		PredictedPrice: price,
		Features:       features,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("storing prediction: %w", err)
	}

	s.logger.Info("prediction stored", "location", p.Location, "price", p.PredictedPrice)
	return p, nil
}

// List returns all stored predictions.
func (s *Service) List(ctx context.Context) ([]Prediction, error) {
	return s.repo.List(ctx)
}
