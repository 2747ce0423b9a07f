package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
)

// UserRepository is a mock for repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListingRepository is a mock for repository.ListingRepository.
type ListingRepository struct {
	mock.Mock
}

func (m *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *ListingRepository) Get(ctx context.Context, id string) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*listing.Listing); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ListingRepository) Query(ctx context.Context, q listing.Query) ([]listing.Listing, error) {
	args := m.Called(ctx, q)
	if list, ok := args.Get(0).([]listing.Listing); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ListingRepository) UpdateStatus(ctx context.Context, id string, status listing.ListingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *ListingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PredictionRepository is a mock for repository.PredictionRepository.
type PredictionRepository struct {
	mock.Mock
}

func (m *PredictionRepository) Create(ctx context.Context, p *prediction.Prediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PredictionRepository) List(ctx context.Context) ([]prediction.Prediction, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]prediction.Prediction); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PredictionClient is a mock for prediction.Client.
type PredictionClient struct {
	mock.Mock
}

func (m *PredictionClient) Predict(ctx context.Context, features prediction.FeatureSet) (float64, error) {
	args := m.Called(ctx, features)
	return args.Get(0).(float64), args.Error(1)
}
