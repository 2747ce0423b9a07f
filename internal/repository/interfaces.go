package repository

import (
	"context"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
)

// UserRepository manages user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id string) (*user.User, error)
	List(ctx context.Context) ([]user.User, error)
}

// ListingRepository manages listing persistence
type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	Get(ctx context.Context, id string) (*listing.Listing, error)
	Query(ctx context.Context, q listing.Query) ([]listing.Listing, error)
	UpdateStatus(ctx context.Context, id string, status listing.ListingStatus) error
	Delete(ctx context.Context, id string) error
}

// PredictionRepository manages prediction persistence
type PredictionRepository interface {
	Create(ctx context.Context, p *prediction.Prediction) error
	List(ctx context.Context) ([]prediction.Prediction, error)
}
