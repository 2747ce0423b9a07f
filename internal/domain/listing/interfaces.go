package listing

import "context"

// Query describes a listing read. Only equality descriptors are supported;
// ordering is always applied locally by the view layer.
type Query struct {
	Visibility Visibility // zero value matches all
	OwnerID    string     // zero value matches all
}

// Repository provides persistence operations for listings.
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	Get(ctx context.Context, id string) (*Listing, error)
	Query(ctx context.Context, q Query) ([]Listing, error)
	UpdateStatus(ctx context.Context, id string, status ListingStatus) error
	Delete(ctx context.Context, id string) error
}
