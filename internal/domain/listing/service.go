package listing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service handles the listing write path. Reads for display go through
// the subscription channel instead, so a successful write here is never
// reflected in a rendered view until the store notifies.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new listing service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes a listing creation request.
type CreateRequest struct {
	OwnerID    string
	Email      string
	Title      string
	Sector     string
	Block      string
	Type       ListingType
	Price      float64
	Bedrooms   int
	Bathrooms  int
	SizeMarla  float64
	Visibility Visibility
}

// Create stores a new listing.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Listing, error) {
	if req.OwnerID == "" || req.Title == "" {
		return nil, ErrInvalidInput
	}
	if req.Type == "" {
		req.Type = TypeSale
	}
	if req.Visibility == "" {
		req.Visibility = VisibilityPublic
	}

	l := &Listing{
		ID:         uuid.NewString(),
		OwnerID:    req.OwnerID,
		Email:      req.Email,
		Title:      req.Title,
		Sector:     req.Sector,
		Block:      req.Block,
		Type:       req.Type,
		Price:      req.Price,
		Bedrooms:   req.Bedrooms,
		Bathrooms:  req.Bathrooms,
		SizeMarla:  req.SizeMarla,
		Visibility: req.Visibility,
		Status:     StatusAvailable,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("creating listing: %w", err)
	}
	return l, nil
}

// Browse returns the listings matching an equality query, unordered.
// Ordering is the view layer's job.
func (s *Service) Browse(ctx context.Context, q Query) ([]Listing, error) {
	return s.repo.Query(ctx, q)
}

// Get performs a point read of a single listing.
func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	return s.repo.Get(ctx, id)
}

// SetStatus transitions a listing's status. Only the owner may do this;
// the failure is reported synchronously and no local view state changes
// until the store notifies.
func (s *Service) SetStatus(ctx context.Context, callerID, id string, status ListingStatus) error {
	switch status {
	case StatusAvailable, StatusSold, StatusRented:
	default:
		return ErrInvalidStatus
	}

	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !l.OwnedBy(callerID) {
		return ErrNotOwner
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("updating listing status: %w", err)
	}
	return nil
}

// Delete removes a listing. Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, callerID, id string) error {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !l.OwnedBy(callerID) {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}
	return nil
}
