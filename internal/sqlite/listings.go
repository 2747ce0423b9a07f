package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/estatoai/estato/internal/domain/listing"
)

// ListingRepository implements listing.Repository for SQLite. Every
// committed write broadcasts on the listing change feed so active
// subscriptions re-read their query.
type ListingRepository struct {
	db *DB
}

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(db *DB) *ListingRepository {
	return &ListingRepository{db: db}
}

var listingColumns = []string{
	"id", "owner_id", "email", "title", "sector", "block", "type",
	"price", "bedrooms", "bathrooms", "size_marla", "visibility",
	"status", "created_at",
}

// Create inserts a new listing.
func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	query, args, err := sq.Insert("listings").
		Columns(listingColumns...).
		Values(l.ID, l.OwnerID, l.Email, l.Title, l.Sector, l.Block, l.Type,
			l.Price, l.Bedrooms, l.Bathrooms, l.SizeMarla, l.Visibility,
			l.Status, l.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("building listing insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	r.db.listingChanges.broadcast()
	return nil
}

// Get returns a single listing by ID.
func (r *ListingRepository) Get(ctx context.Context, id string) (*listing.Listing, error) {
	query, args, err := sq.Select(listingColumns...).
		From("listings").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building listing select: %w", err)
	}
	row := r.db.QueryRowContext(ctx, query, args...)
	l, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, listing.ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return l, nil
}

// Query returns all listings matching the equality descriptors in q.
// No ordering is applied; ordering is always done by the view layer.
func (r *ListingRepository) Query(ctx context.Context, q listing.Query) ([]listing.Listing, error) {
	builder := sq.Select(listingColumns...).From("listings")
	if q.Visibility != "" {
		builder = builder.Where(sq.Eq{"visibility": q.Visibility})
	}
	if q.OwnerID != "" {
		builder = builder.Where(sq.Eq{"owner_id": q.OwnerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building listing query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []listing.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}
	return listings, nil
}

// UpdateStatus transitions a listing's status.
func (r *ListingRepository) UpdateStatus(ctx context.Context, id string, status listing.ListingStatus) error {
	query, args, err := sq.Update("listings").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building status update: %w", err)
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return listing.ErrListingNotFound
	}
	r.db.listingChanges.broadcast()
	return nil
}

// Delete removes a listing.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	query, args, err := sq.Delete("listings").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building listing delete: %w", err)
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return listing.ErrListingNotFound
	}
	r.db.listingChanges.broadcast()
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*listing.Listing, error) {
	var l listing.Listing
	var email, sector, block sql.NullString
	var createdAt sql.NullTime
	if err := row.Scan(
		&l.ID,
		&l.OwnerID,
		&email,
		&l.Title,
		&sector,
		&block,
		&l.Type,
		&l.Price,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.SizeMarla,
		&l.Visibility,
		&l.Status,
		&createdAt,
	); err != nil {
		return nil, err
	}
	l.Email = email.String
	l.Sector = sector.String
	l.Block = block.String
	if createdAt.Valid {
		l.CreatedAt = createdAt.Time
	}
	return &l, nil
}
