package sqlite

import (
	"context"

	"github.com/estatoai/estato/internal/domain/listing"
)

// ListingSubscription is a live query over the listings collection.
// Every committed write re-runs the query and delivers the complete
// result set (full-snapshot semantics, never deltas). Query errors go
// to the error channel without closing the subscription; the next write
// retries. After Close no channel receives again.
type ListingSubscription struct {
	snapshots chan []listing.Listing
	errs      chan error
	cancel    context.CancelFunc
}

// Snapshots returns the full-snapshot delivery channel.
func (s *ListingSubscription) Snapshots() <-chan []listing.Listing {
	return s.snapshots
}

// Errs returns the subscription error channel.
func (s *ListingSubscription) Errs() <-chan error {
	return s.errs
}

// Close releases the subscription.
func (s *ListingSubscription) Close() {
	s.cancel()
}

// ListingWatcher issues live query subscriptions against the listings
// collection.
type ListingWatcher struct {
	db   *DB
	repo *ListingRepository
}

// NewListingWatcher creates a watcher over the given repository.
func NewListingWatcher(db *DB, repo *ListingRepository) *ListingWatcher {
	return &ListingWatcher{db: db, repo: repo}
}

// Subscribe opens a live query. An initial snapshot is delivered
// immediately; afterwards one arrives per committed write. Consumers that
// fall behind see snapshots coalesced to the most recent, which is safe
// because each snapshot is complete.
func (w *ListingWatcher) Subscribe(ctx context.Context, q listing.Query) *ListingSubscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &ListingSubscription{
		snapshots: make(chan []listing.Listing, 1),
		errs:      make(chan error, 1),
		cancel:    cancel,
	}

	id, signal := w.db.listingChanges.subscribe()

	go func() {
		defer w.db.listingChanges.unsubscribe(id)

		w.deliver(ctx, sub, q)
		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
				w.deliver(ctx, sub, q)
			}
		}
	}()

	return sub
}

func (w *ListingWatcher) deliver(ctx context.Context, sub *ListingSubscription, q listing.Query) {
	items, err := w.repo.Query(ctx, q)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		select {
		case sub.errs <- err:
		default:
		}
		return
	}

	// Coalesce: drop an unconsumed snapshot in favor of the newer one.
	select {
	case sub.snapshots <- items:
	default:
		select {
		case <-sub.snapshots:
		default:
		}
		select {
		case sub.snapshots <- items:
		default:
		}
	}
}
