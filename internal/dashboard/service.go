// Package dashboard assembles the administrative activity feed and stat
// tiles from the three source collections.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/domain/prediction"
	"github.com/estatoai/estato/internal/domain/user"
	"github.com/estatoai/estato/internal/feed"
	"github.com/estatoai/estato/internal/stats"
	"github.com/estatoai/estato/internal/view"
)

// Service loads and aggregates platform-wide activity.
type Service struct {
	users       user.Repository
	listings    listing.Repository
	predictions prediction.Repository
	logger      *slog.Logger
}

// NewService creates a new dashboard service.
func NewService(users user.Repository, listings listing.Repository, predictions prediction.Repository, logger *slog.Logger) *Service {
	return &Service{users: users, listings: listings, predictions: predictions, logger: logger}
}

// Snapshot is one consistent load of the dashboard. Activities are the
// caller-owned merged collection: tab filters re-derive from it without
// touching the store again.
type Snapshot struct {
	Activities  []feed.Activity        `json:"activities"`
	Users       stats.UserTotals       `json:"users"`
	Listings    stats.ListingTotals    `json:"listings"`
	Predictions stats.PredictionTotals `json:"predictions"`
	// SourceErrors lists collections that failed to load this time.
	// A failed collection contributes nothing but does not blank the
	// rest of the dashboard.
	SourceErrors []string `json:"source_errors,omitempty"`
}

// Feed returns the activities for a category tab, newest first.
func (s *Snapshot) Feed(tab string) []feed.Activity {
	return view.FilterActivities(s.Activities, tab)
}

// Load fetches the three collections concurrently, normalizes them into
// one ordered feed, and derives the stat tiles.
func (s *Service) Load(ctx context.Context) *Snapshot {
	var (
		wg          sync.WaitGroup
		users       []user.User
		listings    []listing.Listing
		predictions []prediction.Prediction
		usersErr    error
		listingsErr error
		predsErr    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		users, usersErr = s.users.List(ctx)
	}()
	go func() {
		defer wg.Done()
		listings, listingsErr = s.listings.Query(ctx, listing.Query{})
	}()
	go func() {
		defer wg.Done()
		predictions, predsErr = s.predictions.List(ctx)
	}()
	wg.Wait()

	snap := &Snapshot{}
	for _, fail := range []struct {
		name string
		err  error
	}{
		{"users", usersErr},
		{"listings", listingsErr},
		{"predictions", predsErr},
	} {
		if fail.err != nil {
			s.logger.Warn("dashboard source unavailable", "source", fail.name, "error", fail.err)
			snap.SourceErrors = append(snap.SourceErrors, fail.name)
		}
	}

	activities := make([]feed.Activity, 0, len(users)+len(listings)+len(predictions))
	for _, u := range users {
		activities = append(activities, feed.NormalizeSignup(u))
	}
	for _, l := range listings {
		activities = append(activities, feed.NormalizeListing(l))
	}
	for _, p := range predictions {
		activities = append(activities, feed.NormalizePrediction(p))
	}
	view.SortActivities(activities)

	snap.Activities = activities
	snap.Users = stats.CountUsers(users)
	snap.Listings = stats.CountListings(listings)
	snap.Predictions = stats.CountPredictions(predictions)
	return snap
}
