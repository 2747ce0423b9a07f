// Package inventory runs the agent inventory view: two live listing
// queries merged into one deduplicated collection that filters are
// applied to on demand.
package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/estatoai/estato/internal/domain/listing"
	"github.com/estatoai/estato/internal/stream"
	"github.com/estatoai/estato/internal/view"
)

// Subscription is a live full-snapshot query handed to the session.
type Subscription interface {
	Snapshots() <-chan []listing.Listing
	Errs() <-chan error
	Close()
}

// Subscriber opens live queries against the listing store.
type Subscriber interface {
	Subscribe(ctx context.Context, q listing.Query) Subscription
}

// Source stream IDs. The public stream registers first and wins dedup
// ties, so a listing the agent owns that is also publicly visible shows
// the publicly-fetched copy.
const (
	sourcePublic   = "public"
	sourcePersonal = "personal"
)

// Session owns the merged inventory for one agent. The store splits the
// read into two queries (all public listings, all of the agent's own)
// because visibility rules block one catch-all query; the session
// presents their union exactly once per listing ID.
type Session struct {
	agentID string
	merger  *stream.Merger[listing.Listing]
	logger  *slog.Logger

	mu      sync.Mutex
	current []listing.Listing

	cancel context.CancelFunc
	subs   []Subscription
	wg     sync.WaitGroup
}

// Open starts an inventory session for the given agent. The session runs
// until Close; snapshots from either stream trigger a full union
// recomputation.
func Open(ctx context.Context, store Subscriber, agentID string, logger *slog.Logger) *Session {
	ctx, cancel := context.WithCancel(ctx)

	s := &Session{
		agentID: agentID,
		logger:  logger,
		cancel:  cancel,
	}
	s.merger = stream.New(
		func(l listing.Listing) string { return l.ID },
		s.setCurrent,
	)
	_ = s.merger.Register(sourcePublic, 0)
	_ = s.merger.Register(sourcePersonal, 1)

	public := store.Subscribe(ctx, listing.Query{Visibility: listing.VisibilityPublic})
	personal := store.Subscribe(ctx, listing.Query{OwnerID: agentID})
	s.subs = []Subscription{public, personal}

	s.wg.Add(2)
	go s.pump(ctx, sourcePublic, public)
	go s.pump(ctx, sourcePersonal, personal)

	return s
}

func (s *Session) pump(ctx context.Context, sourceID string, sub Subscription) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case items, ok := <-sub.Snapshots():
			if !ok {
				return
			}
			if err := s.merger.SetSnapshot(sourceID, items); err != nil {
				return
			}
		case err, ok := <-sub.Errs():
			if !ok {
				return
			}
			// One failed stream degrades service, it does not blank the
			// union of the healthy ones.
			s.logger.Warn("inventory source error", "source", sourceID, "error", err)
			if failErr := s.merger.Fail(sourceID, err); failErr != nil {
				return
			}
		}
	}
}

func (s *Session) setCurrent(union []listing.Listing) {
	s.mu.Lock()
	s.current = union
	s.mu.Unlock()
}

// AgentID returns the session owner.
func (s *Session) AgentID() string {
	return s.agentID
}

// Listings returns the current merged collection.
func (s *Session) Listings() []listing.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// View applies a filter spec to the current merged collection. The
// viewer is always the session's agent.
func (s *Session) View(spec view.FilterSpec) []listing.Listing {
	spec.ViewerID = s.agentID
	return view.Apply(s.Listings(), spec)
}

// Counts returns the total merged size and the matched subset size for a
// filter spec.
func (s *Session) Counts(spec view.FilterSpec) (total, matched int) {
	all := s.Listings()
	spec.ViewerID = s.agentID
	return len(all), len(view.Apply(all, spec))
}

// Health reports per-source stream health; healthy sources map to nil.
func (s *Session) Health() map[string]error {
	return s.merger.Health()
}

// Close releases both subscriptions. No snapshot callback fires after
// Close returns.
func (s *Session) Close() {
	s.cancel()
	for _, sub := range s.subs {
		sub.Close()
	}
	s.merger.Close()
	s.wg.Wait()
}
