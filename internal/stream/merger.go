// Package stream maintains the deduplicated union of several live query
// sources over one entity namespace. Sources deliver full snapshots, not
// deltas, so the union is recomputed from scratch on every notification;
// nothing accumulates across snapshots.
package stream

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrUnknownSource indicates a snapshot for an unregistered source.
	ErrUnknownSource = errors.New("unknown source stream")
	// ErrDuplicateSource indicates a source ID registered twice.
	ErrDuplicateSource = errors.New("source stream already registered")
	// ErrClosed indicates the merger has been torn down.
	ErrClosed = errors.New("merger closed")
)

type source[T any] struct {
	id       string
	priority int
	snapshot []T
	err      error
}

// Merger merges full-snapshot sources into one deduplicated collection.
// When the same entity ID appears in more than one source, the copy from
// the lowest-priority-index source wins; registration order breaks
// priority ties. Snapshot callbacks from independent watcher goroutines
// are serialized, so every union handed downstream reflects one
// consistent set of inputs.
type Merger[T any] struct {
	mu       sync.Mutex
	key      func(T) string
	sources  []*source[T]
	onUpdate func([]T)
	closed   bool
}

// New creates a merger. key extracts the entity identifier; onUpdate, if
// not nil, receives the recomputed union after every snapshot.
func New[T any](key func(T) string, onUpdate func([]T)) *Merger[T] {
	return &Merger[T]{key: key, onUpdate: onUpdate}
}

// Register adds a source stream. Lower priority values win dedup ties.
func (m *Merger[T]) Register(id string, priority int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	for _, s := range m.sources {
		if s.id == id {
			return ErrDuplicateSource
		}
	}
	m.sources = append(m.sources, &source[T]{id: id, priority: priority})
	sort.SliceStable(m.sources, func(i, j int) bool {
		return m.sources[i].priority < m.sources[j].priority
	})
	return nil
}

// SetSnapshot replaces a source's entire contribution and notifies
// downstream with the recomputed union. Late snapshots after Close are
// dropped. The onUpdate callback runs with the merger locked so unions
// are delivered in the order they were computed; it must not call back
// into the merger.
func (m *Merger[T]) SetSnapshot(id string, items []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	src := m.lookup(id)
	if src == nil {
		return ErrUnknownSource
	}
	src.snapshot = items
	src.err = nil
	if m.onUpdate != nil {
		m.onUpdate(m.unionLocked())
	}
	return nil
}

// Fail records a source failure. The source's last snapshot keeps serving
// (stale-but-present beats blank); the error stays visible via Health
// until the next successful snapshot.
func (m *Merger[T]) Fail(id string, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	src := m.lookup(id)
	if src == nil {
		return ErrUnknownSource
	}
	src.err = err
	return nil
}

// Union recomputes and returns the current deduplicated collection.
func (m *Merger[T]) Union() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unionLocked()
}

// Health reports the last error per source; healthy sources map to nil.
func (m *Merger[T]) Health() map[string]error {
	m.mu.Lock()
	defer m.mu.Unlock()
	health := make(map[string]error, len(m.sources))
	for _, s := range m.sources {
		health[s.id] = s.err
	}
	return health
}

// Close tears the merger down. Snapshots arriving after Close are dropped
// and no downstream notification fires again.
func (m *Merger[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.onUpdate = nil
}

func (m *Merger[T]) lookup(id string) *source[T] {
	for _, s := range m.sources {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (m *Merger[T]) unionLocked() []T {
	seen := make(map[string]struct{})
	var union []T
	for _, s := range m.sources {
		for _, item := range s.snapshot {
			k := m.key(item)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			union = append(union, item)
		}
	}
	return union
}
