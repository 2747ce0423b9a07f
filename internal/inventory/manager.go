package inventory

import (
	"context"
	"log/slog"
	"sync"
)

// Manager pools one live inventory session per agent so repeated API
// calls reuse the same subscriptions instead of reissuing queries.
// Sessions are owned by the manager, not by any single request.
type Manager struct {
	store  Subscriber
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

// NewManager creates a session manager over the given store.
func NewManager(store Subscriber, logger *slog.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		store:    store,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		sessions: make(map[string]*Session),
	}
}

// Session returns the live session for an agent, opening one on first
// use. Returns nil after Close.
func (m *Manager) Session(agentID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	if s, ok := m.sessions[agentID]; ok {
		return s
	}
	s := Open(m.ctx, m.store, agentID, m.logger)
	m.sessions[agentID] = s
	return s
}

// Release closes and removes one agent's session.
func (m *Manager) Release(agentID string) {
	m.mu.Lock()
	s, ok := m.sessions[agentID]
	delete(m.sessions, agentID)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Close tears down every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.closed = true
	m.mu.Unlock()
	m.cancel()
	for _, s := range sessions {
		s.Close()
	}
}
