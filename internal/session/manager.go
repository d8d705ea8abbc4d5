package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/winstonung/cr-cycle-server-go/internal/catalog"
	"go.uber.org/zap"
)

// Manager tracks active sessions by ID and expires the ones whose lease
// has run out.
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	catalog     *catalog.Catalog
	leasePeriod time.Duration
	maxSessions int
	logger      *zap.Logger
}

// NewManager creates a session manager. Sessions idle longer than the
// lease period are removed by the cleanup goroutine.
func NewManager(cat *catalog.Catalog, leasePeriod time.Duration, maxSessions int, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		catalog:     cat,
		leasePeriod: leasePeriod,
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// Create starts a new session with a fresh empty cycle state.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return nil, fmt.Errorf("session limit reached (%d)", m.maxSessions)
	}

	s := newSession(uuid.NewString(), m.catalog)
	m.sessions[s.ID] = s

	if m.logger != nil {
		m.logger.Info("session created",
			zap.String("session_id", s.ID),
			zap.Int("active_sessions", len(m.sessions)),
		)
	}
	return s, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupExpiredSessions periodically removes sessions idle past the
// lease period, sweeping at half the lease but at least once per second.
// Runs until the context is cancelled.
func (m *Manager) CleanupExpiredSessions(ctx context.Context) {
	interval := m.leasePeriod / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.expireIdle()
		}
	}
}

func (m *Manager) expireIdle() {
	cutoff := time.Now().Add(-m.leasePeriod)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			if m.logger != nil {
				m.logger.Info("session expired",
					zap.String("session_id", id),
					zap.Duration("lease_period", m.leasePeriod),
				)
			}
		}
	}
}

// CloseAll drops every session; called during shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.sessions)
	m.sessions = make(map[string]*Session)

	if m.logger != nil && n > 0 {
		m.logger.Info("closed all sessions", zap.Int("count", n))
	}
}
