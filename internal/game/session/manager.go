// Package session ties one engine and one synchronizer together per active
// player session and handles identity transitions (login, logout).
package session

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/raindropoju/scripture-memory/internal/game/engine"
	"github.com/raindropoju/scripture-memory/internal/game/models"
	gsync "github.com/raindropoju/scripture-memory/internal/game/sync"

	stdsync "sync"
)

// Session owns one player's engine and persistence lifecycle. All mutations
// go through Do so that the aggregate is persisted after every action.
type Session struct {
	ID string

	mu     stdsync.Mutex
	userID string
	engine *engine.Engine
	sync   *gsync.Synchronizer
}

// Do runs a mutation against the engine, then persists the resulting state.
func (s *Session) Do(fn func(*engine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
	stats, settings := s.engine.Snapshot()
	s.sync.Persist(s.userID, stats, settings)
}

// View runs a read-only function against the engine.
func (s *Session) View(fn func(*engine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// UserID returns the identity bound to the session, empty for guests.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Manager resolves sessions by id, creating them on first use and
// re-initializing them when the bound identity changes.
type Manager struct {
	local    gsync.LocalStore
	remote   gsync.RemoteStore
	log      *zap.SugaredLogger
	debounce []gsync.Option

	mu       stdsync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the two stores.
func NewManager(local gsync.LocalStore, remote gsync.RemoteStore, log *zap.SugaredLogger, opts ...gsync.Option) *Manager {
	return &Manager{
		local:    local,
		remote:   remote,
		log:      log,
		debounce: opts,
		sessions: make(map[string]*Session),
	}
}

// NewSessionID mints an id for a fresh guest session.
func NewSessionID() string {
	return uuid.NewString()
}

// Resolve returns the session for sessionID, creating it if needed. When the
// caller's identity differs from the session's bound identity (login or
// logout happened since the last request) the session is re-initialized
// under the initialization policy before being returned.
func (m *Manager) Resolve(ctx context.Context, sessionID, userID string) *Session {
	m.mu.Lock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		sess = &Session{
			ID:     sessionID,
			engine: engine.New(),
			sync:   gsync.New(m.local, m.remote, sessionID, m.log, m.debounce...),
		}
		m.sessions[sessionID] = sess
	}
	m.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !ok || sess.userID != userID {
		stats, settings := sess.sync.Initialize(ctx, userID)
		sess.engine.Init(stats, settings)
		sess.userID = userID
	}
	return sess
}

// Snapshot returns display copies of a session's current state.
func (s *Session) Snapshot() (*models.UserStats, *models.GameSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Close cancels pending writes for every session.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sess := range m.sessions {
		sess.sync.Close()
	}
}
