// Package sync reconciles a session's in-memory aggregate with the local
// cache and the remote store: local writes land synchronously after every
// mutation, remote writes are debounced and guarded against identity
// transitions.
package sync

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// DefaultDebounce is the trailing window that collapses rapid mutations
// into a single remote write.
const DefaultDebounce = time.Second

// LocalStore is the synchronous cache contract. Implementations must be
// best-effort: load falls back to defaults, save swallows failures.
type LocalStore interface {
	LoadStats(namespace string) *models.UserStats
	SaveStats(namespace string, stats *models.UserStats)
	LoadSettings(namespace string) *models.GameSettings
	SaveSettings(namespace string, settings *models.GameSettings)
}

// RemoteStore is the asynchronous identity-keyed store contract. Absence is
// reported via the found flag, not an error.
type RemoteStore interface {
	LoadStats(ctx context.Context, userID string) (*models.UserStats, bool, error)
	SaveStats(ctx context.Context, userID string, stats *models.UserStats) error
	LoadSettings(ctx context.Context, userID string) (*models.GameSettings, bool, error)
	SaveSettings(ctx context.Context, userID string, settings *models.GameSettings) error
}

// Synchronizer keeps one session's aggregates durable across both backends.
type Synchronizer struct {
	local     LocalStore
	remote    RemoteStore
	log       *zap.SugaredLogger
	namespace string
	debounce  time.Duration

	mu          sync.Mutex
	userID      string // identity active during the last Initialize
	initialized bool
	timer       *time.Timer
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithDebounce overrides the remote write debounce window.
func WithDebounce(d time.Duration) Option {
	return func(s *Synchronizer) { s.debounce = d }
}

// New creates a synchronizer for one session. The namespace scopes the
// session's keys in the local cache.
func New(local LocalStore, remote RemoteStore, namespace string, log *zap.SugaredLogger, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		local:     local,
		remote:    remote,
		log:       log,
		namespace: namespace,
		debounce:  DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the session's state for the given identity and records
// that identity for the write guard. It is evaluated once per identity
// change:
//
//   - authenticated: load from the remote store, falling back to pure
//     defaults (never the local cache) when absent or failing;
//   - logout transition (identity just cleared): reset to defaults and write
//     them to the local cache so the previous user's remnants cannot leak;
//   - guest from the start: load from the local cache.
func (s *Synchronizer) Initialize(ctx context.Context, userID string) (*models.UserStats, *models.GameSettings) {
	s.mu.Lock()
	wasAuthenticated := s.initialized && s.userID != ""
	s.cancelPendingLocked()
	s.mu.Unlock()

	var stats *models.UserStats
	var settings *models.GameSettings

	switch {
	case userID != "":
		stats = s.loadRemoteStats(ctx, userID)
		settings = s.loadRemoteSettings(ctx, userID)
	case wasAuthenticated:
		stats = models.DefaultStats()
		settings = models.DefaultSettings()
		s.local.SaveStats(s.namespace, stats)
		s.local.SaveSettings(s.namespace, settings)
	default:
		stats = s.local.LoadStats(s.namespace)
		settings = s.local.LoadSettings(s.namespace)
	}

	s.mu.Lock()
	s.userID = userID
	s.initialized = true
	s.mu.Unlock()

	return stats, settings
}

// Persist is called after every state mutation. The local cache is written
// synchronously; a remote write is scheduled behind the debounce window when
// an identity is present. Writes are skipped entirely if the caller's
// current identity differs from the one active at the last Initialize.
func (s *Synchronizer) Persist(currentUserID string, stats *models.UserStats, settings *models.GameSettings) {
	s.mu.Lock()
	if !s.initialized || currentUserID != s.userID {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.local.SaveStats(s.namespace, stats)
	s.local.SaveSettings(s.namespace, settings)

	if currentUserID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	userID := currentUserID
	s.timer = time.AfterFunc(s.debounce, func() {
		s.flush(userID, stats, settings)
	})
}

// flush performs the debounced remote write, re-checking the identity guard
// in case the user logged out while the timer was pending.
func (s *Synchronizer) flush(userID string, stats *models.UserStats, settings *models.GameSettings) {
	s.mu.Lock()
	if s.userID != userID {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.remote.SaveStats(ctx, userID, stats); err != nil {
		s.log.Warnw("remote stats save failed", "error", err)
	}
	if err := s.remote.SaveSettings(ctx, userID, settings); err != nil {
		s.log.Warnw("remote settings save failed", "error", err)
	}
}

// Close cancels any pending remote write without flushing it.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.initialized = false
}

func (s *Synchronizer) cancelPendingLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Synchronizer) loadRemoteStats(ctx context.Context, userID string) *models.UserStats {
	stats, found, err := s.remote.LoadStats(ctx, userID)
	if err != nil {
		s.log.Warnw("remote stats load failed, using defaults", "error", err)
		return models.DefaultStats()
	}
	if !found {
		return models.DefaultStats()
	}
	return stats
}

func (s *Synchronizer) loadRemoteSettings(ctx context.Context, userID string) *models.GameSettings {
	settings, found, err := s.remote.LoadSettings(ctx, userID)
	if err != nil {
		s.log.Warnw("remote settings load failed, using defaults", "error", err)
		return models.DefaultSettings()
	}
	if !found {
		return models.DefaultSettings()
	}
	return settings
}
