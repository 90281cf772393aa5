// Package storage provides the two persistence backends behind the
// synchronizer: a fast embedded cache that is always available, and a
// remote store keyed by user identity.
package storage

import (
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// Logical cache keys, namespaced per session.
const (
	keyStats       = "scripture-game-stats"
	keySettings    = "scripture-game-settings"
	keyLeaderboard = "scripture-game-leaderboard"
)

// localLeaderboardLimit caps the cached leaderboard length.
const localLeaderboardLimit = 50

// CacheEntry is one key/blob row in the embedded cache.
type CacheEntry struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time
}

// LocalCache is a synchronous key/blob store backed by an embedded database.
// Reads degrade to defaults and writes are best-effort: a full or broken
// cache never surfaces as a user-facing error.
type LocalCache struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewLocalCache creates the cache over an initialized gorm handle.
func NewLocalCache(db *gorm.DB, log *zap.SugaredLogger) *LocalCache {
	return &LocalCache{db: db, log: log}
}

// Migrate creates the cache table.
func (c *LocalCache) Migrate() error {
	return c.db.AutoMigrate(&CacheEntry{})
}

// LoadStats reads the cached stats for a session, merging the blob over
// defaults so fields added later inherit default values. Absent or corrupt
// blobs yield pure defaults.
func (c *LocalCache) LoadStats(namespace string) *models.UserStats {
	blob, ok := c.load(namespace + ":" + keyStats)
	if !ok {
		return models.DefaultStats()
	}
	// Decode into a scratch value so a corrupt blob cannot leave a
	// half-filled aggregate behind.
	scratch := models.DefaultStats()
	if err := json.Unmarshal(blob, scratch); err != nil {
		c.log.Debugw("discarding corrupt cache entry", "key", keyStats, "error", err)
		return models.DefaultStats()
	}
	return scratch
}

// SaveStats caches the stats blob. Failures are logged and swallowed.
func (c *LocalCache) SaveStats(namespace string, stats *models.UserStats) {
	c.save(namespace+":"+keyStats, stats)
}

// LoadSettings reads cached settings merged over defaults.
func (c *LocalCache) LoadSettings(namespace string) *models.GameSettings {
	blob, ok := c.load(namespace + ":" + keySettings)
	if !ok {
		return models.DefaultSettings()
	}
	scratch := models.DefaultSettings()
	if err := json.Unmarshal(blob, scratch); err != nil {
		c.log.Debugw("discarding corrupt cache entry", "key", keySettings, "error", err)
		return models.DefaultSettings()
	}
	return scratch
}

// SaveSettings caches the settings blob.
func (c *LocalCache) SaveSettings(namespace string, settings *models.GameSettings) {
	c.save(namespace+":"+keySettings, settings)
}

// LoadLeaderboard returns the cached leaderboard, empty on any failure.
func (c *LocalCache) LoadLeaderboard(namespace string) []models.LeaderboardEntry {
	blob, ok := c.load(namespace + ":" + keyLeaderboard)
	if !ok {
		return []models.LeaderboardEntry{}
	}
	var board []models.LeaderboardEntry
	if err := json.Unmarshal(blob, &board); err != nil || board == nil {
		if err != nil {
			c.log.Debugw("discarding corrupt cache entry", "key", keyLeaderboard, "error", err)
		}
		return []models.LeaderboardEntry{}
	}
	return board
}

// AppendLeaderboardEntry appends, resorts by score descending and trims the
// cached leaderboard to its cap.
func (c *LocalCache) AppendLeaderboardEntry(namespace string, entry models.LeaderboardEntry) {
	board := c.LoadLeaderboard(namespace)
	board = append(board, entry)
	sort.SliceStable(board, func(i, j int) bool { return board[i].Score > board[j].Score })
	if len(board) > localLeaderboardLimit {
		board = board[:localLeaderboardLimit]
	}
	c.save(namespace+":"+keyLeaderboard, board)
}

func (c *LocalCache) load(key string) ([]byte, bool) {
	var entry CacheEntry
	if err := c.db.First(&entry, "key = ?", key).Error; err != nil {
		return nil, false
	}
	return []byte(entry.Value), true
}

func (c *LocalCache) save(key string, value interface{}) {
	blob, err := json.Marshal(value)
	if err != nil {
		c.log.Debugw("cache marshal failed", "key", key, "error", err)
		return
	}
	entry := CacheEntry{Key: key, Value: string(blob)}
	err = c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		c.log.Debugw("cache write failed", "key", key, "error", err)
	}
}
