package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// globalLeaderboardLimit caps the global leaderboard query.
const globalLeaderboardLimit = 50

// UserStatsRecord stores one user's stats aggregate as a JSON blob,
// upserted whole (last write wins).
type UserStatsRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex;not null"`
	Stats     string `gorm:"not null"`
	UpdatedAt time.Time
}

// UserSettingsRecord stores one user's settings blob.
type UserSettingsRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex;not null"`
	Settings  string `gorm:"not null"`
	UpdatedAt time.Time
}

// LeaderboardRecord is one global leaderboard row.
type LeaderboardRecord struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Score     int    `gorm:"not null;index"`
	Mode      string `gorm:"not null"`
	Date      string `gorm:"not null"`
	CreatedAt time.Time
}

// RemoteStore persists aggregates keyed by user identity. Record absence is
// reported as (nil, false, nil), never as an error.
type RemoteStore struct {
	db *gorm.DB
}

// NewRemoteStore creates the store over an initialized gorm handle.
func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{db: db}
}

// Migrate creates the remote tables.
func (s *RemoteStore) Migrate() error {
	return s.db.AutoMigrate(&UserStatsRecord{}, &UserSettingsRecord{}, &LeaderboardRecord{})
}

// LoadStats fetches a user's stats aggregate.
func (s *RemoteStore) LoadStats(ctx context.Context, userID string) (*models.UserStats, bool, error) {
	var record UserStatsRecord
	err := s.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	stats := models.DefaultStats()
	if err := json.Unmarshal([]byte(record.Stats), stats); err != nil {
		return nil, false, err
	}
	return stats, true, nil
}

// SaveStats upserts a user's stats aggregate.
func (s *RemoteStore) SaveStats(ctx context.Context, userID string, stats *models.UserStats) error {
	blob, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	record := UserStatsRecord{UserID: userID, Stats: string(blob)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stats", "updated_at"}),
	}).Create(&record).Error
}

// LoadSettings fetches a user's settings.
func (s *RemoteStore) LoadSettings(ctx context.Context, userID string) (*models.GameSettings, bool, error) {
	var record UserSettingsRecord
	err := s.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal([]byte(record.Settings), settings); err != nil {
		return nil, false, err
	}
	return settings, true, nil
}

// SaveSettings upserts a user's settings.
func (s *RemoteStore) SaveSettings(ctx context.Context, userID string, settings *models.GameSettings) error {
	blob, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	record := UserSettingsRecord{UserID: userID, Settings: string(blob)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
	}).Create(&record).Error
}

// InsertLeaderboardEntry appends one row to the global leaderboard.
func (s *RemoteStore) InsertLeaderboardEntry(ctx context.Context, userID string, entry models.LeaderboardEntry) error {
	record := LeaderboardRecord{
		UserID: userID,
		Name:   entry.Name,
		Score:  entry.Score,
		Mode:   string(entry.Mode),
		Date:   entry.Date,
	}
	return s.db.WithContext(ctx).Create(&record).Error
}

// LoadGlobalLeaderboard returns the top entries by score descending.
func (s *RemoteStore) LoadGlobalLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var records []LeaderboardRecord
	err := s.db.WithContext(ctx).
		Order("score DESC").
		Limit(globalLeaderboardLimit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(records))
	for i, r := range records {
		entries[i] = models.LeaderboardEntry{
			Name:  r.Name,
			Score: r.Score,
			Date:  r.Date,
			Mode:  models.GameMode(r.Mode),
		}
	}
	return entries, nil
}
