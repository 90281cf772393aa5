package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

func newTestRemote(t *testing.T) *RemoteStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := NewRemoteStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestRemoteStore_StatsAbsentBeforeFirstSave(t *testing.T) {
	store := newTestRemote(t)

	stats, found, err := store.LoadStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stats)
}

func TestRemoteStore_StatsUpsert(t *testing.T) {
	store := newTestRemote(t)
	ctx := context.Background()

	first := models.DefaultStats()
	first.TotalScore = 100
	require.NoError(t, store.SaveStats(ctx, "user-1", first))

	second := models.DefaultStats()
	second.TotalScore = 400
	second.UnlockedBadges = []string{"first-steps", "speed-memorizer"}
	require.NoError(t, store.SaveStats(ctx, "user-1", second))

	loaded, found, err := store.LoadStats(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 400, loaded.TotalScore)
	assert.Equal(t, []string{"first-steps", "speed-memorizer"}, loaded.UnlockedBadges)
}

func TestRemoteStore_StatsAreIsolatedPerUser(t *testing.T) {
	store := newTestRemote(t)
	ctx := context.Background()

	stats := models.DefaultStats()
	stats.TotalScore = 777
	require.NoError(t, store.SaveStats(ctx, "user-1", stats))

	_, found, err := store.LoadStats(ctx, "user-2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoteStore_SettingsUpsert(t *testing.T) {
	store := newTestRemote(t)
	ctx := context.Background()

	settings := models.DefaultSettings()
	settings.GameMode = models.ModeFillBlanks
	require.NoError(t, store.SaveSettings(ctx, "user-1", settings))

	loaded, found, err := store.LoadSettings(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.ModeFillBlanks, loaded.GameMode)
	assert.Equal(t, models.DifficultyBeginner, loaded.Difficulty)
}

func TestRemoteStore_GlobalLeaderboard(t *testing.T) {
	store := newTestRemote(t)
	ctx := context.Background()

	for i := 0; i < globalLeaderboardLimit+5; i++ {
		entry := models.LeaderboardEntry{
			Name:  fmt.Sprintf("player-%d", i),
			Score: i * 10,
			Date:  "2026-09-01",
			Mode:  models.ModeMatching,
		}
		require.NoError(t, store.InsertLeaderboardEntry(ctx, fmt.Sprintf("user-%d", i), entry))
	}

	board, err := store.LoadGlobalLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, globalLeaderboardLimit)
	assert.Equal(t, (globalLeaderboardLimit+4)*10, board[0].Score)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Score, board[i].Score)
	}
}
