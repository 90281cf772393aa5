package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/raindropoju/scripture-memory/internal/game/models"
	"github.com/raindropoju/scripture-memory/internal/game/session"
	"github.com/raindropoju/scripture-memory/internal/game/storage"
	gsync "github.com/raindropoju/scripture-memory/internal/game/sync"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	log := zap.NewNop().Sugar()
	local := storage.NewLocalCache(db, log)
	require.NoError(t, local.Migrate())
	remote := storage.NewRemoteStore(db)
	require.NoError(t, remote.Migrate())

	manager := session.NewManager(local, remote, log, gsync.WithDebounce(10*time.Millisecond))
	t.Cleanup(manager.Close)

	game := NewGameHandler(manager)
	contentHandler := NewContentHandler()

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/content/decks", contentHandler.ListDecks)
	api.GET("/content/decks/:id", contentHandler.GetDeck)
	api.GET("/content/badges", contentHandler.ListBadges)
	api.GET("/game/state", game.State)
	api.POST("/game/rounds/setup", contentHandler.SetupRound)
	api.POST("/game/rounds/complete", game.CompleteRound)
	api.POST("/game/cards/progress", game.UpdateCardProgress)
	api.POST("/game/cards/master", game.MasterCard)
	api.POST("/game/decks/:id/reset-mastered", game.ResetDeckMastered)
	api.POST("/game/reset", game.ResetProgress)
	api.POST("/game/badges/clear", game.ClearNewBadges)
	api.PUT("/game/settings", game.UpdateSettings)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type statePayloadResponse struct {
	Stats      models.UserStats    `json:"stats"`
	Settings   models.GameSettings `json:"settings"`
	NewBadges  []string            `json:"newBadges"`
	XPProgress struct {
		Current int `json:"current"`
		Needed  int `json:"needed"`
	} `json:"xpProgress"`
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) statePayloadResponse {
	t.Helper()
	var resp statePayloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestState_NewGuestGetsDefaultsAndSessionID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/game/state", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(sessionHeader), "a fresh guest is handed a session id")

	resp := decodeState(t, w)
	assert.Equal(t, 0, resp.Stats.TotalScore)
	assert.Equal(t, 1, resp.Stats.Level)
	assert.Equal(t, []string{"foundation", "salvation"}, resp.Stats.UnlockedDecks)
	assert.Equal(t, models.DifficultyBeginner, resp.Settings.Difficulty)
	assert.Empty(t, resp.NewBadges)
	assert.Equal(t, 200, resp.XPProgress.Needed)
}

func TestCompleteRound_ServerComputesScore(t *testing.T) {
	r := newTestRouter(t)
	id := "sess-score"

	w := doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", id, gin.H{
		"correct":       5,
		"total":         5,
		"timeRemaining": 30,
		"totalTime":     60,
		"maxCombo":      6,
		"hintsUsed":     2,
		"mode":          "matching",
		"deckId":        "foundation",
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeState(t, w)
	// 500 + 200 + round(500*0.5*0.5) + 2*50 - 2*5
	assert.Equal(t, 915, resp.Stats.TotalScore)
	assert.Equal(t, 1, resp.Stats.GamesPlayed)
	assert.Contains(t, resp.NewBadges, "first-steps")
}

func TestCompleteRound_ClientScoreWins(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", "sess-client", gin.H{
		"score":   300,
		"correct": 8,
		"total":   10,
		"mode":    "matching",
		"deckId":  "foundation",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 300, decodeState(t, w).Stats.TotalScore)
}

func TestCompleteRound_RejectsBadPayloads(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", "sess-bad", gin.H{
		"correct": 3, "total": 5, "mode": "karaoke", "deckId": "foundation",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", "sess-bad", gin.H{
		"correct": 6, "total": 5, "mode": "matching", "deckId": "foundation",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", "sess-bad", gin.H{
		"correct": 3, "total": 5, "mode": "matching",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "deckId is required")

	w = doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", "sess-bad", gin.H{
		"correct": 3, "total": 5, "timeRemaining": 90, "totalTime": 60,
		"mode": "matching", "deckId": "foundation",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "timeRemaining cannot exceed totalTime")
}

func TestSessionState_SurvivesAcrossRequests(t *testing.T) {
	r := newTestRouter(t)
	id := "sess-sticky"

	doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", id, gin.H{
		"score": 150, "correct": 3, "total": 5, "mode": "flashcards", "deckId": "foundation",
	})

	w := doJSON(t, r, http.MethodGet, "/api/v1/game/state", id, nil)
	assert.Equal(t, 150, decodeState(t, w).Stats.TotalScore)

	other := doJSON(t, r, http.MethodGet, "/api/v1/game/state", "sess-other", nil)
	assert.Equal(t, 0, decodeState(t, other).Stats.TotalScore, "sessions do not share state")
}

func TestCardEndpoints_ProgressAndMaster(t *testing.T) {
	r := newTestRouter(t)
	id := "sess-cards"

	for i := 0; i < 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/v1/game/cards/progress", id, gin.H{
			"cardId": "foundation-1", "deckId": "foundation", "correct": true,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/game/state", id, nil)
	resp := decodeState(t, w)
	cp := resp.Stats.DeckProgress["foundation"].Cards["foundation-1"]
	require.NotNil(t, cp)
	assert.Equal(t, models.StatusKnown, cp.Status)
	assert.Equal(t, 1, resp.Stats.VersesInReview)

	w = doJSON(t, r, http.MethodPost, "/api/v1/game/cards/master", id, gin.H{
		"cardId": "foundation-1", "deckId": "foundation",
	})
	resp = decodeState(t, w)
	assert.Equal(t, 1, resp.Stats.VersesMastered)
	assert.Equal(t, 0, resp.Stats.VersesInReview)

	w = doJSON(t, r, http.MethodPost, "/api/v1/game/decks/foundation/reset-mastered", id, nil)
	resp = decodeState(t, w)
	assert.Equal(t, 0, resp.Stats.VersesMastered)
}

func TestResetProgress_Endpoint(t *testing.T) {
	r := newTestRouter(t)
	id := "sess-reset"

	doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", id, gin.H{
		"score": 500, "correct": 5, "total": 5, "mode": "matching", "deckId": "foundation",
	})

	w := doJSON(t, r, http.MethodPost, "/api/v1/game/reset", id, nil)
	resp := decodeState(t, w)
	assert.Equal(t, 0, resp.Stats.TotalScore)
	assert.Equal(t, 1, resp.Stats.Level)
}

func TestClearNewBadges_Endpoint(t *testing.T) {
	r := newTestRouter(t)
	id := "sess-badges"

	w := doJSON(t, r, http.MethodPost, "/api/v1/game/rounds/complete", id, gin.H{
		"score": 100, "correct": 3, "total": 5, "mode": "matching", "deckId": "foundation",
	})
	assert.NotEmpty(t, decodeState(t, w).NewBadges)

	doJSON(t, r, http.MethodPost, "/api/v1/game/badges/clear", id, nil)

	w = doJSON(t, r, http.MethodGet, "/api/v1/game/state", id, nil)
	assert.Empty(t, decodeState(t, w).NewBadges)
}

func TestUpdateSettings_PartialUpdate(t *testing.T) {
	r := newTestRouter(t)
	id := "sess-settings"

	w := doJSON(t, r, http.MethodPut, "/api/v1/game/settings", id, gin.H{
		"difficulty":   "advanced",
		"soundEnabled": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeState(t, w)
	assert.Equal(t, models.DifficultyAdvanced, resp.Settings.Difficulty)
	assert.False(t, resp.Settings.SoundEnabled)
	assert.Equal(t, models.ModeFlashcards, resp.Settings.GameMode, "untouched fields keep their values")

	w = doJSON(t, r, http.MethodPut, "/api/v1/game/settings", id, gin.H{
		"difficulty": "impossible",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
