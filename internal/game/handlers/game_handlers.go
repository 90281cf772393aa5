// Package handlers exposes the progression engine over HTTP. Each mutating
// endpoint maps to one reducer action; the session is resolved from the
// X-Session-ID header plus the optional bearer identity, so a login or
// logout between requests re-initializes state under the sync policy.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
	"github.com/raindropoju/scripture-memory/internal/common/middleware"
	"github.com/raindropoju/scripture-memory/internal/common/validation"
	"github.com/raindropoju/scripture-memory/internal/game/engine"
	"github.com/raindropoju/scripture-memory/internal/game/logic"
	"github.com/raindropoju/scripture-memory/internal/game/models"
	"github.com/raindropoju/scripture-memory/internal/game/session"
)

const sessionHeader = "X-Session-ID"

// GameHandler serves the gameplay endpoints.
type GameHandler struct {
	manager *session.Manager
}

// NewGameHandler creates the handler over the session manager.
func NewGameHandler(manager *session.Manager) *GameHandler {
	return &GameHandler{manager: manager}
}

// resolve finds or creates the caller's session. A missing session header
// mints a fresh guest id, echoed back so the client can keep it.
func (h *GameHandler) resolve(c *gin.Context) *session.Session {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = session.NewSessionID()
	}
	c.Header(sessionHeader, sessionID)
	return h.manager.Resolve(c.Request.Context(), sessionID, middleware.UserID(c))
}

// statePayload is the display snapshot returned after reads and mutations.
func statePayload(sess *session.Session, newBadges []string) gin.H {
	stats, settings := sess.Snapshot()
	current, needed := logic.XPForCurrentLevel(stats.TotalXP)
	if newBadges == nil {
		newBadges = []string{}
	}
	return gin.H{
		"stats":     stats,
		"settings":  settings,
		"newBadges": newBadges,
		"xpProgress": gin.H{
			"current": current,
			"needed":  needed,
		},
	}
}

// State returns the current stats/settings snapshot
// GET /api/v1/game/state
func (h *GameHandler) State(c *gin.Context) {
	sess := h.resolve(c)

	var pending []string
	sess.View(func(e *engine.Engine) {
		pending = e.NewBadges()
	})

	c.JSON(http.StatusOK, statePayload(sess, pending))
}

type completeRoundRequest struct {
	Score         *int            `json:"score"`
	Correct       int             `json:"correct" binding:"min=0"`
	Total         int             `json:"total" binding:"min=0"`
	TimeRemaining int             `json:"timeRemaining" binding:"min=0"`
	TotalTime     int             `json:"totalTime"`
	MaxCombo      int             `json:"maxCombo" binding:"min=0"`
	HintsUsed     int             `json:"hintsUsed" binding:"min=0"`
	Mode          models.GameMode `json:"mode" binding:"required"`
	DeckID        string          `json:"deckId" binding:"required"`
}

// CompleteRound applies a finished round
// POST /api/v1/game/rounds/complete
func (h *GameHandler) CompleteRound(c *gin.Context) {
	var req completeRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid round payload"))
		return
	}
	if !req.Mode.Valid() {
		middleware.JSONErrorResponse(c, errors.BadRequest("unknown game mode"))
		return
	}
	if req.Correct > req.Total {
		middleware.JSONErrorResponse(c, errors.BadRequest("correct cannot exceed total"))
		return
	}
	if req.TotalTime > 0 {
		if err := validation.ValidateIntRange(req.TimeRemaining, 0, req.TotalTime); err != nil {
			middleware.JSONErrorResponse(c, errors.BadRequest("timeRemaining: "+err.Error()))
			return
		}
	}

	score := logic.CalculateScore(req.Correct, req.Total, req.TimeRemaining, req.TotalTime, req.MaxCombo, req.HintsUsed)
	if req.Score != nil {
		score = *req.Score
	}

	sess := h.resolve(c)
	var newBadges []string
	sess.Do(func(e *engine.Engine) {
		newBadges = e.CompleteGame(engine.RoundResult{
			Score:         score,
			Correct:       req.Correct,
			Total:         req.Total,
			TimeRemaining: req.TimeRemaining,
			MaxCombo:      req.MaxCombo,
			Mode:          req.Mode,
			DeckID:        req.DeckID,
		})
	})

	c.JSON(http.StatusOK, statePayload(sess, newBadges))
}

type cardProgressRequest struct {
	CardID  string `json:"cardId" binding:"required"`
	DeckID  string `json:"deckId" binding:"required"`
	Correct bool   `json:"correct"`
}

// UpdateCardProgress records one answer on a card
// POST /api/v1/game/cards/progress
func (h *GameHandler) UpdateCardProgress(c *gin.Context) {
	var req cardProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("cardId and deckId are required"))
		return
	}

	sess := h.resolve(c)
	sess.Do(func(e *engine.Engine) {
		e.UpdateCardProgress(req.CardID, req.DeckID, req.Correct)
	})

	c.JSON(http.StatusOK, statePayload(sess, nil))
}

type masterCardRequest struct {
	CardID string `json:"cardId" binding:"required"`
	DeckID string `json:"deckId" binding:"required"`
}

// MasterCard marks a card mastered
// POST /api/v1/game/cards/master
func (h *GameHandler) MasterCard(c *gin.Context) {
	var req masterCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("cardId and deckId are required"))
		return
	}

	sess := h.resolve(c)
	sess.Do(func(e *engine.Engine) {
		e.MasterCard(req.CardID, req.DeckID)
	})

	c.JSON(http.StatusOK, statePayload(sess, nil))
}

// ResetDeckMastered resets mastered cards in a deck
// POST /api/v1/game/decks/:id/reset-mastered
func (h *GameHandler) ResetDeckMastered(c *gin.Context) {
	deckID := c.Param("id")

	sess := h.resolve(c)
	sess.Do(func(e *engine.Engine) {
		e.ResetDeckMastered(deckID)
	})

	c.JSON(http.StatusOK, statePayload(sess, nil))
}

// ResetProgress discards all stats
// POST /api/v1/game/reset
func (h *GameHandler) ResetProgress(c *gin.Context) {
	sess := h.resolve(c)
	sess.Do(func(e *engine.Engine) {
		e.ResetProgress()
	})

	c.JSON(http.StatusOK, statePayload(sess, nil))
}

// ClearNewBadges empties the new-badge side-channel
// POST /api/v1/game/badges/clear
func (h *GameHandler) ClearNewBadges(c *gin.Context) {
	sess := h.resolve(c)
	sess.View(func(e *engine.Engine) {
		e.ClearNewBadges()
	})

	c.JSON(http.StatusOK, gin.H{"newBadges": []string{}})
}

type updateSettingsRequest struct {
	Difficulty     *models.Difficulty `json:"difficulty"`
	SelectedDeckID *string            `json:"selectedDeckId"`
	GameMode       *models.GameMode   `json:"gameMode"`
	SoundEnabled   *bool              `json:"soundEnabled"`
	FontSize       *models.FontSize   `json:"fontSize"`
}

// UpdateSettings applies any provided settings mutations
// PUT /api/v1/game/settings
func (h *GameHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid settings payload"))
		return
	}
	if req.Difficulty != nil && !req.Difficulty.Valid() {
		middleware.JSONErrorResponse(c, errors.BadRequest("unknown difficulty"))
		return
	}
	if req.GameMode != nil && !req.GameMode.Valid() {
		middleware.JSONErrorResponse(c, errors.BadRequest("unknown game mode"))
		return
	}
	if req.FontSize != nil && !req.FontSize.Valid() {
		middleware.JSONErrorResponse(c, errors.BadRequest("unknown font size"))
		return
	}

	sess := h.resolve(c)
	sess.Do(func(e *engine.Engine) {
		if req.Difficulty != nil {
			e.SetDifficulty(*req.Difficulty)
		}
		if req.SelectedDeckID != nil {
			e.SetDeck(*req.SelectedDeckID)
		}
		if req.GameMode != nil {
			e.SetGameMode(*req.GameMode)
		}
		if req.SoundEnabled != nil {
			e.SetSound(*req.SoundEnabled)
		}
		if req.FontSize != nil {
			e.SetFontSize(*req.FontSize)
		}
	})

	c.JSON(http.StatusOK, statePayload(sess, nil))
}
