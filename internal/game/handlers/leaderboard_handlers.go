package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
	"github.com/raindropoju/scripture-memory/internal/common/middleware"
	"github.com/raindropoju/scripture-memory/internal/common/validation"
	"github.com/raindropoju/scripture-memory/internal/game/logic"
	"github.com/raindropoju/scripture-memory/internal/game/models"
	"github.com/raindropoju/scripture-memory/internal/game/storage"
	"github.com/raindropoju/scripture-memory/pkg/logger"
)

// maxEntryNameLength caps submitted leaderboard names.
const maxEntryNameLength = 40

// LeaderboardHandler serves the local (per-session) and global scoreboards.
type LeaderboardHandler struct {
	local  *storage.LocalCache
	remote *storage.RemoteStore
}

// NewLeaderboardHandler creates the leaderboard handler.
func NewLeaderboardHandler(local *storage.LocalCache, remote *storage.RemoteStore) *LeaderboardHandler {
	return &LeaderboardHandler{local: local, remote: remote}
}

// Global returns the global top 50 by score
// GET /api/v1/leaderboard
func (h *LeaderboardHandler) Global(c *gin.Context) {
	entries, err := h.remote.LoadGlobalLeaderboard(c.Request.Context())
	if err != nil {
		// Absence of remote data is never a player-facing failure.
		logger.L().Warnw("global leaderboard load failed", "error", err)
		entries = []models.LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}

// Local returns the session's cached leaderboard
// GET /api/v1/leaderboard/local
func (h *LeaderboardHandler) Local(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	entries := h.local.LoadLeaderboard(sessionID)
	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": len(entries)})
}

type submitEntryRequest struct {
	Name  string          `json:"name" binding:"required"`
	Score int             `json:"score" binding:"min=0"`
	Mode  models.GameMode `json:"mode" binding:"required"`
}

// Submit appends a score to the session leaderboard and, for authenticated
// players, to the global one
// POST /api/v1/leaderboard
func (h *LeaderboardHandler) Submit(c *gin.Context) {
	var req submitEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("name, score and mode are required"))
		return
	}
	if !req.Mode.Valid() {
		middleware.JSONErrorResponse(c, errors.BadRequest("unknown game mode"))
		return
	}
	if err := validation.ValidateStringRange(req.Name, 1, maxEntryNameLength); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("name: "+err.Error()))
		return
	}

	entry := models.LeaderboardEntry{
		Name:  req.Name,
		Score: req.Score,
		Date:  logic.Today(),
		Mode:  req.Mode,
	}

	sessionID := c.GetHeader(sessionHeader)
	h.local.AppendLeaderboardEntry(sessionID, entry)

	if userID := middleware.UserID(c); userID != "" {
		if err := h.remote.InsertLeaderboardEntry(c.Request.Context(), userID, entry); err != nil {
			logger.L().Warnw("global leaderboard insert failed", "error", err)
		}
	}

	c.JSON(http.StatusCreated, entry)
}
