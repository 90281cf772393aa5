package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raindropoju/scripture-memory/internal/common/errors"
	"github.com/raindropoju/scripture-memory/internal/common/middleware"
	"github.com/raindropoju/scripture-memory/internal/game/content"
	"github.com/raindropoju/scripture-memory/internal/game/logic"
	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// ContentHandler serves the static catalog and round-setup material.
type ContentHandler struct{}

// NewContentHandler creates the content handler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// ListDecks returns the full deck catalog
// GET /api/v1/content/decks
func (h *ContentHandler) ListDecks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"decks": content.Decks, "total": len(content.Decks)})
}

// GetDeck returns one deck with its cards
// GET /api/v1/content/decks/:id
func (h *ContentHandler) GetDeck(c *gin.Context) {
	deck, ok := content.DeckByID(c.Param("id"))
	if !ok {
		middleware.JSONErrorResponse(c, errors.NotFound("deck"))
		return
	}
	c.JSON(http.StatusOK, deck)
}

// ListBadges returns badge metadata for display
// GET /api/v1/content/badges
func (h *ContentHandler) ListBadges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"badges": content.Badges, "total": len(content.Badges)})
}

type roundSetupRequest struct {
	DeckID     string            `json:"deckId" binding:"required"`
	Mode       models.GameMode   `json:"mode" binding:"required"`
	Difficulty models.Difficulty `json:"difficulty" binding:"required"`
}

type blankCard struct {
	CardID    string   `json:"cardId"`
	Reference string   `json:"reference"`
	Display   string   `json:"display"`
	Blanks    []string `json:"blanks"`
	Hints     []string `json:"hints"`
}

// SetupRound prepares one round's material: the timer and hint allowance
// for the difficulty plus mode-specific content (shuffled cards, matching
// tiles, or blanked passages with hints).
// POST /api/v1/game/rounds/setup
func (h *ContentHandler) SetupRound(c *gin.Context) {
	var req roundSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("deckId, mode and difficulty are required"))
		return
	}
	if !req.Mode.Valid() || !req.Difficulty.Valid() {
		middleware.JSONErrorResponse(c, errors.BadRequest("unknown game mode or difficulty"))
		return
	}

	deck, ok := content.DeckByID(req.DeckID)
	if !ok {
		middleware.JSONErrorResponse(c, errors.NotFound("deck"))
		return
	}

	resp := gin.H{
		"deckId":     deck.ID,
		"mode":       req.Mode,
		"difficulty": req.Difficulty,
		"totalTime":  logic.TimerForDifficulty(req.Difficulty),
		"maxHints":   logic.MaxHints(req.Difficulty),
	}

	switch req.Mode {
	case models.ModeMatching:
		references, scriptures := logic.GenerateMatchingPairs(deck.Cards)
		resp["references"] = references
		resp["scriptures"] = scriptures
	case models.ModeFillBlanks:
		cards := make([]blankCard, len(deck.Cards))
		for i, card := range deck.Cards {
			display, blanks := logic.GenerateBlanks(card.Text, req.Difficulty)
			hints := make([]string, len(blanks))
			for j, b := range blanks {
				hints[j] = logic.Hint(b)
			}
			cards[i] = blankCard{
				CardID:    card.ID,
				Reference: card.Reference,
				Display:   display,
				Blanks:    blanks,
				Hints:     hints,
			}
		}
		resp["cards"] = cards
	default: // flashcards
		resp["cards"] = logic.ShuffleCards(deck.Cards)
	}

	c.JSON(http.StatusOK, resp)
}
