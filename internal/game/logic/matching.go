package logic

import (
	"math/rand"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// matchTextLimit caps scripture text length on matching tiles.
const matchTextLimit = 80

// MatchItem is one tile in the matching game. A left item and right item
// sharing a CardID form the correct pair.
type MatchItem struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	CardID string `json:"cardId"`
}

// GenerateMatchingPairs builds the two tile lists for the matching game:
// shuffled reference labels on one side and shuffled (truncated) scripture
// texts on the other. The sides are shuffled independently so their orders
// are decorrelated.
func GenerateMatchingPairs(cards []models.ScriptureCard) (references, scriptures []MatchItem) {
	references = make([]MatchItem, len(cards))
	scriptures = make([]MatchItem, len(cards))

	for i, c := range cards {
		references[i] = MatchItem{ID: "ref-" + c.ID, Text: c.Reference, CardID: c.ID}

		text := c.Text
		if len(text) > matchTextLimit {
			text = text[:matchTextLimit] + "..."
		}
		scriptures[i] = MatchItem{ID: "scr-" + c.ID, Text: text, CardID: c.ID}
	}

	shuffleItems(references)
	shuffleItems(scriptures)
	return references, scriptures
}

// shuffleItems is an in-place Fisher-Yates shuffle.
func shuffleItems(items []MatchItem) {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// ShuffleCards returns a shuffled copy of the card list, used to order
// flashcard rounds.
func ShuffleCards(cards []models.ScriptureCard) []models.ScriptureCard {
	out := append([]models.ScriptureCard{}, cards...)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
