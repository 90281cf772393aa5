package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raindropoju/scripture-memory/internal/game/content"
)

func TestGenerateMatchingPairs_Shape(t *testing.T) {
	deck, ok := content.DeckByID("foundation")
	assert.True(t, ok)

	references, scriptures := GenerateMatchingPairs(deck.Cards)

	assert.Len(t, references, len(deck.Cards))
	assert.Len(t, scriptures, len(deck.Cards))

	for _, item := range scriptures {
		assert.LessOrEqual(t, len(item.Text), matchTextLimit+3, "scripture tile exceeds truncation limit")
	}
}

func TestGenerateMatchingPairs_CardIDMultisetsMatch(t *testing.T) {
	deck, ok := content.DeckByID("salvation")
	assert.True(t, ok)

	references, scriptures := GenerateMatchingPairs(deck.Cards)

	refIDs := make(map[string]int)
	scrIDs := make(map[string]int)
	for _, item := range references {
		refIDs[item.CardID]++
	}
	for _, item := range scriptures {
		scrIDs[item.CardID]++
	}
	assert.Equal(t, refIDs, scrIDs)

	// Each tile carries a side-specific id prefix.
	for _, item := range references {
		assert.Equal(t, "ref-"+item.CardID, item.ID)
	}
	for _, item := range scriptures {
		assert.Equal(t, "scr-"+item.CardID, item.ID)
	}
}

func TestGenerateMatchingPairs_TruncatesLongText(t *testing.T) {
	deck, ok := content.DeckByID("foundation")
	assert.True(t, ok)

	_, scriptures := GenerateMatchingPairs(deck.Cards)

	truncated := 0
	for _, item := range scriptures {
		if len(item.Text) == matchTextLimit+3 {
			assert.Equal(t, "...", item.Text[matchTextLimit:])
			truncated++
		}
	}
	// John 3:16 among others is longer than the tile limit.
	assert.Greater(t, truncated, 0)
}

func TestShuffleCards_PreservesContents(t *testing.T) {
	deck, ok := content.DeckByID("foundation")
	assert.True(t, ok)

	shuffled := ShuffleCards(deck.Cards)
	assert.Len(t, shuffled, len(deck.Cards))

	seen := make(map[string]bool)
	for _, card := range shuffled {
		seen[card.ID] = true
	}
	for _, card := range deck.Cards {
		assert.True(t, seen[card.ID], "card %s missing after shuffle", card.ID)
	}
}
