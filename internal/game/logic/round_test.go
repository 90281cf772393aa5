package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

func TestTimerForDifficulty(t *testing.T) {
	assert.Equal(t, 120, TimerForDifficulty(models.DifficultyBeginner))
	assert.Equal(t, 90, TimerForDifficulty(models.DifficultyIntermediate))
	assert.Equal(t, 45, TimerForDifficulty(models.DifficultyAdvanced))
}

func TestMaxHints(t *testing.T) {
	assert.Equal(t, 5, MaxHints(models.DifficultyBeginner))
	assert.Equal(t, 3, MaxHints(models.DifficultyIntermediate))
	assert.Equal(t, 0, MaxHints(models.DifficultyAdvanced), "advanced rounds run without hints")
}
