package logic

import (
	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// Round timer length in seconds per difficulty tier.
var timerConfig = map[models.Difficulty]int{
	models.DifficultyBeginner:     120,
	models.DifficultyIntermediate: 90,
	models.DifficultyAdvanced:     45,
}

// TimerForDifficulty returns the round duration in seconds.
func TimerForDifficulty(difficulty models.Difficulty) int {
	if t, ok := timerConfig[difficulty]; ok {
		return t
	}
	return timerConfig[models.DifficultyBeginner]
}

// MaxHints returns the hint allowance for a round. Advanced rounds get none.
func MaxHints(difficulty models.Difficulty) int {
	switch difficulty {
	case models.DifficultyIntermediate:
		return 3
	case models.DifficultyAdvanced:
		return 0
	default:
		return 5
	}
}
