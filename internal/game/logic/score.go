package logic

import (
	"math"
)

// Scoring and experience constants.
const (
	XPPerCombo        = 5
	XPPerGameComplete = 50
	XPPerLevel        = 200

	HintPenalty         = 5
	TimeBonusThreshold  = 0.5 // bonus only when at least half the time remains
	TimeBonusMultiplier = 1.5
	ComboMultiplierStep = 3 // every 3 combo earns an extra bonus step
)

// CalculateScore converts a completed round's raw results into a point score.
// A round with no correct answers scores zero outright, combo and time
// notwithstanding, and the final result is clamped so a hint-heavy round can
// never go negative.
func CalculateScore(correct, total, timeRemaining, totalTime, maxCombo, hintsUsed int) int {
	if correct == 0 {
		return 0
	}

	baseScore := correct * 100

	accuracyBonus := 0
	if total > 0 {
		accuracyBonus = int(math.Round(float64(correct) / float64(total) * 200))
	}

	timeBonus := 0
	if totalTime > 0 {
		timeRatio := float64(timeRemaining) / float64(totalTime)
		if timeRatio >= TimeBonusThreshold {
			timeBonus = int(math.Round(float64(baseScore) * (TimeBonusMultiplier - 1) * timeRatio))
		}
	}

	comboBonus := maxCombo / ComboMultiplierStep * 50
	hintPenalty := hintsUsed * HintPenalty

	score := baseScore + accuracyBonus + timeBonus + comboBonus - hintPenalty
	if score < 0 {
		return 0
	}
	return score
}

// CalculateXP converts a round's score and combo into experience points.
func CalculateXP(score, maxCombo int, isComplete bool) int {
	xp := score / 10
	xp += maxCombo / ComboMultiplierStep * XPPerCombo
	if isComplete {
		xp += XPPerGameComplete
	}
	return xp
}

// LevelFromXP derives the player level from cumulative experience.
// Level 1 starts at zero XP.
func LevelFromXP(xp int) int {
	return xp/XPPerLevel + 1
}

// XPForCurrentLevel reports progress within the current level as
// (current, needed), for display.
func XPForCurrentLevel(xp int) (current, needed int) {
	return xp % XPPerLevel, XPPerLevel
}
