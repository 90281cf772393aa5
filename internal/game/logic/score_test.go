package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateScore_NoCorrectAnswers(t *testing.T) {
	// With zero correct answers the clamp keeps the score at zero no matter
	// what the other inputs are.
	assert.Equal(t, 0, CalculateScore(0, 0, 60, 120, 9, 4))
	assert.Equal(t, 0, CalculateScore(0, 10, 0, 0, 0, 0))
	assert.Equal(t, 0, CalculateScore(0, 5, 45, 45, 12, 20))
}

func TestCalculateScore_BaseAndAccuracy(t *testing.T) {
	// 5/5 correct, no time left, no combo, no hints:
	// base 500 + accuracy round(1.0*200) = 700
	assert.Equal(t, 700, CalculateScore(5, 5, 0, 120, 0, 0))
}

func TestCalculateScore_TimeBonusThreshold(t *testing.T) {
	// Below half time remaining there is no time bonus.
	lowTime := CalculateScore(5, 5, 40, 120, 0, 0)
	assert.Equal(t, 700, lowTime)

	// At exactly half time the bonus kicks in: round(500 * 0.5 * 0.5) = 125.
	halfTime := CalculateScore(5, 5, 60, 120, 0, 0)
	assert.Equal(t, 825, halfTime)
}

func TestCalculateScore_ZeroTotalTime(t *testing.T) {
	// totalTime 0 means no time bonus rather than a division by zero.
	assert.Equal(t, 700, CalculateScore(5, 5, 60, 0, 0, 0))
}

func TestCalculateScore_ComboAndHints(t *testing.T) {
	// Combo 7 earns floor(7/3)*50 = 100; 4 hints cost 20.
	assert.Equal(t, 700+100-20, CalculateScore(5, 5, 0, 120, 7, 4))
}

func TestCalculateScore_MonotonicInCorrect(t *testing.T) {
	prev := -1
	for correct := 0; correct <= 10; correct++ {
		score := CalculateScore(correct, 10, 30, 90, 4, 2)
		assert.GreaterOrEqual(t, score, prev, "score should not decrease as correct grows")
		prev = score
	}
}

func TestCalculateXP(t *testing.T) {
	// floor(300/10) + floor(6/3)*5 + 50 = 30 + 10 + 50
	assert.Equal(t, 90, CalculateXP(300, 6, true))
	assert.Equal(t, 40, CalculateXP(300, 6, false))
	assert.Equal(t, 50, CalculateXP(0, 0, true))
}

func TestLevelFromXP_Boundaries(t *testing.T) {
	assert.Equal(t, 1, LevelFromXP(0))
	assert.Equal(t, 1, LevelFromXP(199))
	assert.Equal(t, 2, LevelFromXP(200))
	assert.Equal(t, 3, LevelFromXP(599))
	assert.Equal(t, 4, LevelFromXP(600))
}

func TestLevelFromXP_NonDecreasing(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 2000; xp += 37 {
		level := LevelFromXP(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}

func TestXPForCurrentLevel(t *testing.T) {
	current, needed := XPForCurrentLevel(0)
	assert.Equal(t, 0, current)
	assert.Equal(t, 200, needed)

	current, needed = XPForCurrentLevel(450)
	assert.Equal(t, 50, current)
	assert.Equal(t, 200, needed)
}
