package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dateDaysAgo(days int) string {
	return time.Now().UTC().AddDate(0, 0, -days).Format(dateLayout)
}

func TestIsStreakActive(t *testing.T) {
	assert.False(t, IsStreakActive(""), "never played is not active")
	assert.False(t, IsStreakActive("not-a-date"), "malformed date is treated as never played")
	assert.True(t, IsStreakActive(dateDaysAgo(0)))
	assert.True(t, IsStreakActive(dateDaysAgo(1)))
	assert.False(t, IsStreakActive(dateDaysAgo(2)))
	assert.False(t, IsStreakActive(dateDaysAgo(30)))
}

func TestNextStreak_SameDayIsNoOp(t *testing.T) {
	assert.Equal(t, 7, NextStreak(7, Today()))
	assert.Equal(t, 0, NextStreak(0, Today()))
}

func TestNextStreak_YesterdayIncrements(t *testing.T) {
	assert.Equal(t, 8, NextStreak(7, dateDaysAgo(1)))
	assert.Equal(t, 1, NextStreak(0, dateDaysAgo(1)))
}

func TestNextStreak_GapResets(t *testing.T) {
	assert.Equal(t, 1, NextStreak(7, dateDaysAgo(3)))
	assert.Equal(t, 1, NextStreak(12, ""))
}
