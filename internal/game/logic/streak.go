package logic

import (
	"time"
)

const dateLayout = "2006-01-02"

// Today returns the current UTC calendar date string used for streak
// bookkeeping.
func Today() string {
	return time.Now().UTC().Format(dateLayout)
}

// IsStreakActive reports whether a daily streak is still alive: the last
// played date must be set and at most one whole day in the past (today or
// yesterday). A malformed date is treated as never played.
func IsStreakActive(lastPlayedDate string) bool {
	if lastPlayedDate == "" {
		return false
	}
	last, err := time.Parse(dateLayout, lastPlayedDate)
	if err != nil {
		return false
	}
	diffDays := int(time.Now().UTC().Sub(last).Hours() / 24)
	return diffDays <= 1
}

// NextStreak applies the day-over-day streak rules to the current streak
// given the last played date: same-day replays leave the streak unchanged,
// a still-active streak increments, anything else restarts at 1.
func NextStreak(current int, lastPlayedDate string) int {
	if lastPlayedDate == Today() {
		return current
	}
	if IsStreakActive(lastPlayedDate) {
		return current + 1
	}
	return 1
}
