package content

import (
	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// Badges is the static achievement table. Newly earned badges are reported
// in this declaration order.
//
// The "perfectionist" requirement is intentionally the literal shipped
// predicate, which is looser than its description.
var Badges = []models.Badge{
	{
		ID:          "first-steps",
		Name:        "First Steps",
		Description: "Complete your first game",
		Icon:        "🎯",
		Requirement: func(s *models.UserStats) bool { return s.GamesPlayed >= 1 },
	},
	{
		ID:          "verse-master",
		Name:        "Verse Master",
		Description: "Master 5 verses",
		Icon:        "📜",
		Requirement: func(s *models.UserStats) bool { return s.VersesMastered >= 5 },
	},
	{
		ID:          "speed-memorizer",
		Name:        "Speed Memorizer",
		Description: "Score over 500 in a single game",
		Icon:        "⚡",
		Requirement: func(s *models.UserStats) bool { return s.TotalScore >= 500 },
	},
	{
		ID:          "streak-warrior",
		Name:        "Streak Warrior",
		Description: "Maintain a 3-day streak",
		Icon:        "🔥",
		Requirement: func(s *models.UserStats) bool { return s.DailyStreak >= 3 },
	},
	{
		ID:          "dedicated-learner",
		Name:        "Dedicated Learner",
		Description: "Play 10 games",
		Icon:        "📚",
		Requirement: func(s *models.UserStats) bool { return s.GamesPlayed >= 10 },
	},
	{
		ID:          "perfectionist",
		Name:        "Perfectionist",
		Description: "Achieve 100% accuracy in a round",
		Icon:        "💎",
		Requirement: func(s *models.UserStats) bool { return s.TotalAttempts > 0 && s.TotalCorrectAnswers >= 3 },
	},
	{
		ID:          "scholar",
		Name:        "Scholar",
		Description: "Reach level 5",
		Icon:        "🎓",
		Requirement: func(s *models.UserStats) bool { return s.Level >= 5 },
	},
	{
		ID:          "champion",
		Name:        "Champion",
		Description: "Score over 2000 total points",
		Icon:        "🏆",
		Requirement: func(s *models.UserStats) bool { return s.TotalScore >= 2000 },
	},
	{
		ID:          "streak-legend",
		Name:        "Streak Legend",
		Description: "Maintain a 7-day streak",
		Icon:        "👑",
		Requirement: func(s *models.UserStats) bool { return s.LongestStreak >= 7 },
	},
	{
		ID:          "all-decks",
		Name:        "Explorer",
		Description: "Unlock all 12 decks",
		Icon:        "🗺️",
		Requirement: func(s *models.UserStats) bool { return len(s.UnlockedDecks) >= 12 },
	},
}

// CheckNewBadges returns the ids of badges whose requirement now holds but
// that are not yet unlocked, in declaration order.
func CheckNewBadges(stats *models.UserStats) []string {
	var newBadges []string
	for _, badge := range Badges {
		if !containsString(stats.UnlockedBadges, badge.ID) && badge.Requirement(stats) {
			newBadges = append(newBadges, badge.ID)
		}
	}
	return newBadges
}

// BadgeByID looks up a badge definition.
func BadgeByID(id string) (*models.Badge, bool) {
	for i := range Badges {
		if Badges[i].ID == id {
			return &Badges[i], true
		}
	}
	return nil, false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
