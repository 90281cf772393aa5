package models

// GameMode identifies one of the three playable game modes.
type GameMode string

const (
	ModeFlashcards GameMode = "flashcards"
	ModeMatching   GameMode = "matching"
	ModeFillBlanks GameMode = "fill-blanks"
)

// AllModes lists every game mode in a fixed order, used when building
// per-mode progress maps.
var AllModes = []GameMode{ModeFlashcards, ModeMatching, ModeFillBlanks}

// Valid reports whether m is one of the three known game modes.
func (m GameMode) Valid() bool {
	switch m {
	case ModeFlashcards, ModeMatching, ModeFillBlanks:
		return true
	}
	return false
}

// Difficulty controls timer length, hint allowance and blank density.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// CardStatus tracks a single card's learning progress.
type CardStatus string

const (
	StatusNew      CardStatus = "new"
	StatusReview   CardStatus = "review"
	StatusKnown    CardStatus = "known"
	StatusMastered CardStatus = "mastered"
)

// FontSize is a display preference carried in GameSettings.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Valid reports whether f is a known font size.
func (f FontSize) Valid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

// ScriptureCard is one verse reference + text pair, the atomic unit of study.
// Cards are static content and never mutated at runtime.
type ScriptureCard struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	Hint      string `json:"hint"`
	Text      string `json:"text"`
	DeckID    string `json:"deckId"`
}

// Deck is a themed, ordered set of scripture cards gated by an unlock level.
type Deck struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Cards       []ScriptureCard `json:"cards"`
	UnlockLevel int             `json:"unlockLevel"`
}

// CardProgress is the per-card per-user mutable record. It is created lazily
// on first interaction with a card.
type CardProgress struct {
	CardID        string     `json:"cardId"`
	Status        CardStatus `json:"status"`
	TimesReviewed int        `json:"timesReviewed"`
	TimesCorrect  int        `json:"timesCorrect"`
	LastReviewed  int64      `json:"lastReviewed"` // unix milliseconds
}

// ModeProgress aggregates results for one (deck, mode) pair.
type ModeProgress struct {
	BestScore     int `json:"bestScore"`
	BestTime      int `json:"bestTime"`
	GamesPlayed   int `json:"gamesPlayed"`
	TotalCorrect  int `json:"totalCorrect"`
	TotalAttempts int `json:"totalAttempts"`
}

// DeckProgress groups card and mode progress for one deck.
type DeckProgress struct {
	DeckID string                     `json:"deckId"`
	Cards  map[string]*CardProgress   `json:"cards"`
	Modes  map[GameMode]*ModeProgress `json:"modes"`
}

// UserStats is the root progression aggregate: the unit of persistence and
// the unit the progress reducer transforms.
//
// Invariant: VersesMastered and VersesInReview are derived caches; they must
// always equal the counts recomputed by scanning every deck's cards.
type UserStats struct {
	TotalScore          int                      `json:"totalScore"`
	TotalXP             int                      `json:"totalXP"`
	Level               int                      `json:"level"`
	DailyStreak         int                      `json:"dailyStreak"`
	LongestStreak       int                      `json:"longestStreak"`
	LastPlayedDate      string                   `json:"lastPlayedDate"` // "2006-01-02", empty if never played
	GamesPlayed         int                      `json:"gamesPlayed"`
	TotalCorrectAnswers int                      `json:"totalCorrectAnswers"`
	TotalAttempts       int                      `json:"totalAttempts"`
	VersesMastered      int                      `json:"versesMastered"`
	VersesInReview      int                      `json:"versesInReview"`
	DeckProgress        map[string]*DeckProgress `json:"deckProgress"`
	UnlockedBadges      []string                 `json:"unlockedBadges"`
	UnlockedDecks       []string                 `json:"unlockedDecks"`
	ChallengeHighScore  int                      `json:"challengeHighScore"`
}

// GameSettings holds current play preferences, persisted separately from
// UserStats and never touched by a full progress reset.
type GameSettings struct {
	Difficulty     Difficulty `json:"difficulty"`
	SelectedDeckID string     `json:"selectedDeckId"`
	GameMode       GameMode   `json:"gameMode"`
	SoundEnabled   bool       `json:"soundEnabled"`
	FontSize       FontSize   `json:"fontSize"`
}

// Badge is a static achievement definition. The predicate is evaluated
// against UserStats and never stored; only unlocked ids are persisted.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`

	Requirement func(*UserStats) bool `json:"-"`
}

// LeaderboardEntry is one scoreboard row.
type LeaderboardEntry struct {
	Name  string   `json:"name"`
	Score int      `json:"score"`
	Date  string   `json:"date"`
	Mode  GameMode `json:"mode"`
}

// DefaultStats returns a fresh default aggregate: two starter decks
// unlocked, level 1, everything else zero. Callers get independent maps.
func DefaultStats() *UserStats {
	return &UserStats{
		Level:          1,
		DeckProgress:   make(map[string]*DeckProgress),
		UnlockedBadges: []string{},
		UnlockedDecks:  []string{"foundation", "salvation"},
	}
}

// DefaultSettings returns the settings applied at first use.
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Difficulty:     DifficultyBeginner,
		SelectedDeckID: "foundation",
		GameMode:       ModeFlashcards,
		SoundEnabled:   true,
		FontSize:       FontMedium,
	}
}

// Clone returns a deep copy of the aggregate so snapshots handed to callers
// cannot alias the engine's live state.
func (s *UserStats) Clone() *UserStats {
	out := *s
	out.DeckProgress = make(map[string]*DeckProgress, len(s.DeckProgress))
	for id, dp := range s.DeckProgress {
		out.DeckProgress[id] = dp.Clone()
	}
	out.UnlockedBadges = append([]string{}, s.UnlockedBadges...)
	out.UnlockedDecks = append([]string{}, s.UnlockedDecks...)
	return &out
}

// Clone returns a deep copy of one deck's progress.
func (d *DeckProgress) Clone() *DeckProgress {
	out := &DeckProgress{
		DeckID: d.DeckID,
		Cards:  make(map[string]*CardProgress, len(d.Cards)),
		Modes:  make(map[GameMode]*ModeProgress, len(d.Modes)),
	}
	for id, cp := range d.Cards {
		c := *cp
		out.Cards[id] = &c
	}
	for mode, mp := range d.Modes {
		m := *mp
		out.Modes[mode] = &m
	}
	return out
}
