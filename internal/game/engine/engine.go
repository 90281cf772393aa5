// Package engine implements the progression state machine. An Engine owns
// exactly one UserStats/GameSettings pair and transforms it through discrete
// named actions dispatched by the HTTP layer. Actions are serialized by a
// mutex and never perform I/O; persistence happens outside the engine.
package engine

import (
	"sync"
	"time"

	"github.com/raindropoju/scripture-memory/internal/game/content"
	"github.com/raindropoju/scripture-memory/internal/game/logic"
	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// RoundResult carries a completed round into the engine.
type RoundResult struct {
	Score         int
	Correct       int
	Total         int
	TimeRemaining int
	MaxCombo      int
	Mode          models.GameMode
	DeckID        string
}

// Engine owns a single player's progression state.
type Engine struct {
	mu       sync.Mutex
	stats    *models.UserStats
	settings *models.GameSettings

	// newBadges is the transient side-channel from the last completed round,
	// cleared explicitly once the caller has shown it.
	newBadges []string
}

// New returns an engine seeded with default state.
func New() *Engine {
	return &Engine{
		stats:    models.DefaultStats(),
		settings: models.DefaultSettings(),
	}
}

// Init replaces the engine's state wholesale, used when the synchronizer
// finishes loading a session.
func (e *Engine) Init(stats *models.UserStats, settings *models.GameSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats = stats
	e.settings = settings
	e.newBadges = nil
}

// Snapshot returns deep copies of the current state for display and
// persistence.
func (e *Engine) Snapshot() (*models.UserStats, *models.GameSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	settings := *e.settings
	return e.stats.Clone(), &settings
}

// NewBadges returns the badges earned by the most recent round.
func (e *Engine) NewBadges() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.newBadges...)
}

// ClearNewBadges empties the new-badge side-channel.
func (e *Engine) ClearNewBadges() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.newBadges = nil
}

// CompleteGame applies a finished round: streak, score, XP and level, deck
// unlocks, per-deck per-mode aggregates, global totals, then a badge scan
// against the fully updated stats. It returns the newly earned badge ids.
func (e *Engine) CompleteGame(r RoundResult) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.stats
	today := logic.Today()

	if s.LastPlayedDate != today {
		s.DailyStreak = logic.NextStreak(s.DailyStreak, s.LastPlayedDate)
	}
	if s.DailyStreak > s.LongestStreak {
		s.LongestStreak = s.DailyStreak
	}
	s.LastPlayedDate = today

	s.TotalScore += r.Score
	s.TotalXP += logic.CalculateXP(r.Score, r.MaxCombo, true)
	s.Level = logic.LevelFromXP(s.TotalXP)

	// Unlock decks the new level reaches, in catalog declaration order.
	for _, deck := range content.Decks {
		if s.Level >= deck.UnlockLevel && !contains(s.UnlockedDecks, deck.ID) {
			s.UnlockedDecks = append(s.UnlockedDecks, deck.ID)
		}
	}

	dp := e.ensureDeckProgress(r.DeckID)
	mp := ensureModeProgress(dp, r.Mode)
	mp.GamesPlayed++
	mp.TotalCorrect += r.Correct
	mp.TotalAttempts += r.Total
	if r.Score > mp.BestScore {
		mp.BestScore = r.Score
	}
	if r.TimeRemaining > mp.BestTime {
		mp.BestTime = r.TimeRemaining
	}

	s.GamesPlayed++
	s.TotalCorrectAnswers += r.Correct
	s.TotalAttempts += r.Total
	if r.Score > s.ChallengeHighScore {
		s.ChallengeHighScore = r.Score
	}

	newBadges := content.CheckNewBadges(s)
	s.UnlockedBadges = append(s.UnlockedBadges, newBadges...)
	e.newBadges = newBadges

	return append([]string{}, newBadges...)
}

// UpdateCardProgress records one answer on a card. The card record is
// created lazily with default shape. A correct answer promotes: known after
// the third correct answer, review before that. A wrong answer moves a new
// card into review and never downgrades anything else.
func (e *Engine) UpdateCardProgress(cardID, deckID string, correct bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dp := e.ensureDeckProgress(deckID)
	cp, ok := dp.Cards[cardID]
	if !ok {
		cp = &models.CardProgress{CardID: cardID, Status: models.StatusNew}
		dp.Cards[cardID] = cp
	}

	// Status rule keys off the correct-count prior to this answer.
	switch {
	case correct && cp.TimesCorrect >= 2:
		cp.Status = models.StatusKnown
	case correct:
		cp.Status = models.StatusReview
	case cp.Status == models.StatusNew:
		cp.Status = models.StatusReview
	}

	cp.TimesReviewed++
	if correct {
		cp.TimesCorrect++
	}
	cp.LastReviewed = time.Now().UnixMilli()

	e.recountVerses()
}

// MasterCard marks an existing card mastered. Mastering a card the player
// has never seen leaves the state fully unchanged, deck record included.
func (e *Engine) MasterCard(cardID, deckID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dp, ok := e.stats.DeckProgress[deckID]
	if !ok {
		return
	}
	cp, ok := dp.Cards[cardID]
	if !ok {
		return
	}
	cp.Status = models.StatusMastered

	e.recountVerses()
}

// ResetDeckMastered resets every mastered card in the deck back to new with
// zeroed counters. Decks with no progress are a no-op.
func (e *Engine) ResetDeckMastered(deckID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dp, ok := e.stats.DeckProgress[deckID]
	if !ok {
		return
	}
	for _, cp := range dp.Cards {
		if cp.Status == models.StatusMastered {
			cp.Status = models.StatusNew
			cp.TimesReviewed = 0
			cp.TimesCorrect = 0
		}
	}

	e.recountVerses()
}

// ResetProgress discards all stats and returns to the default aggregate.
// Settings are untouched.
func (e *Engine) ResetProgress() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats = models.DefaultStats()
	e.newBadges = nil
}

// Settings mutations are plain field updates with no derived recomputation.

func (e *Engine) SetDifficulty(d models.Difficulty) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Difficulty = d
}

func (e *Engine) SetDeck(deckID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.SelectedDeckID = deckID
}

func (e *Engine) SetGameMode(mode models.GameMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.GameMode = mode
}

func (e *Engine) SetSound(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.SoundEnabled = enabled
}

func (e *Engine) SetFontSize(size models.FontSize) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.FontSize = size
}

// ensureDeckProgress returns the deck's progress record, creating the
// default shape on first touch. Caller holds the lock.
func (e *Engine) ensureDeckProgress(deckID string) *models.DeckProgress {
	if dp, ok := e.stats.DeckProgress[deckID]; ok {
		return dp
	}
	dp := &models.DeckProgress{
		DeckID: deckID,
		Cards:  make(map[string]*models.CardProgress),
		Modes:  make(map[models.GameMode]*models.ModeProgress, len(models.AllModes)),
	}
	for _, mode := range models.AllModes {
		dp.Modes[mode] = &models.ModeProgress{}
	}
	e.stats.DeckProgress[deckID] = dp
	return dp
}

func ensureModeProgress(dp *models.DeckProgress, mode models.GameMode) *models.ModeProgress {
	if mp, ok := dp.Modes[mode]; ok {
		return mp
	}
	mp := &models.ModeProgress{}
	dp.Modes[mode] = mp
	return mp
}

// recountVerses refreshes the cached derived counters. Caller holds the lock.
func (e *Engine) recountVerses() {
	e.stats.VersesMastered, e.stats.VersesInReview = CountVerses(e.stats)
}

// CountVerses recomputes the mastered and in-review counts from scratch
// across every deck's cards. In-review covers both review and known cards.
// Exported so tests can verify the cached fields against a full recount.
func CountVerses(stats *models.UserStats) (mastered, inReview int) {
	for _, dp := range stats.DeckProgress {
		for _, cp := range dp.Cards {
			switch cp.Status {
			case models.StatusMastered:
				mastered++
			case models.StatusReview, models.StatusKnown:
				inReview++
			}
		}
	}
	return mastered, inReview
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
