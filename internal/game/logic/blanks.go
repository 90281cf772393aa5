package logic

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/raindropoju/scripture-memory/internal/game/models"
)

// BlankPlaceholder replaces hidden words in the display text.
const BlankPlaceholder = "______"

var nonLetters = regexp.MustCompile(`[^a-zA-Z]`)

// skipWords are too common or too short to make meaningful blanks.
var skipWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"is": {}, "it": {}, "be": {}, "as": {}, "do": {}, "no": {},
	"not": {}, "so": {}, "up": {}, "if": {}, "my": {}, "ye": {},
	"he": {}, "me": {},
}

// GenerateBlanks blanks out a difficulty-dependent number of words in the
// passage. It returns the display text with placeholders and the removed
// words in blank-occurrence order.
func GenerateBlanks(text string, difficulty models.Difficulty) (display string, blanks []string) {
	words := strings.Split(text, " ")
	totalWords := len(words)

	var blankCount int
	switch difficulty {
	case models.DifficultyIntermediate:
		blankCount = maxInt(2, totalWords*30/100)
	case models.DifficultyAdvanced:
		blankCount = maxInt(3, totalWords*50/100)
	default: // beginner
		blankCount = maxInt(1, totalWords*15/100)
	}

	var candidates []int
	for i, w := range words {
		clean := strings.ToLower(nonLetters.ReplaceAllString(w, ""))
		if len(clean) <= 2 {
			continue
		}
		if _, skip := skipWords[clean]; skip {
			continue
		}
		candidates = append(candidates, i)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if blankCount > len(candidates) {
		blankCount = len(candidates)
	}
	blankIndices := make(map[int]struct{}, blankCount)
	for _, idx := range candidates[:blankCount] {
		blankIndices[idx] = struct{}{}
	}

	blanks = make([]string, 0, blankCount)
	out := make([]string, len(words))
	for i, word := range words {
		if _, blanked := blankIndices[i]; blanked {
			blanks = append(blanks, word)
			out[i] = BlankPlaceholder
		} else {
			out[i] = word
		}
	}

	return strings.Join(out, " "), blanks
}

// Hint masks a word to first letter + underscores + last letter. Words of
// two letters or fewer are returned unchanged.
func Hint(word string) string {
	if len(word) <= 2 {
		return word
	}
	clean := nonLetters.ReplaceAllString(word, "")
	if len(clean) <= 2 {
		return clean
	}
	return string(clean[0]) + strings.Repeat("_", len(clean)-2) + string(clean[len(clean)-1])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
