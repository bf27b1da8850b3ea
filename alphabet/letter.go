package alphabet

import (
	"unicode"

	"github.com/samber/lo"
)

// Letter is a tile value and the points it is worth.
type Letter struct {
	Value rune
	Score int
}

// LetterScores maps a lowercase rune to its letter.
type LetterScores map[rune]Letter

func ScoresFromMap(m map[rune]int) LetterScores {
	ls := make(LetterScores, len(m))
	for r, s := range m {
		r = unicode.ToLower(r)
		ls[r] = Letter{Value: r, Score: s}
	}
	return ls
}

// Score of a single rune; runes that are not in the table are worth 0.
func (ls LetterScores) Score(r rune) int {
	return ls[unicode.ToLower(r)].Score
}

func (ls LetterScores) WordScore(word string) int {
	return lo.SumBy([]rune(word), ls.Score)
}
