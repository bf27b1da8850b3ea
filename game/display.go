package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/domino14/reelwords/alphabet"
)

const bannerWidth = 20

func banner(lines ...string) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("*", bannerWidth) + "\n")
	for _, l := range lines {
		sb.WriteString("**** " + l + " ****\n")
	}
	sb.WriteString(strings.Repeat("*", bannerWidth) + "\n")
	return sb.String()
}

// ReelText renders the current reel with the score of each letter, like
// " | T (2) | C (3) | A (1) | ".
func ReelText(reel []rune, scores alphabet.LetterScores) string {
	var sb strings.Builder
	sb.WriteString(" | ")
	for _, l := range reel {
		sb.WriteString(fmt.Sprintf("%c (%d) | ", unicode.ToUpper(l), scores.Score(l)))
	}
	return sb.String()
}

// ToDisplayText turns the current state of the game into a displayable
// string: level, score and the current reel.
func (g *Game) ToDisplayText(scores alphabet.LetterScores) string {
	return banner(
		fmt.Sprintf("Level %04d", g.Level()),
		fmt.Sprintf("Score %04d", g.score),
	) + "\n" + ReelText(g.panel.CurrentReel(), scores)
}

// PlayedWordsText lists the played words, highest scoring first.
func (g *Game) PlayedWordsText() string {
	words := g.PlayedWords()
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Score > words[j].Score
	})
	var sb strings.Builder
	sb.WriteString("Submitted words:\n")
	if len(words) == 0 {
		sb.WriteString(" (none yet)\n")
	}
	for _, w := range words {
		sb.WriteString(fmt.Sprintf(" - %s (%d)\n", w.Value, w.Score))
	}
	return sb.String()
}
