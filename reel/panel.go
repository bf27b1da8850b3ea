// Package reel implements the letter panel the player draws words from.
// The panel is a grid of letters; each column is a reel that rotates
// downward, and the last row is the current reel.
package reel

import (
	"strings"
	"unicode"

	"github.com/domino14/reelwords/matrix"
)

type Panel struct {
	m *matrix.Matrix[rune]
}

// NewPanel returns a panel with every cell blank.
func NewPanel(rows, columns int) (*Panel, error) {
	m, err := matrix.New[rune](rows, columns)
	if err != nil {
		return nil, err
	}
	return &Panel{m: m}, nil
}

func (p *Panel) Rows() int    { return p.m.Rows() }
func (p *Panel) Columns() int { return p.m.Columns() }

// AddReel stores the letters of one row. It does nothing if the number of
// letters does not match the number of columns or the row does not exist.
func (p *Panel) AddReel(row int, chars []rune) {
	if len(chars) != p.Columns() || row < 0 || row >= p.Rows() {
		return
	}
	for i, c := range chars {
		p.m.Set(row, i, unicode.ToLower(c))
	}
}

func (p *Panel) ReelByRow(row int) []rune {
	return p.m.Row(row)
}

// CurrentReel is the last row of the panel.
func (p *Panel) CurrentReel() []rune {
	return p.ReelByRow(p.Rows() - 1)
}

// CheckWord tells whether word can be spelled with the letters of the
// current reel, using each letter at most once.
func (p *Panel) CheckWord(word string) bool {
	if strings.TrimSpace(word) == "" {
		return false
	}
	letters := p.CurrentReel()
	for _, r := range word {
		var idx int
		letters, idx = removeLast(letters, unicode.ToLower(r))
		if idx == -1 {
			return false
		}
	}
	return true
}

// ScrollLetters rotates down by one position every column whose letter on
// the current reel was used by word. Repeated letters in the word select
// different columns, rightmost first.
func (p *Panel) ScrollLetters(word string) {
	last := p.Rows() - 1
	for _, col := range lastIndexesOfWord(p.CurrentReel(), word) {
		bottom := p.m.At(last, col)
		for row := last; row > 0; row-- {
			p.m.Set(row, col, p.m.At(row-1, col))
		}
		p.m.Set(0, col, bottom)
	}
}

// Shuffle randomizes the whole panel. A nil randomizer uses the default one.
func (p *Panel) Shuffle(r matrix.Randomizer) {
	p.m.Shuffle(r)
}

func (p *Panel) String() string {
	var sb strings.Builder
	for row := 0; row < p.Rows(); row++ {
		letters := p.ReelByRow(row)
		strs := make([]string, len(letters))
		for i, l := range letters {
			strs[i] = string(l)
		}
		sb.WriteString(strings.Join(strs, "|"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// removeLast removes the last occurrence of r from letters, returning the
// shortened slice and the index r was found at, or -1.
func removeLast(letters []rune, r rune) ([]rune, int) {
	for i := len(letters) - 1; i >= 0; i-- {
		if letters[i] == r {
			return append(letters[:i], letters[i+1:]...), i
		}
	}
	return letters, -1
}

// lastIndexesOfWord returns, for each letter of word in order, the rightmost
// index of reel holding that letter that was not already picked. Letters
// not found are skipped.
func lastIndexesOfWord(reel []rune, word string) []int {
	picked := make(map[int]bool, len(word))
	cols := []int{}
	for _, r := range word {
		r = unicode.ToLower(r)
		for i := len(reel) - 1; i >= 0; i-- {
			if unicode.ToLower(reel[i]) == r && !picked[i] {
				picked[i] = true
				cols = append(cols, i)
				break
			}
		}
	}
	return cols
}
