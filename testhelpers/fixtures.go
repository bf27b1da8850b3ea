// Package testhelpers builds the small fixtures shared by package tests.
package testhelpers

import (
	"github.com/domino14/reelwords/alphabet"
	"github.com/domino14/reelwords/reel"
	"github.com/domino14/reelwords/trie"
)

// DefaultReels is a two row panel whose current reel is "tca".
var DefaultReels = []string{"xyz", "tca"}

var DefaultWords = []string{"pet", "hat", "can", "cat"}

func DefaultPanel() *reel.Panel {
	return PanelFromRows(DefaultReels...)
}

func PanelFromRows(rows ...string) *reel.Panel {
	p, err := reel.NewPanel(len(rows), len([]rune(rows[0])))
	if err != nil {
		panic(err)
	}
	for i, r := range rows {
		p.AddReel(i, []rune(r))
	}
	return p
}

func DefaultDictionary() *trie.Trie {
	return trie.FromWords(DefaultWords)
}

func DefaultScores() alphabet.LetterScores {
	return alphabet.ScoresFromMap(map[rune]int{'c': 3, 'a': 1, 't': 2})
}
