// Package round decides what a line typed by the player means for the
// current game. It never changes the game; applying the outcome is up to
// the caller.
package round

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/reelwords/alphabet"
	"github.com/domino14/reelwords/game"
	"github.com/domino14/reelwords/trie"
)

const (
	ExitKeyword      = "*exit"
	ShuffleKeyword   = "*mix"
	ShowWordsKeyword = "*words"
	HelpKeyword      = "*help"
)

// Keywords are the special commands the player can type instead of a word.
var Keywords = []string{ExitKeyword, ShuffleKeyword, ShowWordsKeyword, HelpKeyword}

// IsKeyword tells whether input is one of the special commands.
func IsKeyword(input string) bool {
	return lo.Contains(Keywords, strings.ToLower(strings.TrimSpace(input)))
}

// Prompter asks the player whether to save before leaving.
type Prompter interface {
	ConfirmSave() (bool, error)
}

// Context is everything a round needs to classify input.
type Context struct {
	Game       *game.Game
	Dictionary *trie.Trie
	Scores     alphabet.LetterScores
}

type Resolver struct {
	language *alphabet.Language
	prompter Prompter
}

func NewResolver(language *alphabet.Language, prompter Prompter) *Resolver {
	if language == nil {
		language = alphabet.English
	}
	return &Resolver{language: language, prompter: prompter}
}

func (r *Resolver) Language() *alphabet.Language { return r.language }

// Resolve classifies input into exactly one Outcome.
func (r *Resolver) Resolve(input string, rc Context) (out Outcome) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Str("input", input).Msg("recovered-from-panic")
			out = UnexpectedError{Err: fmt.Errorf("resolving %q: %v", input, p)}
		}
	}()

	word := strings.TrimSpace(input)
	if word == "" {
		return InvalidWord{Reason: EmptyWord}
	}
	switch strings.ToLower(word) {
	case ExitKeyword:
		save, err := r.prompter.ConfirmSave()
		if err != nil {
			return UnexpectedError{Err: fmt.Errorf("confirming save: %w", err)}
		}
		return Exit{SaveRequested: save}
	case ShuffleKeyword:
		return ShuffleRequested{}
	case ShowWordsKeyword:
		return ShowWordsRequested{}
	case HelpKeyword:
		return HelpRequested{}
	}

	if !r.language.ValidWord(word) {
		return InvalidWord{Reason: WrongLanguage}
	}
	word = r.language.Lower(word)
	if !rc.Game.Panel().CheckWord(word) {
		return InvalidWord{Reason: WrongReel}
	}
	if !rc.Dictionary.Search(word) {
		return InvalidWord{Reason: WrongDictionary}
	}
	return WordSubmitted{Word: word, Points: rc.Scores.WordScore(word)}
}
