// Package game holds the state of a single ReelWords game: the panel, the
// score and the words played so far.
package game

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reelwords/matrix"
	"github.com/domino14/reelwords/reel"
)

var (
	ErrBlankUserID = errors.New("user id cannot be blank")
	ErrBlankGameID = errors.New("game id cannot be blank")
	ErrNoPanel     = errors.New("game needs a reel panel")
)

// Word is a played word and the points it earned.
type Word struct {
	Value string
	Score int
}

// Game is the aggregate mutated by every round. Its id never changes, its
// score never drops below zero and played words are only ever appended.
type Game struct {
	id          string
	userID      string
	panel       *reel.Panel
	createdOn   time.Time
	score       int
	playedWords []Word
}

// New starts a brand new game for a user.
func New(userID string, panel *reel.Panel) (*Game, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrBlankUserID
	}
	if panel == nil {
		return nil, ErrNoPanel
	}
	g := &Game{
		id:          newGameID(),
		userID:      userID,
		panel:       panel,
		createdOn:   time.Now(),
		playedWords: []Word{},
	}
	log.Debug().Str("game", g.id).Str("user", userID).Msg("new game")
	return g, nil
}

// Restore rebuilds a game from its persisted state.
func Restore(id, userID string, createdOn time.Time, panel *reel.Panel,
	playedWords []Word, score int) (*Game, error) {

	if strings.TrimSpace(id) == "" {
		return nil, ErrBlankGameID
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrBlankUserID
	}
	if panel == nil {
		return nil, ErrNoPanel
	}
	if score < 0 {
		score = 0
	}
	words := make([]Word, len(playedWords))
	copy(words, playedWords)
	return &Game{
		id:          id,
		userID:      userID,
		panel:       panel,
		createdOn:   createdOn,
		score:       score,
		playedWords: words,
	}, nil
}

func (g *Game) ID() string           { return g.id }
func (g *Game) UserID() string       { return g.userID }
func (g *Game) Panel() *reel.Panel   { return g.panel }
func (g *Game) CreatedOn() time.Time { return g.createdOn }
func (g *Game) Score() int           { return g.score }

// Level is the number of words played.
func (g *Game) Level() int { return len(g.playedWords) }

func (g *Game) PlayedWords() []Word {
	out := make([]Word, len(g.playedWords))
	copy(out, g.playedWords)
	return out
}

// AddScore adds points, never letting the score fall below zero.
func (g *Game) AddScore(points int) {
	g.score += points
	if g.score < 0 {
		g.score = 0
	}
}

// SubtractScore removes points, flooring the score at zero.
func (g *Game) SubtractScore(points int) {
	g.AddScore(-points)
}

// SubmitWord records an accepted word: it scores it, appends it to the
// played words and scrolls the reels the word used.
func (g *Game) SubmitWord(word string, points int) {
	g.AddScore(points)
	g.playedWords = append(g.playedWords, Word{Value: word, Score: points})
	g.panel.ScrollLetters(word)
	log.Debug().Str("game", g.id).Str("word", word).Int("points", points).
		Int("score", g.score).Msg("word submitted")
}

// Shuffle randomizes the panel and takes the penalty off the score.
func (g *Game) Shuffle(r matrix.Randomizer, penalty int) {
	g.panel.Shuffle(r)
	g.SubtractScore(penalty)
	log.Debug().Str("game", g.id).Int("penalty", penalty).Int("score", g.score).Msg("shuffled")
}
