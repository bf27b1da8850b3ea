// Package session runs a whole ReelWords game against a UI: it loads the
// game data, identifies the player, plays rounds until the player leaves and
// saves the game if asked to.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/reelwords/alphabet"
	"github.com/domino14/reelwords/config"
	"github.com/domino14/reelwords/game"
	"github.com/domino14/reelwords/lexicon"
	"github.com/domino14/reelwords/matrix"
	"github.com/domino14/reelwords/reel"
	"github.com/domino14/reelwords/round"
	"github.com/domino14/reelwords/store"
	"github.com/domino14/reelwords/trie"
)

var errNoInput = errors.New("input closed")

// Deps are the collaborators a session reads from and writes to.
type Deps struct {
	Repository store.Repository
	Dictionary lexicon.Loader
	Scores     alphabet.ScoreSource
	Reels      reel.Source
	// Randomizer shuffles panels. Nil uses the default.
	Randomizer matrix.Randomizer
}

type Session struct {
	ui   UI
	deps Deps

	language  *alphabet.Language
	resolver  *round.Resolver
	wordSize  int
	penalty   int
	retries   int
	saveDelay time.Duration

	game       *game.Game
	dictionary *trie.Trie
	scores     alphabet.LetterScores
}

func New(cfg *config.Config, ui UI, deps Deps) (*Session, error) {
	lang, err := alphabet.Get(cfg.GetString(config.ConfigLanguage))
	if err != nil {
		return nil, err
	}
	s := &Session{
		ui:        ui,
		deps:      deps,
		language:  lang,
		wordSize:  cfg.WordSize(),
		penalty:   cfg.ShufflePenalty(),
		retries:   cfg.SaveRetries(),
		saveDelay: 100 * time.Millisecond,
	}
	s.resolver = round.NewResolver(lang, s)
	return s, nil
}

// Game is the game being played, or nil before one is started.
func (s *Session) Game() *game.Game { return s.game }

// Start plays a full session. It returns nil when the player leaves
// normally, and the error that ended the session otherwise.
func (s *Session) Start(ctx context.Context) error {
	s.ui.Write(StyleBanner, welcomeText())
	s.ui.Write(StyleTitle, "Game instructions:")
	s.ui.Write(StyleNormal, instructionsText())
	s.ui.Write(StyleTitle, "Special commands:")
	s.ui.Write(StyleNormal, helpText(s.penalty))

	err := s.run(ctx)
	if errors.Is(err, errNoInput) {
		err = nil
	}
	if err != nil {
		log.Err(err).Msg("session-ended-with-error")
		s.ui.Write(StyleError, msgUnexpectedError)
	}
	s.ui.Write(StyleBanner, goodbyeText())
	return err
}

func (s *Session) run(ctx context.Context) error {
	if err := s.loadGameData(ctx); err != nil {
		return err
	}
	userID, err := s.askUser()
	if err != nil {
		return err
	}
	if userID == "" {
		// left at the user prompt
		return nil
	}
	if err := s.startGame(ctx, userID); err != nil {
		return err
	}
	return s.playRounds(ctx)
}

// loadGameData reads the dictionary and the score table in parallel.
func (s *Session) loadGameData(ctx context.Context) error {
	log.Info().Int("word-size", s.wordSize).Msg("loading-game-data")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.deps.Dictionary.Dictionary(gctx, s.wordSize)
		if err != nil {
			return fmt.Errorf("loading dictionary: %w", err)
		}
		s.dictionary = t
		return nil
	})
	g.Go(func() error {
		scores, err := s.deps.Scores.All(gctx)
		if err != nil {
			return fmt.Errorf("loading letter scores: %w", err)
		}
		s.scores = scores
		return nil
	})
	return g.Wait()
}

// askUser asks for a user id until a valid one is given. It returns an empty
// id if the player chose to leave.
func (s *Session) askUser() (string, error) {
	for {
		line, err := s.readLine(msgEnterUser)
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case round.ExitKeyword:
			return "", nil
		case round.HelpKeyword:
			s.ui.Write(StyleNormal, helpText(s.penalty))
			continue
		}
		if round.IsKeyword(line) {
			s.ui.Write(StyleError, msgGameOnly)
			continue
		}
		if !s.language.ValidWord(line) {
			s.ui.Write(StyleError, invalidUserText(s.language.Name))
			continue
		}
		return s.language.Lower(line), nil
	}
}

// startGame continues the player's saved game if there is one and they want
// to, or creates a new one.
func (s *Session) startGame(ctx context.Context, userID string) error {
	saved, err := s.deps.Repository.LoadByUser(ctx, userID)
	if err != nil {
		// A saved game that cannot be read should not stop the player from
		// playing a new one.
		log.Err(err).Str("user", userID).Msg("error-loading-saved-game")
		saved = nil
	}
	if saved != nil {
		s.ui.Write(StyleHighlight, "HEY!!")
		cont, err := s.askYesNo(msgAskLoad)
		if err != nil {
			return err
		}
		if cont {
			log.Info().Str("user", userID).Str("game", saved.ID()).Msg("continuing-saved-game")
			s.game = saved
			return nil
		}
	}

	panel, err := s.deps.Reels.Create(ctx, s.wordSize)
	if err != nil {
		return fmt.Errorf("creating reel panel: %w", err)
	}
	panel.Shuffle(s.deps.Randomizer)
	g, err := game.New(userID, panel)
	if err != nil {
		return err
	}
	s.game = g
	log.Info().Str("user", userID).Str("game", g.ID()).Msg("new-game")
	return nil
}

func (s *Session) playRounds(ctx context.Context) error {
	rc := round.Context{Game: s.game, Dictionary: s.dictionary, Scores: s.scores}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.ui.Write(StyleBanner, s.game.ToDisplayText(s.scores))

		var outcome round.Outcome
		line, err := s.readLine(msgEnterWord)
		switch {
		case errors.Is(err, errNoInput):
			outcome = round.Exit{SaveRequested: false}
		case err != nil:
			outcome = round.UnexpectedError{Err: err}
		default:
			outcome = s.resolver.Resolve(line, rc)
		}

		stop, err := s.apply(ctx, outcome)
		if stop {
			return err
		}
	}
}

// apply carries out the side effects of an outcome. It returns true when
// the round loop must stop.
func (s *Session) apply(ctx context.Context, outcome round.Outcome) (bool, error) {
	switch o := outcome.(type) {
	case round.Exit:
		if o.SaveRequested {
			s.save(ctx)
		}
		return true, nil
	case round.ShuffleRequested:
		s.game.Shuffle(s.deps.Randomizer, s.penalty)
		s.ui.Write(StyleError, penaltyText(s.penalty, s.game.Score()))
	case round.ShowWordsRequested:
		s.ui.Write(StyleHighlight, s.game.PlayedWordsText())
	case round.HelpRequested:
		s.ui.Write(StyleNormal, helpText(s.penalty))
	case round.InvalidWord:
		log.Debug().Stringer("reason", o.Reason).Msg("invalid-word")
		s.ui.Write(StyleError, o.Reason.Message(s.language.Name))
	case round.WordSubmitted:
		s.game.SubmitWord(o.Word, o.Points)
		s.ui.Write(StyleSuccess, submittedText(o.Word, o.Points, s.game.Score()))
	case round.UnexpectedError:
		if errors.Is(o.Err, errNoInput) {
			return true, nil
		}
		return true, o.Err
	default:
		panic(fmt.Sprintf("unhandled round outcome %T", outcome))
	}
	return false, nil
}

// save stores the game, retrying failed attempts.
func (s *Session) save(ctx context.Context) {
	err := retry.Do(
		func() error {
			_, err := s.deps.Repository.Save(ctx, s.game)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.retries)),
		retry.Delay(s.saveDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Msg("save-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		log.Err(err).Str("game", s.game.ID()).Msg("game-not-saved")
		s.ui.Write(StyleError, msgNotSaved)
		return
	}
	log.Info().Str("game", s.game.ID()).Int("score", s.game.Score()).Msg("game-saved")
	s.ui.Write(StyleSuccess, msgSaved)
}

// ConfirmSave asks the player whether to save before leaving.
func (s *Session) ConfirmSave() (bool, error) {
	return s.askYesNo(msgAskSave)
}

func (s *Session) askYesNo(question string) (bool, error) {
	for {
		s.ui.Write(StyleNormal, question+"\n - y\n - n")
		line, err := s.readLine("")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		s.ui.Write(StyleError, msgInvalidOption)
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	line, err := s.ui.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", errNoInput
	}
	return line, err
}
