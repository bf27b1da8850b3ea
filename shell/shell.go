// Package shell is the terminal front end of the game, built on readline.
package shell

import (
	"context"
	"io"
	"os"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reelwords/alphabet"
	"github.com/domino14/reelwords/config"
	"github.com/domino14/reelwords/lexicon"
	"github.com/domino14/reelwords/reel"
	"github.com/domino14/reelwords/session"
	"github.com/domino14/reelwords/store"
)

const inputPrompt = "\033[36m -------> \033[0m"

var styleColors = map[session.Style]string{
	session.StyleTitle:     "\033[1m",
	session.StyleBanner:    "\033[36m",
	session.StyleHighlight: "\033[33m",
	session.StyleSuccess:   "\033[32m",
	session.StyleError:     "\033[31m",
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func colorize(style session.Style, msg string) string {
	c, ok := styleColors[style]
	if !ok {
		return msg
	}
	return c + msg + "\033[0m"
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// ShellController implements session.UI on top of a readline instance.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          inputPrompt,
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "*exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

// ReadLine shows prompt, if any, and reads a line. Ctrl-C on an empty line
// and Ctrl-D both close the input.
func (sc *ShellController) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		sc.showMessage(prompt)
	}
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		return line, err
	}
}

func (sc *ShellController) Write(style session.Style, text string) {
	sc.showMessage(colorize(style, text))
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

// Loop plays one session in the terminal, then signals the process to quit.
func (sc *ShellController) Loop(ctx context.Context, sig chan os.Signal) {
	defer sc.l.Close()

	if err := sc.play(ctx); err != nil {
		log.Error().Err(err).Msg("")
	}
	log.Debug().Msgf("Exiting readline loop...")
	sig <- syscall.SIGINT
}

func (sc *ShellController) play(ctx context.Context) error {
	repo, err := store.Open(ctx, sc.cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	sess, err := session.New(sc.cfg, sc, session.Deps{
		Repository: repo,
		Dictionary: lexicon.NewCachedLoader(sc.cfg),
		Scores:     alphabet.NewCachedScoreSource(sc.cfg),
		Reels:      &reel.FileSource{Path: sc.cfg.ReelsPath()},
	})
	if err != nil {
		return err
	}
	return sess.Start(ctx)
}
