package reel

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNoReels = errors.New("reels file has no reels")

// Source builds the starting panel of a new game.
type Source interface {
	Create(ctx context.Context, wordSize int) (*Panel, error)
}

// FileSource reads a panel from a text file with one row per line. Letters
// on a line may be separated by spaces.
type FileSource struct {
	Path string
}

func (s *FileSource) Create(ctx context.Context, wordSize int) (*Panel, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := [][]rune{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), " ", "")
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoReels
	}

	panel, err := NewPanel(len(rows), wordSize)
	if err != nil {
		return nil, fmt.Errorf("creating panel: %w", err)
	}
	for i, r := range rows {
		if len(r) != wordSize {
			log.Warn().Int("row", i).Int("letters", len(r)).Int("word-size", wordSize).
				Msg("reel length does not match word size; leaving row blank")
			continue
		}
		panel.AddReel(i, r)
	}
	log.Debug().Int("rows", panel.Rows()).Int("columns", panel.Columns()).Msg("loaded reels")
	return panel, nil
}
