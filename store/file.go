package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/reelwords/game"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown save format")

// FileStore keeps each user's game in its own file, named after the user.
type FileStore struct {
	dir    string
	format Format
}

func NewFileStore(dir string, format Format) (*FileStore, error) {
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return &FileStore{dir: dir, format: format}, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.dir, userID+"."+string(s.format))
}

func (s *FileStore) marshal(sg savedGame) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(sg)
	}
	return json.MarshalIndent(sg, "", "  ")
}

func (s *FileStore) unmarshal(data []byte, sg *savedGame) error {
	if s.format == FormatYAML {
		return yaml.Unmarshal(data, sg)
	}
	return json.Unmarshal(data, sg)
}

func (s *FileStore) LoadByUser(ctx context.Context, userID string) (*game.Game, error) {
	data, err := os.ReadFile(s.path(userID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading saved game: %w", err)
	}
	var sg savedGame
	if err := s.unmarshal(data, &sg); err != nil {
		return nil, fmt.Errorf("decoding saved game: %w", err)
	}
	return sg.toGame()
}

func (s *FileStore) Save(ctx context.Context, g *game.Game) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := s.marshal(toSaved(g))
	if err != nil {
		return "", fmt.Errorf("encoding game: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	// Write to a temp file first so a failed save never clobbers the
	// previous one.
	tmp, err := os.CreateTemp(s.dir, g.UserID()+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), s.path(g.UserID())); err != nil {
		return "", err
	}
	log.Debug().Str("user", g.UserID()).Str("game", g.ID()).Str("path", s.path(g.UserID())).
		Msg("game saved")
	return g.ID(), nil
}

func (s *FileStore) Close() error { return nil }
