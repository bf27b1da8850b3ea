package alphabet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ScoreSource provides the letter score table.
type ScoreSource interface {
	All(ctx context.Context) (LetterScores, error)
}

// FileScoreSource reads scores from a file with one "<letter> <score>" pair
// per line.
type FileScoreSource struct {
	Path string
}

func (s *FileScoreSource) All(ctx context.Context) (LetterScores, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ScanLetterScores(f)
}

func ScanLetterScores(data io.Reader) (LetterScores, error) {
	r := csv.NewReader(data)
	r.Comma = ' '
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	scores := LetterScores{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := strings.TrimSpace(record[0])
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("expected a single letter, got %q", letter)
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, err
		}
		if p < 0 {
			return nil, fmt.Errorf("negative score for %q", letter)
		}
		rn, _ := utf8.DecodeRuneInString(letter)
		rn = unicode.ToLower(rn)
		if _, ok := scores[rn]; ok {
			return nil, errors.New("duplicate letter in score table: " + letter)
		}
		scores[rn] = Letter{Value: rn, Score: p}
	}
	return scores, nil
}
