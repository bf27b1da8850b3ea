package game

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reelwords/testhelpers"
)

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g, err := New("jesse", testhelpers.DefaultPanel())
	is.NoErr(err)
	_, err = uuid.Parse(g.ID())
	is.NoErr(err)
	is.Equal(g.UserID(), "jesse")
	is.Equal(g.Score(), 0)
	is.Equal(g.Level(), 0)
	is.Equal(len(g.PlayedWords()), 0)
	is.True(!g.CreatedOn().IsZero())

	g2, err := New("jesse", testhelpers.DefaultPanel())
	is.NoErr(err)
	is.True(g.ID() != g2.ID())
}

func TestNewGameErrors(t *testing.T) {
	is := is.New(t)
	_, err := New(" ", testhelpers.DefaultPanel())
	is.Equal(err, ErrBlankUserID)
	_, err = New("jesse", nil)
	is.Equal(err, ErrNoPanel)
}

func TestRestore(t *testing.T) {
	is := is.New(t)
	created := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	played := []Word{{"cat", 6}}
	g, err := Restore("id1", "cesar", created, testhelpers.DefaultPanel(), played, 14)
	is.NoErr(err)
	is.Equal(g.ID(), "id1")
	is.Equal(g.CreatedOn(), created)
	is.Equal(g.Score(), 14)
	is.Equal(g.Level(), 1)

	played[0].Value = "dog"
	is.Equal(g.PlayedWords()[0].Value, "cat")

	g, err = Restore("id1", "cesar", created, testhelpers.DefaultPanel(), nil, -3)
	is.NoErr(err)
	is.Equal(g.Score(), 0)

	_, err = Restore("", "cesar", created, testhelpers.DefaultPanel(), nil, 0)
	is.Equal(err, ErrBlankGameID)
	_, err = Restore("id1", "", created, testhelpers.DefaultPanel(), nil, 0)
	is.Equal(err, ErrBlankUserID)
	_, err = Restore("id1", "cesar", created, nil, nil, 0)
	is.Equal(err, ErrNoPanel)
}

func TestScoreNeverNegative(t *testing.T) {
	is := is.New(t)
	g, _ := New("jesse", testhelpers.DefaultPanel())
	g.AddScore(3)
	g.SubtractScore(2)
	is.Equal(g.Score(), 1)
	g.SubtractScore(2)
	is.Equal(g.Score(), 0)
	g.AddScore(-10)
	is.Equal(g.Score(), 0)
}

func TestSubmitWord(t *testing.T) {
	is := is.New(t)
	g, _ := New("jesse", testhelpers.DefaultPanel())
	g.SubmitWord("cat", 6)
	is.Equal(g.Score(), 6)
	is.Equal(g.Level(), 1)
	is.Equal(g.PlayedWords(), []Word{{"cat", 6}})
	is.Equal(string(g.Panel().CurrentReel()), "xyz")
	is.Equal(string(g.Panel().ReelByRow(0)), "tca")
}

type seqRandomizer []int

func (s *seqRandomizer) Between(min, max int) int {
	v := (*s)[0]
	*s = append((*s)[1:], v)
	return v
}

func TestShuffle(t *testing.T) {
	is := is.New(t)
	g, _ := New("jesse", testhelpers.PanelFromRows("ab", "cd"))
	g.AddScore(5)
	r := seqRandomizer{3, 2, 1, 0}
	g.Shuffle(&r, 2)
	is.Equal(g.Score(), 3)
	is.Equal(string(g.Panel().CurrentReel()), "ca")

	g.Shuffle(&r, 4)
	is.Equal(g.Score(), 0)
}

func TestDisplayText(t *testing.T) {
	g, _ := New("jesse", testhelpers.DefaultPanel())
	g.AddScore(12)
	txt := g.ToDisplayText(testhelpers.DefaultScores())
	assert.Contains(t, txt, "Level 0000")
	assert.Contains(t, txt, "Score 0012")
	assert.True(t, strings.HasSuffix(txt, " | T (2) | C (3) | A (1) | "))
}

func TestPlayedWordsText(t *testing.T) {
	g, _ := New("jesse", testhelpers.PanelFromRows("abcdefg", "tcapehn"))
	assert.Contains(t, g.PlayedWordsText(), "(none yet)")
	g.SubmitWord("cat", 6)
	g.SubmitWord("pet", 2)
	g.SubmitWord("hen", 9)
	txt := g.PlayedWordsText()
	hen := strings.Index(txt, "hen (9)")
	cat := strings.Index(txt, "cat (6)")
	pet := strings.Index(txt, "pet (2)")
	assert.True(t, hen >= 0 && hen < cat && cat < pet, txt)
}
