package round

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reelwords/alphabet"
	"github.com/domino14/reelwords/game"
	"github.com/domino14/reelwords/testhelpers"
)

type fakePrompter struct {
	save  bool
	err   error
	calls int
}

func (f *fakePrompter) ConfirmSave() (bool, error) {
	f.calls++
	return f.save, f.err
}

func defaultContext(t *testing.T) Context {
	t.Helper()
	g, err := game.New("jesse", testhelpers.DefaultPanel())
	if err != nil {
		t.Fatal(err)
	}
	return Context{
		Game:       g,
		Dictionary: testhelpers.DefaultDictionary(),
		Scores:     testhelpers.DefaultScores(),
	}
}

func TestResolve(t *testing.T) {
	type testcase struct {
		input string
		out   Outcome
	}
	cases := []testcase{
		{"", InvalidWord{EmptyWord}},
		{"   ", InvalidWord{EmptyWord}},
		{"*mix", ShuffleRequested{}},
		{"*MIX", ShuffleRequested{}},
		{"*words", ShowWordsRequested{}},
		{" *help ", HelpRequested{}},
		{"c4t", InvalidWord{WrongLanguage}},
		{"pét", InvalidWord{WrongLanguage}},
		{"ca t", InvalidWord{WrongLanguage}},
		{"pet", InvalidWord{WrongReel}},
		{"act", InvalidWord{WrongDictionary}},
		{"cat", WordSubmitted{"cat", 6}},
		{"CAT", WordSubmitted{"cat", 6}},
	}
	r := NewResolver(alphabet.English, &fakePrompter{})
	for _, tc := range cases {
		rc := defaultContext(t)
		assert.Equal(t, tc.out, r.Resolve(tc.input, rc), "input %q", tc.input)
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	is := is.New(t)
	rc := defaultContext(t)
	r := NewResolver(alphabet.English, &fakePrompter{})
	is.Equal(r.Resolve("cat", rc), WordSubmitted{"cat", 6})
	is.Equal(rc.Game.Score(), 0)
	is.Equal(string(rc.Game.Panel().CurrentReel()), "tca")
	is.Equal(r.Resolve("*mix", rc), ShuffleRequested{})
	is.Equal(string(rc.Game.Panel().CurrentReel()), "tca")
}

func TestResolveExit(t *testing.T) {
	is := is.New(t)
	rc := defaultContext(t)

	p := &fakePrompter{save: true}
	is.Equal(NewResolver(nil, p).Resolve("*EXIT", rc), Exit{SaveRequested: true})
	is.Equal(p.calls, 1)

	p = &fakePrompter{save: false}
	is.Equal(NewResolver(nil, p).Resolve("*exit", rc), Exit{SaveRequested: false})

	// the prompter is only asked on exit
	p = &fakePrompter{}
	NewResolver(nil, p).Resolve("cat", rc)
	is.Equal(p.calls, 0)
}

func TestResolvePrompterError(t *testing.T) {
	is := is.New(t)
	boom := errors.New("boom")
	out := NewResolver(nil, &fakePrompter{err: boom}).Resolve("*exit", defaultContext(t))
	ue, ok := out.(UnexpectedError)
	is.True(ok)
	is.True(errors.Is(ue.Err, boom))
}

func TestResolveRecoversPanic(t *testing.T) {
	is := is.New(t)
	rc := defaultContext(t)
	rc.Dictionary = nil
	out := NewResolver(nil, &fakePrompter{}).Resolve("cat", rc)
	_, ok := out.(UnexpectedError)
	is.True(ok)
}

// End to end: the player types "cat" and the caller applies the outcome.
func TestSubmitCat(t *testing.T) {
	is := is.New(t)
	rc := defaultContext(t)
	out := NewResolver(alphabet.English, &fakePrompter{}).Resolve("cat", rc)
	ws, ok := out.(WordSubmitted)
	is.True(ok)
	rc.Game.SubmitWord(ws.Word, ws.Points)
	is.Equal(rc.Game.Score(), 6)
	is.Equal(string(rc.Game.Panel().ReelByRow(0)), "tca")
	is.Equal(string(rc.Game.Panel().CurrentReel()), "xyz")
}

func TestReasonMessage(t *testing.T) {
	is := is.New(t)
	is.Equal(WrongLanguage.Message("English"), "You must use letters of English language.")
	is.Equal(WrongReel.Message("English"), "You must use the letters of the reel.")
	is.Equal(WrongDictionary.String(), "wrong-dictionary")
}

func TestIsKeyword(t *testing.T) {
	is := is.New(t)
	is.True(IsKeyword("*EXIT"))
	is.True(IsKeyword(" *help"))
	is.True(!IsKeyword("exit"))
}
