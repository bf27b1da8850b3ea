package round

import "fmt"

// Outcome is the result of resolving one line of user input. The set of
// outcomes is closed: only this package can implement it.
type Outcome interface {
	isOutcome()
}

// Reason is why a word was rejected.
type Reason int

const (
	EmptyWord Reason = iota
	WrongLanguage
	WrongReel
	WrongDictionary
)

// Message is the text shown to the player for a rejected word.
func (r Reason) Message(languageName string) string {
	switch r {
	case EmptyWord:
		return "Cannot insert an empty word."
	case WrongLanguage:
		return fmt.Sprintf("You must use letters of %s language.", languageName)
	case WrongReel:
		return "You must use the letters of the reel."
	case WrongDictionary:
		return "The word does not exist in the game dictionary."
	}
	return "Invalid word."
}

func (r Reason) String() string {
	switch r {
	case EmptyWord:
		return "empty-word"
	case WrongLanguage:
		return "wrong-language"
	case WrongReel:
		return "wrong-reel"
	case WrongDictionary:
		return "wrong-dictionary"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

type Exit struct {
	SaveRequested bool
}

type InvalidWord struct {
	Reason Reason
}

type WordSubmitted struct {
	Word   string
	Points int
}

type ShuffleRequested struct{}

type ShowWordsRequested struct{}

type HelpRequested struct{}

type UnexpectedError struct {
	Err error
}

func (Exit) isOutcome()               {}
func (InvalidWord) isOutcome()        {}
func (WordSubmitted) isOutcome()      {}
func (ShuffleRequested) isOutcome()   {}
func (ShowWordsRequested) isOutcome() {}
func (HelpRequested) isOutcome()      {}
func (UnexpectedError) isOutcome()    {}
