package alphabet

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const EnglishChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var ErrUnknownLanguage = errors.New("unknown language")

// Language is the set of runes words may be written with.
type Language struct {
	Code string
	Name string

	valid map[rune]struct{}
	lower cases.Caser
}

func NewLanguage(code, name string, tag language.Tag, validChars string) *Language {
	l := &Language{
		Code:  code,
		Name:  name,
		valid: make(map[rune]struct{}, len(validChars)),
		lower: cases.Lower(tag),
	}
	for _, r := range validChars {
		l.valid[r] = struct{}{}
	}
	return l
}

var English = NewLanguage("en", "English", language.English, EnglishChars)

var languages = map[string]*Language{
	English.Code: English,
}

// Register makes a language available to Get.
func Register(l *Language) {
	languages[l.Code] = l
}

func Get(code string) (*Language, error) {
	l, ok := languages[strings.ToLower(code)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, code)
	}
	return l, nil
}

func (l *Language) Valid(r rune) bool {
	_, ok := l.valid[r]
	return ok
}

// ValidWord is false if any rune of word is outside the language. The empty
// word is valid.
func (l *Language) ValidWord(word string) bool {
	for _, r := range word {
		if !l.Valid(r) {
			return false
		}
	}
	return true
}

func (l *Language) Lower(s string) string {
	return l.lower.String(s)
}
