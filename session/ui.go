package session

// Style tells the UI how a message should stand out.
type Style int

const (
	StyleNormal Style = iota
	StyleTitle
	StyleBanner
	StyleHighlight
	StyleSuccess
	StyleError
)

// UI is the console the session talks to. ReadLine returns io.EOF when the
// player closes the input.
type UI interface {
	ReadLine(prompt string) (string, error)
	Write(style Style, text string)
}
