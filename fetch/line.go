package fetch

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Line is one row of the info column. The set of kinds is closed:
// TitleLine, SeparatorLine and FactLine.
type Line interface {
	line()
}

// TitleLine renders as "user@host".
type TitleLine struct {
	User string
	Host string
}

// SeparatorLine renders as Width dashes.
type SeparatorLine struct {
	Width int
}

// FactLine renders as "label: value".
type FactLine struct {
	Label string
	Value string
}

func (TitleLine) line()     {}
func (SeparatorLine) line() {}
func (FactLine) line()      {}

// Styles colors the user@host and label parts of a Line. Values and the
// separator are always printed unstyled. A nil color prints text unchanged.
type Styles struct {
	Title *color.Color
	Label *color.Color
}

// Text returns the unstyled rendering of l.
func Text(l Line) string {
	switch v := l.(type) {
	case TitleLine:
		return v.User + "@" + v.Host
	case SeparatorLine:
		return strings.Repeat("-", max(v.Width, 0))
	case FactLine:
		return v.Label + ": " + v.Value
	default:
		return ""
	}
}

// Len is the visible width of l, never counting color codes.
func Len(l Line) int {
	if s, ok := l.(SeparatorLine); ok {
		return max(s.Width, 0)
	}
	return runewidth.StringWidth(Text(l))
}

// Styled returns l rendered with s applied.
func Styled(l Line, s Styles) string {
	switch v := l.(type) {
	case TitleLine:
		return paint(s.Title, v.User) + "@" + paint(s.Title, v.Host)
	case SeparatorLine:
		return Text(v)
	case FactLine:
		return paint(s.Label, v.Label) + ": " + v.Value
	default:
		return ""
	}
}

func paint(c *color.Color, text string) string {
	if c == nil || text == "" {
		return text
	}
	return c.Sprint(text)
}
