package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	json "github.com/neilotoole/jsoncolor"

	"github.com/timson/pirinfetch/fetch"
	"github.com/timson/pirinfetch/layout"
)

type factEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type factsDocument struct {
	User  string      `json:"user"`
	Host  string      `json:"host"`
	Facts []factEntry `json:"facts"`
}

// useColor reports whether mode enables escapes. In auto mode the decision
// fatih/color made at startup (tty, NO_COLOR, TERM=dumb) stands.
func useColor(mode string) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return !color.NoColor
	}
}

func printSystemInfo(w io.Writer, lines []fetch.Line, mode string) error {
	return layout.Render(w, layout.ArchLogo(), lines, layout.PaletteFor(mode))
}

func newFactsDocument(lines []fetch.Line) factsDocument {
	doc := factsDocument{Facts: []factEntry{}}
	for _, l := range lines {
		switch v := l.(type) {
		case fetch.TitleLine:
			doc.User, doc.Host = v.User, v.Host
		case fetch.FactLine:
			doc.Facts = append(doc.Facts, factEntry{Label: v.Label, Value: v.Value})
		}
	}
	return doc
}

func printJSONSystemInfo(w io.Writer, lines []fetch.Line, colored bool) error {
	enc := json.NewEncoder(w)
	if colored {
		enc.SetColors(json.DefaultColors())
	}
	enc.SetIndent("", "  ")
	if err := enc.Encode(newFactsDocument(lines)); err != nil {
		return fmt.Errorf("failed to encode facts: %w", err)
	}
	return nil
}
