package layout

import (
	"github.com/fatih/color"

	"github.com/timson/pirinfetch/fetch"
)

// Palette holds the colors of both columns.
type Palette struct {
	Logo  *color.Color
	Lines fetch.Styles
}

// DefaultPalette colors the logo bright blue and the title and labels green.
// Whether escapes are emitted follows color.NoColor.
func DefaultPalette() Palette {
	green := color.New(color.FgGreen)
	return Palette{
		Logo: color.New(color.FgHiBlue),
		Lines: fetch.Styles{
			Title: green,
			Label: green,
		},
	}
}

// ForcedPalette is DefaultPalette with colors enabled regardless of the terminal.
func ForcedPalette() Palette {
	p := DefaultPalette()
	p.Logo.EnableColor()
	p.Lines.Title.EnableColor()
	p.Lines.Label.EnableColor()
	return p
}

// PlainPalette prints everything without escape sequences.
func PlainPalette() Palette {
	return Palette{}
}

// PaletteFor maps a color mode (auto, always, never) to a Palette. Unknown
// modes behave like auto.
func PaletteFor(mode string) Palette {
	switch mode {
	case "always":
		return ForcedPalette()
	case "never":
		return PlainPalette()
	default:
		return DefaultPalette()
	}
}
