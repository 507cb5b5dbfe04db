package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timson/pirinfetch/fetch"
)

const gutter = " "

// Rows interleaves logo and lines into output rows. The logo column leads and
// is padded to its widest row; the shorter column contributes only padding
// once exhausted.
func Rows(logo []string, lines []fetch.Line, p Palette) []string {
	widths := make([]int, len(logo))
	for i, row := range logo {
		widths[i] = runewidth.StringWidth(row)
	}
	logoWidth := maxOf(widths...)

	n := maxOf(len(logo), len(lines))
	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var cell string
		var cellWidth int
		if i < len(logo) {
			cell, cellWidth = logo[i], widths[i]
		}

		var info fetch.Line = fetch.SeparatorLine{Width: 0}
		if i < len(lines) {
			info = lines[i]
		}

		var b strings.Builder
		b.WriteString(paintLogo(p, cell))
		b.WriteString(strings.Repeat(" ", logoWidth-cellWidth))
		b.WriteString(gutter)
		b.WriteString(fetch.Styled(info, p.Lines))
		rows = append(rows, b.String())
	}
	return rows
}

// Render writes Rows to w, one per line.
func Render(w io.Writer, logo []string, lines []fetch.Line, p Palette) error {
	for _, row := range Rows(logo, lines, p) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func paintLogo(p Palette, row string) string {
	if p.Logo == nil || row == "" {
		return row
	}
	return p.Logo.Sprint(row)
}
