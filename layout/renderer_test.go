package layout

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/timson/pirinfetch/fetch"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func sampleLines() []fetch.Line {
	title := fetch.TitleLine{User: "root", Host: "arch"}
	return []fetch.Line{
		title,
		fetch.SeparatorLine{Width: fetch.Len(title)},
		fetch.FactLine{Label: "os", Value: "Arch x86_64"},
	}
}

func TestRowsLogoLonger(t *testing.T) {
	logo := []string{"/\\", "/  \\", "/____\\", "||", "||"}
	rows := Rows(logo, sampleLines(), PlainPalette())

	want := []string{
		"/\\     root@arch",
		"/  \\   ---------",
		"/____\\ os: Arch x86_64",
		"||     ",
		"||     ",
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsInfoLonger(t *testing.T) {
	logo := []string{"ab", "a"}
	rows := Rows(logo, sampleLines(), PlainPalette())

	want := []string{
		"ab root@arch",
		"a  ---------",
		"   os: Arch x86_64",
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRowsCountAndPadding(t *testing.T) {
	logo := ArchLogo()
	logoWidth := 0
	for _, row := range logo {
		logoWidth = max(logoWidth, len(row))
	}

	for _, n := range []int{0, 3, 7, 12} {
		lines := make([]fetch.Line, 0, n)
		for i := 0; i < n; i++ {
			lines = append(lines, fetch.FactLine{Label: "gpu", Value: strings.Repeat("x", i)})
		}

		rows := Rows(logo, lines, ForcedPalette())
		require.Len(t, rows, max(len(logo), n))

		for i, row := range rows {
			plain := ansi.ReplaceAllString(row, "")
			require.GreaterOrEqual(t, len(plain), logoWidth+1)
			require.Equal(t, " ", plain[logoWidth:logoWidth+1], "row %d", i)
			if i < len(logo) {
				require.Equal(t, logo[i], strings.TrimRight(plain[:logoWidth], " "))
			} else {
				require.Equal(t, strings.Repeat(" ", logoWidth), plain[:logoWidth])
			}
			if i < n {
				require.Equal(t, fetch.Text(lines[i]), plain[logoWidth+1:])
			} else {
				require.Empty(t, plain[logoWidth+1:])
			}
		}
	}
}

func TestRowsEmptyLogo(t *testing.T) {
	rows := Rows(nil, sampleLines(), PlainPalette())
	require.Equal(t, []string{" root@arch", " ---------", " os: Arch x86_64"}, rows)
}

func TestRowsColorDoesNotShiftColumns(t *testing.T) {
	logo := ArchLogo()
	plain := Rows(logo, sampleLines(), PlainPalette())
	colored := Rows(logo, sampleLines(), ForcedPalette())

	require.Len(t, colored, len(plain))
	for i := range plain {
		require.Contains(t, colored[i], "\x1b[")
		require.Equal(t, plain[i], ansi.ReplaceAllString(colored[i], ""))
	}
}

func TestRowsDegradedMemory(t *testing.T) {
	logo := []string{"##", "#"}
	lines := []fetch.Line{fetch.FactLine{Label: "memory", Value: "permission denied"}}
	rows := Rows(logo, lines, PlainPalette())
	require.Equal(t, []string{"## memory: permission denied", "#  "}, rows)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []string{"A"}, sampleLines(), PlainPalette())
	require.NoError(t, err)
	require.Equal(t, "A root@arch\n  ---------\n  os: Arch x86_64\n", buf.String())
}

func TestArchLogoIsFresh(t *testing.T) {
	a := ArchLogo()
	a[0] = "changed"
	require.NotEqual(t, "changed", ArchLogo()[0])
	require.Len(t, ArchLogo(), 7)
}

func TestMaxOf(t *testing.T) {
	require.Equal(t, 0, maxOf[int]())
	require.Equal(t, 9, maxOf(3, 9, 1))
	require.Equal(t, "b", maxOf("a", "b"))
}

func TestPaletteFor(t *testing.T) {
	lines := sampleLines()

	always := Rows(ArchLogo(), lines, PaletteFor("always"))
	never := Rows(ArchLogo(), lines, PaletteFor("never"))
	for i := range never {
		require.NotContains(t, never[i], "\x1b[")
		require.Contains(t, always[i], "\x1b[")
		require.Equal(t, never[i], ansi.ReplaceAllString(always[i], ""))
	}

	auto := PaletteFor("auto")
	require.NotNil(t, auto.Logo)
	require.NotNil(t, auto.Lines.Label)
	require.Nil(t, PaletteFor("never").Logo)
}
