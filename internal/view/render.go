package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"lister-cli/internal/lister"
)

// Styles controls how Render paints lines.
type Styles struct {
	Normal lipgloss.Style
	Marked lipgloss.Style
	Cursor lipgloss.Style
	// MarkGlyph prefixes marked lines; other lines get the same width of
	// padding so text stays aligned.
	MarkGlyph string
	// Gutter, when set, returns text drawn between the mark column and the
	// line for buffer line i.
	Gutter func(i int) string
}

// PlainStyles renders without colour.
func PlainStyles() Styles {
	return Styles{
		Normal:    lipgloss.NewStyle(),
		Marked:    lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle(),
		MarkGlyph: "*",
	}
}

// Render paints the visible lines truncated to width. It returns the rendered
// text and the row of the point within it, -1 when the point is on a hidden
// line or unset.
func (b *Buffer) Render(width int, st Styles) (string, int) {
	pad := strings.Repeat(" ", lipgloss.Width(st.MarkGlyph))
	rows := make([]string, 0, len(b.lines))
	cursorRow := -1
	for i, ln := range b.lines {
		if ln.Flags.Hidden() {
			continue
		}
		prefix := pad
		style := st.Normal
		if ln.Flags&lister.FlagMarked != 0 {
			prefix = st.MarkGlyph
			style = st.Marked
		}
		if i == b.point {
			style = st.Cursor
			cursorRow = len(rows)
		}
		if st.Gutter != nil {
			prefix += st.Gutter(i)
		}
		text := prefix + ln.Text
		if width > 0 {
			text = xansi.Truncate(text, width, "…")
		}
		rows = append(rows, style.Render(text))
	}
	return strings.Join(rows, "\n"), cursorRow
}

// VisibleIndex maps a buffer line to its row among the visible lines, or -1.
func (b *Buffer) VisibleIndex(line int) int {
	if line < 0 || line >= len(b.lines) || b.lines[line].Flags.Hidden() {
		return -1
	}
	row := 0
	for i := 0; i < line; i++ {
		if !b.lines[i].Flags.Hidden() {
			row++
		}
	}
	return row
}
