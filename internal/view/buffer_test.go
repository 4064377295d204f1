package view

import (
	"strings"
	"testing"

	"lister-cli/internal/lister"
)

func TestBuffer_PointFollowsText(t *testing.T) {
	b := NewBuffer()
	b.InsertLines(0, []string{"a", "b", "c"})
	b.SetPoint(1)
	b.InsertLines(0, []string{"x"})
	if b.Point() != 2 {
		t.Fatalf("point after insert above = %d, want 2", b.Point())
	}
	b.InsertLines(3, []string{"y"})
	if b.Point() != 2 {
		t.Fatalf("point after insert below = %d, want 2", b.Point())
	}
	b.DeleteLines(0, 1)
	if b.Point() != 1 || b.Line(1).Text != "b" {
		t.Fatalf("point after delete above = %d (%q)", b.Point(), b.Line(b.Point()).Text)
	}
	b.DeleteLines(1, 1)
	if b.Point() != 1 || b.Line(1).Text != "y" {
		t.Fatalf("point after deleting its line = %d", b.Point())
	}
	b.SetPoint(99)
	if b.Point() != b.Len()-1 {
		t.Fatalf("SetPoint should clamp, got %d", b.Point())
	}
}

func TestBuffer_WithList(t *testing.T) {
	b := NewBuffer()
	l, err := lister.New[string](b, lister.Config[string]{
		Mapper: func(s string) []string { return []string{s} },
		Header: lister.Static("Notes"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.InsertNested(lister.First, []lister.Element[string]{
		lister.Leaf("A"), lister.Nest(lister.Leaves("B", "C")...), lister.Leaf("D"),
	}); err != nil {
		t.Fatal(err)
	}
	if err := l.HideSublistBelow(lister.First); err != nil {
		t.Fatal(err)
	}
	if got := b.Text(); got != "Notes\nA\nD\n" {
		t.Fatalf("Text = %q", got)
	}
	if err := l.SetMark(lister.Last, true); err != nil {
		t.Fatal(err)
	}
	if err := l.Goto(lister.Last); err != nil {
		t.Fatal(err)
	}
	out, row := b.Render(0, PlainStyles())
	if row != 2 {
		t.Fatalf("cursor row = %d, want 2", row)
	}
	if want := " Notes\n A\n*D"; out != want {
		t.Fatalf("Render = %q, want %q", out, want)
	}
	if b.VisibleIndex(2) != -1 || b.VisibleIndex(4) != 2 {
		t.Fatalf("VisibleIndex mismatch")
	}
}

func TestRender_Truncates(t *testing.T) {
	b := NewBuffer()
	b.InsertLines(0, []string{strings.Repeat("x", 20)})
	out, _ := b.Render(8, PlainStyles())
	if got := maxRuneWidth(out); got > 8 {
		t.Fatalf("rendered width %d exceeds 8: %q", got, out)
	}
}

func maxRuneWidth(s string) int {
	w := 0
	for _, ln := range strings.Split(s, "\n") {
		if n := len([]rune(ln)); n > w {
			w = n
		}
	}
	return w
}

func TestRender_Gutter(t *testing.T) {
	b := NewBuffer()
	b.InsertLines(0, []string{"a", "b"})
	st := PlainStyles()
	st.MarkGlyph = ""
	st.Gutter = func(i int) string {
		if i == 0 {
			return "> "
		}
		return "  "
	}
	out, _ := b.Render(0, st)
	if want := "> a\n  b"; out != want {
		t.Fatalf("Render = %q, want %q", out, want)
	}
}

func TestBuffer_LinesIncludesHiddenAndIsACopy(t *testing.T) {
	b := NewBuffer()
	b.InsertLines(0, []string{"a", "b"})
	b.SetFlags(1, 1, lister.FlagFolded, true)

	lines := b.Lines()
	if len(lines) != 2 || lines[1].Text != "b" || !lines[1].Flags.Hidden() {
		t.Fatalf("Lines = %+v", lines)
	}
	if b.Text() != "a\n" {
		t.Fatalf("Text = %q", b.Text())
	}
	lines[0].Text = "changed"
	if b.Line(0).Text != "a" {
		t.Fatalf("Lines shares storage with the buffer")
	}
}
