package lister

import (
	"slices"
	"strings"
	"testing"
)

// fakeSurface records lines and flags. It does not move the point when lines
// are inserted or deleted, so tests see exactly what the list restores.
type fakeSurface struct {
	lines []string
	flags []Flags
	point int
}

func newFakeSurface() *fakeSurface { return &fakeSurface{point: -1} }

func (s *fakeSurface) InsertLines(at int, lines []string) {
	s.lines = slices.Insert(s.lines, at, lines...)
	s.flags = slices.Insert(s.flags, at, make([]Flags, len(lines))...)
}

func (s *fakeSurface) DeleteLines(at, n int) {
	s.lines = slices.Delete(s.lines, at, at+n)
	s.flags = slices.Delete(s.flags, at, at+n)
}

func (s *fakeSurface) SetFlags(at, n int, f Flags, on bool) {
	for i := at; i < at+n; i++ {
		if on {
			s.flags[i] |= f
		} else {
			s.flags[i] &^= f
		}
	}
}

func (s *fakeSurface) Point() int        { return s.point }
func (s *fakeSurface) SetPoint(line int) { s.point = line }

func (s *fakeSurface) visible() []string {
	var out []string
	for i, ln := range s.lines {
		if !s.flags[i].Hidden() {
			out = append(out, ln)
		}
	}
	return out
}

func newStringList(t *testing.T, cfg Config[string]) (*List[string], *fakeSurface) {
	t.Helper()
	if cfg.Mapper == nil {
		cfg.Mapper = func(s string) []string { return strings.Split(s, "\n") }
	}
	s := newFakeSurface()
	l, err := New[string](s, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l, s
}

func mustInsertNested(t *testing.T, l *List[string], pos any, elems []Element[string], opts ...InsertOption) []*Item[string] {
	t.Helper()
	added, err := l.InsertNested(pos, elems, opts...)
	if err != nil {
		t.Fatalf("InsertNested: %v", err)
	}
	return added
}

// shape renders the store as "A@0 B@1 ...".
func shape(l *List[string]) string {
	parts := make([]string, 0, l.Len())
	for _, it := range l.items {
		parts = append(parts, it.data+"@"+string(rune('0'+it.level)))
	}
	return strings.Join(parts, " ")
}

// checkConsistent verifies the level invariant, the index bookkeeping and
// that the surface shows exactly the rendered blocks in store order.
func checkConsistent(t *testing.T, l *List[string], s *fakeSurface) {
	t.Helper()
	want := []string{}
	if l.cfg.Header != nil {
		want = append(want, l.cfg.Header()...)
	}
	for i, it := range l.items {
		if it.idx != i {
			t.Fatalf("item %q has idx %d, want %d", it.data, it.idx, i)
		}
		if i == 0 && it.level != 0 {
			t.Fatalf("first item %q at level %d", it.data, it.level)
		}
		if i > 0 && it.level > l.items[i-1].level+1 {
			t.Fatalf("level invariant broken at %d: %s", i, shape(l))
		}
		if it.span == 0 {
			t.Fatalf("item %q is not rendered", it.data)
		}
		want = append(want, l.linesFor(it)...)
	}
	if l.cfg.Footer != nil {
		want = append(want, l.cfg.Footer()...)
	}
	if !slices.Equal(s.lines, want) {
		t.Fatalf("surface lines = %q, want %q", s.lines, want)
	}
}
