// Package view holds the in-memory line buffer a lister.List draws into and
// renders it for a terminal.
package view

import (
	"slices"
	"strings"

	"lister-cli/internal/lister"
)

// Line is one buffer line and its display flags.
type Line struct {
	Text  string
	Flags lister.Flags
}

// Buffer is a line-oriented lister.Surface. The point follows the text it sits
// on when lines are inserted or deleted above it.
type Buffer struct {
	lines []Line
	point int
}

func NewBuffer() *Buffer { return &Buffer{point: -1} }

func (b *Buffer) InsertLines(at int, lines []string) {
	if len(lines) == 0 {
		return
	}
	add := make([]Line, len(lines))
	for i, s := range lines {
		add[i] = Line{Text: s}
	}
	b.lines = slices.Insert(b.lines, at, add...)
	if b.point >= at && b.point >= 0 {
		b.point += len(lines)
	}
}

func (b *Buffer) DeleteLines(at, n int) {
	if n <= 0 {
		return
	}
	b.lines = slices.Delete(b.lines, at, at+n)
	switch {
	case b.point >= at+n:
		b.point -= n
	case b.point >= at:
		b.point = min(at, len(b.lines)-1)
	}
}

func (b *Buffer) SetFlags(at, n int, f lister.Flags, on bool) {
	for i := at; i < at+n && i < len(b.lines); i++ {
		if on {
			b.lines[i].Flags |= f
		} else {
			b.lines[i].Flags &^= f
		}
	}
}

func (b *Buffer) Point() int { return b.point }

// SetPoint moves the point, clamped to the buffer. -1 clears it.
func (b *Buffer) SetPoint(line int) {
	if line < 0 || len(b.lines) == 0 {
		b.point = -1
		return
	}
	b.point = min(line, len(b.lines)-1)
}

func (b *Buffer) Len() int { return len(b.lines) }

// Line returns line i, or the zero Line when i is out of range.
func (b *Buffer) Line(i int) Line {
	if i < 0 || i >= len(b.lines) {
		return Line{}
	}
	return b.lines[i]
}

// Lines returns a copy of every line, hidden ones included.
func (b *Buffer) Lines() []Line {
	return slices.Clone(b.lines)
}

// Text returns the lines hidden by neither filter nor fold, newline-joined.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, ln := range b.lines {
		if ln.Flags.Hidden() {
			continue
		}
		sb.WriteString(ln.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
