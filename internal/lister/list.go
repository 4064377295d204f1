// Package lister keeps an ordered, level-tagged item store in sync with a
// line-oriented render surface.
//
// The tree is never stored as pointers. Each item carries an integer level and
// structure is recovered by comparing the levels of neighbouring items: an item
// is followed either by its first child (level+1) or by something at the same
// or a shallower level.
//
// A List is not safe for concurrent use.
package lister

import (
	"strings"

	"lister-cli/internal/debug"
)

// Mapper turns a payload into the lines of its rendered block.
type Mapper[T any] func(T) []string

// Lines produces header or footer text. It is called again on every Refresh.
type Lines func() []string

// Static returns a Lines provider for fixed text.
func Static(lines ...string) Lines {
	out := append([]string(nil), lines...)
	return func() []string { return out }
}

type Config[T any] struct {
	Mapper Mapper[T]
	Header Lines
	Footer Lines

	// Indent is repeated once per level in front of every rendered line.
	// Defaults to two spaces.
	Indent string

	// Filter reports whether a payload should be hidden.
	Filter func(T) bool
	// Markable reports whether a payload may be marked. Nil means always.
	Markable func(T) bool
}

// Item is one node of the flattened tree.
type Item[T any] struct {
	data      T
	level     int
	marked    bool
	invisible bool
	span      SpanID

	// idx is the item's offset in the store, -1 once removed.
	idx int
}

func (it *Item[T]) Data() T         { return it.data }
func (it *Item[T]) Level() int      { return it.level }
func (it *Item[T]) Marked() bool    { return it.marked }
func (it *Item[T]) Invisible() bool { return it.invisible }
func (it *Item[T]) Span() SpanID    { return it.span }

// Index returns the item's offset in the full store, or -1 if it was removed.
func (it *Item[T]) Index() int { return it.idx }

type List[T any] struct {
	cfg     Config[T]
	surface Surface

	items []*Item[T]
	spans spanArena

	headerLines int
	footerLines int

	filter   func(T) bool
	markable func(T) bool

	folds   []foldRange[T]
	foldSet map[*Item[T]]bool

	modified bool
}

// New binds a list to its surface and renders header and footer.
func New[T any](s Surface, cfg Config[T]) (*List[T], error) {
	if cfg.Mapper == nil {
		return nil, ConfigurationError{Reason: "no mapper"}
	}
	if s == nil {
		return nil, ConfigurationError{Reason: "no render surface"}
	}
	if cfg.Indent == "" {
		cfg.Indent = "  "
	}
	l := &List[T]{
		cfg:      cfg,
		surface:  s,
		filter:   cfg.Filter,
		markable: cfg.Markable,
		foldSet:  map[*Item[T]]bool{},
	}
	l.renderHeader()
	l.renderFooter()
	return l, nil
}

func (l *List[T]) Len() int       { return len(l.items) }
func (l *List[T]) Empty() bool    { return len(l.items) == 0 }
func (l *List[T]) Modified() bool { return l.modified }

// SetModified sets or clears the modification flag, e.g. after the host saved.
func (l *List[T]) SetModified(v bool) { l.modified = v }

// Items returns the store in order. The slice is a copy; the items are not.
func (l *List[T]) Items() []*Item[T] {
	return append([]*Item[T](nil), l.items...)
}

// Data returns all payloads in store order.
func (l *List[T]) Data() []T {
	out := make([]T, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it.data)
	}
	return out
}

// DataAt returns the payload at pos.
func (l *List[T]) DataAt(pos any) (T, error) {
	it, err := l.Resolve(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return it.data, nil
}

// Walk calls fn for every item from beg to end inclusive (nil means the store
// boundary) until fn returns false.
func (l *List[T]) Walk(beg, end *Item[T], fn func(*Item[T]) bool) {
	from, to := 0, len(l.items)-1
	if beg != nil && l.owns(beg) {
		from = beg.idx
	}
	if end != nil && l.owns(end) {
		to = end.idx
	}
	for i := from; i <= to && i < len(l.items); i++ {
		if !fn(l.items[i]) {
			return
		}
	}
}

// Refresh re-invokes the header and footer providers and redraws every item.
func (l *List[T]) Refresh() {
	l.renderHeader()
	if len(l.items) > 0 {
		l.unrenderRange(0, len(l.items)-1)
		l.renderRange(0, len(l.items)-1)
	}
	l.renderFooter()
}

// Redraw re-renders the single item at pos, e.g. after its payload changed
// in place.
func (l *List[T]) Redraw(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	l.redraw(it)
	return nil
}

// SpanRange resolves a span handle to its [start, end) line range.
func (l *List[T]) SpanRange(id SpanID) (start, end int, ok bool) {
	if id == 0 {
		return 0, 0, false
	}
	line := l.headerLines
	for _, it := range l.items {
		n := l.spans.size(it.span)
		if it.span == id {
			return line, line + n, true
		}
		line += n
	}
	return 0, 0, false
}

// ItemAtLine returns the item whose block covers line, or nil for header,
// footer and out-of-range lines.
func (l *List[T]) ItemAtLine(line int) *Item[T] {
	if line < l.headerLines {
		return nil
	}
	cur := l.headerLines
	for _, it := range l.items {
		n := l.spans.size(it.span)
		if line < cur+n {
			return it
		}
		cur += n
	}
	return nil
}

func (l *List[T]) owns(it *Item[T]) bool {
	return it != nil && it.idx >= 0 && it.idx < len(l.items) && l.items[it.idx] == it
}

func (l *List[T]) reindex(from int) {
	for i := from; i < len(l.items); i++ {
		l.items[i].idx = i
	}
}

// lineOf returns the first surface line of the block at store index idx.
// For idx == len(items) it is the first footer line.
func (l *List[T]) lineOf(idx int) int {
	line := l.headerLines
	for i := 0; i < idx && i < len(l.items); i++ {
		line += l.spans.size(l.items[i].span)
	}
	return line
}

func (l *List[T]) linesFor(it *Item[T]) []string {
	raw := l.cfg.Mapper(it.data)
	if len(raw) == 0 {
		raw = []string{""}
	}
	prefix := strings.Repeat(l.cfg.Indent, it.level)
	out := make([]string, len(raw))
	for i, s := range raw {
		out[i] = prefix + s
	}
	return out
}

// renderAt draws it starting at line and returns the number of lines used.
func (l *List[T]) renderAt(it *Item[T], line int) int {
	lines := l.linesFor(it)
	l.surface.InsertLines(line, lines)
	it.span = l.spans.alloc(len(lines))
	l.paint(it, line, len(lines))
	return len(lines)
}

// renderRange draws the unrendered items items[from..to].
func (l *List[T]) renderRange(from, to int) {
	line := l.lineOf(from)
	for i := from; i <= to; i++ {
		line += l.renderAt(l.items[i], line)
	}
}

// unrenderRange removes the blocks of items[from..to] and releases their spans.
func (l *List[T]) unrenderRange(from, to int) {
	start := l.lineOf(from)
	total := 0
	for i := from; i <= to; i++ {
		it := l.items[i]
		total += l.spans.size(it.span)
		l.spans.release(it.span)
		it.span = 0
	}
	if total > 0 {
		l.surface.DeleteLines(start, total)
	}
}

func (l *List[T]) redraw(it *Item[T]) {
	if !l.owns(it) {
		return
	}
	l.unrenderRange(it.idx, it.idx)
	l.renderRange(it.idx, it.idx)
}

func (l *List[T]) paint(it *Item[T], line, n int) {
	if n == 0 {
		return
	}
	l.surface.SetFlags(line, n, FlagFiltered, it.invisible)
	l.surface.SetFlags(line, n, FlagFolded, l.foldSet[it])
	l.surface.SetFlags(line, n, FlagMarked, it.marked)
}

func (l *List[T]) paintFlag(it *Item[T], f Flags, on bool) {
	if it.span == 0 {
		return
	}
	start, end, ok := l.SpanRange(it.span)
	if !ok || end == start {
		return
	}
	l.surface.SetFlags(start, end-start, f, on)
}

func (l *List[T]) renderHeader() {
	if l.headerLines > 0 {
		l.surface.DeleteLines(0, l.headerLines)
		l.headerLines = 0
	}
	if l.cfg.Header == nil {
		return
	}
	lines := l.cfg.Header()
	l.surface.InsertLines(0, lines)
	l.headerLines = len(lines)
}

func (l *List[T]) renderFooter() {
	start := l.lineOf(len(l.items))
	if l.footerLines > 0 {
		l.surface.DeleteLines(start, l.footerLines)
		l.footerLines = 0
	}
	if l.cfg.Footer == nil {
		return
	}
	lines := l.cfg.Footer()
	l.surface.InsertLines(start, lines)
	l.footerLines = len(lines)
}

func (l *List[T]) touch(op string, n int) {
	l.modified = true
	debug.Log("lister: %s (%d items, store=%d)", op, n, len(l.items))
}
