package lister

// SpanID is an opaque handle to the rendered block of one item. The zero value
// means the item is not rendered.
type SpanID uint64

// Flags describe per-line display state pushed to the surface.
type Flags uint8

const (
	// FlagFiltered marks lines hidden by the active filter.
	FlagFiltered Flags = 1 << iota
	// FlagFolded marks lines hidden by an outline fold.
	FlagFolded
	// FlagMarked marks lines of a marked item.
	FlagMarked
)

// Hidden reports whether either visibility channel hides the line.
func (f Flags) Hidden() bool { return f&(FlagFiltered|FlagFolded) != 0 }

// Surface is the line-oriented render target a List draws into. Line indexes
// are zero-based over the whole surface, header and footer included.
type Surface interface {
	InsertLines(at int, lines []string)
	DeleteLines(at, n int)
	SetFlags(at, n int, f Flags, on bool)
	// Point returns the line under the cursor, or -1 when there is none.
	Point() int
	SetPoint(line int)
}

// spanArena hands out span handles and remembers how many lines each covers.
// Line offsets are derived from store order, so nothing here needs shifting
// when blocks above it change.
type spanArena struct {
	next  SpanID
	lines map[SpanID]int
}

func (a *spanArena) alloc(n int) SpanID {
	if a.lines == nil {
		a.lines = map[SpanID]int{}
	}
	a.next++
	a.lines[a.next] = n
	return a.next
}

func (a *spanArena) size(id SpanID) int {
	return a.lines[id]
}

func (a *spanArena) release(id SpanID) {
	delete(a.lines, id)
}
