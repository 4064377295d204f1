package lister

// Symbol is a symbolic position.
type Symbol int

const (
	First Symbol = iota + 1
	Last
	// Point is the item under the surface cursor.
	Point
	// Next and Prev are relative to the item under the cursor.
	Next
	Prev
)

func (s Symbol) String() string {
	switch s {
	case First:
		return "first"
	case Last:
		return "last"
	case Point:
		return "point"
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "unknown"
	}
}

// Lookup maps a position to an item. A position is a Symbol, a zero-based
// index into the full (unfiltered, unfolded) store, or an *Item passed
// through. Lookup returns nil without error when a valid position currently
// addresses nothing, e.g. First on an empty list or Next with no cursor item.
func (l *List[T]) Lookup(pos any) (*Item[T], error) {
	switch p := pos.(type) {
	case Symbol:
		switch p {
		case First:
			if len(l.items) == 0 {
				return nil, nil
			}
			return l.items[0], nil
		case Last:
			if len(l.items) == 0 {
				return nil, nil
			}
			return l.items[len(l.items)-1], nil
		case Point:
			return l.Current(), nil
		case Next:
			return l.step(l.Current(), Forward), nil
		case Prev:
			return l.step(l.Current(), Backward), nil
		}
		return nil, InvalidPositionError{Pos: pos}
	case int:
		if p < 0 || p >= len(l.items) {
			return nil, IndexError{Index: p, Len: len(l.items)}
		}
		return l.items[p], nil
	case *Item[T]:
		if p == nil {
			return nil, nil
		}
		if !l.owns(p) {
			return nil, NotFoundError{What: "item"}
		}
		return p, nil
	default:
		return nil, InvalidPositionError{Pos: pos}
	}
}

// Resolve is Lookup for callers that need an item to exist.
func (l *List[T]) Resolve(pos any) (*Item[T], error) {
	it, err := l.Lookup(pos)
	if err != nil {
		return nil, err
	}
	if it == nil {
		if s, ok := pos.(Symbol); ok {
			return nil, NotFoundError{What: s.String() + " item"}
		}
		return nil, NotFoundError{What: "item"}
	}
	return it, nil
}

// Current returns the item under the surface cursor, if any.
func (l *List[T]) Current() *Item[T] {
	line := l.surface.Point()
	if line < 0 {
		return nil
	}
	return l.ItemAtLine(line)
}

// Goto moves the surface cursor to the first line of the item at pos.
func (l *List[T]) Goto(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	l.gotoItem(it, 0)
	return nil
}

func (l *List[T]) gotoItem(it *Item[T], offset int) {
	start, end, ok := l.SpanRange(it.span)
	if !ok {
		return
	}
	line := start + offset
	if line >= end {
		line = end - 1
	}
	if line < start {
		line = start
	}
	l.surface.SetPoint(line)
}
