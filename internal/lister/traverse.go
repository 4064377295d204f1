package lister

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (l *List[T]) step(it *Item[T], dir Direction) *Item[T] {
	if !l.owns(it) {
		return nil
	}
	i := it.idx + 1
	if dir == Backward {
		i = it.idx - 1
	}
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// FindMatching steps from start (exclusive) in dir and returns the first item
// satisfying pred. Reaching limit, or the end of the store, fails with nil.
func (l *List[T]) FindMatching(start *Item[T], pred func(*Item[T]) bool, dir Direction, limit *Item[T]) *Item[T] {
	for n := l.step(start, dir); n != nil; n = l.step(n, dir) {
		if limit != nil && n == limit {
			return nil
		}
		if pred(n) {
			return n
		}
	}
	return nil
}

// FindMatchingOrSelf is FindMatching but tests start itself first.
func (l *List[T]) FindMatchingOrSelf(start *Item[T], pred func(*Item[T]) bool, dir Direction, limit *Item[T]) *Item[T] {
	if !l.owns(start) {
		return nil
	}
	if limit != nil && start == limit {
		return nil
	}
	if pred(start) {
		return start
	}
	return l.FindMatching(start, pred, dir, limit)
}

// sameLevel skips deeper items and succeeds only if the first item not deeper
// than start sits exactly at start's level.
func (l *List[T]) sameLevel(start *Item[T], dir Direction) *Item[T] {
	ref := start.level
	n := l.FindMatching(start, func(n *Item[T]) bool { return n.level <= ref }, dir, nil)
	if n == nil || n.level != ref {
		return nil
	}
	return n
}

// Visible reports whether it is hidden by neither the filter nor a fold.
func (l *List[T]) Visible(it *Item[T]) bool {
	return !it.invisible && !l.foldSet[it]
}

func dataPred[T any](pred func(T) bool) func(*Item[T]) bool {
	if pred == nil {
		return func(*Item[T]) bool { return true }
	}
	return func(it *Item[T]) bool { return pred(it.data) }
}

// First returns the first item whose payload satisfies pred (nil matches all).
func (l *List[T]) First(pred func(T) bool) *Item[T] {
	if len(l.items) == 0 {
		return nil
	}
	return l.FindMatchingOrSelf(l.items[0], dataPred(pred), Forward, nil)
}

// Last returns the last item whose payload satisfies pred (nil matches all).
func (l *List[T]) Last(pred func(T) bool) *Item[T] {
	if len(l.items) == 0 {
		return nil
	}
	return l.FindMatchingOrSelf(l.items[len(l.items)-1], dataPred(pred), Backward, nil)
}

// Next returns the first item after pos whose payload satisfies pred.
func (l *List[T]) Next(pos any, pred func(T) bool) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	return l.FindMatching(it, dataPred(pred), Forward, nil), nil
}

// Prev returns the nearest item before pos whose payload satisfies pred.
func (l *List[T]) Prev(pos any, pred func(T) bool) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	return l.FindMatching(it, dataPred(pred), Backward, nil), nil
}

func (l *List[T]) FirstVisible() *Item[T] {
	if len(l.items) == 0 {
		return nil
	}
	return l.FindMatchingOrSelf(l.items[0], l.Visible, Forward, nil)
}

func (l *List[T]) LastVisible() *Item[T] {
	if len(l.items) == 0 {
		return nil
	}
	return l.FindMatchingOrSelf(l.items[len(l.items)-1], l.Visible, Backward, nil)
}

// NextVisible returns the next visible item after pos, failing with
// NotFoundError at the end of the list.
func (l *List[T]) NextVisible(pos any) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	n := l.FindMatching(it, l.Visible, Forward, nil)
	if n == nil {
		return nil, NotFoundError{What: "next visible item"}
	}
	return n, nil
}

func (l *List[T]) PrevVisible(pos any) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	n := l.FindMatching(it, l.Visible, Backward, nil)
	if n == nil {
		return nil, NotFoundError{What: "previous visible item"}
	}
	return n, nil
}

func (l *List[T]) NextSibling(pos any) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	n := l.sameLevel(it, Forward)
	if n == nil {
		return nil, NotFoundError{What: "next sibling"}
	}
	return n, nil
}

func (l *List[T]) PrevSibling(pos any) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	n := l.sameLevel(it, Backward)
	if n == nil {
		return nil, NotFoundError{What: "previous sibling"}
	}
	return n, nil
}

// Parent returns the nearest preceding item one level up.
func (l *List[T]) Parent(pos any) (*Item[T], error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, err
	}
	ref := it.level
	n := l.FindMatching(it, func(n *Item[T]) bool { return n.level < ref }, Backward, nil)
	if n == nil {
		return nil, NotFoundError{What: "parent"}
	}
	return n, nil
}
