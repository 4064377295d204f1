package lister

func AlwaysMarkable[T any](T) bool { return true }
func NeverMarkable[T any](T) bool  { return false }

// SetMarkable installs the marking predicate (nil means always markable) and
// clears every existing mark the new predicate rejects.
func (l *List[T]) SetMarkable(pred func(T) bool) {
	l.markable = pred
	for _, it := range l.items {
		if it.marked && !l.canMark(it) {
			it.marked = false
			l.paintFlag(it, FlagMarked, false)
		}
	}
}

func (l *List[T]) canMark(it *Item[T]) bool {
	return l.markable == nil || l.markable(it.data)
}

// Markable reports whether the item at pos may currently be marked.
func (l *List[T]) Markable(pos any) bool {
	it, err := l.Resolve(pos)
	if err != nil {
		return false
	}
	return l.canMark(it)
}

// SetMark marks or unmarks the item at pos. Marking requires the item to
// satisfy the marking predicate; unmarking is always allowed. A refused mark
// is not an error.
func (l *List[T]) SetMark(pos any, state bool) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	l.setMark(it, state)
	return nil
}

func (l *List[T]) setMark(it *Item[T], state bool) bool {
	if it.marked == state {
		return false
	}
	if !l.canMark(it) && !it.marked {
		return false
	}
	it.marked = state
	l.paintFlag(it, FlagMarked, state)
	return true
}

func (l *List[T]) ToggleMark(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	l.setMark(it, !it.marked)
	return nil
}

// MarkAll marks every markable item. With onlyVisible, hidden items are
// skipped.
func (l *List[T]) MarkAll(onlyVisible bool) int {
	n := 0
	for _, it := range l.items {
		if onlyVisible && !l.Visible(it) {
			continue
		}
		if l.setMark(it, true) {
			n++
		}
	}
	return n
}

func (l *List[T]) UnmarkAll() int {
	n := 0
	for _, it := range l.items {
		if l.setMark(it, false) {
			n++
		}
	}
	return n
}

// MarkSublist sets the mark of every item from the item at pos to the end of
// its subtree.
func (l *List[T]) MarkSublist(pos any, state bool) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	end := l.SubtreeEnd(it)
	for i := it.idx; i <= end.idx; i++ {
		l.setMark(l.items[i], state)
	}
	return nil
}

func (l *List[T]) MarkedItems() []*Item[T] {
	var out []*Item[T]
	for _, it := range l.items {
		if it.marked {
			out = append(out, it)
		}
	}
	return out
}

func (l *List[T]) MarkedData() []T {
	var out []T
	for _, it := range l.items {
		if it.marked {
			out = append(out, it.data)
		}
	}
	return out
}
