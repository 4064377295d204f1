package lister

// SetLevel sets the level of exactly the item at pos and redraws it. The
// caller is responsible for keeping the neighbouring levels consistent.
func (l *List[T]) SetLevel(pos any, level int) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	if level < 0 {
		level = 0
	}
	if it.level == level {
		return nil
	}
	it.level = level
	l.redraw(it)
	l.touch("set-level", 1)
	return nil
}

// Indent moves the item at pos and its subtree one level deeper, making it a
// child of the sibling before it.
func (l *List[T]) Indent(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	prev := l.step(it, Backward)
	if prev == nil || prev.level < it.level {
		return NotFoundError{What: "previous sibling to indent under"}
	}
	return l.shiftSubtree(it, 1)
}

// Outdent moves the item at pos and its subtree one level up.
func (l *List[T]) Outdent(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	if it.level == 0 {
		return NotFoundError{What: "parent to outdent from"}
	}
	return l.shiftSubtree(it, -1)
}

func (l *List[T]) shiftSubtree(it *Item[T], delta int) error {
	end := l.SubtreeEnd(it)
	return l.WithCursor(func() error {
		for i := it.idx; i <= end.idx; i++ {
			l.items[i].level += delta
			l.redraw(l.items[i])
		}
		l.touch("shift", end.idx-it.idx+1)
		return nil
	})
}
