package lister

// MoveUp swaps the item at pos, together with its subtree, with the previous
// sibling's subtree. Moves are refused while a filter is active.
func (l *List[T]) MoveUp(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	if l.filter != nil {
		return ErrFiltered
	}
	prev := l.sameLevel(it, Backward)
	if prev == nil {
		return NotFoundError{What: "previous sibling to move past"}
	}
	return l.swapBlocks(prev, it)
}

// MoveDown swaps the item at pos, together with its subtree, with the next
// sibling's subtree.
func (l *List[T]) MoveDown(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	if l.filter != nil {
		return ErrFiltered
	}
	next := l.sameLevel(it, Forward)
	if next == nil {
		return NotFoundError{What: "next sibling to move past"}
	}
	return l.swapBlocks(it, next)
}

// swapBlocks exchanges the adjacent subtrees rooted at a and b, a first.
func (l *List[T]) swapBlocks(a, b *Item[T]) error {
	aEnd := l.SubtreeEnd(a)
	bEnd := l.SubtreeEnd(b)
	from, to := a.idx, bEnd.idx

	return l.WithCursor(func() error {
		order := make([]*Item[T], 0, to-from+1)
		order = append(order, l.items[b.idx:bEnd.idx+1]...)
		order = append(order, l.items[a.idx:aEnd.idx+1]...)
		l.replaceOrder(from, to, order)
		l.touch("move", len(order))
		return nil
	})
}

// replaceOrder rewrites items[from..to] with the same items in a new order
// and redraws the whole range.
func (l *List[T]) replaceOrder(from, to int, order []*Item[T]) {
	l.unrenderRange(from, to)
	copy(l.items[from:to+1], order)
	l.reindex(from)
	l.refreshFolds()
	l.renderRange(from, to)
}
