package lister

// Locate returns the bounds of the sublist containing node: the maximal run
// of items at node's level or deeper, bounded by shallower items or the store
// edges. With onlyVisible the bounds are narrowed to visible items; if none
// inside the run are visible the first and last visible items of the whole
// store are returned instead. Both results are nil when nothing qualifies.
func (l *List[T]) Locate(node *Item[T], onlyVisible bool) (first, last *Item[T]) {
	if !l.owns(node) || len(l.items) == 0 {
		return nil, nil
	}
	ref := node.level
	shallower := func(n *Item[T]) bool { return n.level < ref }

	first, last = l.items[0], l.items[len(l.items)-1]
	if upper := l.FindMatching(node, shallower, Backward, nil); upper != nil {
		first = l.items[upper.idx+1]
	}
	if lower := l.FindMatching(node, shallower, Forward, nil); lower != nil {
		last = l.items[lower.idx-1]
	}
	if !onlyVisible {
		return first, last
	}

	vf := l.FindMatchingOrSelf(first, l.Visible, Forward, l.step(last, Forward))
	if vf != nil {
		return vf, l.FindMatchingOrSelf(last, l.Visible, Backward, l.step(vf, Backward))
	}
	vf, vl := l.FirstVisible(), l.LastVisible()
	if vf == nil {
		return nil, nil
	}
	return vf, vl
}

// SublistAt returns the sublist the item at pos belongs to.
func (l *List[T]) SublistAt(pos any) (first, last *Item[T], err error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, nil, err
	}
	first, last = l.Locate(it, false)
	return first, last, nil
}

// SublistBelow returns the children of the item at pos together with their
// descendants. It fails with NotFoundError if the next item is not deeper.
func (l *List[T]) SublistBelow(pos any) (first, last *Item[T], err error) {
	it, err := l.Resolve(pos)
	if err != nil {
		return nil, nil, err
	}
	next := l.step(it, Forward)
	if next == nil || next.level <= it.level {
		return nil, nil, NotFoundError{What: "sublist below item"}
	}
	first, last = l.Locate(next, false)
	return first, last, nil
}

func (l *List[T]) HasSublistBelow(pos any) bool {
	_, _, err := l.SublistBelow(pos)
	return err == nil
}

// SubtreeEnd returns the last item of the subtree rooted at node (node itself
// when it has no children).
func (l *List[T]) SubtreeEnd(node *Item[T]) *Item[T] {
	if !l.owns(node) {
		return nil
	}
	ref := node.level
	if n := l.FindMatching(node, func(n *Item[T]) bool { return n.level <= ref }, Forward, nil); n != nil {
		return l.items[n.idx-1]
	}
	return l.items[len(l.items)-1]
}
