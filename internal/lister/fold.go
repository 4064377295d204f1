package lister

// foldRange is a folded run of items recorded by its endpoints. Items
// inserted between the endpoints later are folded too.
type foldRange[T any] struct {
	beg, end *Item[T]
}

// Fold describes one folded range.
type Fold[T any] struct {
	Beg, End *Item[T]
}

// Folds returns the recorded fold ranges in the order they were created.
func (l *List[T]) Folds() []Fold[T] {
	out := make([]Fold[T], 0, len(l.folds))
	for _, r := range l.folds {
		out = append(out, Fold[T]{Beg: r.beg, End: r.end})
	}
	return out
}

// Folded reports whether it is hidden by a fold, regardless of the filter.
func (l *List[T]) Folded(it *Item[T]) bool { return l.foldSet[it] }

// HideRange folds beg..end.
func (l *List[T]) HideRange(beg, end any) error {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return err
	}
	l.folds = append(l.folds, foldRange[T]{beg: b, end: e})
	l.refreshFolds()
	return nil
}

// ShowRange unfolds exactly beg..end. Folds reaching outside the range keep
// their outside parts.
func (l *List[T]) ShowRange(beg, end any) error {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return err
	}
	kept := make([]foldRange[T], 0, len(l.folds))
	for _, r := range l.folds {
		if r.end.idx < b.idx || r.beg.idx > e.idx {
			kept = append(kept, r)
			continue
		}
		if r.beg.idx < b.idx {
			kept = append(kept, foldRange[T]{beg: r.beg, end: l.items[b.idx-1]})
		}
		if r.end.idx > e.idx {
			kept = append(kept, foldRange[T]{beg: l.items[e.idx+1], end: r.end})
		}
	}
	l.folds = kept
	l.refreshFolds()
	return nil
}

// ToggleRange shows beg..end if its first item is folded and hides it
// otherwise.
func (l *List[T]) ToggleRange(beg, end any) error {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return err
	}
	if l.foldSet[b] {
		return l.ShowRange(b, e)
	}
	return l.HideRange(b, e)
}

func (l *List[T]) HideSublistBelow(pos any) error {
	first, last, err := l.SublistBelow(pos)
	if err != nil {
		return err
	}
	return l.HideRange(first, last)
}

func (l *List[T]) ShowSublistBelow(pos any) error {
	first, last, err := l.SublistBelow(pos)
	if err != nil {
		return err
	}
	return l.ShowRange(first, last)
}

// ToggleSublistBelow folds or unfolds the children of the item at pos.
func (l *List[T]) ToggleSublistBelow(pos any) error {
	first, last, err := l.SublistBelow(pos)
	if err != nil {
		return err
	}
	return l.ToggleRange(first, last)
}

// ShowAll drops every fold.
func (l *List[T]) ShowAll() {
	l.folds = nil
	l.refreshFolds()
}

// Reveal unfolds every fold covering the item at pos, so that it becomes
// reachable by visible navigation. Filtered items stay hidden.
func (l *List[T]) Reveal(pos any) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	var covering []foldRange[T]
	for _, r := range l.folds {
		if r.beg.idx <= it.idx && it.idx <= r.end.idx {
			covering = append(covering, r)
		}
	}
	for _, r := range covering {
		if err := l.ShowRange(r.beg, r.end); err != nil {
			return err
		}
	}
	return nil
}

// FoldDepth replaces all folds so that only items at level depth or above
// stay unfolded. A negative depth shows everything.
func (l *List[T]) FoldDepth(depth int) {
	l.folds = nil
	if depth >= 0 {
		for i := 0; i < len(l.items); {
			it := l.items[i]
			if it.level != depth || i+1 >= len(l.items) || l.items[i+1].level <= depth {
				i++
				continue
			}
			end := l.SubtreeEnd(it)
			l.folds = append(l.folds, foldRange[T]{beg: l.items[i+1], end: end})
			i = end.idx + 1
		}
	}
	l.refreshFolds()
}

// refreshFolds drops ranges that lost an endpoint, recomputes fold membership
// and repaints the items whose membership changed.
func (l *List[T]) refreshFolds() {
	kept := l.folds[:0]
	for _, r := range l.folds {
		if !l.owns(r.beg) || !l.owns(r.end) {
			continue
		}
		if r.beg.idx > r.end.idx {
			r.beg, r.end = r.end, r.beg
		}
		kept = append(kept, r)
	}
	l.folds = kept

	next := make(map[*Item[T]]bool, len(l.foldSet))
	for _, r := range l.folds {
		for i := r.beg.idx; i <= r.end.idx; i++ {
			next[l.items[i]] = true
		}
	}
	old := l.foldSet
	l.foldSet = next
	for it := range old {
		if !next[it] && l.owns(it) {
			l.paintFlag(it, FlagFolded, false)
		}
	}
	for it := range next {
		if !old[it] {
			l.paintFlag(it, FlagFolded, true)
		}
	}
}
