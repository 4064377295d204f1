package lister

// Delete removes the items from beg to end inclusive. If either bound
// addresses nothing, Delete does nothing.
func (l *List[T]) Delete(beg, end any) error {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return err
	}
	l.removeRange(b.idx, e.idx)
	return nil
}

// DeleteAt removes the single item at pos.
func (l *List[T]) DeleteAt(pos any) error {
	return l.Delete(pos, pos)
}

// DeleteAll empties the store. Header, footer and configuration stay.
func (l *List[T]) DeleteAll() {
	if len(l.items) == 0 {
		return
	}
	l.removeRange(0, len(l.items)-1)
	l.folds = nil
	l.refreshFolds()
}

// DeleteMarked removes every marked item and returns how many were removed.
// Adjacent marked items go in one splice.
func (l *List[T]) DeleteMarked() int {
	n := 0
	for i := len(l.items) - 1; i >= 0; i-- {
		if !l.items[i].marked {
			continue
		}
		to := i
		for i > 0 && l.items[i-1].marked {
			i--
		}
		l.spliceOut(i, to)
		l.repairLevels(i)
		n += to - i + 1
	}
	if n > 0 {
		l.refreshFolds()
		l.touch("delete-marked", n)
	}
	return n
}

func (l *List[T]) removeRange(from, to int) {
	l.spliceOut(from, to)
	l.refreshFolds()
	l.repairLevels(from)
	l.touch("delete", to-from+1)
}

// spliceOut unrenders items[from..to] and drops them from the store. Levels
// after the gap are left alone; callers repair them.
func (l *List[T]) spliceOut(from, to int) {
	l.unrenderRange(from, to)
	for i := from; i <= to; i++ {
		l.items[i].idx = -1
	}
	l.items = append(l.items[:from], l.items[to+1:]...)
	l.reindex(from)
}

// Replace swaps the items beg..end for values. The new items take the level
// of beg unless WithLevel overrides it; InsertAfter is ignored.
func (l *List[T]) Replace(beg, end any, values []T, opts ...InsertOption) ([]*Item[T], error) {
	return l.ReplaceNested(beg, end, Leaves(values...), opts...)
}

func (l *List[T]) ReplaceNested(beg, end any, elems []Element[T], opts ...InsertOption) ([]*Item[T], error) {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return nil, err
	}
	o := collectInsertOptions(opts)
	level := b.level
	if o.level != nil {
		level = *o.level
	}
	idx, n := b.idx, e.idx-b.idx+1
	flat := Flatten(elems, 0)

	// Levels after the range are repaired only once the new run is in, so the
	// children of a replaced head stay under its replacement.
	l.spliceOut(b.idx, e.idx)
	if len(flat) == 0 {
		l.refreshFolds()
		l.repairLevels(idx)
		l.touch("delete", n)
		return nil, nil
	}
	return l.insertLeveled(idx, flat, &level), nil
}

// ReplaceData swaps the payload of the item at pos and redraws only that item.
func (l *List[T]) ReplaceData(pos any, v T) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	it.data = v
	it.invisible = l.filter != nil && l.filter(v)
	l.redraw(it)
	l.touch("replace-data", 1)
	return nil
}
