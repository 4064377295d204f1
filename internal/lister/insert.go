package lister

// DetermineLevel picks the level for an item inserted after an item at level
// *prev (nil when there is none) given an optional requested level. The
// result never goes more than one level below the previous item.
func DetermineLevel(prev, hint *int) int {
	if prev == nil {
		return 0
	}
	if hint == nil {
		return *prev
	}
	if *hint > *prev {
		return *prev + 1
	}
	return max(0, *hint)
}

type InsertOption func(*insertOptions)

type insertOptions struct {
	level *int
	after bool
}

// WithLevel requests a level for the inserted items. It is clamped by
// DetermineLevel.
func WithLevel(n int) InsertOption {
	return func(o *insertOptions) { o.level = &n }
}

// InsertAfter places new items right after the resolved position instead of
// before it.
func InsertAfter() InsertOption {
	return func(o *insertOptions) { o.after = true }
}

func collectInsertOptions(opts []InsertOption) insertOptions {
	var o insertOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Insert adds values at pos as a flat run of siblings.
func (l *List[T]) Insert(pos any, values []T, opts ...InsertOption) ([]*Item[T], error) {
	return l.InsertNested(pos, Leaves(values...), opts...)
}

// Append adds values after the last item.
func (l *List[T]) Append(values []T, opts ...InsertOption) ([]*Item[T], error) {
	return l.Insert(Last, values, append(opts, InsertAfter())...)
}

// InsertNested adds a nested list at pos. Groups become children of the value
// before them; order is preserved. On an empty list pos only has to be a
// valid position and the items land at index 0.
func (l *List[T]) InsertNested(pos any, elems []Element[T], opts ...InsertOption) ([]*Item[T], error) {
	o := collectInsertOptions(opts)

	idx := 0
	if len(l.items) > 0 {
		node, err := l.Resolve(pos)
		if err != nil {
			return nil, err
		}
		idx = node.idx
		if o.after {
			idx++
		}
	} else if _, err := l.Lookup(pos); err != nil {
		return nil, err
	}

	flat := Flatten(elems, 0)
	if len(flat) == 0 {
		return nil, nil
	}
	return l.insertLeveled(idx, flat, o.level), nil
}

// insertLeveled splices flat into the store before index idx. Levels in flat
// are relative to the run's base level.
func (l *List[T]) insertLeveled(idx int, flat []Leveled[T], hint *int) []*Item[T] {
	var prev *int
	if idx > 0 {
		p := l.items[idx-1].level
		prev = &p
	}
	base := DetermineLevel(prev, hint)

	added := make([]*Item[T], 0, len(flat))
	for _, lv := range flat {
		want := base + lv.Level
		level := DetermineLevel(prev, &want)
		it := &Item[T]{data: lv.Value, level: level, idx: -1}
		it.invisible = l.filter != nil && l.filter(it.data)
		added = append(added, it)
		prev = &it.level
	}

	tail := append([]*Item[T](nil), l.items[idx:]...)
	l.items = append(append(l.items[:idx], added...), tail...)
	l.reindex(idx)

	l.refreshFolds()
	l.renderRange(idx, idx+len(added)-1)
	l.repairLevels(idx + len(added))
	l.touch("insert", len(added))
	return added
}

// repairLevels restores the tree-as-sequence invariant at store index i after
// a splice: a run that now sits more than one level below its predecessor is
// promoted as a block, keeping its internal shape.
func (l *List[T]) repairLevels(i int) {
	for i < len(l.items) {
		prev := -1
		if i > 0 {
			prev = l.items[i-1].level
		}
		start := l.items[i].level
		if start <= prev+1 {
			return
		}
		delta := start - (prev + 1)
		j := i
		for j < len(l.items) && l.items[j].level >= start {
			l.items[j].level -= delta
			l.redraw(l.items[j])
			j++
		}
		i = j
	}
}
