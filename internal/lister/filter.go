package lister

// SetFilter installs a predicate that hides matching payloads (nil shows
// everything) and re-evaluates every item immediately. Folds are untouched.
func (l *List[T]) SetFilter(hide func(T) bool) {
	l.filter = hide
	for _, it := range l.items {
		inv := hide != nil && hide(it.data)
		if inv == it.invisible {
			continue
		}
		it.invisible = inv
		l.paintFlag(it, FlagFiltered, inv)
	}
}

func (l *List[T]) ClearFilter() { l.SetFilter(nil) }

// Filtered reports whether a filter is active.
func (l *List[T]) Filtered() bool { return l.filter != nil }
