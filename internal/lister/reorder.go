package lister

import "sort"

// Reorder receives the head payloads of one sibling group and returns the new
// order as a permutation of their indexes. Children stay attached to their
// heads; the function never sees them.
type Reorder[T any] func(heads []T) []int

// StableSortByKeyChain sorts by the first comparator, breaking ties with the
// next one, and so on. It runs a stable sort per comparator, last one first.
func StableSortByKeyChain[T any](less ...func(a, b T) bool) Reorder[T] {
	return func(heads []T) []int {
		idx := identity(len(heads))
		for i := len(less) - 1; i >= 0; i-- {
			c := less[i]
			sort.SliceStable(idx, func(a, b int) bool { return c(heads[idx[a]], heads[idx[b]]) })
		}
		return idx
	}
}

// Reverse reverses the order of a sibling group.
func Reverse[T any]() Reorder[T] {
	return func(heads []T) []int {
		n := len(heads)
		idx := make([]int, n)
		for i := range idx {
			idx[i] = n - 1 - i
		}
		return idx
	}
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// ReorderSublist reorders the sublist containing pos. With recursive set,
// every nested sibling group is reordered as well.
func (l *List[T]) ReorderSublist(pos any, fn Reorder[T], recursive bool) error {
	it, err := l.Resolve(pos)
	if err != nil {
		return err
	}
	first, last := l.Locate(it, false)
	return l.reorderRange(first, last, fn, recursive)
}

// SortSublist sorts the sublist containing pos and all groups below it.
func (l *List[T]) SortSublist(pos any, less ...func(a, b T) bool) error {
	return l.ReorderSublist(pos, StableSortByKeyChain(less...), true)
}

// ReverseSublist reverses the top-level order of the sublist containing pos.
// Children keep their order.
func (l *List[T]) ReverseSublist(pos any) error {
	return l.ReorderSublist(pos, Reverse[T](), false)
}

// ReorderRange reorders an explicit range. The range must start at its
// shallowest level, as every range returned by Locate does; otherwise it
// fails with RangeShapeError and the store is left alone.
func (l *List[T]) ReorderRange(beg, end any, fn Reorder[T], recursive bool) error {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return err
	}
	for i := b.idx + 1; i <= e.idx; i++ {
		if lv := l.items[i].level; lv < b.level {
			return RangeShapeError{Index: i, Level: lv, Base: b.level}
		}
	}
	return l.reorderRange(b, e, fn, recursive)
}

func (l *List[T]) reorderRange(first, last *Item[T], fn Reorder[T], recursive bool) error {
	if first == nil || last == nil {
		return nil
	}
	flat := make([]Leveled[*Item[T]], 0, last.idx-first.idx+1)
	for i := first.idx; i <= last.idx; i++ {
		flat = append(flat, Leveled[*Item[T]]{Value: l.items[i], Level: l.items[i].level})
	}
	pairs, err := Wrap(Unflatten(flat))
	if err != nil {
		return err
	}
	pairs, err = reorderPairs(pairs, fn, recursive)
	if err != nil {
		return err
	}

	base := first.level
	from, to := first.idx, last.idx
	order := make([]*Item[T], 0, len(flat))
	for _, lv := range Flatten(Unwrap(pairs), base) {
		lv.Value.level = lv.Level
		order = append(order, lv.Value)
	}
	return l.WithCursor(func() error {
		l.replaceOrder(from, to, order)
		l.touch("reorder", len(order))
		return nil
	})
}

func reorderPairs[T any](pairs []Pair[*Item[T]], fn Reorder[T], recursive bool) ([]Pair[*Item[T]], error) {
	if recursive {
		for i := range pairs {
			if len(pairs[i].Children) == 0 {
				continue
			}
			ch, err := reorderPairs(pairs[i].Children, fn, true)
			if err != nil {
				return nil, err
			}
			pairs[i].Children = ch
		}
	}
	heads := make([]T, len(pairs))
	for i, p := range pairs {
		heads[i] = p.Head.data
	}
	perm := fn(heads)
	if !isPermutation(perm, len(pairs)) {
		return nil, PermutationError{Len: len(pairs), Perm: perm}
	}
	out := make([]Pair[*Item[T]], len(pairs))
	for i, j := range perm {
		out[i] = pairs[j]
	}
	return out, nil
}

func isPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, j := range perm {
		if j < 0 || j >= n || seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}
