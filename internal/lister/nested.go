package lister

// Element is one entry of a nested list: a single value, or a group whose
// members sit one level deeper than the value preceding it.
type Element[E any] struct {
	Value E
	Group []Element[E]

	isGroup bool
}

func Leaf[E any](v E) Element[E] {
	return Element[E]{Value: v}
}

func Nest[E any](elems ...Element[E]) Element[E] {
	return Element[E]{Group: elems, isGroup: true}
}

// Leaves wraps plain values as a flat element list.
func Leaves[E any](vs ...E) []Element[E] {
	out := make([]Element[E], len(vs))
	for i, v := range vs {
		out[i] = Leaf(v)
	}
	return out
}

func (e Element[E]) IsGroup() bool { return e.isGroup }

// Leveled is a value tagged with its depth.
type Leveled[E any] struct {
	Value E
	Level int
}

// Flatten walks elems depth first. Values take level base, members of a
// group one more than their enclosing list.
func Flatten[E any](elems []Element[E], base int) []Leveled[E] {
	var out []Leveled[E]
	var walk func(es []Element[E], level int)
	walk = func(es []Element[E], level int) {
		for _, e := range es {
			if e.isGroup {
				walk(e.Group, level+1)
				continue
			}
			out = append(out, Leveled[E]{Value: e.Value, Level: level})
		}
	}
	walk(elems, base)
	return out
}

// Unflatten rebuilds a nested list from leveled values. The first value's
// level is the base; every run of deeper values becomes one group. Adjacent
// groups are not preserved: [A [B] [C]] comes back as [A [B C]].
func Unflatten[E any](flat []Leveled[E]) []Element[E] {
	if len(flat) == 0 {
		return nil
	}
	base := flat[0].Level
	var out []Element[E]
	for i := 0; i < len(flat); {
		if flat[i].Level <= base {
			out = append(out, Leaf(flat[i].Value))
			i++
			continue
		}
		j := i
		for j < len(flat) && flat[j].Level > base {
			j++
		}
		out = append(out, Nest(Unflatten(flat[i:j])...))
		i = j
	}
	return out
}

// Pair is a head value with its attached children.
type Pair[E any] struct {
	Head     E
	Children []Pair[E]
}

// Wrap turns a nested list into head/children pairs: a group attaches to the
// value right before it. A group with no preceding value fails with
// UnanchoredSublistError.
func Wrap[E any](elems []Element[E]) ([]Pair[E], error) {
	var out []Pair[E]
	for i, e := range elems {
		if !e.isGroup {
			out = append(out, Pair[E]{Head: e.Value})
			continue
		}
		if len(out) == 0 {
			return nil, UnanchoredSublistError{Index: i}
		}
		children, err := Wrap(e.Group)
		if err != nil {
			return nil, err
		}
		last := &out[len(out)-1]
		last.Children = append(last.Children, children...)
	}
	return out, nil
}

// Unwrap is the inverse of Wrap.
func Unwrap[E any](pairs []Pair[E]) []Element[E] {
	var out []Element[E]
	for _, p := range pairs {
		out = append(out, Leaf(p.Head))
		if len(p.Children) > 0 {
			out = append(out, Nest(Unwrap(p.Children)...))
		}
	}
	return out
}

// NestedData returns the payloads of beg..end as a nested list.
func (l *List[T]) NestedData(beg, end any) ([]Element[T], error) {
	b, e, err := l.resolveRange(beg, end)
	if err != nil || b == nil {
		return nil, err
	}
	flat := make([]Leveled[T], 0, e.idx-b.idx+1)
	for i := b.idx; i <= e.idx; i++ {
		flat = append(flat, Leveled[T]{Value: l.items[i].data, Level: l.items[i].level})
	}
	return Unflatten(flat), nil
}

// resolveRange resolves both bounds and orders them. A bound that addresses
// nothing yields (nil, nil, nil).
func (l *List[T]) resolveRange(beg, end any) (*Item[T], *Item[T], error) {
	b, err := l.Lookup(beg)
	if err != nil {
		return nil, nil, err
	}
	e, err := l.Lookup(end)
	if err != nil {
		return nil, nil, err
	}
	if b == nil || e == nil {
		return nil, nil, nil
	}
	if b.idx > e.idx {
		b, e = e, b
	}
	return b, e, nil
}
