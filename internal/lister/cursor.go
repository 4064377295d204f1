package lister

// WithCursor runs fn and then puts the surface cursor back on the item it was
// on before, at the same line offset within the item's block. If that item
// was removed the cursor stays wherever fn left it.
func (l *List[T]) WithCursor(fn func() error) error {
	cur := l.Current()
	offset := 0
	if cur != nil {
		if start, _, ok := l.SpanRange(cur.span); ok {
			offset = l.surface.Point() - start
		}
	}
	defer func() {
		if cur != nil && l.owns(cur) {
			l.gotoItem(cur, offset)
		}
	}()
	return fn()
}
