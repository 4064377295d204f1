package lister

import (
	"errors"
	"testing"
)

func TestDelete_RangeAndRepair(t *testing.T) {
	l, s := outline(t)
	l.SetModified(false)

	// Removing B leaves C orphaned two levels below A.
	if err := l.DeleteAt(1); err != nil {
		t.Fatalf("DeleteAt: %v", err)
	}
	if got := shape(l); got != "A@0 C@1 D@1 E@0" {
		t.Fatalf("store = %s", got)
	}
	if !l.Modified() {
		t.Fatalf("delete should mark the list modified")
	}
	checkConsistent(t, l, s)

	if err := l.Delete(Last, 1); err != nil {
		t.Fatalf("Delete reversed bounds: %v", err)
	}
	if got := shape(l); got != "A@0" {
		t.Fatalf("store = %s", got)
	}
	checkConsistent(t, l, s)
}

func TestDelete_ReleasesSpans(t *testing.T) {
	l, _ := outline(t)
	b := l.items[1]
	span := b.Span()
	if err := l.DeleteAt(b); err != nil {
		t.Fatal(err)
	}
	if b.Span() != 0 || b.Index() != -1 {
		t.Fatalf("removed item keeps span %d / index %d", b.Span(), b.Index())
	}
	if _, _, ok := l.SpanRange(span); ok {
		t.Fatalf("released span still resolves")
	}
	var nf NotFoundError
	if err := l.DeleteAt(b); !errors.As(err, &nf) {
		t.Fatalf("deleting a removed item: expected NotFoundError, got %v", err)
	}
}

func TestDelete_NoOpOnMissingBound(t *testing.T) {
	l, _ := outline(t)
	if err := l.Delete(Next, Last); err != nil {
		t.Fatalf("Delete with empty bound: %v", err)
	}
	if l.Len() != 5 {
		t.Fatalf("store changed: %s", shape(l))
	}
}

func TestDeleteAll_KeepsHeaderAndFooter(t *testing.T) {
	l, s := newStringList(t, Config[string]{Header: Static("h"), Footer: Static("f")})
	if _, err := l.Append([]string{"A", "B"}); err != nil {
		t.Fatal(err)
	}
	l.DeleteAll()
	if !l.Empty() || len(s.lines) != 2 || s.lines[0] != "h" || s.lines[1] != "f" {
		t.Fatalf("after DeleteAll lines = %q", s.lines)
	}
	if _, err := l.Append([]string{"C"}); err != nil {
		t.Fatalf("list should stay usable: %v", err)
	}
	checkConsistent(t, l, s)
}

func TestDeleteMarked(t *testing.T) {
	l, s := outline(t)
	for _, i := range []int{0, 3} {
		if err := l.SetMark(i, true); err != nil {
			t.Fatal(err)
		}
	}
	if n := l.DeleteMarked(); n != 2 {
		t.Fatalf("DeleteMarked = %d, want 2", n)
	}
	if got := shape(l); got != "B@0 C@1 E@0" {
		t.Fatalf("store = %s", got)
	}
	checkConsistent(t, l, s)
}

func TestDeleteMarked_AdjacentRuns(t *testing.T) {
	l, s := outline(t)
	l.SetModified(false)
	for _, i := range []int{1, 2, 4} {
		if err := l.SetMark(i, true); err != nil {
			t.Fatal(err)
		}
	}
	if n := l.DeleteMarked(); n != 3 {
		t.Fatalf("DeleteMarked = %d, want 3", n)
	}
	if got := shape(l); got != "A@0 D@1" {
		t.Fatalf("store = %s", got)
	}
	if !l.Modified() {
		t.Fatalf("DeleteMarked should mark the list modified")
	}
	checkConsistent(t, l, s)

	l.SetModified(false)
	if n := l.DeleteMarked(); n != 0 {
		t.Fatalf("second DeleteMarked = %d", n)
	}
	if l.Modified() {
		t.Fatalf("deleting nothing marked the list modified")
	}
}

func TestReplace_KeepsLevelOfBeg(t *testing.T) {
	l, s := outline(t)
	added, err := l.Replace(1, 2, []string{"X", "Y"})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("Replace returned %d items", len(added))
	}
	if got := shape(l); got != "A@0 X@1 Y@1 D@1 E@0" {
		t.Fatalf("store = %s", got)
	}
	checkConsistent(t, l, s)
}

func TestReplace_ChildrenStayUnderReplacement(t *testing.T) {
	l, s := outline(t)
	added, err := l.Replace(1, 1, []string{"X"})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(added) != 1 || added[0].Data() != "X" {
		t.Fatalf("Replace returned %v", added)
	}
	if got := shape(l); got != "A@0 X@1 C@2 D@1 E@0" {
		t.Fatalf("store = %s", got)
	}
	checkConsistent(t, l, s)

	// With nothing to put back the orphans are promoted as on Delete.
	if _, err := l.Replace(1, 1, nil); err != nil {
		t.Fatalf("Replace with no values: %v", err)
	}
	if got := shape(l); got != "A@0 C@1 D@1 E@0" {
		t.Fatalf("store = %s", got)
	}
	checkConsistent(t, l, s)
}

func TestReplace_AtEndOfStore(t *testing.T) {
	l, s := outline(t)
	if _, err := l.ReplaceNested(Last, Last, []Element[string]{Leaf("Z"), Nest(Leaf("z"))}); err != nil {
		t.Fatalf("ReplaceNested: %v", err)
	}
	if got := shape(l); got != "A@0 B@1 C@2 D@1 Z@0 z@1" {
		t.Fatalf("store = %s", got)
	}
	checkConsistent(t, l, s)
}

func TestReplaceData_RedrawsOneItem(t *testing.T) {
	l, s := outline(t)
	if err := l.ReplaceData(2, "C2"); err != nil {
		t.Fatal(err)
	}
	if s.lines[2] != "    C2" {
		t.Fatalf("line = %q", s.lines[2])
	}
	checkConsistent(t, l, s)
}
