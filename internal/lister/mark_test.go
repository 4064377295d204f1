package lister

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestMarking_PredicateClearsRejectedMarks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, err := New[string](newFakeSurface(), Config[string]{Mapper: func(s string) []string { return []string{s} }})
		if err != nil {
			t.Fatal(err)
		}
		words := rapid.SliceOfN(rapid.SampledFrom([]string{"todo", "done", "wip", "idea"}), 1, 20).Draw(t, "words")
		if _, err := l.Append(words); err != nil {
			t.Fatal(err)
		}
		for i := range words {
			if rapid.Bool().Draw(t, "mark") {
				_ = l.SetMark(i, true)
			}
		}
		before := len(l.MarkedItems())

		keep := rapid.SampledFrom([]string{"todo", "done", "wip", "idea"}).Draw(t, "keep")
		pred := func(s string) bool { return s == keep }
		l.SetMarkable(pred)

		for _, it := range l.MarkedItems() {
			if !pred(it.Data()) {
				t.Fatalf("%q is still marked", it.Data())
			}
		}
		if len(l.MarkedItems()) > before {
			t.Fatalf("setting a predicate must not add marks")
		}
	})
}

func TestMarking_RefusedAndToggle(t *testing.T) {
	l, s := newStringList(t, Config[string]{Markable: func(s string) bool { return !strings.HasPrefix(s, "#") }})
	if _, err := l.Append([]string{"#heading", "task"}); err != nil {
		t.Fatal(err)
	}
	if err := l.SetMark(0, true); err != nil {
		t.Fatalf("refused mark should not error: %v", err)
	}
	if l.items[0].Marked() || l.Markable(0) {
		t.Fatalf("heading must not be markable")
	}
	if err := l.ToggleMark(1); err != nil {
		t.Fatal(err)
	}
	if !l.items[1].Marked() || s.flags[1]&FlagMarked == 0 {
		t.Fatalf("toggle did not mark task")
	}
	if got := l.MarkedData(); len(got) != 1 || got[0] != "task" {
		t.Fatalf("MarkedData = %v", got)
	}
	if n := l.UnmarkAll(); n != 1 || s.flags[1]&FlagMarked != 0 {
		t.Fatalf("UnmarkAll = %d, flags %v", n, s.flags)
	}
	if !l.Modified() {
		t.Fatalf("appending should have modified the list")
	}
}

func TestMarkAll_OnlyVisible(t *testing.T) {
	l, _ := outline(t)
	if err := l.HideSublistBelow(First); err != nil {
		t.Fatal(err)
	}
	if n := l.MarkAll(true); n != 2 {
		t.Fatalf("MarkAll(visible) = %d, want 2", n)
	}
	if err := l.MarkSublist(First, true); err != nil {
		t.Fatal(err)
	}
	if n := len(l.MarkedItems()); n != 5 {
		t.Fatalf("marked = %d, want 5", n)
	}
	l.SetMarkable(NeverMarkable[string])
	if n := len(l.MarkedItems()); n != 0 {
		t.Fatalf("NeverMarkable left %d marks", n)
	}
}

func TestFilter_IndependentOfFolds(t *testing.T) {
	l, s := outline(t)
	if err := l.HideSublistBelow(First); err != nil {
		t.Fatal(err)
	}
	l.SetFilter(func(s string) bool { return s == "C" || s == "E" })
	if !l.Filtered() {
		t.Fatalf("expected an active filter")
	}
	if got := s.visible(); len(got) != 1 || got[0] != "A" {
		t.Fatalf("visible = %q, want [A]", got)
	}

	l.ClearFilter()
	if got := s.visible(); len(got) != 2 || got[1] != "E" {
		t.Fatalf("clearing the filter must not unfold: visible = %q", got)
	}
	if !l.Folded(l.items[2]) || l.items[2].Invisible() {
		t.Fatalf("C should be folded and not filtered")
	}

	l.SetFilter(func(s string) bool { return s == "C" })
	l.ShowAll()
	if got := s.visible(); len(got) != 4 {
		t.Fatalf("unfolding must not clear the filter: visible = %q", got)
	}
}

func TestFilter_NewItemsEvaluated(t *testing.T) {
	l, s := newStringList(t, Config[string]{})
	l.SetFilter(func(s string) bool { return strings.HasPrefix(s, "x") })
	if _, err := l.Append([]string{"a", "xb"}); err != nil {
		t.Fatal(err)
	}
	if !l.items[1].Invisible() || s.flags[1]&FlagFiltered == 0 {
		t.Fatalf("new item not filtered")
	}
	if err := l.ReplaceData(1, "b"); err != nil {
		t.Fatal(err)
	}
	if l.items[1].Invisible() || s.flags[1]&FlagFiltered != 0 {
		t.Fatalf("replaced payload should be re-evaluated")
	}
}
