package lister

import (
	"errors"
	"testing"
)

func TestSetLevel_OnlyTouchesOneItem(t *testing.T) {
	l, s := outline(t)
	if err := l.SetLevel(3, 2); err != nil {
		t.Fatal(err)
	}
	if got := shape(l); got != "A@0 B@1 C@2 D@2 E@0" {
		t.Fatalf("store = %s", got)
	}
	if err := l.SetLevel(0, -3); err != nil {
		t.Fatal(err)
	}
	checkConsistent(t, l, s)
}

func TestIndentOutdent_MoveSubtree(t *testing.T) {
	l, s := outline(t)
	if err := l.Indent(3); err != nil {
		t.Fatalf("Indent(D): %v", err)
	}
	if got := shape(l); got != "A@0 B@1 C@2 D@2 E@0" {
		t.Fatalf("after indent = %s", got)
	}
	if err := l.Outdent(1); err != nil {
		t.Fatalf("Outdent(B): %v", err)
	}
	if got := shape(l); got != "A@0 B@0 C@1 D@1 E@0" {
		t.Fatalf("after outdent = %s", got)
	}
	checkConsistent(t, l, s)

	var nf NotFoundError
	if err := l.Indent(First); !errors.As(err, &nf) {
		t.Fatalf("Indent(first): expected NotFoundError, got %v", err)
	}
	if err := l.Outdent(First); !errors.As(err, &nf) {
		t.Fatalf("Outdent(level 0): expected NotFoundError, got %v", err)
	}
	if err := l.Indent(2); !errors.As(err, &nf) {
		t.Fatalf("Indent(first child): expected NotFoundError, got %v", err)
	}
}
