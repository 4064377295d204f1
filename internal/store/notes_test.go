package store

import (
	"context"
	"errors"
	"testing"
)

func TestAddNote_AppendsAfterSiblings(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	a, err := s.AddNote(ctx, NewNote{Title: "A"})
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	b, err := s.AddNote(ctx, NewNote{Title: "B", Tags: []string{"#work", "work", " "}})
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if !(a.Rank < b.Rank) {
		t.Fatalf("expected rank %q < %q", a.Rank, b.Rank)
	}
	if len(b.Tags) != 1 || b.Tags[0] != "work" {
		t.Fatalf("tags = %v", b.Tags)
	}
	child, err := s.AddNote(ctx, NewNote{ParentID: a.ID, Title: "A.1"})
	if err != nil {
		t.Fatalf("AddNote child: %v", err)
	}
	if child.ParentID == nil || *child.ParentID != a.ID {
		t.Fatalf("parent = %v", child.ParentID)
	}
	if !LooksLikeNoteID(child.ID) {
		t.Fatalf("unexpected id %q", child.ID)
	}

	var nf NotFoundError
	if _, err := s.AddNote(ctx, NewNote{ParentID: "note-missing", Title: "x"}); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, err := s.AddNote(ctx, NewNote{Title: "  "}); err == nil {
		t.Fatalf("expected error for empty title")
	}
}

func TestUpdateAndDeleteNote(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	a, _ := s.AddNote(ctx, NewNote{Title: "A"})
	c, _ := s.AddNote(ctx, NewNote{ParentID: a.ID, Title: "child"})
	_, _ = s.AddNote(ctx, NewNote{ParentID: c.ID, Title: "grandchild"})
	other, _ := s.AddNote(ctx, NewNote{Title: "other"})

	a.Title = "A2"
	a.Done = true
	a.Body = "body"
	if _, err := s.UpdateNote(ctx, a); err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	got, err := s.FindNote(ctx, a.ID)
	if err != nil {
		t.Fatalf("FindNote: %v", err)
	}
	if got.Title != "A2" || !got.Done || got.Body != "body" {
		t.Fatalf("note = %+v", got)
	}

	n, err := s.DeleteNote(ctx, a.ID)
	if err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if n != 3 {
		t.Fatalf("deleted %d notes, want 3", n)
	}
	notes, err := s.ListNotes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 || notes[0].ID != other.ID {
		t.Fatalf("remaining notes = %+v", notes)
	}

	var nf NotFoundError
	if _, err := s.DeleteNote(ctx, a.ID); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
