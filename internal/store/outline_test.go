package store

import (
	"context"
	"testing"

	"lister-cli/internal/model"
)

func titlesAndLevels(rows []model.OutlineRow) string {
	out := ""
	for i, r := range rows {
		if i > 0 {
			out += " "
		}
		out += r.Note.Title + "@" + string(rune('0'+r.Level))
	}
	return out
}

func TestOutline_DepthFirstByRank(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	a, _ := s.AddNote(ctx, NewNote{Title: "A"})
	_, _ = s.AddNote(ctx, NewNote{Title: "B"})
	a1, _ := s.AddNote(ctx, NewNote{ParentID: a.ID, Title: "A1"})
	_, _ = s.AddNote(ctx, NewNote{ParentID: a1.ID, Title: "A1x"})
	_, _ = s.AddNote(ctx, NewNote{ParentID: a.ID, Title: "A2"})

	rows, err := s.Outline(ctx)
	if err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if got := titlesAndLevels(rows); got != "A@0 A1@1 A1x@2 A2@1 B@0" {
		t.Fatalf("outline = %s", got)
	}
}

func TestSaveOutline_RederivesStructure(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}
	a, _ := s.AddNote(ctx, NewNote{Title: "A"})
	b, _ := s.AddNote(ctx, NewNote{Title: "B"})
	gone, _ := s.AddNote(ctx, NewNote{Title: "gone"})

	rows := []model.OutlineRow{
		{Note: b, Level: 0},
		{Note: a, Level: 1},
		{Note: model.Note{Title: "new"}, Level: 5},
	}
	saved, err := s.SaveOutline(ctx, rows)
	if err != nil {
		t.Fatalf("SaveOutline: %v", err)
	}
	if saved[2].Level != 2 || saved[2].Note.ID == "" {
		t.Fatalf("new row = %+v", saved[2])
	}

	got, err := s.Outline(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if titles := titlesAndLevels(got); titles != "B@0 A@1 new@2" {
		t.Fatalf("outline = %s", titles)
	}
	if got[1].Note.ParentID == nil || *got[1].Note.ParentID != b.ID {
		t.Fatalf("A should be a child of B")
	}
	if _, err := s.FindNote(ctx, gone.ID); err == nil {
		t.Fatalf("note missing from the outline should be deleted")
	}
}

func TestOutline_OrphansBecomeTopLevel(t *testing.T) {
	missing := "note-aaaaaaaa"
	rows := outlineRows([]model.Note{
		{ID: "note-bbbbbbbb", Title: "orphan", ParentID: &missing, Rank: "h"},
	})
	if got := titlesAndLevels(rows); got != "orphan@0" {
		t.Fatalf("outline = %s", got)
	}
}
