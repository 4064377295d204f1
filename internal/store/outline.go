package store

import (
	"context"
	"database/sql"
	"time"

	json "github.com/goccy/go-json"

	"lister-cli/internal/debug"
	"lister-cli/internal/model"
)

// Outline returns every note depth first in rank order, tagged with its
// depth. Notes whose parent no longer exists are treated as top level.
func (s Store) Outline(ctx context.Context) ([]model.OutlineRow, error) {
	defer debug.LogEnterExit("store.Outline")()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	notes, err := listNotes(ctx, db)
	if err != nil {
		return nil, err
	}
	return outlineRows(notes), nil
}

func outlineRows(notes []model.Note) []model.OutlineRow {
	byID := make(map[string]bool, len(notes))
	for _, n := range notes {
		byID[n.ID] = true
	}
	children := map[string][]model.Note{}
	for _, n := range notes {
		pid := ""
		if n.ParentID != nil && byID[*n.ParentID] && *n.ParentID != n.ID {
			pid = *n.ParentID
		}
		children[pid] = append(children[pid], n)
	}

	out := make([]model.OutlineRow, 0, len(notes))
	seen := map[string]bool{}
	var walk func(pid string, level int)
	walk = func(pid string, level int) {
		for _, n := range children[pid] {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			out = append(out, model.OutlineRow{Note: n, Level: level})
			walk(n.ID, level+1)
		}
	}
	walk("", 0)
	return out
}

// SaveOutline makes the database match rows exactly: parents and ranks are
// derived from row order and levels, rows without an id become new notes and
// notes missing from rows are deleted. It returns the rows as stored.
func (s Store) SaveOutline(ctx context.Context, rows []model.OutlineRow) ([]model.OutlineRow, error) {
	defer debug.LogEnterExit("store.SaveOutline")()
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out, err := placeRows(rows)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(out))
	for _, r := range out {
		keep[r.Note.ID] = true
	}
	existing, err := listNotes(ctx, tx)
	if err != nil {
		return nil, err
	}
	for _, n := range existing {
		if keep[n.ID] {
			continue
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, n.ID); err != nil {
			return nil, err
		}
	}

	for _, r := range out {
		if err := upsertNote(ctx, tx, r.Note); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	debug.Log("store: saved outline (%d notes, %d removed)", len(out), len(existing)-countKept(existing, keep))
	return out, nil
}

// placeRows assigns ids, parents and ranks from the row order and levels.
// A level deeper than one below the previous row is clamped.
func placeRows(rows []model.OutlineRow) ([]model.OutlineRow, error) {
	out := make([]model.OutlineRow, len(rows))
	now := time.Now().UTC().Truncate(time.Millisecond)
	var stack []string
	counts := map[string]int{}
	parents := make([]string, len(rows))
	for i, r := range rows {
		n := r.Note
		if n.ID == "" {
			id, err := newNoteID()
			if err != nil {
				return nil, err
			}
			n.ID = id
			n.CreatedAt = now
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = now
		}
		level := max(0, min(r.Level, len(stack)))
		stack = append(stack[:level], n.ID)
		n.ParentID = nil
		if level > 0 {
			pid := stack[level-1]
			n.ParentID = &pid
			parents[i] = pid
		}
		counts[parents[i]]++
		out[i] = model.OutlineRow{Note: n, Level: level}
	}

	ranks := make(map[string][]string, len(counts))
	for pid, c := range counts {
		ranks[pid] = sequentialRanks(c)
	}
	for i := range out {
		pid := parents[i]
		out[i].Note.Rank = ranks[pid][0]
		ranks[pid] = ranks[pid][1:]
	}
	return out, nil
}

func upsertNote(ctx context.Context, q queryer, n model.Note) error {
	tags, err := json.Marshal(normalizeTags(n.Tags))
	if err != nil {
		return err
	}
	var parent any
	if n.ParentID != nil {
		parent = *n.ParentID
	}
	_, err = q.ExecContext(ctx, `INSERT INTO notes(`+noteColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			parent_id = excluded.parent_id,
			rank = excluded.rank,
			title = excluded.title,
			body = excluded.body,
			tags_json = excluded.tags_json,
			done = excluded.done,
			updated_at_unixms = excluded.updated_at_unixms`,
		n.ID, parent, n.Rank, n.Title, n.Body, string(tags), boolToInt(n.Done), n.CreatedAt.UnixMilli(), n.UpdatedAt.UnixMilli())
	return err
}

func countKept(notes []model.Note, keep map[string]bool) int {
	c := 0
	for _, n := range notes {
		if keep[n.ID] {
			c++
		}
	}
	return c
}
