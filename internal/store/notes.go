package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"lister-cli/internal/debug"
	"lister-cli/internal/model"
)

const noteColumns = `id, parent_id, rank, title, body, tags_json, done, created_at_unixms, updated_at_unixms`

// NewNote describes a note to add. An empty ParentID adds a top-level note.
// The note is appended after its last sibling.
type NewNote struct {
	ParentID string
	Title    string
	Body     string
	Tags     []string
}

func (s Store) AddNote(ctx context.Context, in NewNote) (model.Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Note{}, errors.New("title is required")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Note{}, err
	}
	defer db.Close()

	var parent *string
	if pid := strings.TrimSpace(in.ParentID); pid != "" {
		if _, err := findNote(ctx, db, pid); err != nil {
			return model.Note{}, err
		}
		parent = &pid
	}

	var last sql.NullString
	if parent == nil {
		err = db.QueryRowContext(ctx, `SELECT MAX(rank) FROM notes WHERE parent_id IS NULL`).Scan(&last)
	} else {
		err = db.QueryRowContext(ctx, `SELECT MAX(rank) FROM notes WHERE parent_id = ?`, *parent).Scan(&last)
	}
	if err != nil {
		return model.Note{}, err
	}
	rank, err := RankAfter(last.String)
	if err != nil {
		return model.Note{}, err
	}
	id, err := newNoteID()
	if err != nil {
		return model.Note{}, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	n := model.Note{
		ID:        id,
		ParentID:  parent,
		Rank:      rank,
		Title:     title,
		Body:      in.Body,
		Tags:      normalizeTags(in.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := insertNote(ctx, db, n); err != nil {
		return model.Note{}, err
	}
	debug.Log("store: added %s under %v", n.ID, in.ParentID)
	return n, nil
}

// UpdateNote writes title, body, tags and done of an existing note.
func (s Store) UpdateNote(ctx context.Context, n model.Note) (model.Note, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Note{}, err
	}
	defer db.Close()

	cur, err := findNote(ctx, db, n.ID)
	if err != nil {
		return model.Note{}, err
	}
	cur.Title = strings.TrimSpace(n.Title)
	if cur.Title == "" {
		return model.Note{}, errors.New("title is required")
	}
	cur.Body = n.Body
	cur.Tags = normalizeTags(n.Tags)
	cur.Done = n.Done
	cur.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	tags, _ := json.Marshal(cur.Tags)
	_, err = db.ExecContext(ctx, `UPDATE notes SET title = ?, body = ?, tags_json = ?, done = ?, updated_at_unixms = ? WHERE id = ?`,
		cur.Title, cur.Body, string(tags), boolToInt(cur.Done), cur.UpdatedAt.UnixMilli(), cur.ID)
	if err != nil {
		return model.Note{}, err
	}
	return cur, nil
}

// DeleteNote removes a note and all of its descendants and returns how many
// notes were removed.
func (s Store) DeleteNote(ctx context.Context, id string) (int, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if _, err := findNote(ctx, db, id); err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		WITH RECURSIVE subtree(id) AS (
			SELECT ?
			UNION ALL
			SELECT n.id FROM notes n JOIN subtree s ON n.parent_id = s.id
		)
		DELETE FROM notes WHERE id IN (SELECT id FROM subtree)`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	debug.Log("store: deleted %s (%d notes)", id, n)
	return int(n), nil
}

func (s Store) FindNote(ctx context.Context, id string) (model.Note, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Note{}, err
	}
	defer db.Close()
	return findNote(ctx, db, id)
}

// ListNotes returns every note ordered by parent and rank.
func (s Store) ListNotes(ctx context.Context) ([]model.Note, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return listNotes(ctx, db)
}

func findNote(ctx context.Context, q queryer, id string) (model.Note, error) {
	row := q.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, strings.TrimSpace(id))
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Note{}, NotFoundError{Kind: "note", ID: id}
	}
	return n, err
}

func listNotes(ctx context.Context, q queryer) ([]model.Note, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY COALESCE(parent_id, ''), rank, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (model.Note, error) {
	var (
		n                  model.Note
		parent             sql.NullString
		tagsJSON           string
		done               int
		createdMs, updated int64
	)
	if err := sc.Scan(&n.ID, &parent, &n.Rank, &n.Title, &n.Body, &tagsJSON, &done, &createdMs, &updated); err != nil {
		return model.Note{}, err
	}
	if parent.Valid && parent.String != "" {
		p := parent.String
		n.ParentID = &p
	}
	if err := json.Unmarshal([]byte(tagsJSON), &n.Tags); err != nil {
		n.Tags = nil
	}
	n.Done = done != 0
	n.CreatedAt = time.UnixMilli(createdMs).UTC()
	n.UpdatedAt = time.UnixMilli(updated).UTC()
	return n, nil
}

func insertNote(ctx context.Context, q queryer, n model.Note) error {
	tags, err := json.Marshal(normalizeTags(n.Tags))
	if err != nil {
		return err
	}
	var parent any
	if n.ParentID != nil {
		parent = *n.ParentID
	}
	_, err = q.ExecContext(ctx, `INSERT INTO notes(`+noteColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, parent, n.Rank, n.Title, n.Body, string(tags), boolToInt(n.Done), n.CreatedAt.UnixMilli(), n.UpdatedAt.UnixMilli())
	return err
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimPrefix(strings.TrimSpace(t), "#")
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
	}
	return out
}
