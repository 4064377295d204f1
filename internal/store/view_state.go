package store

import (
	"context"
	"database/sql"
	"errors"

	json "github.com/goccy/go-json"
)

const viewStateKey = "tui"

// ViewState is the TUI state restored on relaunch. Loading is best effort:
// missing or unreadable state yields an empty ViewState.
type ViewState struct {
	Version int `json:"version"`

	// Folded holds the ids of notes whose children are folded.
	Folded []string `json:"folded,omitempty"`
	Marked []string `json:"marked,omitempty"`

	CursorID string `json:"cursorId,omitempty"`
	Filter   string `json:"filter,omitempty"`
}

func (s Store) LoadViewState(ctx context.Context) (*ViewState, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT json FROM view_state WHERE k = ?`, viewStateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return &ViewState{Version: 1}, nil
	}
	if err != nil {
		return nil, err
	}
	var st ViewState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return &ViewState{Version: 1}, nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	return &st, nil
}

func (s Store) SaveViewState(ctx context.Context, st *ViewState) error {
	if st == nil {
		return nil
	}
	if st.Version == 0 {
		st.Version = 1
	}
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO view_state(k, json) VALUES(?, ?)`, viewStateKey, string(b))
	return err
}
