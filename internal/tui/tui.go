package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"lister-cli/internal/debug"
	"lister-cli/internal/store"
)

// Run starts the interactive outliner on s and blocks until it exits.
func Run(ctx context.Context, s store.Store) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var tc store.TUIConfig
	if cfg, err := store.LoadConfig(); err == nil && cfg.TUI != nil {
		tc = *cfg.TUI
	} else if err != nil {
		debug.Log("tui: config: %v", err)
	}
	applyColorProfilePreference()
	applyThemePreference(tc.Theme)
	applyGlyphPreference(tc.Glyphs)

	if err := s.Init(ctx); err != nil {
		return err
	}
	m, err := newAppModel(ctx, s, tc)
	if err != nil {
		return err
	}
	if w, err := watchStore(s.Path()); err != nil {
		debug.Log("tui: not watching %s: %v", s.Path(), err)
	} else {
		m.watch = w
		defer w.Close()
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
