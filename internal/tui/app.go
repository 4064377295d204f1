package tui

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lister-cli/internal/debug"
	"lister-cli/internal/lister"
	"lister-cli/internal/model"
	"lister-cli/internal/outline"
	"lister-cli/internal/store"
	"lister-cli/internal/view"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
	modeAdd
	modeAddChild
	modeEdit
)

type appModel struct {
	ctx   context.Context
	store store.Store
	cfg   store.TUIConfig
	watch *storeWatcher

	list *outline.List
	buf  *view.Buffer

	keys  keyMap
	help  help.Model
	vp    viewport.Model
	input textinput.Model
	mode  inputMode

	filter      string
	prevFilter  string
	foldedAll   bool
	preview     bool
	confirmQuit bool

	width  int
	height int

	status    string
	statusErr bool
}

func newAppModel(ctx context.Context, s store.Store, cfg store.TUIConfig) (appModel, error) {
	ti := textinput.New()
	ti.CharLimit = 500

	m := appModel{
		ctx:   ctx,
		store: s,
		cfg:   cfg,
		keys:  defaultKeyMap(),
		help:  help.New(),
		vp:    viewport.New(80, 20),
		input: ti,
	}
	if err := m.load(); err != nil {
		return appModel{}, err
	}
	return m, nil
}

func (m appModel) listOptions() outline.Options {
	return outline.Options{
		Mapper: outline.MapperOptions{Todo: glyphTodo(), Done: glyphDone()},
		Indent: m.cfg.Indent,
	}
}

// outlineTitle names the outline after the directory holding .lister.
func outlineTitle(dir string) string {
	base := filepath.Base(dir)
	if base == ".lister" {
		return filepath.Base(filepath.Dir(dir))
	}
	return base
}

// load rebuilds the list from the database and restores the saved view.
func (m *appModel) load() error {
	defer debug.LogEnterExit("tui.load")()
	rows, err := m.store.Outline(m.ctx)
	if err != nil {
		return err
	}
	l, buf, err := outline.Build(rows, m.listOptions())
	if err != nil {
		return err
	}
	m.list, m.buf = l, buf

	st, err := m.store.LoadViewState(m.ctx)
	if err != nil {
		debug.Log("tui: view state: %v", err)
		st = &store.ViewState{}
	}
	m.applyViewState(st)
	return nil
}

// reload re-reads the database keeping the current view, unless there are
// unsaved edits.
func (m *appModel) reload() {
	if m.list.Modified() {
		m.setStatus("notes changed on disk; unsaved edits kept (C-s overwrites, C-r discards)", true)
		return
	}
	m.forceReload()
}

func (m *appModel) forceReload() {
	st := m.captureViewState()
	rows, err := m.store.Outline(m.ctx)
	if err != nil {
		m.setErr(err)
		return
	}
	l, buf, err := outline.Build(rows, m.listOptions())
	if err != nil {
		m.setErr(err)
		return
	}
	m.list, m.buf = l, buf
	m.applyViewState(st)
	m.setStatus("reloaded", false)
}

// save writes the outline back. Notes created in the TUI get their ids from
// the store, so the payloads are refreshed in place afterwards.
func (m *appModel) save() error {
	m.watch.suppress(2 * watchDebounce)
	stored, err := m.store.SaveOutline(m.ctx, outline.Rows(m.list))
	if err != nil {
		return err
	}
	items := m.list.Items()
	for i, it := range items {
		if i >= len(stored) {
			break
		}
		if err := m.list.ReplaceData(it, stored[i].Note); err != nil {
			return err
		}
	}
	m.list.SetModified(false)
	if err := m.store.SaveViewState(m.ctx, m.captureViewState()); err != nil {
		debug.Log("tui: save view state: %v", err)
	}
	m.setStatus("saved", false)
	return nil
}

func (m appModel) Init() tea.Cmd {
	return waitForStoreChange(m.watch)
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *appModel) setErr(err error) {
	if err == nil {
		return
	}
	m.setStatus(err.Error(), true)
}

func (m appModel) current() *lister.Item[model.Note] {
	return m.list.Current()
}
