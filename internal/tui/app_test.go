package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lister-cli/internal/model"
	"lister-cli/internal/store"
)

// seedStore creates A (with child B) and C.
func seedStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()
	s := store.Store{Dir: t.TempDir()}
	a, err := s.AddNote(ctx, store.NewNote{Title: "A"})
	if err != nil {
		t.Fatalf("add A: %v", err)
	}
	if _, err := s.AddNote(ctx, store.NewNote{Title: "B", ParentID: a.ID}); err != nil {
		t.Fatalf("add B: %v", err)
	}
	if _, err := s.AddNote(ctx, store.NewNote{Title: "C"}); err != nil {
		t.Fatalf("add C: %v", err)
	}
	return s
}

func newTestModel(t *testing.T, s store.Store) appModel {
	t.Helper()
	setGlyphs(glyphSetASCII)
	m, err := newAppModel(context.Background(), s, store.TUIConfig{})
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func update(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(appModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return am
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "alt+down":
		return tea.KeyMsg{Type: tea.KeyDown, Alt: true}
	case "alt+up":
		return tea.KeyMsg{Type: tea.KeyUp, Alt: true}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func titles(m appModel) string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, strings.Repeat(".", it.Level())+it.Data().Title)
	}
	return strings.Join(out, " ")
}

func currentTitle(m appModel) string {
	if cur := m.current(); cur != nil {
		return cur.Data().Title
	}
	return ""
}

func TestNavigateAndMark(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	if got := currentTitle(m); got != "A" {
		t.Fatalf("expected cursor on A, got %q", got)
	}
	m = press(t, m, "j", "m")
	if got := currentTitle(m); got != "C" {
		t.Fatalf("mark should advance to C, got %q", got)
	}
	marked := m.list.MarkedData()
	if len(marked) != 1 || marked[0].Title != "B" {
		t.Fatalf("expected B marked, got %+v", marked)
	}
	if m.list.Modified() {
		t.Fatalf("marking must not modify the outline")
	}
	m = press(t, m, "space", "U")
	if n := len(m.list.MarkedItems()); n != 0 {
		t.Fatalf("expected no marks after U, got %d", n)
	}
}

func TestFoldHidesChildren(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "tab")
	if got := m.gutter(0); got != glyphTwistyCollapsed() {
		t.Fatalf("gutter for folded A = %q", got)
	}
	m = press(t, m, "j")
	if got := currentTitle(m); got != "C" {
		t.Fatalf("expected j to skip folded B, got %q", got)
	}
	m = press(t, m, "shift+tab", "shift+tab")
	m = press(t, m, "g", "j")
	if got := currentTitle(m); got != "B" {
		t.Fatalf("expected B visible after show all, got %q", got)
	}
}

func TestFilterBlocksMoves(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "/")
	m = typeText(t, m, "c")
	m = press(t, m, "enter")
	if got := currentTitle(m); got != "C" {
		t.Fatalf("expected cursor moved to C, got %q", got)
	}
	if got := m.buf.Text(); strings.Contains(got, "A") {
		t.Fatalf("A should be filtered out:\n%s", got)
	}
	m = press(t, m, "alt+up")
	if !m.statusErr || !strings.Contains(m.status, "filter") {
		t.Fatalf("expected a filter status, got %q", m.status)
	}
	if got := titles(m); got != "A .B C" {
		t.Fatalf("order changed while filtered: %s", got)
	}
	m = press(t, m, "esc")
	if m.list.Filtered() {
		t.Fatalf("esc should clear the filter")
	}
}

func TestFilterEscRestoresPrevious(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "/")
	m = typeText(t, m, "zzz")
	m = press(t, m, "esc")
	if m.list.Filtered() || m.filter != "" {
		t.Fatalf("cancelled filter should not stick (filter=%q)", m.filter)
	}
}

func TestMoveAndSortKeepCursor(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "alt+down")
	if got := titles(m); got != "C A .B" {
		t.Fatalf("after move down: %s", got)
	}
	if got := currentTitle(m); got != "A" {
		t.Fatalf("cursor should follow A, got %q", got)
	}
	m = press(t, m, "r")
	if got := titles(m); got != "A .B C" {
		t.Fatalf("after reverse: %s", got)
	}
	m = press(t, m, "G", "s")
	if got := titles(m); got != "A .B C" {
		t.Fatalf("after sort: %s", got)
	}
	if got := currentTitle(m); got != "C" {
		t.Fatalf("cursor should stay on C, got %q", got)
	}
	if !m.list.Modified() {
		t.Fatalf("expected modified after moves")
	}
}

func TestIndentOutdent(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "G", ">")
	if got := titles(m); got != "A .B .C" {
		t.Fatalf("after indent: %s", got)
	}
	m = press(t, m, "<")
	if got := titles(m); got != "A .B C" {
		t.Fatalf("after outdent: %s", got)
	}
}

func TestAddEditSave(t *testing.T) {
	s := seedStore(t)
	m := newTestModel(t, s)

	m = press(t, m, "a")
	m = typeText(t, m, "New")
	m = press(t, m, "enter")
	if got := titles(m); got != "A .B New C" {
		t.Fatalf("after add: %s", got)
	}
	if got := currentTitle(m); got != "New" {
		t.Fatalf("cursor should be on the new note, got %q", got)
	}

	m = press(t, m, "A")
	m = typeText(t, m, "kid")
	m = press(t, m, "enter", "e")
	m = typeText(t, m, "!")
	m = press(t, m, "enter", "d")
	if got := titles(m); got != "A .B New .kid! C" {
		t.Fatalf("after add child and edit: %s", got)
	}

	m = press(t, m, "ctrl+s")
	if m.list.Modified() {
		t.Fatalf("save should clear modified (status %q)", m.status)
	}
	for _, it := range m.list.Items() {
		if it.Data().ID == "" {
			t.Fatalf("saved note %q has no id", it.Data().Title)
		}
	}

	rows, err := s.Outline(context.Background())
	if err != nil {
		t.Fatalf("outline: %v", err)
	}
	var got []string
	for _, r := range rows {
		got = append(got, strings.Repeat(".", r.Level)+r.Note.Title)
		if r.Note.Title == "kid!" && !r.Note.Done {
			t.Fatalf("expected kid! to be done")
		}
	}
	if strings.Join(got, " ") != "A .B New .kid! C" {
		t.Fatalf("stored outline: %v", got)
	}
}

func TestDeleteCurrentAndMarked(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "x")
	if got := titles(m); got != "C" {
		t.Fatalf("x should delete A with its subtree: %s", got)
	}
	if got := currentTitle(m); got != "C" {
		t.Fatalf("cursor should land on C, got %q", got)
	}

	m = newTestModel(t, seedStore(t))
	m = press(t, m, "m", "m", "D")
	if got := titles(m); got != "C" {
		t.Fatalf("D should delete marked A and B: %s", got)
	}
}

func TestViewStateSurvivesRestart(t *testing.T) {
	s := seedStore(t)
	m := newTestModel(t, s)
	m = press(t, m, "tab", "j", "m")
	m = press(t, m, "q")

	m2 := newTestModel(t, s)
	if n := len(m2.list.Folds()); n != 1 {
		t.Fatalf("expected A's fold restored, got %d folds", n)
	}
	marked := m2.list.MarkedData()
	if len(marked) != 1 || marked[0].Title != "C" {
		t.Fatalf("expected C marked after restart, got %+v", marked)
	}
}

func TestQuitAsksWhenModified(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "alt+down")
	next, cmd := m.Update(keyMsg("q"))
	m = next.(appModel)
	if cmd != nil {
		t.Fatalf("first q with unsaved changes should not quit")
	}
	if !m.confirmQuit {
		t.Fatalf("expected quit confirmation")
	}
	_, cmd = m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("second q should quit")
	}
}

func TestReloadOnStoreChange(t *testing.T) {
	s := seedStore(t)
	m := newTestModel(t, s)
	m = press(t, m, "tab")

	if _, err := s.AddNote(context.Background(), store.NewNote{Title: "D"}); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, storeChangedMsg{})
	if got := titles(m); got != "A .B C D" {
		t.Fatalf("after reload: %s", got)
	}
	if n := len(m.list.Folds()); n != 1 {
		t.Fatalf("fold should survive reload, got %d", n)
	}

	m = press(t, m, "G", "alt+up")
	if _, err := s.AddNote(context.Background(), store.NewNote{Title: "E"}); err != nil {
		t.Fatal(err)
	}
	m = update(t, m, storeChangedMsg{})
	if strings.Contains(titles(m), "E") {
		t.Fatalf("unsaved edits must not be replaced by a reload")
	}
	if !m.statusErr {
		t.Fatalf("expected a warning status")
	}
}

func TestCopyCurrentNote(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = prev })

	m := newTestModel(t, seedStore(t))
	m = press(t, m, "y")
	if copied != "A" || m.status != "copied" {
		t.Fatalf("copied %q, status %q", copied, m.status)
	}
	if got := noteClipboardText(model.Note{Title: "t", Body: "b\n"}); got != "t\n\nb" {
		t.Fatalf("noteClipboardText = %q", got)
	}
}

func TestViewRendersChrome(t *testing.T) {
	m := newTestModel(t, seedStore(t))
	m = press(t, m, "p")
	out := m.View()
	for _, want := range []string{"3 notes", "[ ] A", "(no body)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}
