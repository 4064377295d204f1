package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lister-cli/internal/debug"
	"lister-cli/internal/lister"
	"lister-cli/internal/model"
	"lister-cli/internal/outline"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-4)
		m.layout()
		return m, nil

	case storeChangedMsg:
		m.reload()
		m.layout()
		return m, waitForStoreChange(m.watch)

	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.mode != modeNormal {
			m, cmd = m.updateInput(msg)
		} else {
			m, cmd = m.updateNormal(msg)
		}
		m.layout()
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeFilter {
			m.applyFilter(m.prevFilter)
		}
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeNormal
		m.input.Blur()
		m.setErr(m.submit(mode, value))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeFilter {
		m.applyFilter(m.input.Value())
	}
	return m, cmd
}

func (m *appModel) startInput(mode inputMode, prompt, value string) tea.Cmd {
	m.mode = mode
	m.prevFilter = m.filter
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *appModel) submit(mode inputMode, value string) error {
	switch mode {
	case modeFilter:
		m.applyFilter(value)
		return nil
	case modeAdd, modeAddChild:
		if value == "" {
			return nil
		}
		return m.addNote(value, mode == modeAddChild)
	case modeEdit:
		cur := m.current()
		if cur == nil || value == "" {
			return nil
		}
		n := cur.Data()
		n.Title = value
		n.UpdatedAt = time.Now().UTC()
		return m.list.ReplaceData(cur, n)
	}
	return nil
}

// applyFilter hides notes not matching q and keeps the cursor on a visible
// note.
func (m *appModel) applyFilter(q string) {
	m.filter = strings.TrimSpace(q)
	m.list.SetFilter(outline.HideUnless(m.filter))
	m.ensureCursorVisible()
}

func (m *appModel) ensureCursorVisible() {
	cur := m.current()
	if cur != nil && m.list.Visible(cur) {
		return
	}
	if cur != nil {
		if next, _ := m.list.NextVisible(cur); next != nil {
			_ = m.list.Goto(next)
			return
		}
		if prev, _ := m.list.PrevVisible(cur); prev != nil {
			_ = m.list.Goto(prev)
			return
		}
	}
	if it := m.list.FirstVisible(); it != nil {
		_ = m.list.Goto(it)
	}
}

// addNote inserts a note after the current subtree, or as the current note's
// last child.
func (m *appModel) addNote(title string, child bool) error {
	n := model.Note{Title: title}
	cur := m.current()
	var added []*lister.Item[model.Note]
	var err error
	switch {
	case cur == nil:
		added, err = m.list.Insert(lister.Last, []model.Note{n}, lister.InsertAfter(), lister.WithLevel(0))
	case child:
		added, err = m.list.Insert(m.list.SubtreeEnd(cur), []model.Note{n}, lister.InsertAfter(), lister.WithLevel(cur.Level()+1))
	default:
		added, err = m.list.Insert(m.list.SubtreeEnd(cur), []model.Note{n}, lister.InsertAfter(), lister.WithLevel(cur.Level()))
	}
	if err != nil {
		return err
	}
	if len(added) == 0 {
		return nil
	}
	it := added[0]
	_ = m.list.Reveal(it)
	if !m.list.Visible(it) {
		m.setStatus("added note is hidden by the filter", false)
		return nil
	}
	return m.list.Goto(it)
}

func (m appModel) updateNormal(msg tea.KeyMsg) (appModel, tea.Cmd) {
	l := m.list
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}
	m.setStatus("", false)

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit):
		if l.Modified() && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus("unsaved changes: C-s to save, q again to quit without saving", true)
			return m, nil
		}
		m.persistViewState()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Down):
		m.step(l.NextVisible)
	case key.Matches(msg, m.keys.Up):
		m.step(l.PrevVisible)
	case key.Matches(msg, m.keys.Top):
		if it := l.FirstVisible(); it != nil {
			_ = l.Goto(it)
		}
	case key.Matches(msg, m.keys.Bottom):
		if it := l.LastVisible(); it != nil {
			_ = l.Goto(it)
		}
	case key.Matches(msg, m.keys.Parent):
		if p, err := l.Parent(lister.Point); err == nil && l.Visible(p) {
			_ = l.Goto(p)
		}

	case key.Matches(msg, m.keys.Fold):
		if l.HasSublistBelow(lister.Point) {
			m.setErr(l.ToggleSublistBelow(lister.Point))
		}
	case key.Matches(msg, m.keys.FoldAll):
		if m.foldedAll {
			l.ShowAll()
		} else {
			l.FoldDepth(0)
		}
		m.foldedAll = !m.foldedAll
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Mark):
		m.markAndAdvance(true)
	case key.Matches(msg, m.keys.Unmark):
		m.markAndAdvance(false)
	case key.Matches(msg, m.keys.ToggleMark):
		if l.Current() != nil {
			m.setErr(l.ToggleMark(lister.Point))
		}
	case key.Matches(msg, m.keys.UnmarkAll):
		m.setStatus(fmt.Sprintf("unmarked %d", l.UnmarkAll()), false)

	case key.Matches(msg, m.keys.Filter):
		cmd := m.startInput(modeFilter, "/", m.filter)
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		if l.Filtered() {
			m.applyFilter("")
		}

	case key.Matches(msg, m.keys.SortTitle):
		m.reorder(func() error { return l.SortSublist(lister.Point, sortChain("title")...) })
	case key.Matches(msg, m.keys.SortDone):
		m.reorder(func() error { return l.SortSublist(lister.Point, sortChain("done,title")...) })
	case key.Matches(msg, m.keys.Reverse):
		m.reorder(func() error { return l.ReverseSublist(lister.Point) })

	case key.Matches(msg, m.keys.MoveUp):
		m.reorder(func() error { return l.MoveUp(lister.Point) })
	case key.Matches(msg, m.keys.MoveDown):
		m.reorder(func() error { return l.MoveDown(lister.Point) })
	case key.Matches(msg, m.keys.Indent):
		m.reorder(func() error { return l.Indent(lister.Point) })
	case key.Matches(msg, m.keys.Outdent):
		m.reorder(func() error { return l.Outdent(lister.Point) })

	case key.Matches(msg, m.keys.Add):
		cmd := m.startInput(modeAdd, "add: ", "")
		return m, cmd
	case key.Matches(msg, m.keys.AddChild):
		if l.Current() == nil {
			cmd := m.startInput(modeAdd, "add: ", "")
			return m, cmd
		}
		cmd := m.startInput(modeAddChild, "add child: ", "")
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		if cur := l.Current(); cur != nil {
			cmd := m.startInput(modeEdit, "title: ", cur.Data().Title)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Done):
		if cur := l.Current(); cur != nil {
			n := cur.Data()
			n.Done = !n.Done
			n.UpdatedAt = time.Now().UTC()
			m.setErr(l.ReplaceData(cur, n))
		}
	case key.Matches(msg, m.keys.Delete):
		m.deleteCurrent()
	case key.Matches(msg, m.keys.DeleteMarked):
		n := l.DeleteMarked()
		m.ensureCursorVisible()
		m.setStatus(fmt.Sprintf("deleted %d marked", n), false)

	case key.Matches(msg, m.keys.Copy):
		if cur := l.Current(); cur != nil {
			if err := copyToClipboard(noteClipboardText(cur.Data())); err != nil {
				m.setErr(err)
			} else {
				m.setStatus("copied", false)
			}
		}
	case key.Matches(msg, m.keys.Preview):
		m.preview = !m.preview
	case key.Matches(msg, m.keys.Save):
		m.setErr(m.save())
	case key.Matches(msg, m.keys.Reload):
		m.forceReload()
	}
	return m, nil
}

func (m *appModel) step(next func(pos any) (*lister.Item[model.Note], error)) {
	it, err := next(lister.Point)
	if err != nil || it == nil {
		return
	}
	_ = m.list.Goto(it)
}

func (m *appModel) markAndAdvance(state bool) {
	cur := m.list.Current()
	if cur == nil {
		return
	}
	m.setErr(m.list.SetMark(cur, state))
	m.step(m.list.NextVisible)
}

// reorder runs a structural edit keeping the cursor on its note.
func (m *appModel) reorder(fn func() error) {
	if m.list.Current() == nil {
		return
	}
	err := m.list.WithCursor(fn)
	if errors.Is(err, lister.ErrFiltered) {
		m.setStatus("clear the filter (esc) before moving notes", true)
		return
	}
	var nf lister.NotFoundError
	if errors.As(err, &nf) {
		m.setStatus("nothing to do here", false)
		return
	}
	m.setErr(err)
}

func (m *appModel) deleteCurrent() {
	cur := m.list.Current()
	if cur == nil {
		return
	}
	after, _ := m.list.NextVisible(cur)
	if after != nil && after.Level() > cur.Level() {
		// Skip the deleted subtree.
		end := m.list.SubtreeEnd(cur)
		after, _ = m.list.NextVisible(end)
	}
	before, _ := m.list.PrevVisible(cur)
	m.setErr(m.list.Delete(cur, m.list.SubtreeEnd(cur)))
	switch {
	case after != nil:
		_ = m.list.Goto(after)
	case before != nil:
		_ = m.list.Goto(before)
	}
	m.ensureCursorVisible()
}

// persistViewState saves folds and marks on the way out. Failure is only
// logged.
func (m appModel) persistViewState() {
	m.watch.suppress(2 * watchDebounce)
	if err := m.store.SaveViewState(m.ctx, m.captureViewState()); err != nil {
		debug.Log("tui: save view state: %v", err)
	}
}

func sortChain(keys string) []outline.Less {
	chain, _ := outline.ParseSort(keys)
	return chain
}
