package tui

import (
	"lister-cli/internal/outline"
	"lister-cli/internal/store"
)

// captureViewState records folds as the ids of the notes whose children are
// hidden. Folds that do not start at a first child (left over from a partial
// reveal) are not recorded.
func (m appModel) captureViewState() *store.ViewState {
	st := &store.ViewState{Version: 1, Filter: m.filter}
	for _, f := range m.list.Folds() {
		head, err := m.list.Parent(f.Beg)
		if err != nil || head.Index() != f.Beg.Index()-1 {
			continue
		}
		if id := head.Data().ID; id != "" {
			st.Folded = append(st.Folded, id)
		}
	}
	for _, n := range m.list.MarkedData() {
		if n.ID != "" {
			st.Marked = append(st.Marked, n.ID)
		}
	}
	if cur := m.current(); cur != nil {
		st.CursorID = cur.Data().ID
	}
	return st
}

// applyViewState restores folds, marks, the filter and the cursor. Ids that
// no longer exist are skipped.
func (m *appModel) applyViewState(st *store.ViewState) {
	for _, id := range st.Folded {
		if it := outline.Find(m.list, id); it != nil && id != "" {
			_ = m.list.HideSublistBelow(it)
		}
	}
	for _, id := range st.Marked {
		if it := outline.Find(m.list, id); it != nil && id != "" {
			_ = m.list.SetMark(it, true)
		}
	}
	m.filter = st.Filter
	m.list.SetFilter(outline.HideUnless(m.filter))

	if st.CursorID != "" {
		if it := outline.Find(m.list, st.CursorID); it != nil {
			_ = m.list.Reveal(it)
			if m.list.Visible(it) {
				_ = m.list.Goto(it)
				return
			}
		}
	}
	if it := m.list.FirstVisible(); it != nil {
		_ = m.list.Goto(it)
	}
}
