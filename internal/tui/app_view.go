package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"lister-cli/internal/outline"
)

func (m appModel) View() string {
	sections := []string{m.titleBar(), m.vp.View()}
	if m.preview {
		sections = append(sections, m.previewView())
	}
	sections = append(sections, m.minibuffer(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m appModel) titleBar() string {
	title := styleTitleBar().Render(outlineTitle(m.store.Dir))
	info := []string{fmt.Sprintf("%d notes", m.list.Len())}
	if n := len(m.list.MarkedItems()); n > 0 {
		info = append(info, fmt.Sprintf("%d marked", n))
	}
	if m.filter != "" {
		info = append(info, "filter: "+m.filter)
	}
	if m.list.Modified() {
		info = append(info, "modified")
	}
	return title + " " + styleMuted().Render(strings.Join(info, " · "))
}

func (m appModel) minibuffer() string {
	if m.mode != modeNormal {
		return m.input.View()
	}
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return styleError().Render(m.status)
	}
	return styleMuted().Render(m.status)
}

func (m appModel) previewHeight() int {
	if !m.preview {
		return 0
	}
	return max(3, m.height/3)
}

func (m appModel) previewView() string {
	w := max(10, m.width)
	h := m.previewHeight()
	body := ""
	if cur := m.current(); cur != nil {
		n := cur.Data()
		if m.cfg.Markdown {
			body = renderMarkdown(n.Body, w, m.cfg.Theme)
		} else {
			body = strings.Join(outline.PlainBody(n.Body), "\n")
		}
		if strings.TrimSpace(body) == "" {
			body = styleMuted().Render("(no body)")
		}
	}
	lines := strings.Split(body, "\n")
	if len(lines) > h-1 {
		lines = append(lines[:h-2], glyphEllipsis())
	}
	for i, ln := range lines {
		lines[i] = xansi.Truncate(ln, w, glyphEllipsis())
	}
	return stylePreview().Width(w).Render(strings.Join(lines, "\n"))
}

// layout sizes the viewport and redraws the outline into it, scrolling so
// that the cursor stays on screen.
func (m *appModel) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	chrome := 1 + lipgloss.Height(m.minibuffer()) + lipgloss.Height(m.help.View(m.keys))
	if m.preview {
		chrome += m.previewHeight()
	}
	m.vp.Width = m.width
	m.vp.Height = max(1, m.height-chrome)

	if m.list.Empty() {
		m.vp.SetContent(styleMuted().Render("no notes yet; press a to add one"))
		m.vp.GotoTop()
		return
	}
	st := outlineStyles()
	st.Gutter = m.gutter
	content, row := m.buf.Render(m.width, st)
	m.vp.SetContent(content)
	if row < 0 {
		return
	}
	switch {
	case row < m.vp.YOffset:
		m.vp.SetYOffset(row)
	case row >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(row - m.vp.Height + 1)
	}
}

// gutter draws the fold twisty on the first line of every note.
func (m appModel) gutter(line int) string {
	it := m.list.ItemAtLine(line)
	if it == nil {
		return ""
	}
	if start, _, ok := m.list.SpanRange(it.Span()); !ok || start != line {
		return glyphLeaf()
	}
	if !m.list.HasSublistBelow(it) {
		return glyphLeaf()
	}
	next, err := m.list.Lookup(it.Index() + 1)
	if err == nil && next != nil && m.list.Folded(next) {
		return glyphTwistyCollapsed()
	}
	return glyphTwistyExpanded()
}
