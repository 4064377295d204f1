package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminal fonts render box and arrow characters poorly, so every
// affordance has an ASCII fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference picks the glyph set from LISTER_TUI_GLYPHS, falling
// back to the configured value. Unknown values are ignored.
func applyGlyphPreference(configured string) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("LISTER_TUI_GLYPHS")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(configured))
	}
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphTwistyCollapsed() string { return pick("▸ ", "> ") }
func glyphTwistyExpanded() string  { return pick("▾ ", "v ") }
func glyphLeaf() string            { return "  " }
func glyphMark() string            { return pick("● ", "* ") }
func glyphTodo() string            { return pick("☐ ", "[ ] ") }
func glyphDone() string            { return pick("☑ ", "[x] ") }
func glyphEllipsis() string        { return pick("…", "...") }
