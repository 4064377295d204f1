// Package outline connects stored notes to a lister.List: loading rows into
// the list, reading them back, rendering notes as lines, and the sort and
// filter vocabularies shared by the CLI and the TUI.
package outline

import (
	"strings"

	"lister-cli/internal/lister"
	"lister-cli/internal/model"
)

// List is a lister over notes.
type List = lister.List[model.Note]

// Load appends rows to l, keeping their levels.
func Load(l *List, rows []model.OutlineRow) error {
	if len(rows) == 0 {
		return nil
	}
	flat := make([]lister.Leveled[model.Note], len(rows))
	for i, r := range rows {
		flat[i] = lister.Leveled[model.Note]{Value: r.Note, Level: r.Level}
	}
	_, err := l.InsertNested(lister.Last, lister.Unflatten(flat), lister.InsertAfter(), lister.WithLevel(rows[0].Level))
	return err
}

// Rows reads the list back as outline rows in store order.
func Rows(l *List) []model.OutlineRow {
	items := l.Items()
	out := make([]model.OutlineRow, len(items))
	for i, it := range items {
		out[i] = model.OutlineRow{Note: it.Data(), Level: it.Level()}
	}
	return out
}

// Find returns the item holding the note with id, or nil.
func Find(l *List, id string) *lister.Item[model.Note] {
	return l.First(func(n model.Note) bool { return n.ID == id })
}

// MapperOptions controls how a note turns into lines.
type MapperOptions struct {
	Todo string
	Done string
	// Body renders the note body below the title. Nil hides bodies.
	Body func(body string) []string
}

func Mapper(opts MapperOptions) lister.Mapper[model.Note] {
	if opts.Todo == "" && opts.Done == "" {
		opts.Todo, opts.Done = "[ ] ", "[x] "
	}
	return func(n model.Note) []string {
		var sb strings.Builder
		if n.Done {
			sb.WriteString(opts.Done)
		} else {
			sb.WriteString(opts.Todo)
		}
		sb.WriteString(n.Title)
		for _, t := range n.Tags {
			sb.WriteString(" #" + t)
		}
		lines := []string{sb.String()}
		if opts.Body != nil && strings.TrimSpace(n.Body) != "" {
			pad := strings.Repeat(" ", len([]rune(opts.Todo)))
			for _, ln := range opts.Body(n.Body) {
				lines = append(lines, pad+ln)
			}
		}
		return lines
	}
}

// PlainBody splits a body into its trimmed lines.
func PlainBody(body string) []string {
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}
