package publish

import (
	"bytes"
	"strings"

	"lister-cli/internal/model"
)

// RenderOutlineMarkdown renders trees as a nested GitHub task list. Notes
// with a body link to their page when linkPages is set.
func RenderOutlineMarkdown(title string, trees []model.Tree, linkPages bool) string {
	var buf bytes.Buffer
	if t := strings.TrimSpace(title); t != "" {
		buf.WriteString("# " + t + "\n\n")
	}
	var walk func(ts []model.Tree, depth int)
	walk = func(ts []model.Tree, depth int) {
		for _, t := range ts {
			buf.WriteString(strings.Repeat("  ", depth))
			buf.WriteString(taskBox(t.Done))
			text := escapeInline(t.Title)
			if linkPages && strings.TrimSpace(t.Body) != "" && t.ID != "" {
				text = "[" + text + "](" + notePagePath(t.ID) + ")"
			}
			buf.WriteString(text)
			for _, tag := range t.Tags {
				buf.WriteString(" `#" + tag + "`")
			}
			buf.WriteString("\n")
			walk(t.Children, depth+1)
		}
	}
	walk(trees, 0)
	return buf.String()
}

// RenderNoteMarkdown renders one note page: the title, its path from the
// outline root, tags, the body and the direct children.
func RenderNoteMarkdown(t model.Tree, ancestors []string) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# " + strings.TrimSpace(t.Title))
	writeLn("")
	if len(ancestors) > 0 {
		writeLn("_" + escapeInline(strings.Join(ancestors, " / ")) + "_")
		writeLn("")
	}
	if t.Done {
		writeLn("- Done: true")
	}
	if len(t.Tags) > 0 {
		writeLn("- Tags: " + strings.Join(t.Tags, ", "))
	}
	if t.Done || len(t.Tags) > 0 {
		writeLn("")
	}
	if body := strings.TrimSpace(t.Body); body != "" {
		writeLn(body)
		writeLn("")
	}
	if len(t.Children) > 0 {
		writeLn("## Children")
		writeLn("")
		for _, c := range t.Children {
			writeLn(taskBox(c.Done) + escapeInline(c.Title))
		}
	}
	return strings.TrimRight(buf.String(), "\n") + "\n"
}

func taskBox(done bool) string {
	if done {
		return "- [x] "
	}
	return "- [ ] "
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
)

func escapeInline(s string) string {
	return inlineEscaper.Replace(strings.TrimSpace(s))
}

func notePagePath(id string) string {
	return "notes/" + id + ".md"
}
