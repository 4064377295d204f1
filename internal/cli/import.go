package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lister-cli/internal/format"
	"lister-cli/internal/lister"
	"lister-cli/internal/model"
	"lister-cli/internal/outline"
	"lister-cli/internal/store"
)

func newImportCmd(app *App) *cobra.Command {
	var parentID string
	var inFormat string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append a nested JSON or YAML outline (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f := inFormat
			if f == "" {
				f = format.DetectFormat(path)
			}
			in := cmd.InOrStdin()
			if path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer file.Close()
				in = file
			}
			var trees []model.Tree
			if err := format.Read(in, &trees, f); err != nil {
				return writeErr(cmd, err)
			}

			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows, err := s.Outline(ctxOf(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			merged, n, err := mergeImport(rows, trees, parentID)
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := s.SaveOutline(ctxOf(cmd), merged); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"imported": n}})
		},
	}
	cmd.Flags().StringVar(&parentID, "parent", "", "Import as the last children of this note")
	cmd.Flags().StringVar(&inFormat, "input-format", "", "Input format (json|yaml; default: from file extension)")
	return cmd
}

// mergeImport appends the imported trees to the outline, at the top level or
// below parentID, and returns the combined rows.
func mergeImport(rows []model.OutlineRow, trees []model.Tree, parentID string) ([]model.OutlineRow, int, error) {
	imported := outline.FromTrees(trees, 0)
	for _, r := range imported {
		if strings.TrimSpace(r.Note.Title) == "" {
			return nil, 0, errors.New("imported note without a title")
		}
	}
	l, _, err := outline.Build(rows, outline.Options{})
	if err != nil {
		return nil, 0, err
	}
	if len(imported) == 0 {
		return rows, 0, nil
	}
	flat := make([]lister.Leveled[model.Note], len(imported))
	for i, r := range imported {
		flat[i] = lister.Leveled[model.Note]{Value: r.Note, Level: r.Level}
	}
	elems := lister.Unflatten(flat)

	if parentID == "" {
		_, err = l.InsertNested(lister.Last, elems, lister.InsertAfter(), lister.WithLevel(0))
	} else {
		parent := outline.Find(l, parentID)
		if parent == nil {
			return nil, 0, store.NotFoundError{Kind: "note", ID: parentID}
		}
		_, err = l.InsertNested(l.SubtreeEnd(parent), elems, lister.InsertAfter(), lister.WithLevel(parent.Level()+1))
	}
	if err != nil {
		return nil, 0, err
	}
	return outline.Rows(l), len(imported), nil
}
