package cli

import (
	"github.com/spf13/cobra"

	"lister-cli/internal/lister"
	"lister-cli/internal/model"
	"lister-cli/internal/outline"
	"lister-cli/internal/store"
)

func newExportCmd(app *App) *cobra.Command {
	var rootID string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the outline (or one subtree) as nested data",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows, err := s.Outline(ctxOf(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			trees, err := exportTrees(rows, rootID)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, trees)
		},
	}
	cmd.Flags().StringVar(&rootID, "root", "", "Only export the subtree rooted at this note id")
	return cmd
}

func exportTrees(rows []model.OutlineRow, rootID string) ([]model.Tree, error) {
	l, _, err := outline.Build(rows, outline.Options{})
	if err != nil {
		return nil, err
	}
	if l.Empty() {
		return []model.Tree{}, nil
	}
	var beg, end any = lister.First, lister.Last
	if rootID != "" {
		it := outline.Find(l, rootID)
		if it == nil {
			return nil, store.NotFoundError{Kind: "note", ID: rootID}
		}
		beg, end = it, l.SubtreeEnd(it)
	}
	nested, err := l.NestedData(beg, end)
	if err != nil {
		return nil, err
	}
	return outline.ToTrees(nested)
}
