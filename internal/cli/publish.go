package cli

import (
	"github.com/spf13/cobra"

	"lister-cli/internal/publish"
)

func newPublishCmd(app *App) *cobra.Command {
	var toDir, rootID, title string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write the outline as Markdown pages (index.md + notes/<id>.md)",
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
			res, err := publish.WriteOutline(trees, toDir, publish.WriteOptions{Title: title, Overwrite: overwrite})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
	cmd.Flags().StringVar(&toDir, "to", "", "Output directory")
	cmd.Flags().StringVar(&rootID, "root", "", "Only publish the subtree rooted at this note id")
	cmd.Flags().StringVar(&title, "title", "", "Heading for index.md")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing files")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
