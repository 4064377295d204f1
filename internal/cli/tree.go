package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lister-cli/internal/lister"
	"lister-cli/internal/model"
	"lister-cli/internal/outline"
	"lister-cli/internal/view"
)

type treeOptions struct {
	filter    string
	sort      string
	reverse   bool
	foldDepth int
	markTag   string
	bodies    bool
	width     int
}

func newTreeCmd(app *App) *cobra.Command {
	opts := treeOptions{foldDepth: -1}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the outline as indented text",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows, err := s.Outline(ctxOf(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			out, err := renderTree(rows, opts)
			if err != nil {
				return writeErr(cmd, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Hide notes not matching this text")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort siblings by keys, e.g. done,-title (title|done|created|updated)")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "Reverse the order of top-level notes")
	cmd.Flags().IntVar(&opts.foldDepth, "fold-depth", -1, "Fold everything deeper than this level (-1 shows all)")
	cmd.Flags().StringVar(&opts.markTag, "marked", "", "Mark notes carrying this tag")
	cmd.Flags().BoolVar(&opts.bodies, "bodies", false, "Print note bodies under their titles")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Truncate lines to this width (0 = no limit)")
	return cmd
}

func renderTree(rows []model.OutlineRow, opts treeOptions) (string, error) {
	lo := outline.Options{}
	if opts.bodies {
		lo.Mapper.Body = outline.PlainBody
	}
	l, buf, err := outline.Build(rows, lo)
	if err != nil {
		return "", err
	}
	if l.Empty() {
		return "", nil
	}
	if opts.sort != "" {
		chain, err := outline.ParseSort(opts.sort)
		if err != nil {
			return "", err
		}
		if err := l.SortSublist(lister.First, chain...); err != nil {
			return "", err
		}
	}
	if opts.reverse {
		if err := l.ReverseSublist(lister.First); err != nil {
			return "", err
		}
	}
	l.SetFilter(outline.HideUnless(opts.filter))
	l.FoldDepth(opts.foldDepth)

	if opts.markTag == "" {
		if opts.width == 0 {
			return buf.Text(), nil
		}
		st := view.PlainStyles()
		st.MarkGlyph = ""
		out, _ := buf.Render(opts.width, st)
		return out + "\n", nil
	}
	l.SetMarkable(func(n model.Note) bool { return n.HasTag(opts.markTag) })
	l.MarkAll(false)
	out, _ := buf.Render(opts.width, view.PlainStyles())
	return out + "\n", nil
}
