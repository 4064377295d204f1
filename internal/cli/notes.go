package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"lister-cli/internal/model"
	"lister-cli/internal/store"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "Manage notes",
	}
	cmd.AddCommand(newNotesAddCmd(app))
	cmd.AddCommand(newNotesListCmd(app))
	cmd.AddCommand(newNotesShowCmd(app))
	cmd.AddCommand(newNotesEditCmd(app))
	cmd.AddCommand(newNotesRmCmd(app))
	return cmd
}

func newNotesAddCmd(app *App) *cobra.Command {
	var in store.NewNote
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note (appended after its last sibling)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in.Title) == "" && len(args) > 0 {
				in.Title = strings.Join(args, " ")
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := s.AddNote(ctxOf(cmd), in)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}
	cmd.Flags().StringVar(&in.Title, "title", "", "Note title (or pass it as arguments)")
	cmd.Flags().StringVar(&in.Body, "body", "", "Note body (markdown)")
	cmd.Flags().StringVar(&in.ParentID, "parent", "", "Parent note id")
	cmd.Flags().StringSliceVar(&in.Tags, "tag", nil, "Tag (repeatable)")
	return cmd
}

func newNotesListCmd(app *App) *cobra.Command {
	var tag string
	var query string
	var undone bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			notes, err := s.ListNotes(ctxOf(cmd))
			if err != nil {
				return writeErr(cmd, err)
			}
			out := make([]model.Note, 0, len(notes))
			for _, n := range notes {
				if tag != "" && !n.HasTag(tag) {
					continue
				}
				if query != "" && !n.Matches(query) {
					continue
				}
				if undone && n.Done {
					continue
				}
				out = append(out, n)
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "Only notes with this tag")
	cmd.Flags().StringVar(&query, "query", "", "Only notes matching this text")
	cmd.Flags().BoolVar(&undone, "undone", false, "Only notes not marked done")
	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "show <note-id>",
		Short:   "Show a note",
		Aliases: []string{"get"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showNote(app, cmd, args[0])
		},
	}
}

func showNote(app *App, cmd *cobra.Command, id string) error {
	s, err := openStore(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	n, err := s.FindNote(ctxOf(cmd), id)
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, map[string]any{"data": n})
}

func newNotesEditCmd(app *App) *cobra.Command {
	var title, body string
	var tags []string
	var done, undone bool
	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Edit a note's title, body, tags or done state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if done && undone {
				return writeErr(cmd, errors.New("--done and --undone are mutually exclusive"))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := s.FindNote(ctxOf(cmd), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("title") {
				n.Title = title
			}
			if cmd.Flags().Changed("body") {
				n.Body = body
			}
			if cmd.Flags().Changed("tag") {
				n.Tags = tags
			}
			if done {
				n.Done = true
			}
			if undone {
				n.Done = false
			}
			n, err = s.UpdateNote(ctxOf(cmd), n)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New body")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (repeatable)")
	cmd.Flags().BoolVar(&done, "done", false, "Mark done")
	cmd.Flags().BoolVar(&undone, "undone", false, "Mark not done")
	return cmd
}

func newNotesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <note-id>",
		Short:   "Delete a note and its children",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			n, err := s.DeleteNote(ctxOf(cmd), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"id": args[0], "deleted": n}})
		},
	}
}
