package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lister-cli/internal/debug"
	"lister-cli/internal/format"
	"lister-cli/internal/store"
	"lister-cli/internal/tui"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "lister",
		Short:        "Outline notes from the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive outliner
  lister

  # Scriptable commands
  lister notes add --title "Groceries"
  lister tree --sort done,title --fold-depth 1

  # Direct note lookup (shortcut for: lister notes show <note-id>)
  lister note-abcd2345
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debug.Log("cli: %s", cmd.CommandPath())
		if app.Format == "" {
			if cfg, err := store.LoadConfig(); err == nil {
				app.Format = cfg.Format
			}
		}
		_, err := format.Normalize(app.Format)
		return err
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("LISTER_DIR", ""), "Path to the notes directory (default: nearest .lister)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON and EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LISTER_FORMAT", ""), "Output format (json|edn|yaml)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newNotesCmd(app))
	cmd.AddCommand(newTreeCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newPublishCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	s, err := openStore(app)
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(cmd.Context(), s)
}

func openStore(app *App) (store.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = d
	}
	return store.Store{Dir: dir}, nil
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
