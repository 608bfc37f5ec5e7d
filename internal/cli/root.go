package cli

import (
	"fmt"
	"os"
	"strings"

	"cynllun-cli/internal/curriculum"
	"cynllun-cli/internal/format"
	"cynllun-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool

	catalog *curriculum.Catalog
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "cynllun",
		Short:        "Guided lesson planner for Curriculum for Wales 2022 (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive planning wizard
  cynllun

  # Scriptable commands
  cynllun catalog list areas
  cynllun rubric --area humanities --step 3

  # Serve the HTTP API
  cynllun serve --addr 127.0.0.1:8787
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive wizard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runWizard(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newCatalogCmd(app))
	cmd.AddCommand(newRubricCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

func runWizard(app *App) error {
	cat, err := loadCatalog(app)
	if err != nil {
		return err
	}
	gen, store, cleanup, err := wizardDeps()
	if err != nil {
		return err
	}
	defer cleanup()
	return tui.Run(cat, gen, store)
}

func loadCatalog(app *App) (*curriculum.Catalog, error) {
	if app.catalog != nil {
		return app.catalog, nil
	}
	cat, err := curriculum.Load()
	if err != nil {
		return nil, err
	}
	app.catalog = cat
	return cat, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
