package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/component"
	"github.com/idilsaglam/projects/internal/config"
	"github.com/idilsaglam/projects/internal/logging"
	"github.com/idilsaglam/projects/internal/project"
	"github.com/idilsaglam/projects/internal/store/htmlstore"
	"github.com/idilsaglam/projects/internal/tui"
	"github.com/idilsaglam/projects/internal/ui"
)

// App carries root flags and what PersistentPreRunE loads from them.
type App struct {
	PagePath   string
	ConfigPath string
	LogFile    string
	NoColor    bool

	cfg    *config.Config
	log    *slog.Logger
	closer io.Closer
}

// ---------------------------------------------------
// CLI router
// ---------------------------------------------------

// Execute runs the CLI and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		return silent.Code
	}
	var ce *clierr.Error
	if errors.As(err, &ce) {
		ui.Fail(stderr, ce.Message)
		return ce.ExitCode()
	}
	// cobra usage errors: bad flags, unknown subcommands, wrong arg counts
	ui.Fail(stderr, err.Error())
	fmt.Fprintln(stderr, "Run 'projects --help' for usage.")
	return 2
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "projects",
		Short:         "projects - a two-list project board",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  projects

  # Print both lists
  projects ls

  # Finish p1 and show the result (nothing is saved)
  projects switch p1

  # Show the extra info for a project
  projects info p2

  # Write the page as it looks after switching p1
  projects export --switch p1 > board.html
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return cmd.Help()
			}
			board, err := app.loadBoard()
			if err != nil {
				return err
			}
			if err := tui.Run(board, tui.Options{Keys: app.cfg.KeyMappings, Logger: app.log}); err != nil {
				return clierr.Newf(clierr.InternalError, "tui: %v", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&app.PagePath, "page", "", "HTML page holding the board (default: ./projects.html or the built-in page)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "config file (default: $PROJECTS_CONFIG or ~/.config/projects/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", `log file, or "off" (default: ~/.projects/logs/projects.log)`)
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closer != nil {
			return app.closer.Close()
		}
		return nil
	}

	cmd.AddCommand(
		newListCmd(app),
		newSwitchCmd(app),
		newInfoCmd(app),
		newExportCmd(app),
	)
	return cmd
}

func (a *App) setup() error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	ui.ApplyColorProfile(a.NoColor || strings.EqualFold(cfg.Theme, "mono"))

	logFile := cfg.LogFile
	if a.LogFile != "" {
		logFile = a.LogFile
	}
	closer, err := logging.Init(logFile, cfg.LogLevel)
	if err != nil {
		return clierr.Newf(clierr.InternalError, "logging: %v", err)
	}
	a.closer = closer
	a.log = logging.Logger
	return nil
}

// loadBoard reads the page and builds both lists on it.
func (a *App) loadBoard() (*project.App, error) {
	page := a.cfg.Page
	if a.PagePath != "" {
		page = a.PagePath
	}
	doc, err := htmlstore.Load(page)
	if err != nil {
		return nil, err
	}
	board, err := project.NewApp(doc, project.Options{
		Logger: a.log,
		Tooltip: component.TooltipOptions{
			OffsetX: a.cfg.Tooltip.OffsetX,
			OffsetY: a.cfg.Tooltip.OffsetY,
		},
	})
	if err != nil {
		return nil, err
	}
	a.log.Debug("board loaded", "page", page,
		"active", board.List(project.Active).IDs(),
		"finished", board.List(project.Finished).IDs())
	return board, nil
}
