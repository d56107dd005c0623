package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/model"
	"github.com/idilsaglam/projects/internal/project"
	"github.com/idilsaglam/projects/internal/ui"
)

func newListCmd(app *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List active and finished projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.loadBoard()
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), board)
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of panels")
	return cmd
}

func newSwitchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>...",
		Short: "Move projects to the other list, in order, and print the result (not saved)",
		Long:  "Move projects to the other list, in order, and print the result (not saved).\n" +
			"Unknown ids are reported and skipped; the exit code is non-zero if any failed.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.loadBoard()
			if err != nil {
				return err
			}
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			code := 0
			for _, id := range args {
				if err := board.Switch(id); err != nil {
					// report and keep going; the exit code carries the failure
					var ce *clierr.Error
					if !errors.As(err, &ce) {
						return err
					}
					ui.Fail(errOut, ce.Message)
					code = max(code, ce.ExitCode())
					continue
				}
				p, _ := board.Find(id)
				ui.OK(out, fmt.Sprintf("%s → %s", id, p.Type()))
			}
			printBoard(out, board)
			if code != 0 {
				return &clierr.SilentError{Code: code}
			}
			return nil
		},
	}
}

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <id>",
		Short: "Show a project's extra info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.loadBoard()
			if err != nil {
				return err
			}
			if err := board.ShowInfo(args[0]); err != nil {
				return err
			}
			p, _ := board.Find(args[0])
			snap := p.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Panel(snap.Title, []string{
				ui.RenderMarkdown(p.Tooltip().Text(), ui.Current().MarkdownStyle, 60),
			}, 0, false))
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var switches, infos []string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page as HTML after applying switches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.loadBoard()
			if err != nil {
				return err
			}
			for _, id := range switches {
				if err := board.Switch(id); err != nil {
					return err
				}
			}
			for _, id := range infos {
				if err := board.ShowInfo(id); err != nil {
					return err
				}
			}
			return board.Document().Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&switches, "switch", nil, "switch these projects first, in order")
	cmd.Flags().StringSliceVar(&infos, "info", nil, "open the info tooltip on these projects")
	return cmd
}

func printBoard(w io.Writer, board *project.App) {
	var panels []string
	for _, t := range []project.ListType{project.Active, project.Finished} {
		l := board.List(t)
		var lines []string
		for _, p := range l.Snapshot() {
			lines = append(lines, projectLine(p))
		}
		if len(lines) == 0 {
			lines = append(lines, ui.StylesFor(ui.Current()).Muted.Render("(empty)"))
		}
		title := fmt.Sprintf("%s (%d)", listTitle(t), l.Len())
		panels = append(panels, ui.Panel(title, lines, 0, false))
	}
	fmt.Fprintln(w, ui.SideBySide(panels...))

	done := board.List(project.Finished).Len()
	total := done + board.List(project.Active).Len()
	fmt.Fprintln(w, ui.ProgressBar(done, total, 20)+" finished")
}

func projectLine(p model.Project) string {
	th := ui.Current()
	s := ui.StylesFor(th)
	if p.Finished() {
		return s.Success.Render(th.SymDone) + " " + s.Done.Render(p.Title) + " " + s.Muted.Render("#"+p.ID)
	}
	return s.Pending.Render(th.SymActive) + " " + p.Title + " " + s.Muted.Render("#"+p.ID)
}

func listTitle(t project.ListType) string {
	if t == project.Finished {
		return "Finished Projects"
	}
	return "Active Projects"
}

func printJSON(w io.Writer, board *project.App) error {
	out := struct {
		Active   []model.Project `json:"active"`
		Finished []model.Project `json:"finished"`
	}{
		Active:   board.List(project.Active).Snapshot(),
		Finished: board.List(project.Finished).Snapshot(),
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
