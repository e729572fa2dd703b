package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"snow/internal/cli"
	"snow/internal/domain"
	"snow/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	app   *App
	flags *cli.Flags
}

// NewListCommand creates a new ListCommand
func NewListCommand(app *App, flags *cli.Flags) *ListCommand {
	return &ListCommand{app: app, flags: flags}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := lc.app.loadConfig(cmd, lc.flags, args)
	if err != nil {
		return err
	}

	roots := lc.app.Suite.Select(cfg.Patterns)
	if len(roots) == 0 {
		c := color.New(color.FgYellow)
		if !cfg.Color {
			c.DisableColor()
		}
		c.Fprintln(lc.app.Stdout, "No tests found")
		return nil
	}

	// Mark the failures of the last run when there is one
	failed := make(map[string]struct{})
	if st, closeStorage, err := openStorage(cfg); err == nil {
		if record, err := st.Load(); err == nil {
			for _, f := range record.Details {
				failed[failureName(f)] = struct{}{}
			}
		}
		closeStorage()
	}

	ui.NewFormatter(cfg, lc.app.Stdout).PrintTestList(roots, failed)
	return nil
}

func failureName(f domain.CaseFailure) string {
	if f.GroupPath == "" {
		return f.CaseName
	}
	return f.GroupPath + domain.PathSeparator + f.CaseName
}
