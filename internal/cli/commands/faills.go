package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"snow/internal/cli"
	"snow/internal/ui"
)

// FaillsCommand handles the faills command
type FaillsCommand struct {
	app   *App
	flags *cli.Flags
}

// NewFaillsCommand creates a new FaillsCommand
func NewFaillsCommand(app *App, flags *cli.Flags) *FaillsCommand {
	return &FaillsCommand{app: app, flags: flags}
}

// Execute runs the command
func (fc *FaillsCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := fc.app.loadConfig(cmd, fc.flags, nil)
	if err != nil {
		return err
	}

	st, closeStorage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	record, err := st.Load()
	if err != nil {
		return fmt.Errorf("no stored results, run the suite first: %w", err)
	}

	var viewer ui.Viewer = ui.NewErrorViewer(st)
	return viewer.View(record)
}
