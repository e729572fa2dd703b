package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snow/internal/cli"
	"snow/internal/parser"
	"snow/internal/ui"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app     *App
	flags   *cli.Flags
	parser  parser.Parser
	fromLog string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(app *App, flags *cli.Flags) *StatsCommand {
	return &StatsCommand{app: app, flags: flags, parser: parser.NewTranscriptParser()}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := sc.app.loadConfig(cmd, sc.flags, nil)
	if err != nil {
		return err
	}
	formatter := ui.NewFormatter(cfg, sc.app.Stdout)

	if sc.fromLog != "" {
		f, err := os.Open(sc.fromLog)
		if err != nil {
			return fmt.Errorf("open report: %w", err)
		}
		defer f.Close()

		transcript, err := sc.parser.Parse(f)
		if err != nil {
			return fmt.Errorf("parse report: %w", err)
		}
		formatter.PrintTranscriptStats(transcript)
		return nil
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
	formatter.PrintMetaStats(record)
	return nil
}
