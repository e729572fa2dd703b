package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"snow/internal/cli"
	"snow/internal/config"
	"snow/internal/domain"
	"snow/internal/engine"
	"snow/internal/logging"
	"snow/internal/ui"
)

// ErrNoMatch is returned when group patterns select nothing
var ErrNoMatch = errors.New("no group matches")

// RunCommand runs the suite
type RunCommand struct {
	app   *App
	flags *cli.Flags
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(app *App, flags *cli.Flags) *RunCommand {
	return &RunCommand{app: app, flags: flags}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := rc.app.loadConfig(cmd, rc.flags, args)
	if err != nil {
		return err
	}
	log := logging.ForRun(cfg.Debug, rc.app.Stderr)

	roots := rc.app.Suite.Select(cfg.Patterns)
	if len(cfg.Patterns) > 0 && len(roots) == 0 {
		return fmt.Errorf("%w: %v", ErrNoMatch, cfg.Patterns)
	}

	out := rc.app.Stdout
	var (
		extra    []engine.Listener
		progress *ui.ProgressBar
	)
	if cfg.LogFile != "" {
		f, err := os.Create(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("%w: cannot open log file: %v", config.ErrInvalidValue, err)
		}
		defer f.Close()
		out = f

		if config.IsTerminal(rc.app.Stderr) {
			progress = ui.NewProgressBar(engine.CountCases(roots), rc.app.Stderr)
			extra = append(extra, progress)
		}
	}

	report := RunSuite(roots, cfg, out, log, extra...)
	if progress != nil {
		progress.Finish()
	}

	if cfg.SaveResults {
		rc.save(cfg, report, log)
	}

	if !report.OK() {
		return fmt.Errorf("%w: passed %d/%d", ErrFailures, report.Passed, report.Total)
	}
	return nil
}

// save stores the report. A storage problem is logged and does not change
// the outcome of the run.
func (rc *RunCommand) save(cfg *config.Config, report *domain.Report, log *slog.Logger) {
	st, closeStorage, err := openStorage(cfg)
	if err != nil {
		log.Error("Failed to open results storage", "error", err)
		return
	}
	defer closeStorage()

	if err := st.Save(report); err != nil {
		log.Error("Failed to save test results", "error", err)
		return
	}
	log.Debug("Saved test results", "path", cfg.GetResultsPath(), "database", cfg.Database.Enabled())
}

// RunSuite runs roots with a Reporter writing to out, followed by the
// summary line
func RunSuite(roots []*engine.Node, cfg *config.Config, out io.Writer, log *slog.Logger, extra ...engine.Listener) *domain.Report {
	reporter := ui.NewReporter(cfg, out)
	eng := engine.New(engine.Config{
		Log:       log,
		Listeners: append([]engine.Listener{reporter}, extra...),
	})
	report := eng.Run(roots)
	reporter.Summary(report.Summary)
	return report
}
