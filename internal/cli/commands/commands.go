package commands

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"snow/internal/cli"
	"snow/internal/config"
	"snow/internal/engine"
	"snow/internal/storage"
)

// ErrFailures is returned by the run command when at least one case failed
var ErrFailures = errors.New("some cases failed")

// App is the declared suite and the process environment the commands run in
type App struct {
	Suite    *engine.Suite
	Stdout   io.Writer
	Stderr   io.Writer
	Lookup   config.LookupFunc
	Terminal bool // Stdout is a terminal
}

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Faills *FaillsCommand
	Stats  *StatsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(app *App, flags *cli.Flags) *Commands {
	return &Commands{
		Run:    NewRunCommand(app, flags),
		List:   NewListCommand(app, flags),
		Faills: NewFaillsCommand(app, flags),
		Stats:  NewStatsCommand(app, flags),
	}
}

// Register binds the flags to rootCmd, makes it run the suite and adds the
// subcommands
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	flags.Bind(rootCmd)
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.Run.Execute

	// List command
	listCmd := &cobra.Command{
		Use:   "list [group...]",
		Short: "List declared tests",
		Long:  "Print the declared groups and cases without running them. Cases that failed in the last stored run are marked.",
		RunE:  c.List.Execute,
	}
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display failures from the last stored run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of the last run",
		Long:  "Show the statistics of the last stored run, or of a report written with --log",
		Args:  cobra.NoArgs,
		RunE:  c.Stats.Execute,
	}
	statsCmd.Flags().StringVar(&c.Stats.fromLog, "from-log", "", "Read the statistics from a report file instead of stored results")
	rootCmd.AddCommand(statsCmd)
}

// loadConfig resolves the configuration of the command being executed
func (a *App) loadConfig(cmd *cobra.Command, flags *cli.Flags, patterns []string) (*config.Config, error) {
	f, err := flags.ToConfigFlags(cmd)
	if err != nil {
		return nil, err
	}
	f.Patterns = patterns
	return config.Resolve(f, a.Lookup, a.Terminal)
}

// openStorage opens the configured results storage. closeFn is never nil.
func openStorage(cfg *config.Config) (st storage.Storage, closeFn func(), err error) {
	st, err = storage.New(cfg)
	if err != nil {
		return nil, func() {}, err
	}
	if c, ok := st.(io.Closer); ok {
		return st, func() { c.Close() }, nil
	}
	return st, func() {}, nil
}
