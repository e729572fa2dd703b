// Package snow declares and runs trees of test groups and cases from an
// ordinary Go program.
//
//	func main() {
//		suite := snow.New(snow.WithName("mytests"))
//		suite.Describe("strings", func(g *snow.Group) {
//			g.It("joins", func(t *snow.T) {
//				t.EqualStr(strings.Join([]string{"a", "b"}, ","), "a,b")
//			})
//		})
//		os.Exit(suite.Main(os.Args[1:]))
//	}
package snow

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"snow/internal/cli"
	"snow/internal/cli/commands"
	"snow/internal/config"
	"snow/internal/domain"
	"snow/internal/engine"
	"snow/internal/logging"
)

// Process exit codes returned by Main
const (
	ExitPassed = 0
	ExitFailed = 1
	ExitUsage  = 2
)

type (
	// T is the handle a case body uses to fail and to register defers
	T = engine.T
	// Group is the declaration context of a group body
	Group = engine.Group
	// Config controls how a run is reported
	Config = config.Config
	// Report is the outcome of a run
	Report = domain.Report
)

// Suite is a set of top-level groups plus the process settings used by Main
type Suite struct {
	name    string
	version string
	stdout  io.Writer
	stderr  io.Writer
	lookup  config.LookupFunc
	envFile string
	tree    *engine.Suite
}

// Option configures a Suite
type Option func(*Suite)

// WithName sets the program name shown in help output
func WithName(name string) Option {
	return func(s *Suite) { s.name = name }
}

// WithVersion sets the version printed by --version
func WithVersion(version string) Option {
	return func(s *Suite) { s.version = version }
}

// WithOutput redirects the report and diagnostics
func WithOutput(stdout, stderr io.Writer) Option {
	return func(s *Suite) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

// WithEnv replaces the process environment as the source of SNOW_*
// settings. The .env file is not loaded in that case.
func WithEnv(lookup func(key string) (string, bool)) Option {
	return func(s *Suite) {
		s.lookup = lookup
		s.envFile = ""
	}
}

// New creates an empty Suite
func New(opts ...Option) *Suite {
	s := &Suite{
		name:    filepath.Base(os.Args[0]),
		version: "dev",
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		lookup:  os.LookupEnv,
		envFile: config.DefaultEnvFile,
		tree:    engine.NewSuite(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Describe declares a top-level group. body runs immediately.
func (s *Suite) Describe(name string, body func(g *Group)) {
	s.tree.Describe(name, body)
}

// Cases returns the number of declared cases
func (s *Suite) Cases() int {
	return s.tree.Cases()
}

// DefaultConfig returns the configuration of a plain, non-interactive run
func DefaultConfig() *Config {
	return config.New()
}

// Run executes the groups selected by cfg.Patterns and reports them to w.
// Nothing is stored and no flags are read.
func (s *Suite) Run(cfg *Config, w io.Writer) *Report {
	log := logging.ForRun(cfg.Debug, s.stderr)
	return commands.RunSuite(s.tree.Select(cfg.Patterns), cfg, w, log)
}

// Main parses args as a command line, runs the suite or one of its
// subcommands and returns the process exit code: ExitPassed when every
// case passed, ExitFailed when some failed and ExitUsage for bad options.
func (s *Suite) Main(args []string) int {
	if err := config.LoadEnvFile(s.envFile); err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return ExitUsage
	}

	rootCmd := &cobra.Command{
		Use:   s.name + " [group...]",
		Short: "Run the declared test suite",
		Long: "Run the declared test groups in order and report every case. Arguments select top-level groups by name (wildcards allowed).\n\n" +
			"The names list, faills and stats are subcommands. Select a group with one of those names through a wildcard, e.g. 'stat?'.",
		Version:       s.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetArgs(args)
	rootCmd.SetOut(s.stdout)
	rootCmd.SetErr(s.stderr)

	var flags cli.Flags
	cmds := commands.NewCommands(&commands.App{
		Suite:    s.tree,
		Stdout:   s.stdout,
		Stderr:   s.stderr,
		Lookup:   s.lookup,
		Terminal: config.IsTerminal(s.stdout),
	}, &flags)
	cmds.Register(rootCmd, &flags)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return ExitPassed
	case errors.Is(err, commands.ErrFailures):
		return ExitFailed
	default:
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return ExitUsage
	}
}
