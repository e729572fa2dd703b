package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"snow/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Color     bool
	NoColor   bool
	Quiet     bool
	Timer     bool
	NoTimer   bool
	Maybes    bool
	NoMaybes  bool
	CR        bool
	NoCR      bool
	LogFile   string
	Results   string
	NoResults bool
	Debug     bool
}

// Bind registers the output flags on cmd. They are persistent so every
// subcommand resolves its configuration the same way.
func (f *Flags) Bind(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.BoolVarP(&f.Color, "color", "c", false, "Enable colors (default when stdout is a terminal)")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colors")
	fs.BoolVarP(&f.Quiet, "quiet", "q", false, "Only print failures and the summary")
	fs.BoolVarP(&f.Timer, "timer", "t", false, "Print how long each case took (default)")
	fs.BoolVar(&f.NoTimer, "no-timer", false, "Don't print case timings")
	fs.BoolVarP(&f.Maybes, "maybes", "m", false, "Print a provisional line before each case runs")
	fs.BoolVar(&f.NoMaybes, "no-maybes", false, "Don't print provisional lines")
	fs.BoolVar(&f.CR, "cr", false, "Overwrite provisional lines with a carriage return")
	fs.BoolVar(&f.NoCR, "no-cr", false, "Terminate provisional lines with a newline")
	fs.StringVarP(&f.LogFile, "log", "l", "", "Write the report to a file instead of stdout")
	fs.StringVar(&f.Results, "results", "", "Where to store the results of the run (default "+config.DefaultResultsFile+")")
	fs.BoolVar(&f.NoResults, "no-results", false, "Don't store the results of the run")
	fs.BoolVar(&f.Debug, "debug", false, "Log engine diagnostics to stderr")
}

// ToConfigFlags converts the flags given on cmd's command line to config
// flags. Flags that were not given stay nil.
func (f *Flags) ToConfigFlags(cmd *cobra.Command) (config.Flags, error) {
	var (
		out config.Flags
		err error
	)
	toggles := []struct {
		on, off string
		dst     **bool
	}{
		{"color", "no-color", &out.Color},
		{"timer", "no-timer", &out.Timer},
		{"maybes", "no-maybes", &out.Maybes},
		{"cr", "no-cr", &out.CR},
	}
	for _, t := range toggles {
		if *t.dst, err = toggle(cmd, t.on, t.off); err != nil {
			return config.Flags{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("quiet") {
		out.Quiet = &f.Quiet
	}
	if fs.Changed("debug") {
		out.Debug = &f.Debug
	}
	if fs.Changed("log") {
		out.LogFile = &f.LogFile
	}
	if fs.Changed("results") {
		out.ResultsFile = &f.Results
	}
	out.NoResults = f.NoResults
	return out, nil
}

func toggle(cmd *cobra.Command, on, off string) (*bool, error) {
	fs := cmd.Flags()
	onSet, offSet := fs.Changed(on), fs.Changed(off)
	switch {
	case onSet && offSet:
		return nil, fmt.Errorf("%w: --%s and --%s are mutually exclusive", config.ErrInvalidValue, on, off)
	case onSet:
		v, err := fs.GetBool(on)
		return &v, err
	case offSet:
		v, err := fs.GetBool(off)
		v = !v
		return &v, err
	}
	return nil, nil
}
