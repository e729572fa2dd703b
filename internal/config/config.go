package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

// ErrInvalidValue is returned when an option cannot be parsed
var ErrInvalidValue = errors.New("invalid option value")

// Config holds all configuration for a run
type Config struct {
	// Output settings
	Color   bool
	Quiet   bool
	Timer   bool
	Maybes  bool
	CR      bool
	LogFile string

	// Results storage
	ResultsFile string
	SaveResults bool
	Database    Database

	Debug bool

	// Interactive is true when the report goes to a terminal
	Interactive bool

	// Top-level groups to run, all when empty
	Patterns []string
}

// Database holds the connection settings for storing results in MySQL
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Enabled reports whether a results database is configured
func (d Database) Enabled() bool {
	return d.Name != ""
}

// Flags holds explicitly given options. A nil field was not given and
// falls back to the environment, then to the default.
type Flags struct {
	Color       *bool
	Quiet       *bool
	Timer       *bool
	Maybes      *bool
	CR          *bool
	LogFile     *string
	ResultsFile *string
	NoResults   bool
	Debug       *bool
	Patterns    []string
}

// LookupFunc looks up an environment variable
type LookupFunc func(key string) (string, bool)

// New creates a Config with the defaults for a non-interactive run
func New() *Config {
	return &Config{
		Timer:       DefaultTimer,
		Quiet:       DefaultQuiet,
		ResultsFile: DefaultResultsFile,
		SaveResults: true,
		Database: Database{
			Host: DefaultDBHost,
			Port: DefaultDBPort,
			User: DefaultDBUser,
		},
	}
}

// Load resolves flags against the process environment and stdout
func Load(flags Flags) (*Config, error) {
	return Resolve(flags, os.LookupEnv, IsTerminal(os.Stdout))
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Resolve builds a Config. Precedence is flags, then environment, then
// defaults. Color, maybes and cr default to on only when the report goes to
// a terminal, which is never the case with a log file.
func Resolve(flags Flags, lookup LookupFunc, terminal bool) (*Config, error) {
	env, err := envFlags(lookup)
	if err != nil {
		return nil, err
	}
	merged := env.merge(flags)

	cfg := New()
	if merged.LogFile != nil {
		cfg.LogFile = *merged.LogFile
	}
	cfg.Interactive = terminal && cfg.LogFile == ""

	_, noColor := lookup("NO_COLOR")
	cfg.Color = pick(merged.Color, cfg.Interactive && !noColor)
	cfg.Maybes = pick(merged.Maybes, cfg.Interactive)
	cfg.CR = pick(merged.CR, cfg.Interactive)
	cfg.Timer = pick(merged.Timer, DefaultTimer)
	cfg.Quiet = pick(merged.Quiet, DefaultQuiet)
	cfg.Debug = pick(merged.Debug, false)

	if merged.ResultsFile != nil && *merged.ResultsFile != "" {
		cfg.ResultsFile = *merged.ResultsFile
	}
	cfg.SaveResults = !flags.NoResults
	cfg.Patterns = flags.Patterns

	if v, ok := lookup(EnvDBHost); ok && v != "" {
		cfg.Database.Host = v
	}
	if v, ok := lookup(EnvDBPort); ok && v != "" {
		cfg.Database.Port = v
	}
	if v, ok := lookup(EnvDBUser); ok && v != "" {
		cfg.Database.User = v
	}
	if v, ok := lookup(EnvDBPassword); ok {
		cfg.Database.Password = v
	}
	if v, ok := lookup(EnvDBName); ok {
		cfg.Database.Name = v
	}

	return cfg, nil
}

// GetResultsPath returns the absolute path of the results file
func (c *Config) GetResultsPath() string {
	if abs, err := filepath.Abs(c.ResultsFile); err == nil {
		return abs
	}
	return c.ResultsFile
}

func envFlags(lookup LookupFunc) (Flags, error) {
	var f Flags
	bools := []struct {
		key string
		dst **bool
	}{
		{EnvColor, &f.Color},
		{EnvQuiet, &f.Quiet},
		{EnvTimer, &f.Timer},
		{EnvMaybes, &f.Maybes},
		{EnvCR, &f.CR},
		{EnvDebug, &f.Debug},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Flags{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, b.key, v)
		}
		*b.dst = &parsed
	}
	if v, ok := lookup(EnvLog); ok && v != "" {
		f.LogFile = &v
	}
	if v, ok := lookup(EnvResults); ok && v != "" {
		f.ResultsFile = &v
	}
	return f, nil
}

// merge returns f overridden by every option set in over
func (f Flags) merge(over Flags) Flags {
	if over.Color != nil {
		f.Color = over.Color
	}
	if over.Quiet != nil {
		f.Quiet = over.Quiet
	}
	if over.Timer != nil {
		f.Timer = over.Timer
	}
	if over.Maybes != nil {
		f.Maybes = over.Maybes
	}
	if over.CR != nil {
		f.CR = over.CR
	}
	if over.LogFile != nil {
		f.LogFile = over.LogFile
	}
	if over.ResultsFile != nil {
		f.ResultsFile = over.ResultsFile
	}
	if over.Debug != nil {
		f.Debug = over.Debug
	}
	return f
}

func pick(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}
