package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		env      map[string]string
		terminal bool
		expected Config
	}{
		{
			name:     "terminal defaults",
			terminal: true,
			expected: Config{Color: true, Timer: true, Maybes: true, CR: true, Interactive: true},
		},
		{
			name:     "non-terminal defaults",
			terminal: false,
			expected: Config{Timer: true},
		},
		{
			name:     "log file turns terminal options off",
			flags:    Flags{LogFile: strPtr("out.log")},
			terminal: true,
			expected: Config{Timer: true, LogFile: "out.log"},
		},
		{
			name:     "explicit flags win over log file defaults",
			flags:    Flags{LogFile: strPtr("out.log"), Color: boolPtr(true), Maybes: boolPtr(true)},
			terminal: true,
			expected: Config{Timer: true, LogFile: "out.log", Color: true, Maybes: true},
		},
		{
			name:     "environment overrides defaults",
			env:      map[string]string{EnvQuiet: "1", EnvTimer: "false"},
			terminal: false,
			expected: Config{Quiet: true},
		},
		{
			name:     "flags override environment",
			flags:    Flags{Timer: boolPtr(true)},
			env:      map[string]string{EnvTimer: "false"},
			terminal: false,
			expected: Config{Timer: true},
		},
		{
			name:     "log file from environment",
			env:      map[string]string{EnvLog: "env.log"},
			terminal: true,
			expected: Config{Timer: true, LogFile: "env.log"},
		},
		{
			name:     "NO_COLOR disables the color default",
			env:      map[string]string{"NO_COLOR": ""},
			terminal: true,
			expected: Config{Timer: true, Maybes: true, CR: true, Interactive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Resolve(tt.flags, envMap(tt.env), tt.terminal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := Config{
				Color: cfg.Color, Quiet: cfg.Quiet, Timer: cfg.Timer, Maybes: cfg.Maybes,
				CR: cfg.CR, LogFile: cfg.LogFile, Interactive: cfg.Interactive,
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestResolve_InvalidEnv(t *testing.T) {
	_, err := Resolve(Flags{}, envMap(map[string]string{EnvColor: "sometimes"}), true)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestResolve_Results(t *testing.T) {
	cfg, err := Resolve(Flags{NoResults: true}, envMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SaveResults {
		t.Error("expected results saving to be disabled")
	}
	if cfg.ResultsFile != DefaultResultsFile {
		t.Errorf("expected %s, got %s", DefaultResultsFile, cfg.ResultsFile)
	}

	cfg, err = Resolve(Flags{}, envMap(map[string]string{EnvResults: "custom.json"}), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ResultsFile != "custom.json" || !cfg.SaveResults {
		t.Errorf("unexpected results settings: %s %v", cfg.ResultsFile, cfg.SaveResults)
	}
	if !filepath.IsAbs(cfg.GetResultsPath()) {
		t.Errorf("expected absolute path, got %s", cfg.GetResultsPath())
	}
}

func TestResolve_Database(t *testing.T) {
	cfg, err := Resolve(Flags{}, envMap(nil), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without a name")
	}
	if cfg.Database.Host != DefaultDBHost || cfg.Database.Port != DefaultDBPort {
		t.Errorf("unexpected defaults: %+v", cfg.Database)
	}

	cfg, err = Resolve(Flags{}, envMap(map[string]string{EnvDBName: "snow", EnvDBHost: "db"}), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Database.Enabled() || cfg.Database.Host != "db" {
		t.Errorf("unexpected database settings: %+v", cfg.Database)
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SNOW_TEST_ENV_FILE=loaded\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("SNOW_TEST_ENV_FILE") })

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("SNOW_TEST_ENV_FILE"); got != "loaded" {
		t.Errorf("expected loaded, got %q", got)
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ResultsFile != DefaultResultsFile {
		t.Errorf("expected ResultsFile %s, got %s", DefaultResultsFile, cfg.ResultsFile)
	}
	if !cfg.Timer {
		t.Error("expected timer to default on")
	}
	if cfg.Database.User != DefaultDBUser {
		t.Errorf("expected database user %s, got %s", DefaultDBUser, cfg.Database.User)
	}
}
