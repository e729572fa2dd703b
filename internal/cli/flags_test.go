package cli

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"snow/internal/config"
)

func parse(t *testing.T, args ...string) (config.Flags, error) {
	t.Helper()
	var flags Flags
	var got config.Flags
	var gotErr error
	cmd := &cobra.Command{
		Use: "snow",
		RunE: func(cmd *cobra.Command, args []string) error {
			got, gotErr = flags.ToConfigFlags(cmd)
			return nil
		},
	}
	flags.Bind(cmd)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	return got, gotErr
}

func TestToConfigFlags_Unset(t *testing.T) {
	got, err := parse(t)
	if err != nil {
		t.Fatalf("ToConfigFlags() error = %v", err)
	}
	if got.Color != nil || got.Timer != nil || got.Maybes != nil || got.CR != nil ||
		got.Quiet != nil || got.LogFile != nil || got.ResultsFile != nil || got.Debug != nil {
		t.Errorf("ToConfigFlags() = %+v, want all options unset", got)
	}
}

func TestToConfigFlags_Toggles(t *testing.T) {
	tests := []struct {
		args  []string
		field func(config.Flags) *bool
		want  bool
	}{
		{[]string{"-c"}, func(f config.Flags) *bool { return f.Color }, true},
		{[]string{"--no-color"}, func(f config.Flags) *bool { return f.Color }, false},
		{[]string{"--color=false"}, func(f config.Flags) *bool { return f.Color }, false},
		{[]string{"--no-timer"}, func(f config.Flags) *bool { return f.Timer }, false},
		{[]string{"-t"}, func(f config.Flags) *bool { return f.Timer }, true},
		{[]string{"-m"}, func(f config.Flags) *bool { return f.Maybes }, true},
		{[]string{"--no-cr"}, func(f config.Flags) *bool { return f.CR }, false},
		{[]string{"-q"}, func(f config.Flags) *bool { return f.Quiet }, true},
		{[]string{"--debug"}, func(f config.Flags) *bool { return f.Debug }, true},
	}

	for _, tt := range tests {
		got, err := parse(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: ToConfigFlags() error = %v", tt.args, err)
		}
		v := tt.field(got)
		if v == nil || *v != tt.want {
			t.Errorf("%v: got %v, want %v", tt.args, v, tt.want)
		}
	}
}

func TestToConfigFlags_Conflict(t *testing.T) {
	_, err := parse(t, "--color", "--no-color")
	if !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("ToConfigFlags() error = %v, want ErrInvalidValue", err)
	}
}

func TestToConfigFlags_Strings(t *testing.T) {
	got, err := parse(t, "-l", "out.log", "--results", "r.json", "--no-results")
	if err != nil {
		t.Fatalf("ToConfigFlags() error = %v", err)
	}
	if got.LogFile == nil || *got.LogFile != "out.log" {
		t.Errorf("LogFile = %v, want out.log", got.LogFile)
	}
	if got.ResultsFile == nil || *got.ResultsFile != "r.json" {
		t.Errorf("ResultsFile = %v, want r.json", got.ResultsFile)
	}
	if !got.NoResults {
		t.Error("NoResults = false, want true")
	}
}
