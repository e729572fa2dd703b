package snow

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	suite   *Suite
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	env     map[string]string
	results string
	ran     int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		env:     map[string]string{},
		results: filepath.Join(t.TempDir(), "results.json"),
	}
	h.suite = New(
		WithName("snow-test"),
		WithVersion("1.2.3"),
		WithOutput(&h.stdout, &h.stderr),
		WithEnv(func(key string) (string, bool) {
			v, ok := h.env[key]
			return v, ok
		}),
	)
	h.suite.Describe("math", func(g *Group) {
		g.It("adds", func(t *T) {
			h.ran++
			t.EqualInt(2, 1+1)
		})
		g.It("divides", func(t *T) {
			h.ran++
			t.EqualInt(4, 7/2)
		})
	})
	h.suite.Describe("text", func(g *Group) {
		g.It("joins", func(t *T) {
			h.ran++
			t.EqualStr("a,b", strings.Join([]string{"a", "b"}, ","))
		})
		g.It("upper", func(t *T) {
			h.ran++
			t.EqualStr("AB", strings.ToUpper("ab"))
		})
	})
	return h
}

func (h *harness) main(args ...string) int {
	return h.suite.Main(append(args, "--results", h.results, "--no-timer"))
}

func TestMain_ReportsAndSetsExitCode(t *testing.T) {
	h := newHarness(t)

	code := h.main("text")
	assert.Equal(t, ExitPassed, code)
	assert.Equal(t, 2, h.ran)
	assert.Equal(t, ""+
		"Testing text:\n"+
		"    ✓ Success: joins\n"+
		"    ✓ Success: upper\n"+
		"text: Passed 2/2 tests.\n"+
		"\n"+
		"Total: Passed 2/2 tests\n", h.stdout.String())

	h.stdout.Reset()
	code = h.main()
	assert.Equal(t, ExitFailed, code)
	assert.Contains(t, h.stdout.String(), "✕ Failed:  divides: expected 4 to equal 3")
	assert.Contains(t, h.stdout.String(), "Total: Passed 3/4 tests\n")
	assert.Empty(t, h.stderr.String())
}

func TestMain_Quiet(t *testing.T) {
	h := newHarness(t)

	code := h.main("-q", "math")
	assert.Equal(t, ExitPassed, code)
	assert.Equal(t, "Total: Passed 2/2 tests\n", h.stdout.String())
}

func TestMain_ShortCircuits(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"-v"}, {"--help"}, {"-h"}} {
		h := newHarness(t)
		code := h.main(args...)
		assert.Equal(t, ExitPassed, code, args)
		assert.Zero(t, h.ran, "%v ran cases", args)
	}

	h := newHarness(t)
	h.main("--version")
	assert.Contains(t, h.stdout.String(), "1.2.3")
}

func TestMain_ConfigErrorsStopBeforeAnyCase(t *testing.T) {
	h := newHarness(t)
	h.env["SNOW_QUIET"] = "sometimes"
	assert.Equal(t, ExitUsage, h.main())
	assert.Zero(t, h.ran)
	assert.Contains(t, h.stderr.String(), "SNOW_QUIET")

	h = newHarness(t)
	missingDir := filepath.Join(t.TempDir(), "missing", "out.log")
	assert.Equal(t, ExitUsage, h.main("--log", missingDir))
	assert.Zero(t, h.ran)
	assert.Contains(t, h.stderr.String(), "log file")

	h = newHarness(t)
	assert.Equal(t, ExitUsage, h.main("--color", "--no-color"))
	assert.Zero(t, h.ran)

	h = newHarness(t)
	assert.Equal(t, ExitUsage, h.main("nothing-like-this"))
	assert.Zero(t, h.ran)
}

func TestMain_LogFile(t *testing.T) {
	h := newHarness(t)
	h.env["SNOW_MAYBES"] = "true"
	h.env["SNOW_CR"] = "true"
	logPath := filepath.Join(t.TempDir(), "report.log")

	code := h.main("--log", logPath)
	assert.Equal(t, ExitFailed, code)
	assert.Empty(t, h.stdout.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	report := string(data)
	assert.NotContains(t, report, "\r")
	assert.Contains(t, report, "    ? Testing: adds\n    ✓ Success: adds\n")
	assert.True(t, strings.HasSuffix(report, "Total: Passed 3/4 tests\n"))
}

func TestMain_EnvSelectsOptions(t *testing.T) {
	h := newHarness(t)
	h.env["SNOW_QUIET"] = "1"

	h.main("text")
	assert.Equal(t, "Total: Passed 2/2 tests\n", h.stdout.String())

	// Flags win over the environment
	h.stdout.Reset()
	h.main("text", "--quiet=false")
	assert.Contains(t, h.stdout.String(), "Testing text:")
}

func TestMain_StoredResults(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitFailed, h.main())

	h.stdout.Reset()
	require.Equal(t, ExitPassed, h.main("list"))
	out := h.stdout.String()
	assert.Contains(t, out, "Found 4 test case(s) in 2 group(s)")
	assert.Contains(t, out, "divides [F]")
	assert.NotContains(t, out, "adds [F]")
	assert.Equal(t, 4, h.ran, "list must not run cases")

	h.stdout.Reset()
	require.Equal(t, ExitPassed, h.main("stats"))
	out = h.stdout.String()
	assert.Contains(t, out, "Test Execution Statistics")
	assert.Contains(t, out, "1 of 4 test case(s) failed")
	assert.Contains(t, out, "divides: expected 4 to equal 3")
}

func TestMain_NoResults(t *testing.T) {
	h := newHarness(t)
	h.main("--no-results")
	_, err := os.Stat(h.results)
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, ExitUsage, h.main("stats"))
}

func TestMain_StatsFromLog(t *testing.T) {
	h := newHarness(t)
	logPath := filepath.Join(t.TempDir(), "report.log")
	h.main("--log", logPath, "--no-results")

	h.stdout.Reset()
	require.Equal(t, ExitPassed, h.main("stats", "--from-log", logPath))
	out := h.stdout.String()
	assert.Contains(t, out, "1 of 4 test case(s) failed")
	assert.NotContains(t, out, "summary line says")
}

func TestSuite_Run(t *testing.T) {
	h := newHarness(t)
	cfg := DefaultConfig()
	cfg.Timer = false
	cfg.Patterns = []string{"ma*"}

	var out bytes.Buffer
	report := h.suite.Run(cfg, &out)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Total)
	assert.False(t, report.OK())
	assert.Equal(t, 4, h.suite.Cases())
	assert.Contains(t, out.String(), "Total: Passed 1/2 tests\n")
}

func TestMain_GroupNamedLikeSubcommand(t *testing.T) {
	h := newHarness(t)
	h.suite.Describe("stats", func(g *Group) {
		g.It("counts", func(t *T) { h.ran++ })
	})

	h.main("--help")
	assert.Contains(t, h.stdout.String(), "'stat?'")

	h.stdout.Reset()
	require.Equal(t, ExitPassed, h.main("stat?"))
	assert.Equal(t, 1, h.ran)
	assert.Contains(t, h.stdout.String(), "Testing stats:")
}
