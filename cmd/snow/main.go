package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"snow/pkg/snow"
)

var version = "dev"

// sample declares a suite where int and buf fail while float and str pass
func sample(stdout, stderr *bytes.Buffer) *snow.Suite {
	s := snow.New(
		snow.WithName("sample"),
		snow.WithVersion(version),
		snow.WithOutput(stdout, stderr),
		snow.WithEnv(func(string) (string, bool) { return "", false }),
	)
	s.Describe("asserts", func(g *snow.Group) {
		g.It("int", func(t *snow.T) { t.EqualInt(1, 2) })
		g.It("float", func(t *snow.T) { t.EqualFloat(1.5, 1.5) })
		g.It("str", func(t *snow.T) { t.NotEqualStr("a", "b") })
		g.It("buf", func(t *snow.T) { t.EqualBuf([]byte("abc"), []byte("abd"), 3) })
	})
	return s
}

func main() {
	suite := snow.New(snow.WithName("snow"), snow.WithVersion(version))

	suite.Describe("asserts", func(g *snow.Group) {
		g.It("int", func(t *snow.T) {
			t.EqualInt(4, 2+2)
			t.NotEqualInt(4, 5)
		})
		g.It("float", func(t *snow.T) {
			t.EqualFloat(0.5, 1.0/2)
			t.NotEqualFloat(0.1, 0.2)
		})
		g.It("ptr", func(t *snow.T) {
			a, b := new(int), new(int)
			t.EqualPtr(a, a)
			t.NotEqualPtr(a, b)
		})
		g.It("str", func(t *snow.T) {
			t.EqualStr("snow", strings.ToLower("SNOW"))
			t.NotEqualStr("snow", "rain")
		})
		g.It("buf", func(t *snow.T) {
			t.EqualBuf([]byte("hello world"), []byte("hello there"), 5)
			t.NotEqualBuf([]byte("abc"), []byte("abd"), 3)
		})
		g.It("generic", func(t *snow.T) {
			t.Equal(int32(7), int64(7))
			t.NotEqual("x", "y")
			t.Assert(len("snow") == 4, "length was %d", len("snow"))
		})
	})

	suite.Describe("defer", func(g *snow.Group) {
		var order []string
		g.It("runs in reverse", func(t *snow.T) {
			order = nil
			t.Defer(func() { order = append(order, "first") })
			t.Defer(func() { order = append(order, "second") })
		})
		g.It("ran in reverse", func(t *snow.T) {
			t.EqualInt(2, int64(len(order)))
			t.EqualStr("second", order[0])
			t.EqualStr("first", order[1])
		})
		g.It("removes temp files", func(t *snow.T) {
			dir, err := os.MkdirTemp("", "snow")
			t.Assert(err == nil, "mkdir: %v", err)
			t.Defer(func() { os.RemoveAll(dir) })

			path := filepath.Join(dir, "data")
			t.Assert(os.WriteFile(path, []byte("snow"), 0644) == nil, "write failed")
			data, err := os.ReadFile(path)
			t.Assert(err == nil, "read: %v", err)
			t.EqualStr("snow", string(data))
		})
	})

	suite.Describe("commandline", func(g *snow.Group) {
		g.It("exit code", func(t *snow.T) {
			var stdout, stderr bytes.Buffer
			t.EqualInt(1, int64(sample(&stdout, &stderr).Main([]string{"--no-results"})))
		})
		g.It("--quiet", func(t *snow.T) {
			var stdout, stderr bytes.Buffer
			sample(&stdout, &stderr).Main([]string{"--quiet", "--no-timer", "--no-results"})
			t.EqualStr(""+
				"    ✕ Failed:  int: expected 1 to equal 2\n"+
				"    ✕ Failed:  buf: expected buffers to be equal (3 bytes): \"abc\" and \"abd\"\n"+
				"Total: Passed 2/4 tests\n", stdout.String())
		})
		g.It("--version", func(t *snow.T) {
			var stdout, stderr bytes.Buffer
			t.EqualInt(0, int64(sample(&stdout, &stderr).Main([]string{"--version"})))
			t.Assert(strings.Contains(stdout.String(), version), "no version in %q", stdout.String())
			t.Assert(!strings.Contains(stdout.String(), "Testing"), "cases ran")
		})
		g.It("--help", func(t *snow.T) {
			var stdout, stderr bytes.Buffer
			t.EqualInt(0, int64(sample(&stdout, &stderr).Main([]string{"--help"})))
			t.Assert(strings.Contains(stdout.String(), "--quiet"), "no usage in %q", stdout.String())
		})
		g.It("--log", func(t *snow.T) {
			dir, err := os.MkdirTemp("", "snow")
			t.Assert(err == nil, "mkdir: %v", err)
			t.Defer(func() { os.RemoveAll(dir) })

			var stdout, stderr bytes.Buffer
			path := filepath.Join(dir, "report.log")
			sample(&stdout, &stderr).Main([]string{"--log", path, "--no-timer", "--no-results"})
			t.EqualStr("", stdout.String())

			var console bytes.Buffer
			sample(&console, &stderr).Main([]string{"--no-timer", "--no-results"})
			data, err := os.ReadFile(path)
			t.Assert(err == nil, "read: %v", err)
			t.EqualStr(console.String(), string(data))
		})
	})

	os.Exit(suite.Main(os.Args[1:]))
}
