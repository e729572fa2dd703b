package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"snow/internal/config"
	"snow/internal/domain"
	"snow/internal/engine"
)

const indentUnit = "    "

// Line markers. All three have the same width so a result line fully
// covers the provisional line it overwrites.
const (
	MarkerSuccess = "✓ Success: "
	MarkerFailure = "✕ Failed:  "
	MarkerMaybe   = "? Testing: "
)

var _ engine.Listener = &Reporter{}

// Reporter renders engine events as indented text
type Reporter struct {
	out     io.Writer
	quiet   bool
	timer   bool
	maybes  bool
	cr      bool
	success *color.Color
	failure *color.Color
}

// NewReporter creates a Reporter writing to out. A log file is always
// written with plain newlines, whatever the cr setting.
func NewReporter(cfg *config.Config, out io.Writer) *Reporter {
	r := &Reporter{
		out:     out,
		quiet:   cfg.Quiet,
		timer:   cfg.Timer,
		maybes:  cfg.Maybes,
		cr:      cfg.CR && cfg.LogFile == "",
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.success, r.failure} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// GroupEntered prints the group header
func (r *Reporter) GroupEntered(group *engine.Node, depth int) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "%sTesting %s:\n", indent(depth), group.Name)
}

// GroupExited prints the group's own tally
func (r *Reporter) GroupExited(group *engine.Node, depth int, stats domain.Summary) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "%s%s: Passed %d/%d tests.\n", indent(depth), group.Name, stats.Passed, stats.Total)
	if depth == 0 {
		fmt.Fprintln(r.out)
	}
}

// CaseStarted prints the provisional line in maybe mode
func (r *Reporter) CaseStarted(c *engine.Node, depth int) {
	if r.quiet || !r.maybes {
		return
	}
	end := "\n"
	if r.cr {
		end = "\r"
	}
	fmt.Fprintf(r.out, "%s%s%s%s", indent(depth), MarkerMaybe, c.Name, end)
}

// CaseFinished prints the result line
func (r *Reporter) CaseFinished(c *engine.Node, depth int, result domain.Result) {
	var line strings.Builder
	line.WriteString(indent(depth))
	if result.Passed() {
		if r.quiet {
			return
		}
		line.WriteString(r.success.Sprint(MarkerSuccess))
		line.WriteString(c.Name)
	} else {
		line.WriteString(r.failure.Sprint(MarkerFailure))
		line.WriteString(c.Name)
		line.WriteString(": ")
		line.WriteString(result.Message)
	}
	if r.timer {
		fmt.Fprintf(&line, " (%s)", FormatElapsed(result.Elapsed))
	}
	line.WriteString("\n")
	io.WriteString(r.out, line.String())
}

// Summary prints the final tally. It is printed in every mode.
func (r *Reporter) Summary(s domain.Summary) {
	fmt.Fprintf(r.out, "Total: Passed %d/%d tests\n", s.Passed, s.Total)
}

// FormatElapsed renders a duration with two decimals in µs, ms or s
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
