package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"snow/internal/domain"
	"snow/internal/engine"
)

var _ engine.Listener = &ProgressBar{}

// ProgressBar shows run progress while the report itself goes to a log file
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
}

// NewProgressBar creates a new progress bar for count cases
func NewProgressBar(count int, out io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func (p *ProgressBar) GroupEntered(*engine.Node, int)                {}
func (p *ProgressBar) GroupExited(*engine.Node, int, domain.Summary) {}
func (p *ProgressBar) CaseStarted(*engine.Node, int)                 {}

// CaseFinished advances the bar
func (p *ProgressBar) CaseFinished(_ *engine.Node, _ int, result domain.Result) {
	if result.Passed() {
		p.passed++
	} else {
		p.failed++
	}
	p.Update(p.passed, p.failed)
}

// Update updates the progress bar with success and failure counts
func (p *ProgressBar) Update(successCount, failCount int) {
	p.bar.Set(successCount + failCount)
	p.bar.Describe(describe(successCount, failCount))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

func describe(successCount, failCount int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", successCount) +
		" | " +
		color.RedString("failed: %d]", failCount)
}
