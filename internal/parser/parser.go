package parser

import (
	"io"

	"snow/internal/domain"
)

// Parser reads a report back into results
type Parser interface {
	Parse(r io.Reader) (*Transcript, error)
}

// Outcome is one case result line found in a report
type Outcome struct {
	Passed bool
	Text   string // everything after the marker, without the timer suffix
	Depth  int
}

// Transcript is the content of a report with terminal effects removed
type Transcript struct {
	Lines    []string // normalized lines, in order
	Outcomes []Outcome
	Summary  *domain.Summary // nil when the summary line is missing
}

// Failures returns the failed outcomes
func (t *Transcript) Failures() []Outcome {
	var failed []Outcome
	for _, o := range t.Outcomes {
		if !o.Passed {
			failed = append(failed, o)
		}
	}
	return failed
}
