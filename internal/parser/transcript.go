package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"snow/internal/domain"
)

const (
	successPrefix = "✓ Success: "
	failurePrefix = "✕ Failed:  "
	maybePrefix   = "? Testing: "
	indentWidth   = 4
)

var (
	ansiPattern    = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	timerPattern   = regexp.MustCompile(` \([0-9]+\.[0-9]{2}(µs|ms|s)\)$`)
	summaryPattern = regexp.MustCompile(`^Total: Passed (\d+)/(\d+) tests$`)
)

// TranscriptParser parses output written by the reporter, either captured
// from a terminal or read from a log file
type TranscriptParser struct{}

// NewTranscriptParser creates a new TranscriptParser
func NewTranscriptParser() *TranscriptParser {
	return &TranscriptParser{}
}

// Parse strips colors, resolves carriage-return overwrites, drops
// provisional lines and timer suffixes, and collects case outcomes.
func (p *TranscriptParser) Parse(r io.Reader) (*Transcript, error) {
	transcript := &Transcript{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := ansiPattern.ReplaceAllString(scanner.Text(), "")
		// Text before the last carriage return was overwritten on screen
		if idx := strings.LastIndex(line, "\r"); idx >= 0 {
			line = line[idx+1:]
		}

		trimmed := strings.TrimLeft(line, " ")
		depth := (len(line) - len(trimmed)) / indentWidth

		switch {
		case trimmed == "":
			if line == "" && len(transcript.Lines) > 0 {
				transcript.Lines = append(transcript.Lines, "")
			}
			continue
		case strings.HasPrefix(trimmed, maybePrefix):
			continue
		case strings.HasPrefix(trimmed, successPrefix):
			text := timerPattern.ReplaceAllString(strings.TrimPrefix(trimmed, successPrefix), "")
			transcript.Outcomes = append(transcript.Outcomes, Outcome{Passed: true, Text: text, Depth: depth})
			line = line[:len(line)-len(trimmed)] + successPrefix + text
		case strings.HasPrefix(trimmed, failurePrefix):
			text := timerPattern.ReplaceAllString(strings.TrimPrefix(trimmed, failurePrefix), "")
			transcript.Outcomes = append(transcript.Outcomes, Outcome{Passed: false, Text: text, Depth: depth})
			line = line[:len(line)-len(trimmed)] + failurePrefix + text
		default:
			if m := summaryPattern.FindStringSubmatch(trimmed); m != nil {
				var s domain.Summary
				fmt.Sscanf(m[1], "%d", &s.Passed)
				fmt.Sscanf(m[2], "%d", &s.Total)
				transcript.Summary = &s
			}
		}
		transcript.Lines = append(transcript.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return transcript, nil
}
