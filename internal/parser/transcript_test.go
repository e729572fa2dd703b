package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snow/internal/domain"
)

func TestTranscriptParser_Parse(t *testing.T) {
	report := "" +
		"Testing asserts:\n" +
		"    ? Testing: first\r    \x1b[32;1m✓ Success: \x1b[0mfirst (0.02ms)\n" +
		"    ? Testing: second\n" +
		"    \x1b[31;1m✕ Failed:  \x1b[0msecond: expected 1 to equal 2 (1.00µs)\n" +
		"asserts: Passed 1/2 tests.\n" +
		"\n" +
		"Total: Passed 1/2 tests\n"

	transcript, err := NewTranscriptParser().Parse(strings.NewReader(report))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Testing asserts:",
		"    ✓ Success: first",
		"    ✕ Failed:  second: expected 1 to equal 2",
		"asserts: Passed 1/2 tests.",
		"",
		"Total: Passed 1/2 tests",
	}, transcript.Lines)

	assert.Equal(t, []Outcome{
		{Passed: true, Text: "first", Depth: 1},
		{Passed: false, Text: "second: expected 1 to equal 2", Depth: 1},
	}, transcript.Outcomes)
	assert.Len(t, transcript.Failures(), 1)

	require.NotNil(t, transcript.Summary)
	assert.Equal(t, domain.Summary{Passed: 1, Total: 2}, *transcript.Summary)
}

func TestTranscriptParser_NoSummary(t *testing.T) {
	transcript, err := NewTranscriptParser().Parse(strings.NewReader("Testing x:\n"))
	require.NoError(t, err)
	assert.Nil(t, transcript.Summary)
	assert.Empty(t, transcript.Outcomes)
}
