package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"snow/internal/config"
	"snow/internal/domain"
	"snow/internal/engine"
	"snow/internal/parser"
)

// Formatter prints the declared tree and stored run statistics
type Formatter struct {
	config *config.Config
	out    io.Writer
	group  *color.Color
	test   *color.Color
	good   *color.Color
	bad    *color.Color
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	f := &Formatter{
		config: cfg,
		out:    out,
		group:  color.New(color.FgCyan),
		test:   color.New(color.FgYellow),
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{f.group, f.test, f.good, f.bad} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// PrintTestList prints the declared groups and cases as a tree.
// failed is optional; cases whose full name is in it are marked with [F]
// (from the last stored run).
func (f *Formatter) PrintTestList(roots []*engine.Node, failed map[string]struct{}) {
	f.good.Fprintf(f.out, "Found %d test case(s) in %d group(s):\n", engine.CountCases(roots), len(roots))
	for i, root := range roots {
		f.printNode(root, nil, "", i == len(roots)-1, failed)
	}
}

func (f *Formatter) printNode(n *engine.Node, path []string, prefix string, isLast bool, failed map[string]struct{}) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	if n.Kind == engine.KindCase {
		marker := ""
		record := domain.CaseRecord{Path: path, Name: n.Name}
		if _, ok := failed[record.FullName()]; ok {
			marker = " " + f.bad.Sprint("[F]")
		}
		fmt.Fprintf(f.out, "%s%s%s%s\n", prefix, connector, f.test.Sprint(n.Name), marker)
		return
	}

	fmt.Fprintf(f.out, "%s%s%s\n", prefix, connector, f.group.Sprint(n.Name))
	if len(n.Children) == 0 {
		fmt.Fprintf(f.out, "%s└── %s\n", childPrefix, f.bad.Sprint("(no test cases)"))
		return
	}
	childPath := append(append([]string(nil), path...), n.Name)
	for i, child := range n.Children {
		f.printNode(child, childPath, childPrefix, i == len(n.Children)-1, failed)
	}
}

// PrintMetaStats prints a stored run as a table followed by its failures
func (f *Formatter) PrintMetaStats(record *domain.RunRecord) {
	meta := record.Meta

	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.SetTitle("Test Execution Statistics")
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Value", Align: text.AlignRight},
	})
	t.AppendRows([]table.Row{
		{"Total Cases", meta.TotalCases},
		{"Passed Cases", meta.PassedCases},
		{"Failed Cases", meta.FailedCases},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds)},
		{"Timestamp", meta.Timestamp},
	})
	if f.config.Color {
		if meta.FailedCases == 0 {
			t.SetStyle(table.StyleColoredBlackOnGreenWhite)
		} else {
			t.SetStyle(table.StyleColoredBlackOnRedWhite)
		}
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.Render()

	fmt.Fprintln(f.out)
	if meta.FailedCases == 0 {
		f.good.Fprintln(f.out, "✓ All tests passed!")
		return
	}
	f.bad.Fprintf(f.out, "✕ %d of %d test case(s) failed\n", meta.FailedCases, meta.TotalCases)
	fmt.Fprintln(f.out)
	f.printFailedTestsTree(record.Details)
}

// PrintTranscriptStats prints the statistics of a parsed report
func (f *Formatter) PrintTranscriptStats(transcript *parser.Transcript) {
	passed := len(transcript.Outcomes) - len(transcript.Failures())
	record := &domain.RunRecord{
		Meta: domain.RunMeta{
			TotalCases:  len(transcript.Outcomes),
			PassedCases: passed,
			FailedCases: len(transcript.Failures()),
			Timestamp:   "-",
		},
	}
	for _, o := range transcript.Failures() {
		record.Details = append(record.Details, domain.CaseFailure{CaseName: o.Text})
	}
	f.PrintMetaStats(record)
	if s := transcript.Summary; s != nil && (s.Passed != passed || s.Total != len(transcript.Outcomes)) {
		f.bad.Fprintf(f.out, "summary line says %d/%d, found %d/%d case lines\n",
			s.Passed, s.Total, passed, len(transcript.Outcomes))
	}
}

// TreeNode represents a group in the failure tree
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.CaseFailure
}

// printFailedTestsTree prints failures grouped by their group path
func (f *Formatter) printFailedTestsTree(failures []domain.CaseFailure) {
	root := &TreeNode{Children: make(map[string]*TreeNode)}
	for _, failure := range failures {
		current := root
		if failure.GroupPath != "" {
			for _, part := range strings.Split(failure.GroupPath, domain.PathSeparator) {
				if current.Children[part] == nil {
					current.Children[part] = &TreeNode{Name: part, Children: make(map[string]*TreeNode)}
				}
				current = current.Children[part]
			}
		}
		current.Failures = append(current.Failures, failure)
	}
	f.printTreeNode(root, "")
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string) {
	for _, failure := range node.Failures {
		line := failure.CaseName
		if failure.Message != "" {
			line += ": " + failure.Message
		}
		f.bad.Fprintf(f.out, "%s|_ %s\n", prefix, line)
	}

	// Sort children for consistent output
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f.group.Fprintf(f.out, "%s%s\n", prefix, key)
		f.printTreeNode(node.Children[key], prefix+"  ")
	}
}
