package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"snow/internal/domain"
	"snow/internal/storage"
)

var _ Viewer = &ErrorViewer{}

// ErrorViewer displays stored failures in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// View displays failures and lets the user mark them resolved
func (ev *ErrorViewer) View(record *domain.RunRecord) error {
	if len(record.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	// Track resolved failures (by index), loaded from the stored run
	resolved := make(map[int]bool)
	for i, failure := range record.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolvedStatus := func() error {
		for i := range record.Details {
			record.Details[i].Resolved = resolved[i]
		}
		return ev.storage.SaveOutput(record)
	}

	app := tview.NewApplication()

	// Failed cases on the left
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		name := record.Details[index].CaseName
		if name == "" {
			name = fmt.Sprintf("Case %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(name))
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(name))
	}

	for i := range record.Details {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on the left (1/3), details on the right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for i := range record.Details {
			if !resolved[i] {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ", len(record.Details), unresolved))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(record.Details) {
			failure := record.Details[index]
			statsView.SetText(FormatFailureStats(failure, index+1))
			detailsView.SetText(FormatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(record.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, getListItemText(index), "")
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						statsView.SetText(fmt.Sprintf("[red]failed to save: %s[white]", tview.Escape(err.Error())))
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// FormatFailureDetails formats a failure using tview color tags
func FormatFailureDetails(failure domain.CaseFailure) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✕ Case: %s[white]\n\n", tview.Escape(failure.CaseName))
	if failure.GroupPath != "" {
		fmt.Fprintf(w, "[cyan]Group: %s[white]\n", tview.Escape(failure.GroupPath))
	}
	fmt.Fprintf(w, "[cyan]Duration: %.4fs[white]\n\n", failure.DurationSeconds)
	if failure.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	}

	w.Flush()
	return builder.String()
}

// FormatFailureStats formats the header line for a failure
func FormatFailureStats(failure domain.CaseFailure, number int) string {
	path := failure.GroupPath
	if path == "" {
		path = "(top level)"
	}
	name := failure.CaseName
	if name == "" {
		name = fmt.Sprintf("Case %d", number)
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white] > [yellow]%s[white]\n", tview.Escape(path), tview.Escape(name))
}
