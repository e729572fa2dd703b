package ui

import "snow/internal/domain"

// Viewer displays stored failures in an interactive TUI
type Viewer interface {
	View(record *domain.RunRecord) error
}
