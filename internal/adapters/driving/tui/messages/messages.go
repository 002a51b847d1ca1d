// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// AnalysisCompleted carries a finished analysis back to the model.
type AnalysisCompleted struct {
	Analysis *domain.Analysis
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEditor is the text entry view.
	ViewEditor ViewType = iota
	// ViewResults shows the scorecard for the last analysis.
	ViewResults
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
