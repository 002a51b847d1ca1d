// Package tui provides an interactive terminal user interface for PaperIQ.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer scores submitted text.
	Analyzer driving.AnalyzerService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	return nil
}
