package mcp

import (
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer scores submitted text.
	Analyzer driving.AnalyzerService

	// History provides read access to stored analyses.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	// History is optional; the resource degrades to an empty list
	return nil
}
