package httpapi

import (
	"errors"

	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// ErrMissingAnalyzerService indicates the analyzer port was not provided.
var ErrMissingAnalyzerService = errors.New("httpapi: analyzer service is required")

// Ports aggregates all driving port interfaces required by the HTTP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer scores submitted text.
	Analyzer driving.AnalyzerService

	// History provides read access to stored analyses.
	History driving.HistoryService

	// Settings supplies server configuration.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	// History and Settings are optional; endpoints degrade gracefully
	return nil
}
