package driving

import (
	"context"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// AnalyzeOptions adjusts a single analysis request.
type AnalyzeOptions struct {
	// Title labels the analysis in history listings.
	Title string

	// Source records where the text came from.
	Source string

	// NoSave skips history persistence for this request.
	NoSave bool
}

// AnalyzerService scores a piece of text.
type AnalyzerService interface {
	// Analyze computes heuristic features, scores, flagged sentences
	// and sentiment for the given text.
	// Returns domain.ErrTextTooShort when the trimmed input is below
	// the configured minimum length.
	Analyze(ctx context.Context, text string, opts AnalyzeOptions) (*domain.Analysis, error)
}
