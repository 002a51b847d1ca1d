package driven

import (
	"context"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// AnalysisStore persists completed analyses.
type AnalysisStore interface {
	// Save stores an analysis. Saving an existing ID overwrites it.
	Save(ctx context.Context, analysis *domain.Analysis) error

	// Get retrieves an analysis by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Analysis, error)

	// List returns analyses newest first, at most limit entries.
	// A non-positive limit returns all entries.
	List(ctx context.Context, limit int) ([]domain.Analysis, error)

	// Delete removes an analysis by ID.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every stored analysis.
	DeleteAll(ctx context.Context) error

	// Count returns the number of stored analyses.
	Count(ctx context.Context) (int, error)
}
