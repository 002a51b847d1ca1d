package driving

import (
	"context"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// HistoryService provides access to stored analyses.
type HistoryService interface {
	// List returns stored analyses newest first, at most limit entries.
	// A non-positive limit uses the configured default.
	List(ctx context.Context, limit int) ([]domain.Analysis, error)

	// Get retrieves a stored analysis by ID.
	Get(ctx context.Context, id string) (*domain.Analysis, error)

	// Delete removes a stored analysis by ID.
	Delete(ctx context.Context, id string) error

	// Clear removes all stored analyses and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
