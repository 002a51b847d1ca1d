package driven

import (
	"context"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// DatasetResult is the outcome of reading one dataset file.
type DatasetResult struct {
	// Records are the parsed essay rows, uncleaned.
	Records []domain.EssayRecord

	// Malformed counts rows that could not be parsed.
	Malformed int
}

// DatasetReader parses a scored essay corpus dump into records.
// Each implementation handles one dataset layout.
type DatasetReader interface {
	// Source returns the dataset identifier the reader produces
	// (domain.DatasetASAP or domain.DatasetPersuade).
	Source() string

	// Read parses the file at path.
	// Returns domain.ErrEmptyDataset when no rows parse at all.
	Read(ctx context.Context, path string) (*DatasetResult, error)
}
