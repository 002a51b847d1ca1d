package driving

import (
	"context"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

// PreprocessService merges and cleans the supported essay corpora
// into a single training-ready CSV file.
type PreprocessService interface {
	// Preprocess reads the ASAP-AES dump at asapPath and the PERSUADE
	// dump at persuadePath, cleans both, and writes the unified CSV to
	// outPath.
	Preprocess(ctx context.Context, asapPath, persuadePath, outPath string) (*domain.CleanReport, error)
}
