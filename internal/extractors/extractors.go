package extractors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
	"github.com/paperiq-labs/paperiq-cli/internal/extractors/docx"
	"github.com/paperiq-labs/paperiq-cli/internal/extractors/markdown"
	"github.com/paperiq-labs/paperiq-cli/internal/extractors/plaintext"
)

// All returns every registered extractor.
func All() []driven.Extractor {
	return []driven.Extractor{
		docx.New(),
		markdown.New(),
		plaintext.New(),
	}
}

// ForPath selects the extractor for a file path by extension.
// Extensionless paths are treated as plain text; an extension no
// extractor claims returns domain.ErrUnsupportedFormat rather than
// guessing at the contents.
func ForPath(path string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range All() {
		for _, supported := range e.SupportedExtensions() {
			if ext == supported {
				return e, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
}
