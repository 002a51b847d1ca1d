package plaintext

import (
	"strings"
	"unicode/utf8"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text documents.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedExtensions returns the file extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".text", ".log", ""}
}

// Extract returns the content as a string, rejecting binary input.
func (e *Extractor) Extract(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", domain.ErrUnsupportedFormat
	}
	return strings.TrimSpace(string(raw)), nil
}
