package driven

// Extractor converts a document file format into plain text for analysis.
type Extractor interface {
	// SupportedExtensions returns the lowercase file extensions
	// (including the dot) this extractor handles.
	SupportedExtensions() []string

	// Extract returns the plain text content of the raw file bytes.
	Extract(content []byte) (string, error)
}
