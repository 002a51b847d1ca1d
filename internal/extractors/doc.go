// Package extractors provides text extraction from the document formats
// the analyze command accepts. Each subpackage implements the Extractor
// port for one format family; ForPath selects the right one by file
// extension.
package extractors
