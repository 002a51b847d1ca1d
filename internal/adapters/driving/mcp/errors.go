// Package mcp provides an MCP (Model Context Protocol) server adapter for PaperIQ.
// It enables AI assistants like Claude to score text and browse past analyses.
package mcp

import "errors"

// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
var ErrMissingAnalyzerService = errors.New("mcp: analyzer service is required")
