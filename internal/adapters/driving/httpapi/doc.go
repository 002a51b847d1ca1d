// Package httpapi exposes the analyzer over HTTP. It serves the JSON
// scoring endpoint, read access to the analysis history, and the
// embedded browser UI.
package httpapi
