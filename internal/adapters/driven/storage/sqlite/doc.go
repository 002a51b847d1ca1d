// Package sqlite provides a SQLite-backed implementation of the
// AnalysisStore port for persisting analysis history.
package sqlite
