// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as a fallback when persistence is
// disabled.
package memory
