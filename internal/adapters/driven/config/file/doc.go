// Package file provides a TOML-file-backed implementation of the
// ConfigStore port. Settings live in ~/.paperiq/config.toml by default.
package file
