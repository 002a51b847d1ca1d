// Package domain contains the core business entities for PaperIQ.
// It has no dependencies on adapters or external frameworks.
package domain
