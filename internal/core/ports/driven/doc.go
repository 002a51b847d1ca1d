// Package driven defines the driven (outbound) ports of the hexagonal
// architecture: interfaces the core depends on and adapters implement.
package driven
