// Package driving defines the driving (inbound) ports of the hexagonal
// architecture: interfaces the CLI, HTTP, MCP and TUI adapters call into.
package driving
