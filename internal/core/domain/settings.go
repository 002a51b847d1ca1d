package domain

// AppSettings holds all configurable application settings.
type AppSettings struct {
	// Server configures the HTTP API.
	Server ServerSettings

	// History configures analysis persistence.
	History HistorySettings

	// Analyze configures the scoring pipeline.
	Analyze AnalyzeSettings
}

// ServerSettings configures the HTTP API server.
type ServerSettings struct {
	// Addr is the listen address, host:port.
	Addr string

	// RateLimit is the sustained requests-per-second allowed per server.
	RateLimit float64

	// Burst is the rate limiter burst size.
	Burst int

	// UIEnabled serves the embedded browser UI at / when true.
	UIEnabled bool
}

// HistorySettings configures analysis persistence.
type HistorySettings struct {
	// Enabled persists analyses to the store when true.
	Enabled bool

	// Limit is the default number of entries returned by listings.
	Limit int
}

// AnalyzeSettings configures the scoring pipeline.
type AnalyzeSettings struct {
	// FlagCount is how many flagged sentences an analysis reports.
	FlagCount int

	// MinLength is the minimum input length in characters.
	MinLength int
}

// DefaultAppSettings returns the built-in defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr:      "localhost:8000",
			RateLimit: 10,
			Burst:     20,
			UIEnabled: true,
		},
		History: HistorySettings{
			Enabled: true,
			Limit:   20,
		},
		Analyze: AnalyzeSettings{
			FlagCount: 5,
			MinLength: MinTextLength,
		},
	}
}
