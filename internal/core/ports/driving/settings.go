package driving

import "github.com/paperiq-labs/paperiq-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for
	// unset keys.
	Get() (*domain.AppSettings, error)

	// Save persists the full settings struct.
	Save(settings *domain.AppSettings) error

	// SetKey validates and persists a single dot-notation key.
	SetKey(key, value string) error

	// Keys returns the settable configuration keys.
	Keys() []string
}
