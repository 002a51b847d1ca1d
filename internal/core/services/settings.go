package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyServerAddr      = "server.addr"
	keyServerRateLimit = "server.rate_limit"
	keyServerBurst     = "server.burst"
	keyServerUIEnabled = "server.ui_enabled"
	keyHistoryEnabled  = "history.enabled"
	keyHistoryLimit    = "history.limit"
	keyAnalyzeFlags    = "analyze.flag_count"
	keyAnalyzeMinLen   = "analyze.min_length"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Addr:      s.getString(keyServerAddr, defaults.Server.Addr),
			RateLimit: s.getFloat(keyServerRateLimit, defaults.Server.RateLimit),
			Burst:     s.getInt(keyServerBurst, defaults.Server.Burst),
			UIEnabled: s.getBool(keyServerUIEnabled, defaults.Server.UIEnabled),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Limit:   s.getInt(keyHistoryLimit, defaults.History.Limit),
		},
		Analyze: domain.AnalyzeSettings{
			FlagCount: s.getInt(keyAnalyzeFlags, defaults.Analyze.FlagCount),
			MinLength: s.getInt(keyAnalyzeMinLen, defaults.Analyze.MinLength),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyServerAddr, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}
	if err := s.configStore.Set(keyServerRateLimit, settings.Server.RateLimit); err != nil {
		return fmt.Errorf("save server rate_limit: %w", err)
	}
	if err := s.configStore.Set(keyServerBurst, settings.Server.Burst); err != nil {
		return fmt.Errorf("save server burst: %w", err)
	}
	if err := s.configStore.Set(keyServerUIEnabled, settings.Server.UIEnabled); err != nil {
		return fmt.Errorf("save server ui_enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryLimit, settings.History.Limit); err != nil {
		return fmt.Errorf("save history limit: %w", err)
	}
	if err := s.configStore.Set(keyAnalyzeFlags, settings.Analyze.FlagCount); err != nil {
		return fmt.Errorf("save analyze flag_count: %w", err)
	}
	if err := s.configStore.Set(keyAnalyzeMinLen, settings.Analyze.MinLength); err != nil {
		return fmt.Errorf("save analyze min_length: %w", err)
	}
	return nil
}

// SetKey validates and persists a single dot-notation key.
func (s *SettingsService) SetKey(key, value string) error {
	switch key {
	case keyServerAddr:
		if !strings.Contains(value, ":") {
			return fmt.Errorf("%w: addr must be host:port", domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case keyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, f)

	case keyServerBurst, keyHistoryLimit, keyAnalyzeFlags, keyAnalyzeMinLen:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, n)

	case keyServerUIEnabled, keyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, b)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys returns the settable configuration keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyServerAddr,
		keyServerRateLimit,
		keyServerBurst,
		keyServerUIEnabled,
		keyHistoryEnabled,
		keyHistoryLimit,
		keyAnalyzeFlags,
		keyAnalyzeMinLen,
	}
	sort.Strings(keys)
	return keys
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
