package services

import (
	"context"
	"fmt"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService provides access to stored analyses.
type HistoryService struct {
	store    driven.AnalysisStore
	settings driving.SettingsService
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.AnalysisStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		store:    store,
		settings: settings,
	}
}

// List returns stored analyses newest first.
// A non-positive limit falls back to the configured default.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Analysis, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}

	if limit <= 0 {
		limit = s.defaultLimit()
	}

	analyses, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	return analyses, nil
}

// Get retrieves a stored analysis by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Delete removes a stored analysis by ID.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrHistoryDisabled
	}
	if id == "" {
		return domain.ErrInvalidInput
	}

	// Surface unknown IDs instead of silently succeeding.
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// Clear removes all stored analyses and returns how many were removed.
func (s *HistoryService) Clear(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, domain.ErrHistoryDisabled
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting analyses: %w", err)
	}
	if err := s.store.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clearing analyses: %w", err)
	}
	return count, nil
}

// defaultLimit returns the configured listing limit.
func (s *HistoryService) defaultLimit() int {
	defaults := domain.DefaultAppSettings().History.Limit
	if s.settings == nil {
		return defaults
	}
	settings, err := s.settings.Get()
	if err != nil {
		return defaults
	}
	return settings.History.Limit
}
