package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
)

// Ensure AnalysisStore implements the interface.
var _ driven.AnalysisStore = (*AnalysisStore)(nil)

// AnalysisStore is an in-memory implementation of driven.AnalysisStore.
type AnalysisStore struct {
	mu       sync.RWMutex
	analyses map[string]domain.Analysis
}

// NewAnalysisStore creates a new in-memory analysis store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		analyses: make(map[string]domain.Analysis),
	}
}

// Save stores an analysis, overwriting an existing ID.
func (s *AnalysisStore) Save(_ context.Context, analysis *domain.Analysis) error {
	if analysis == nil || analysis.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[analysis.ID] = *analysis
	return nil
}

// Get retrieves an analysis by ID.
func (s *AnalysisStore) Get(_ context.Context, id string) (*domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analysis, ok := s.analyses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &analysis, nil
}

// List returns analyses newest first, at most limit entries.
func (s *AnalysisStore) List(_ context.Context, limit int) ([]domain.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analyses := make([]domain.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		analyses = append(analyses, a)
	}

	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})

	if limit > 0 && limit < len(analyses) {
		analyses = analyses[:limit]
	}
	return analyses, nil
}

// Delete removes an analysis by ID.
func (s *AnalysisStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
	return nil
}

// DeleteAll removes every stored analysis.
func (s *AnalysisStore) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses = make(map[string]domain.Analysis)
	return nil
}

// Count returns the number of stored analyses.
func (s *AnalysisStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses), nil
}
