package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/storage/memory"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

func seededHistory(t *testing.T, n int) (*HistoryService, *memory.AnalysisStore) {
	t.Helper()
	store := memory.NewAnalysisStore()
	base := time.Now()
	for i := 0; i < n; i++ {
		err := store.Save(context.Background(), &domain.Analysis{
			ID:        fmt.Sprintf("a%d", i),
			Text:      "stored analysis text long enough to be valid",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	return NewHistoryService(store, NewSettingsService(memory.NewConfigStore())), store
}

func TestHistoryService_List_DefaultLimit(t *testing.T) {
	svc, _ := seededHistory(t, 25)

	analyses, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, analyses, domain.DefaultAppSettings().History.Limit)

	// Newest entry first.
	assert.Equal(t, "a24", analyses[0].ID)
}

func TestHistoryService_List_ExplicitLimit(t *testing.T) {
	svc, _ := seededHistory(t, 5)

	analyses, err := svc.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, analyses, 2)
}

func TestHistoryService_Get(t *testing.T) {
	svc, _ := seededHistory(t, 1)

	got, err := svc.Get(context.Background(), "a0")
	require.NoError(t, err)
	assert.Equal(t, "a0", got.ID)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_Delete(t *testing.T) {
	svc, store := seededHistory(t, 2)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "a0"))
	_, err := store.Get(ctx, "a0")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "a0"), domain.ErrNotFound)
}

func TestHistoryService_Clear(t *testing.T) {
	svc, store := seededHistory(t, 3)
	ctx := context.Background()

	removed, err := svc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHistoryService_NilStore(t *testing.T) {
	svc := NewHistoryService(nil, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
	_, err = svc.Get(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
	assert.ErrorIs(t, svc.Delete(ctx, "x"), domain.ErrHistoryDisabled)
	_, err = svc.Clear(ctx)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
}
