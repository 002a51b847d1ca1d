package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

func sampleAnalysis(id string, createdAt time.Time) *domain.Analysis {
	return &domain.Analysis{
		ID:        id,
		Text:      "sample text for the analysis store",
		Scores:    domain.Scorecard{Composite: 70},
		CreatedAt: createdAt,
	}
}

func TestAnalysisStore_SaveAndGet(t *testing.T) {
	store := NewAnalysisStore()
	ctx := context.Background()

	a := sampleAnalysis("a1", time.Now())
	require.NoError(t, store.Save(ctx, a))

	got, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, a.Text, got.Text)
	assert.Equal(t, a.Scores.Composite, got.Scores.Composite)
}

func TestAnalysisStore_Save_Invalid(t *testing.T) {
	store := NewAnalysisStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(ctx, &domain.Analysis{}), domain.ErrInvalidInput)
}

func TestAnalysisStore_Get_NotFound(t *testing.T) {
	store := NewAnalysisStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalysisStore_List_NewestFirstWithLimit(t *testing.T) {
	store := NewAnalysisStore()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, store.Save(ctx, sampleAnalysis("old", base.Add(-2*time.Hour))))
	require.NoError(t, store.Save(ctx, sampleAnalysis("mid", base.Add(-time.Hour))))
	require.NoError(t, store.Save(ctx, sampleAnalysis("new", base)))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
	assert.Equal(t, "mid", limited[1].ID)
}

func TestAnalysisStore_DeleteAndCount(t *testing.T) {
	store := NewAnalysisStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleAnalysis("a1", time.Now())))
	require.NoError(t, store.Save(ctx, sampleAnalysis("a2", time.Now())))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, store.Delete(ctx, "a1"))
	_, err = store.Get(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.DeleteAll(ctx))
	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
