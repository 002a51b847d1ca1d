package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleAnalysis(id string, createdAt time.Time) *domain.Analysis {
	return &domain.Analysis{
		ID:     id,
		Title:  "Essay " + id,
		Source: "cli",
		Text:   "A persuasive essay about public transport funding.",
		Scores: domain.Scorecard{
			Composite: 71.2,
			Language:  64.5,
			Coherence: 88.0,
			Reasoning: 62.3,
		},
		Features: domain.Features{
			WordCount:      120,
			SentenceCount:  8,
			AvgSentenceLen: 15,
			TTR:            0.72,
		},
		Flagged:    []string{"An overly long sentence."},
		Sentiments: []domain.SentenceSentiment{{Text: "Good idea.", Polarity: 0.7, Subjectivity: 0.6}},
		CreatedAt:  createdAt,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := sampleAnalysis("a1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Scores, got.Scores)
	assert.Equal(t, want.Features.TTR, got.Features.TTR)
	assert.Equal(t, want.Flagged, got.Flagged)
	assert.Equal(t, want.Sentiments, got.Sentiments)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_SaveUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := sampleAnalysis("a1", time.Now().UTC())
	require.NoError(t, store.Save(ctx, a))

	a.Title = "Revised title"
	require.NoError(t, store.Save(ctx, a))

	got, err := store.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Revised title", got.Title)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_SaveInvalid(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(ctx, &domain.Analysis{}), domain.ErrInvalidInput)
}

func TestStore_GetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_List_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 5; i++ {
		a := sampleAnalysis(fmt.Sprintf("a%d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.Save(ctx, a))
	}

	analyses, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, analyses, 3)
	assert.Equal(t, "a4", analyses[0].ID)
	assert.Equal(t, "a3", analyses[1].ID)
	assert.Equal(t, "a2", analyses[2].ID)

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleAnalysis("a1", time.Now().UTC())))
	require.NoError(t, store.Delete(ctx, "a1"))

	_, err := store.Get(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "a1"), domain.ErrNotFound)
}

func TestStore_DeleteAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, sampleAnalysis(fmt.Sprintf("a%d", i), time.Now().UTC())))
	}
	require.NoError(t, store.DeleteAll(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), sampleAnalysis("a1", time.Now().UTC())))
	require.NoError(t, first.Close())

	// Reopening runs migrate again against the existing schema.
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}
