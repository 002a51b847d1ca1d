package services

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
)

// fakeReader is a stub DatasetReader returning canned records.
type fakeReader struct {
	source    string
	records   []domain.EssayRecord
	malformed int
	err       error
}

func (r *fakeReader) Source() string { return r.source }

func (r *fakeReader) Read(_ context.Context, _ string) (*driven.DatasetResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &driven.DatasetResult{Records: r.records, Malformed: r.malformed}, nil
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips_anonymisation_tokens",
			in:   "Dear @PERSON1, I visited @LOCATION2 with @ORGANIZATION1.",
			want: "Dear , I visited with .",
		},
		{
			name: "collapses_whitespace",
			in:   "too   many\t\tspaces\n\nhere",
			want: "too many spaces here",
		},
		{
			name: "replaces_literal_newlines",
			in:   `first line\nsecond line`,
			want: "first line second line",
		},
		{
			name: "trims",
			in:   "  padded  ",
			want: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestPreprocess_WritesUnifiedCSV(t *testing.T) {
	longText := strings.Repeat("a thoughtful argument ", 4)

	asap := &fakeReader{
		source: domain.DatasetASAP,
		records: []domain.EssayRecord{
			{Source: domain.DatasetASAP, EssayID: "1", EssaySet: "1", Text: longText, Score: 2},
			{Source: domain.DatasetASAP, EssayID: "2", EssaySet: "1", Text: longText, Score: 12},
			{Source: domain.DatasetASAP, EssayID: "3", EssaySet: "1", Text: longText, Score: 7},
			// Dropped: too short after cleaning.
			{Source: domain.DatasetASAP, EssayID: "4", EssaySet: "1", Text: "@PERSON1 @PERSON2 hi", Score: 5},
		},
		malformed: 2,
	}
	persuade := &fakeReader{
		source: domain.DatasetPersuade,
		records: []domain.EssayRecord{
			{Source: domain.DatasetPersuade, EssayID: "p1", EssaySet: "1", Text: longText, Score: 1},
			{Source: domain.DatasetPersuade, EssayID: "p2", EssaySet: "1", Text: longText, Score: 6},
		},
	}

	svc := NewPreprocessService(asap, persuade)
	out := filepath.Join(t.TempDir(), "unified.csv")

	report, err := svc.Preprocess(context.Background(), "asap.tsv", "persuade.csv", out)
	require.NoError(t, err)

	assert.Equal(t, 4, report.ASAPRead)
	assert.Equal(t, 2, report.PersuadeRead)
	assert.Equal(t, 5, report.Written)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 2, report.Malformed)
	assert.Equal(t, out, report.OutputPath)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6) // header + 5 records
	assert.Equal(t, []string{"source", "essay_id", "essay_set", "text", "score", "score_norm"}, rows[0])

	// ASAP set 1 spans scores 2..12: min normalises to 0, max to 1.
	assert.Equal(t, "asap", rows[1][0])
	assert.Equal(t, "0.0000", rows[1][5])
	assert.Equal(t, "1.0000", rows[2][5])
	assert.Equal(t, "0.5000", rows[3][5])

	// PERSUADE maps onto the fixed 1-6 rubric.
	assert.Equal(t, "persuade", rows[4][0])
	assert.Equal(t, "0.0000", rows[4][5])
	assert.Equal(t, "1.0000", rows[5][5])
}

func TestPreprocess_PersuadeUsesFixedRubric(t *testing.T) {
	longText := strings.Repeat("a measured argument ", 4)

	// A dump spanning only 2..5 must still normalise against 1..6,
	// not against the observed range.
	persuade := &fakeReader{
		source: domain.DatasetPersuade,
		records: []domain.EssayRecord{
			{Source: domain.DatasetPersuade, EssayID: "p1", EssaySet: "1", Text: longText, Score: 2},
			{Source: domain.DatasetPersuade, EssayID: "p2", EssaySet: "1", Text: longText, Score: 5},
		},
	}
	asap := &fakeReader{source: domain.DatasetASAP}

	svc := NewPreprocessService(asap, persuade)
	out := filepath.Join(t.TempDir(), "unified.csv")

	_, err := svc.Preprocess(context.Background(), "a", "p", out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "0.2000", rows[1][5])
	assert.Equal(t, "0.8000", rows[2][5])
}

func TestPreprocess_SingleScoreSetNormalisesToOne(t *testing.T) {
	longText := strings.Repeat("steady prose throughout ", 3)
	asap := &fakeReader{
		source: domain.DatasetASAP,
		records: []domain.EssayRecord{
			{Source: domain.DatasetASAP, EssayID: "1", EssaySet: "9", Text: longText, Score: 4},
			{Source: domain.DatasetASAP, EssayID: "2", EssaySet: "9", Text: longText, Score: 4},
		},
	}
	persuade := &fakeReader{source: domain.DatasetPersuade}

	svc := NewPreprocessService(asap, persuade)
	out := filepath.Join(t.TempDir(), "unified.csv")

	report, err := svc.Preprocess(context.Background(), "a", "p", out)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Written)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "1.0000", rows[1][5])
	assert.Equal(t, "1.0000", rows[2][5])
}

func TestPreprocess_MissingPaths(t *testing.T) {
	svc := NewPreprocessService()

	_, err := svc.Preprocess(context.Background(), "", "p", "o")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Preprocess(context.Background(), "a", "", "o")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Preprocess(context.Background(), "a", "p", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreprocess_ReaderError(t *testing.T) {
	svc := NewPreprocessService(&fakeReader{source: domain.DatasetASAP, err: os.ErrNotExist})

	_, err := svc.Preprocess(context.Background(), "a", "p", "o")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
