package asap

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DatasetReader = (*Reader)(nil)

// Reader parses the ASAP-AES training corpus, a tab-separated file with
// one scored essay per row. The distribution is Latin-1 encoded, so rows
// are transcoded to UTF-8 before use.
type Reader struct{}

// New creates a new ASAP-AES reader.
func New() *Reader {
	return &Reader{}
}

// Source returns the dataset identifier.
func (r *Reader) Source() string {
	return domain.DatasetASAP
}

// Read parses the TSV file at path. Rows with missing columns or an
// unparseable score are counted as malformed and skipped rather than
// failing the whole run.
func (r *Reader) Read(ctx context.Context, path string) (*driven.DatasetResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening asap dataset: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading asap header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	result := &driven.DatasetResult{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Ragged or unquotable row. Count it and move on.
			result.Malformed++
			continue
		}

		rec, ok := parseRow(row, cols)
		if !ok {
			result.Malformed++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if len(result.Records) == 0 {
		return nil, fmt.Errorf("parsing %s: %w", path, domain.ErrEmptyDataset)
	}
	return result, nil
}

// columns holds the indices of the fields we need.
type columns struct {
	essayID  int
	essaySet int
	essay    int
	score    int
}

// columnIndex resolves the required column positions from the header row.
func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}

	cols := columns{essayID: -1, essaySet: -1, essay: -1, score: -1}
	if i, ok := idx["essay_id"]; ok {
		cols.essayID = i
	}
	if i, ok := idx["essay_set"]; ok {
		cols.essaySet = i
	}
	if i, ok := idx["essay"]; ok {
		cols.essay = i
	}
	if i, ok := idx["domain1_score"]; ok {
		cols.score = i
	}

	if cols.essayID < 0 || cols.essaySet < 0 || cols.essay < 0 || cols.score < 0 {
		return cols, fmt.Errorf("%w: asap header missing required columns", domain.ErrInvalidInput)
	}
	return cols, nil
}

// parseRow converts one TSV row into an essay record.
func parseRow(row []string, cols columns) (domain.EssayRecord, bool) {
	max := cols.essayID
	for _, i := range []int{cols.essaySet, cols.essay, cols.score} {
		if i > max {
			max = i
		}
	}
	if len(row) <= max {
		return domain.EssayRecord{}, false
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(row[cols.score]), 64)
	if err != nil {
		return domain.EssayRecord{}, false
	}

	text := decodeLatin1(row[cols.essay])
	if strings.TrimSpace(text) == "" {
		return domain.EssayRecord{}, false
	}

	return domain.EssayRecord{
		Source:   domain.DatasetASAP,
		EssayID:  strings.TrimSpace(row[cols.essayID]),
		EssaySet: strings.TrimSpace(row[cols.essaySet]),
		Text:     text,
		Score:    score,
	}, true
}

// decodeLatin1 transcodes a Latin-1 byte sequence to UTF-8. Input that is
// already valid UTF-8 passes through unchanged.
func decodeLatin1(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b.WriteRune(rune(s[i]))
	}
	return b.String()
}
