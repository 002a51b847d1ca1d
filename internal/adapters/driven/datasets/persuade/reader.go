package persuade

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DatasetReader = (*Reader)(nil)

// Reader parses the PERSUADE 2.0 corpus, a comma-separated file holding
// one argumentative essay per row with a holistic score.
type Reader struct{}

// New creates a new PERSUADE reader.
func New() *Reader {
	return &Reader{}
}

// Source returns the dataset identifier.
func (r *Reader) Source() string {
	return domain.DatasetPersuade
}

// Read parses the CSV file at path. Rows with missing columns or an
// unparseable score are counted as malformed and skipped.
func (r *Reader) Read(ctx context.Context, path string) (*driven.DatasetResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening persuade dataset: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading persuade header: %w", err)
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
	essayID int
	text    int
	score   int
}

// columnIndex resolves the required column positions from the header row.
// The corpus has shipped under both essay_id and essay_id_comp, so both
// spellings are accepted.
func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}

	cols := columns{essayID: -1, text: -1, score: -1}
	if i, ok := idx["essay_id"]; ok {
		cols.essayID = i
	} else if i, ok := idx["essay_id_comp"]; ok {
		cols.essayID = i
	}
	if i, ok := idx["full_text"]; ok {
		cols.text = i
	}
	if i, ok := idx["holistic_essay_score"]; ok {
		cols.score = i
	}

	if cols.essayID < 0 || cols.text < 0 || cols.score < 0 {
		return cols, fmt.Errorf("%w: persuade header missing required columns", domain.ErrInvalidInput)
	}
	return cols, nil
}

// parseRow converts one CSV row into an essay record. PERSUADE has no
// per-prompt set column, so every record lands in set 1.
func parseRow(row []string, cols columns) (domain.EssayRecord, bool) {
	max := cols.essayID
	if cols.text > max {
		max = cols.text
	}
	if cols.score > max {
		max = cols.score
	}
	if len(row) <= max {
		return domain.EssayRecord{}, false
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(row[cols.score]), 64)
	if err != nil {
		return domain.EssayRecord{}, false
	}

	if strings.TrimSpace(row[cols.text]) == "" {
		return domain.EssayRecord{}, false
	}

	return domain.EssayRecord{
		Source:   domain.DatasetPersuade,
		EssayID:  strings.TrimSpace(row[cols.essayID]),
		EssaySet: "1",
		Text:     row[cols.text],
		Score:    score,
	}, true
}
