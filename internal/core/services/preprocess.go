package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driving"
	"github.com/paperiq-labs/paperiq-cli/internal/logger"
)

// Ensure PreprocessService implements the interface.
var _ driving.PreprocessService = (*PreprocessService)(nil)

// outputHeader is the column layout of the unified training CSV.
var outputHeader = []string{"source", "essay_id", "essay_set", "text", "score", "score_norm"}

// anonToken matches ASAP/PERSUADE anonymisation placeholders such as
// @PERSON1, @LOCATION2, @ORGANIZATION1, @DATE1, @NUM1, @CAPS3.
var anonToken = regexp.MustCompile(`@[A-Z]+\d*`)

// whitespace collapses runs of spaces, tabs and newlines.
var whitespace = regexp.MustCompile(`\s+`)

// PreprocessService merges and cleans the supported essay corpora into
// a single training-ready CSV file.
type PreprocessService struct {
	readers []driven.DatasetReader
}

// NewPreprocessService creates a new preprocessing service.
// Readers are matched to input paths by their Source identifier.
func NewPreprocessService(readers ...driven.DatasetReader) *PreprocessService {
	return &PreprocessService{readers: readers}
}

// Preprocess reads both dataset dumps, cleans them, normalises scores
// per essay set, and writes one unified CSV.
func (s *PreprocessService) Preprocess(
	ctx context.Context,
	asapPath, persuadePath, outPath string,
) (*domain.CleanReport, error) {
	if asapPath == "" || persuadePath == "" || outPath == "" {
		return nil, fmt.Errorf("%w: three paths required", domain.ErrInvalidInput)
	}

	report := &domain.CleanReport{OutputPath: outPath}
	var records []domain.EssayRecord

	inputs := map[string]string{
		domain.DatasetASAP:     asapPath,
		domain.DatasetPersuade: persuadePath,
	}

	for _, reader := range s.readers {
		path, ok := inputs[reader.Source()]
		if !ok {
			continue
		}

		logger.Section("Read " + reader.Source())
		result, err := reader.Read(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s dataset: %w", reader.Source(), err)
		}
		logger.Debug("%s: %d records, %d malformed", reader.Source(), len(result.Records), result.Malformed)

		switch reader.Source() {
		case domain.DatasetASAP:
			report.ASAPRead = len(result.Records)
		case domain.DatasetPersuade:
			report.PersuadeRead = len(result.Records)
		}
		report.Malformed += result.Malformed
		records = append(records, result.Records...)
	}

	cleaned := make([]domain.EssayRecord, 0, len(records))
	for _, r := range records {
		r.Text = CleanText(r.Text)
		if err := r.Validate(); err != nil {
			report.Dropped++
			continue
		}
		cleaned = append(cleaned, r)
	}

	normaliseScores(cleaned)

	if err := writeCSV(outPath, cleaned); err != nil {
		return nil, err
	}
	report.Written = len(cleaned)

	logger.Info("wrote %d records to %s (%d dropped, %d malformed)",
		report.Written, outPath, report.Dropped, report.Malformed)
	return report, nil
}

// CleanText strips anonymisation tokens and collapses whitespace.
func CleanText(text string) string {
	text = anonToken.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `\n`, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// normaliseScores rescales Score to [0, 1]. PERSUADE holistic scores
// are always on the fixed 1-6 rubric, so they map onto that scale no
// matter which scores a particular dump contains. ASAP sets each use
// their own rubric, so they normalise by observed min/max within the
// (source, essay set) pair; sets with a single distinct score
// normalise to 1.
func normaliseScores(records []domain.EssayRecord) {
	type key struct{ source, set string }

	mins := make(map[key]float64)
	maxs := make(map[key]float64)
	for _, r := range records {
		k := key{r.Source, r.EssaySet}
		if _, ok := mins[k]; !ok {
			mins[k] = r.Score
			maxs[k] = r.Score
			continue
		}
		if r.Score < mins[k] {
			mins[k] = r.Score
		}
		if r.Score > maxs[k] {
			maxs[k] = r.Score
		}
	}

	for i := range records {
		if records[i].Source == domain.DatasetPersuade {
			records[i].ScoreNorm = clamp01((records[i].Score - 1) / 5)
			continue
		}

		k := key{records[i].Source, records[i].EssaySet}
		span := maxs[k] - mins[k]
		if span == 0 {
			records[i].ScoreNorm = 1
			continue
		}
		records[i].ScoreNorm = (records[i].Score - mins[k]) / span
	}
}

// clamp01 limits v to the [0, 1] interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// writeCSV emits the unified output file.
func writeCSV(path string, records []domain.EssayRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.Source,
			r.EssayID,
			r.EssaySet,
			r.Text,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			strconv.FormatFloat(r.ScoreNorm, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("writing record %s: %w", r.EssayID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing output: %w", err)
	}
	return f.Close()
}
