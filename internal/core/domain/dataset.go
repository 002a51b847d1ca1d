package domain

import "strings"

// Dataset source identifiers used in the unified output CSV.
const (
	// DatasetASAP identifies the ASAP-AES essay corpus (TSV dump).
	DatasetASAP = "asap"

	// DatasetPersuade identifies the PERSUADE essay corpus (CSV dump).
	DatasetPersuade = "persuade"
)

// EssayRecord is one cleaned row of a scored essay corpus.
type EssayRecord struct {
	// Source is the dataset the record came from (DatasetASAP or
	// DatasetPersuade).
	Source string

	// EssayID is the identifier from the source dataset.
	EssayID string

	// EssaySet groups essays scored on the same rubric. PERSUADE has a
	// single holistic rubric, recorded as set "1".
	EssaySet string

	// Text is the cleaned essay text.
	Text string

	// Score is the raw human score from the source dataset.
	Score float64

	// ScoreNorm is the score rescaled to [0, 1] within its essay set.
	ScoreNorm float64
}

// Validate reports whether the record is usable for training data.
func (r EssayRecord) Validate() error {
	if r.EssayID == "" || r.Source == "" {
		return ErrInvalidInput
	}
	if len(strings.TrimSpace(r.Text)) < MinTextLength {
		return ErrTextTooShort
	}
	return nil
}

// CleanReport summarises a preprocessing run.
type CleanReport struct {
	// ASAPRead and PersuadeRead count rows read from each source file.
	ASAPRead     int
	PersuadeRead int

	// Written counts records emitted to the output CSV.
	Written int

	// Dropped counts records discarded during cleaning.
	Dropped int

	// Malformed counts rows that could not be parsed at all.
	Malformed int

	// OutputPath is where the unified CSV was written.
	OutputPath string
}
