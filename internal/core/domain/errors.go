package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTextTooShort indicates the submitted text is below the minimum
	// length required for a meaningful analysis.
	ErrTextTooShort = errors.New("text too short")

	// ErrUnsupportedFormat indicates a file type no extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrHistoryDisabled indicates analysis persistence is turned off.
	ErrHistoryDisabled = errors.New("history disabled")

	// ErrEmptyDataset indicates a dataset file yielded no usable rows.
	ErrEmptyDataset = errors.New("empty dataset")
)
