// Package domain defines domain-level errors for the dataset feature.
package domain

import "errors"

// Domain errors for dataset loading.
// The dataset is mandatory startup state, so callers usually treat these as fatal.
var (
	// ErrMissingColumn indicates that the source file lacks one of the
	// canonical dataset columns. This is returned while validating the header.
	ErrMissingColumn = errors.New("dataset column missing")

	// ErrInvalidValue indicates that a cell could not be parsed into the
	// type its column requires (year or one of the numeric measures).
	ErrInvalidValue = errors.New("dataset value invalid")

	// ErrEmptyDataset indicates that the source was read successfully but
	// contains no records. An empty dataset cannot back the dashboard.
	ErrEmptyDataset = errors.New("dataset is empty")
)
