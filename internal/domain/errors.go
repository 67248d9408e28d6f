package domain

import "errors"

var (
	// ErrInvalidSelection is returned when a site filter or payload range
	// cannot be applied to the loaded dataset.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrEmptyDataset is returned when a source yields zero launch records.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrMalformedRecord is returned when a source row cannot be parsed into a LaunchRecord.
	ErrMalformedRecord = errors.New("malformed launch record")
)
