package lead

import "errors"

var (
	ErrFileParse      = errors.New("failed to parse CSV file")
	ErrInvalidMapping = errors.New("invalid column mapping")
	ErrPersist        = errors.New("failed to persist imported leads")
	ErrSnapshot       = errors.New("failed to snapshot existing leads")
)
