package report

import "errors"

var (
	ErrEmptyReport      = errors.New("no attendance records found to export")
	ErrInvalidDateRange = errors.New("from must not be after to")
)
