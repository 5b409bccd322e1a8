// Package export renders tabular report rows as downloadable files.
package export

import (
	"fmt"
	"io"
)

// Writer renders a header and rows into w.
type Writer interface {
	Write(w io.Writer, header []string, rows [][]string) error
	ContentType() string
	Filename() string
}

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const baseFilename = "attendance_report"

// ForFormat returns the writer registered for format.
func ForFormat(format string) (Writer, error) {
	switch format {
	case FormatCSV:
		return CSVWriter{}, nil
	case FormatXLSX:
		return XLSXWriter{SheetName: "Attendance"}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
