package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

type CSVWriter struct{}

func (CSVWriter) ContentType() string { return "text/csv" }

func (CSVWriter) Filename() string { return baseFilename + ".csv" }

func (CSVWriter) Write(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
