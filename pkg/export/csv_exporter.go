package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter writes tabular data as CSV.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// ContentType returns the MIME type for CSV output.
func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

// Extension returns the file extension for CSV output.
func (e *CSVExporter) Extension() string {
	return "csv"
}

// Export writes headers followed by rows to w.
func (e *CSVExporter) Export(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
