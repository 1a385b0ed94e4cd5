// Package report writes the list of dials that could not be imported.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"linkboard/speeddial-import/internal/fileutils"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"

	"github.com/gocarina/gocsv"
)

// Supported report formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// SkippedWriter writes skipped-dial reports.
type SkippedWriter struct {
	delimiter rune
	logger    logging.Logger
}

// NewSkippedWriter creates a writer using delimiter for CSV output.
// A zero delimiter means comma.
func NewSkippedWriter(delimiter rune, logger logging.Logger) *SkippedWriter {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &SkippedWriter{
		delimiter: delimiter,
		logger:    logger.WithField("component", "SkippedWriter"),
	}
}

// FormatForPath picks the report format from the file extension.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatCSV
}

// Generate renders skipped dials in the given format.
func (w *SkippedWriter) Generate(skipped []models.SkippedDial, format string) ([]byte, error) {
	if skipped == nil {
		skipped = []models.SkippedDial{}
	}

	switch format {
	case FormatCSV:
		return w.generateCSV(skipped)
	case FormatJSON:
		return w.generateJSON(skipped)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write renders skipped dials and stores them at path, creating parent
// directories as needed.
func (w *SkippedWriter) Write(path string, skipped []models.SkippedDial) error {
	format := FormatForPath(path)
	data, err := w.Generate(skipped, format)
	if err != nil {
		return err
	}

	if err := fileutils.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing skipped report: %w", err)
	}

	w.logger.Info("Wrote skipped dial report",
		logging.F(logging.FieldReportFile, path),
		logging.F(logging.FieldSkipped, len(skipped)))
	return nil
}

func (w *SkippedWriter) generateCSV(skipped []models.SkippedDial) ([]byte, error) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = w.delimiter

	if err := gocsv.MarshalCSV(skipped, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		w.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *SkippedWriter) generateJSON(skipped []models.SkippedDial) ([]byte, error) {
	data, err := json.MarshalIndent(skipped, "", "  ")
	if err != nil {
		w.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(data, '\n'), nil
}
