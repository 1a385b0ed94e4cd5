package speeddialparser

import (
	"io"

	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"
	"linkboard/speeddial-import/internal/parser"
)

// Adapter implements parser.FullParser by delegating to the package-level
// functions with its configured logger.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a new adapter for the speeddialparser.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
	}
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(r io.Reader) (*models.SpeedDialExport, error) {
	return Parse(r, a.GetLogger())
}

// ParseFile implements parser.FileParser.
func (a *Adapter) ParseFile(filePath string) (*models.SpeedDialExport, error) {
	return ParseFile(filePath, a.GetLogger())
}

// ValidateFormat implements parser.Validator.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormat(filePath, a.GetLogger())
}
