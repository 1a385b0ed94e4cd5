package parser

import (
	"io"

	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"
)

// Parser reads an export document from the provided io.Reader.
// Implementations return *importerror.SourceParseError when the content is
// not a well-formed export.
type Parser interface {
	Parse(r io.Reader) (*models.SpeedDialExport, error)
}

// FileParser reads an export document from a path. Implementations return
// *importerror.SourceReadError when the file cannot be read.
type FileParser interface {
	ParseFile(filePath string) (*models.SpeedDialExport, error)
}

// Validator checks that a file carries the minimally required fields without
// converting it.
type Validator interface {
	ValidateFormat(filePath string) (bool, error)
}

// LoggerConfigurable is implemented by parsers whose logger can be swapped.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is everything the importer and the commands need from a parser.
type FullParser interface {
	Parser
	FileParser
	Validator
	LoggerConfigurable
}
