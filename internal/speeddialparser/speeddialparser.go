// Package speeddialparser reads the JSON export written by the Speed Dial 2
// browser extension.
package speeddialparser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"linkboard/speeddial-import/internal/fileutils"
	"linkboard/speeddial-import/internal/importerror"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"
)

var errNotObject = errors.New("top-level value must be a JSON object")

// Parse decodes an export from r. Any decoding problem is returned as a
// *importerror.SourceParseError without a path.
func Parse(r io.Reader, logger logging.Logger) (*models.SpeedDialExport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &importerror.SourceParseError{Err: fmt.Errorf("error reading export: %w", err)}
	}
	return decode(data, logger)
}

// ParseFile reads and decodes the export at filePath.
func ParseFile(filePath string, logger logging.Logger) (*models.SpeedDialExport, error) {
	logger = ensureLogger(logger)
	logger.Info("Reading Speed Dial export", logging.F(logging.FieldSourceFile, filePath))

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, &importerror.SourceReadError{Path: filePath, Err: err}
	}

	doc, err := decode(data, logger)
	if err != nil {
		var parseErr *importerror.SourceParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = filePath
		}
		return nil, err
	}
	return doc, nil
}

func decode(data []byte, logger logging.Logger) (*models.SpeedDialExport, error) {
	logger = ensureLogger(logger)

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &importerror.SourceParseError{Err: errors.New("export is empty")}
	}
	if !json.Valid(trimmed) {
		// Unmarshal gives the more precise message (offset, token).
		var probe interface{}
		err := json.Unmarshal(trimmed, &probe)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, &importerror.SourceParseError{Err: err}
	}
	if trimmed[0] != '{' {
		return nil, &importerror.SourceParseError{Err: errNotObject}
	}

	var doc models.SpeedDialExport
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, &importerror.SourceParseError{Err: err}
	}

	logger.Debug("Decoded Speed Dial export",
		logging.F(logging.FieldGroups, len(doc.Groups)),
		logging.F(logging.FieldDials, len(doc.Dials)))
	return &doc, nil
}

// CheckRequiredFields lists the problems that make doc unusable for an
// import: groups without an id and dials without an id or idgroup. Titles,
// URLs and thumbnails are not checked.
func CheckRequiredFields(doc *models.SpeedDialExport) []string {
	var problems []string
	for i, g := range doc.Groups {
		if g.ID.IsZero() {
			problems = append(problems, fmt.Sprintf("group %d (%q) has no id", i, g.Title))
		}
	}
	for i, d := range doc.Dials {
		if d.ID.IsZero() {
			problems = append(problems, fmt.Sprintf("dial %d (%q) has no id", i, d.Title))
		}
		if d.GroupID.IsZero() {
			problems = append(problems, fmt.Sprintf("dial %d (%q) has no idgroup", i, d.Title))
		}
	}
	return problems
}

// ValidateFormat reports whether filePath is a Speed Dial export carrying the
// minimally required fields. An unreadable file is an error; a readable file
// with the wrong content is reported as (false, nil).
func ValidateFormat(filePath string, logger logging.Logger) (bool, error) {
	logger = ensureLogger(logger)

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return false, &importerror.SourceReadError{Path: filePath, Err: err}
	}

	doc, err := decode(data, logger)
	if err != nil {
		logger.WithError(err).Warn("File is not a Speed Dial export", logging.F(logging.FieldFile, filePath))
		return false, nil
	}

	problems := CheckRequiredFields(doc)
	for _, p := range problems {
		logger.Warn("Validation problem", logging.F(logging.FieldFile, filePath), logging.F(logging.FieldReason, p))
	}
	return len(problems) == 0, nil
}

func ensureLogger(logger logging.Logger) logging.Logger {
	if logger == nil {
		return logging.NewLogrusAdapter("info", "text")
	}
	return logger
}
