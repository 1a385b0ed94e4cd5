// Package validation holds checks run on paths before anything is written.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"linkboard/speeddial-import/internal/importerror"
)

// SamePath reports whether a and b name the same location once made
// absolute and cleaned. Symlinks are not resolved.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// CheckImportPaths ensures source, target and backup are three different
// files, so an import can neither overwrite its own input nor back up onto
// the file it is replacing. An empty backup is not checked.
func CheckImportPaths(source, target, backup string) error {
	if strings.TrimSpace(source) == "" {
		return &importerror.ValidationError{FilePath: source, Reason: "source path is required"}
	}
	if strings.TrimSpace(target) == "" {
		return &importerror.ValidationError{FilePath: target, Reason: "target path is required"}
	}
	if SamePath(source, target) {
		return &importerror.ValidationError{FilePath: target, Reason: "target path is the source path"}
	}
	if backup == "" {
		return nil
	}
	if SamePath(backup, source) {
		return &importerror.ValidationError{FilePath: backup, Reason: "backup path is the source path"}
	}
	if SamePath(backup, target) {
		return &importerror.ValidationError{FilePath: backup, Reason: "backup path is the target path"}
	}
	return nil
}

// IsValidReportPath checks that a skipped-dial report path has a supported
// extension: .csv, .json or none (written as CSV).
func IsValidReportPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".csv", ".json":
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s. Supported formats are '.csv', '.json'", filepath.Ext(path))
	}
}
