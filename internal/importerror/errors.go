// Package importerror defines the error kinds an import run can produce.
package importerror

import "fmt"

// SourceReadError means the export file is missing or unreadable.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("cannot read source file '%s': %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// SourceParseError means the export file is not valid JSON or does not have
// the expected top-level shape.
type SourceParseError struct {
	Path string
	Err  error
}

func (e *SourceParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot parse source: %v", e.Err)
	}
	return fmt.Sprintf("cannot parse source file '%s': %v", e.Path, e.Err)
}

func (e *SourceParseError) Unwrap() error {
	return e.Err
}

// BackupError means an existing target file could not be copied aside.
// The target is never written after a BackupError.
type BackupError struct {
	Source      string
	Destination string
	Err         error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("cannot back up '%s' to '%s': %v", e.Source, e.Destination, e.Err)
}

func (e *BackupError) Unwrap() error {
	return e.Err
}

// TargetWriteError means the converted bookmarks could not be written.
type TargetWriteError struct {
	Path string
	Err  error
}

func (e *TargetWriteError) Error() string {
	return fmt.Sprintf("cannot write target file '%s': %v", e.Path, e.Err)
}

func (e *TargetWriteError) Unwrap() error {
	return e.Err
}

// UnknownGroupWarning describes a dial whose idgroup matches no group.
// It is never returned as a failure; it is collected in the import result.
type UnknownGroupWarning struct {
	DialTitle string
	DialID    string
	GroupID   string
}

func (e *UnknownGroupWarning) Error() string {
	return fmt.Sprintf("bookmark \"%s\" (ID: %s) belongs to unknown group %s", e.DialTitle, e.DialID, e.GroupID)
}

// ValidationError represents a validation failure of the source file.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}
