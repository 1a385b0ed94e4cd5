// Package store reads and writes the target bookmarks file and its backup.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"linkboard/speeddial-import/internal/fileutils"
	"linkboard/speeddial-import/internal/importerror"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"
	"linkboard/speeddial-import/internal/validation"
)

// BookmarkStore manages the target bookmarks file and its single backup copy.
type BookmarkStore struct {
	TargetFile string
	BackupFile string

	logger logging.Logger
}

// NewBookmarkStore creates a store for targetFile. An empty backupFile is
// derived from the target name, see DefaultBackupPath.
func NewBookmarkStore(targetFile, backupFile string, logger logging.Logger) *BookmarkStore {
	if backupFile == "" {
		backupFile = DefaultBackupPath(targetFile)
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &BookmarkStore{
		TargetFile: targetFile,
		BackupFile: backupFile,
		logger:     logger,
	}
}

// DefaultBackupPath returns the backup location used when none is
// configured: data/bookmarks.json backs up to data/bookmarks.backup.json.
func DefaultBackupPath(targetFile string) string {
	ext := filepath.Ext(targetFile)
	base := strings.TrimSuffix(targetFile, ext)
	if ext == "" {
		ext = ".json"
	}
	return base + ".backup" + ext
}

// Exists reports whether a target file is already present.
func (s *BookmarkStore) Exists() bool {
	return fileutils.FileExists(s.TargetFile)
}

// Backup copies the current target file to BackupFile, replacing any earlier
// backup. It returns false without error when there is no target yet.
func (s *BookmarkStore) Backup() (bool, error) {
	if !s.Exists() {
		s.logger.Debug("No existing target file, skipping backup",
			logging.F(logging.FieldTargetFile, s.TargetFile))
		return false, nil
	}

	if validation.SamePath(s.TargetFile, s.BackupFile) {
		return false, &importerror.BackupError{
			Source:      s.TargetFile,
			Destination: s.BackupFile,
			Err:         errors.New("backup path is the target path"),
		}
	}

	s.logger.Info("Backing up existing data",
		logging.F(logging.FieldTargetFile, s.TargetFile),
		logging.F(logging.FieldBackupFile, s.BackupFile))

	if err := fileutils.CopyFile(s.TargetFile, s.BackupFile); err != nil {
		return false, &importerror.BackupError{Source: s.TargetFile, Destination: s.BackupFile, Err: err}
	}
	return true, nil
}

// Save writes categories to the target file as two-space indented JSON,
// replacing its previous content.
func (s *BookmarkStore) Save(categories []models.Category) error {
	data, err := Encode(categories)
	if err != nil {
		return &importerror.TargetWriteError{Path: s.TargetFile, Err: err}
	}

	if err := fileutils.WriteFile(s.TargetFile, data, models.PermissionDataFile); err != nil {
		return &importerror.TargetWriteError{Path: s.TargetFile, Err: err}
	}

	s.logger.Debug("Wrote bookmarks file",
		logging.F(logging.FieldTargetFile, s.TargetFile),
		logging.F(logging.FieldCategories, len(categories)))
	return nil
}

// Load reads the current target file.
func (s *BookmarkStore) Load() ([]models.Category, error) {
	data, err := fileutils.ReadFile(s.TargetFile)
	if err != nil {
		return nil, fmt.Errorf("error reading bookmarks file: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing bookmarks file: %w", err)
	}
	return categories, nil
}

// Encode renders categories the way they are stored on disk. URLs are left
// unescaped (no & for &).
func Encode(categories []models.Category) ([]byte, error) {
	if categories == nil {
		categories = []models.Category{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(categories); err != nil {
		return nil, fmt.Errorf("error encoding bookmarks: %w", err)
	}
	return buf.Bytes(), nil
}
