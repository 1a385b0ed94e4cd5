package store

import (
	"linkboard/speeddial-import/internal/models"
)

// MockBookmarkStore is an in-memory stand-in for BookmarkStore.
type MockBookmarkStore struct {
	// Existing is the target content before the run; nil means no target file.
	Existing []models.Category
	// Saved receives what Save was called with.
	Saved     []models.Category
	SaveCalls int
	// BackedUp holds the content copied by Backup.
	BackedUp []models.Category

	// Error flags for testing error conditions
	BackupError error
	SaveError   error
}

// Exists reports whether Existing is set.
func (m *MockBookmarkStore) Exists() bool {
	return m.Existing != nil
}

// Backup copies Existing to BackedUp.
func (m *MockBookmarkStore) Backup() (bool, error) {
	if m.BackupError != nil {
		return false, m.BackupError
	}
	if !m.Exists() {
		return false, nil
	}
	m.BackedUp = m.Existing
	return true, nil
}

// Save records categories.
func (m *MockBookmarkStore) Save(categories []models.Category) error {
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Saved = categories
	return nil
}
