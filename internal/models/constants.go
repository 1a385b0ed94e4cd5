package models

// Identifier prefixes for generated ids.
const (
	CategoryIDPrefix = "cat"
	BookmarkIDPrefix = "bm"
)

// Default file locations, relative to the working directory.
const (
	DefaultSourceFile = "debug_items_DEL/speed-dial-2-export-2026-01-05.json"
	DefaultTargetFile = "data/bookmarks.json"
	DefaultBackupFile = "data/bookmarks.backup.json"
)

// File permissions
const (
	PermissionDataFile   = 0644
	PermissionReportFile = 0644
)
