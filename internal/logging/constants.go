package logging

// Standardized field names for structured logging.
// Keeping them in one place makes import runs easy to grep and filter.
const (
	FieldFile       = "file_path"
	FieldSourceFile = "source_file"
	FieldTargetFile = "target_file"
	FieldBackupFile = "backup_file"
	FieldReportFile = "report_file"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldCount      = "count"
	FieldGroups     = "groups"
	FieldCategories = "categories"
	FieldBookmarks  = "bookmarks"
	FieldDials      = "dials"
	FieldSkipped    = "skipped"
	FieldDialID     = "dial_id"
	FieldDialTitle  = "dial_title"
	FieldGroupID    = "group_id"
	FieldIDStrategy = "id_strategy"
	FieldDuration   = "duration_ms"
)
