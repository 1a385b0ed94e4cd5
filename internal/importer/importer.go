// Package importer runs a complete Speed Dial migration: read the export,
// convert it, back up the existing bookmarks file and write the new one.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"linkboard/speeddial-import/internal/idgen"
	"linkboard/speeddial-import/internal/importerror"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/models"
	"linkboard/speeddial-import/internal/parser"
	"linkboard/speeddial-import/internal/store"
	"linkboard/speeddial-import/internal/transform"
	"linkboard/speeddial-import/internal/validation"
)

// TargetStore is the part of store.BookmarkStore the importer needs.
type TargetStore interface {
	Exists() bool
	Backup() (bool, error)
	Save(categories []models.Category) error
}

// StoreFactory opens the target store for one run.
type StoreFactory func(targetFile, backupFile string, logger logging.Logger) TargetStore

// ReportWriter stores the skipped-dial report.
type ReportWriter interface {
	Write(path string, skipped []models.SkippedDial) error
}

// Settings are the importer behaviours taken from configuration.
type Settings struct {
	// BackupEnabled false lets Import overwrite an existing target with no copy.
	BackupEnabled bool
	KeepSourceID  bool
	// SkippedReport is the default report path; empty disables the report.
	SkippedReport string
}

// Options describe a single import run.
type Options struct {
	SourcePath string
	TargetPath string
	// BackupPath defaults to store.DefaultBackupPath(TargetPath).
	BackupPath string
	// SkippedReport overrides Settings.SkippedReport when set.
	SkippedReport string
	// NoBackup skips the backup even if Settings.BackupEnabled is true.
	NoBackup bool
}

// Result summarizes an import run.
type Result struct {
	Categories    []models.Category
	CategoryCount int
	BookmarkCount int
	DialCount     int
	Skipped       []models.SkippedDial
	BackupCreated bool
}

// Importer wires a parser, an id generator and a target store together.
type Importer struct {
	parser    parser.FileParser
	generator idgen.Generator
	logger    logging.Logger
	settings  Settings
	newStore  StoreFactory
	reports   ReportWriter
}

// New creates an Importer. A nil generator uses UUIDs; a nil logger logs at
// info level to stderr.
func New(p parser.FileParser, gen idgen.Generator, logger logging.Logger, settings Settings) *Importer {
	if gen == nil {
		gen = idgen.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{
		parser:    p,
		generator: gen,
		logger:    logger,
		settings:  settings,
		newStore:  defaultStore,
	}
}

func defaultStore(targetFile, backupFile string, logger logging.Logger) TargetStore {
	return store.NewBookmarkStore(targetFile, backupFile, logger)
}

// SetStoreFactory replaces the function used to open the target store.
func (im *Importer) SetStoreFactory(f StoreFactory) {
	if f != nil {
		im.newStore = f
	}
}

// SetReportWriter sets the writer for skipped-dial reports. Without one, no
// report is written.
func (im *Importer) SetReportWriter(w ReportWriter) {
	im.reports = w
}

// Plan reads and converts sourcePath without touching the file system
// otherwise.
func (im *Importer) Plan(ctx context.Context, sourcePath string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import cancelled: %w", err)
	}
	if im.parser == nil {
		return nil, errors.New("importer has no parser")
	}

	doc, err := im.parser.ParseFile(sourcePath)
	if err != nil {
		return nil, err
	}

	out := transform.Transform(doc, im.generator, transform.Options{KeepSourceID: im.settings.KeepSourceID})

	for _, s := range out.Skipped {
		im.logger.Warn(s.Warning().Error(),
			logging.F(logging.FieldDialTitle, s.Title),
			logging.F(logging.FieldDialID, s.DialID.String()),
			logging.F(logging.FieldGroupID, s.GroupID.String()))
	}

	res := &Result{
		Categories:    out.Categories,
		CategoryCount: len(out.Categories),
		BookmarkCount: out.BookmarkCount(),
		DialCount:     out.DialCount,
		Skipped:       out.Skipped,
	}

	im.logger.Info(fmt.Sprintf("Found %d dials", res.DialCount),
		logging.F(logging.FieldDials, res.DialCount))
	im.logger.Info(fmt.Sprintf("Created %d categories", res.CategoryCount),
		logging.F(logging.FieldCategories, res.CategoryCount),
		logging.F(logging.FieldBookmarks, res.BookmarkCount),
		logging.F(logging.FieldSkipped, len(res.Skipped)))

	return res, nil
}

// Import runs the full migration. The existing target file is backed up
// before it is replaced; a failed backup leaves the target untouched.
func (im *Importer) Import(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	backupPath := opts.BackupPath
	if backupPath == "" && opts.TargetPath != "" {
		backupPath = store.DefaultBackupPath(opts.TargetPath)
	}
	if err := validation.CheckImportPaths(opts.SourcePath, opts.TargetPath, backupPath); err != nil {
		return nil, err
	}
	if path := im.reportPath(opts); path != "" {
		if err := validation.IsValidReportPath(path); err != nil {
			return nil, &importerror.ValidationError{FilePath: path, Reason: err.Error()}
		}
	}

	res, err := im.Plan(ctx, opts.SourcePath)
	if err != nil {
		return nil, err
	}

	target := im.newStore(opts.TargetPath, backupPath, im.logger)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import cancelled: %w", err)
	}

	if im.settings.BackupEnabled && !opts.NoBackup {
		created, err := target.Backup()
		if err != nil {
			return nil, err
		}
		res.BackupCreated = created
	} else if target.Exists() {
		im.logger.Warn("Backups disabled, overwriting existing target file with no copy kept",
			logging.F(logging.FieldTargetFile, opts.TargetPath))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import cancelled: %w", err)
	}

	if err := target.Save(res.Categories); err != nil {
		return nil, err
	}

	im.writeReport(opts, res.Skipped)

	im.logger.Info("Import complete",
		logging.F(logging.FieldSourceFile, opts.SourcePath),
		logging.F(logging.FieldTargetFile, opts.TargetPath),
		logging.F(logging.FieldCategories, res.CategoryCount),
		logging.F(logging.FieldBookmarks, res.BookmarkCount),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	return res, nil
}

func (im *Importer) reportPath(opts Options) string {
	if opts.SkippedReport != "" {
		return opts.SkippedReport
	}
	return im.settings.SkippedReport
}

func (im *Importer) writeReport(opts Options, skipped []models.SkippedDial) {
	path := im.reportPath(opts)
	if path == "" || len(skipped) == 0 || im.reports == nil {
		return
	}

	if err := im.reports.Write(path, skipped); err != nil {
		im.logger.WithError(err).Warn("Failed to write skipped dial report",
			logging.F(logging.FieldReportFile, path))
	}
}
