// Package container wires the application dependencies from configuration
// so commands receive them ready to use.
package container

import (
	"fmt"

	"linkboard/speeddial-import/internal/config"
	"linkboard/speeddial-import/internal/idgen"
	"linkboard/speeddial-import/internal/importer"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/parser"
	"linkboard/speeddial-import/internal/report"
	"linkboard/speeddial-import/internal/speeddialparser"
	"linkboard/speeddial-import/internal/store"
)

// Container holds all application dependencies.
//
// It is immutable after creation; components are reached through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	generator idgen.Generator
	parser    parser.FullParser
	reports   *report.SkippedWriter
	importer  *importer.Importer
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.NewLogger(cfg))
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	gen, err := idgen.New(cfg.IDs.Strategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}

	p := speeddialparser.NewAdapter(logger)
	reports := report.NewSkippedWriter(cfg.ReportDelimiter(), logger)

	imp := importer.New(p, gen, logger, importer.Settings{
		BackupEnabled: cfg.Backup.Enabled,
		KeepSourceID:  cfg.IDs.KeepSourceID,
		SkippedReport: cfg.Report.SkippedFile,
	})
	imp.SetReportWriter(reports)

	logger.Debug("Container initialized",
		logging.F(logging.FieldIDStrategy, cfg.IDs.Strategy),
		logging.F("backup_enabled", cfg.Backup.Enabled))

	return &Container{
		logger:    logger,
		config:    cfg,
		generator: gen,
		parser:    p,
		reports:   reports,
		importer:  imp,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetGenerator returns the id generator selected by ids.strategy.
func (c *Container) GetGenerator() idgen.Generator {
	return c.generator
}

// GetParser returns the Speed Dial export parser.
func (c *Container) GetParser() parser.FullParser {
	return c.parser
}

// GetReportWriter returns the skipped-dial report writer.
func (c *Container) GetReportWriter() *report.SkippedWriter {
	return c.reports
}

// GetImporter returns the configured importer.
func (c *Container) GetImporter() *importer.Importer {
	return c.importer
}

// NewStore opens the bookmarks store at target. An empty backup path is
// derived from the target.
func (c *Container) NewStore(target, backup string) *store.BookmarkStore {
	return store.NewBookmarkStore(target, backup, c.logger)
}

// Close releases container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
