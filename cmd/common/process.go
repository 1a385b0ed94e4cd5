// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"

	"linkboard/speeddial-import/internal/config"
	"linkboard/speeddial-import/internal/importer"
	"linkboard/speeddial-import/internal/logging"
	"linkboard/speeddial-import/internal/parser"
)

// Importer runs an import; *importer.Importer satisfies it.
type Importer interface {
	Import(ctx context.Context, opts importer.Options) (*importer.Result, error)
}

// ErrInvalidFormat is returned when --validate rejects the source file.
var ErrInvalidFormat = errors.New("the file is not a valid Speed Dial export")

// ResolveOptions fills paths missing from the command line with the
// configured ones. The configured backup path is used only when the target
// also comes from configuration; otherwise the backup is derived from the
// target name.
func ResolveOptions(input, output, backup string, cfg *config.Config) importer.Options {
	opts := importer.Options{
		SourcePath: input,
		TargetPath: output,
		BackupPath: backup,
	}
	if cfg == nil {
		return opts
	}

	if opts.SourcePath == "" {
		opts.SourcePath = cfg.Paths.Source
	}
	if opts.TargetPath == "" {
		opts.TargetPath = cfg.Paths.Target
		if opts.BackupPath == "" {
			opts.BackupPath = cfg.Paths.Backup
		}
	}
	return opts
}

// ProcessImport optionally validates the source, then runs the import.
func ProcessImport(ctx context.Context, imp Importer, v parser.Validator, opts importer.Options, validate bool, log logging.Logger) (*importer.Result, error) {
	log.Info("Importing Speed Dial export",
		logging.F(logging.FieldSourceFile, opts.SourcePath),
		logging.F(logging.FieldTargetFile, opts.TargetPath))

	if validate {
		log.Info("Validating format...")
		valid, err := v.ValidateFormat(opts.SourcePath)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, ErrInvalidFormat
		}
		log.Info("Validation successful.")
	}

	res, err := imp.Import(ctx, opts)
	if err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("Imported %d bookmarks into %d categories", res.BookmarkCount, res.CategoryCount),
		logging.F(logging.FieldSkipped, len(res.Skipped)))
	return res, nil
}
