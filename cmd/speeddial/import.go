// Package speeddial handles the Speed Dial import command
package speeddial

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linkboard/speeddial-import/cmd/common"
	"linkboard/speeddial-import/cmd/root"
	"linkboard/speeddial-import/internal/importer"
	"linkboard/speeddial-import/internal/store"

	"github.com/spf13/cobra"
)

var (
	skippedReport string
	noBackup      bool
	validateFirst bool
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a Speed Dial 2 export into the bookmarks file",
	Long: `Import a Speed Dial 2 export into the bookmarks file.

Every group becomes a category and every dial a bookmark in its group's
category. Dials pointing at a group that does not exist are skipped with a
warning. An existing bookmarks file is copied to the backup path first.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVar(&skippedReport, "skipped-report", "", "Write skipped dials to this file (.csv or .json)")
	Cmd.Flags().BoolVarP(&validateFirst, "validate", "v", false, "Validate the export before importing")
	Cmd.Flags().BoolVar(&noBackup, "no-backup", false,
		"Skip the backup: an existing bookmarks file is overwritten and no copy of it is kept")
}

func importFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return errors.New("container not initialized")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := common.ResolveOptions(root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Backup, c.GetConfig())
	opts.SkippedReport = skippedReport
	opts.NoBackup = noBackup

	res, err := common.ProcessImport(ctx, c.GetImporter(), c.GetParser(), opts, validateFirst, c.GetLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.BackupCreated {
		fmt.Fprintf(out, "Backed up previous bookmarks to %s\n", backupPath(opts))
	}
	fmt.Fprintf(out, "Imported %d bookmarks into %d categories (%d dials, %d skipped)\n",
		res.BookmarkCount, res.CategoryCount, res.DialCount, len(res.Skipped))
	return nil
}

func backupPath(opts importer.Options) string {
	if opts.BackupPath != "" {
		return opts.BackupPath
	}
	return store.DefaultBackupPath(opts.TargetPath)
}
