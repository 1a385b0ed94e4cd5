// Package inspect handles the inspect (dry run) command
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"linkboard/speeddial-import/cmd/common"
	"linkboard/speeddial-import/cmd/root"
	"linkboard/speeddial-import/internal/config"
	"linkboard/speeddial-import/internal/importer"
	"linkboard/speeddial-import/internal/store"

	"github.com/spf13/cobra"
)

var showConfig bool

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show what an import would produce without writing anything",
	Long: `Show what an import would produce without writing anything.

Lists every category with its bookmark count and every dial that would be
skipped because its group does not exist, then reports what the import
would replace: the existing bookmarks file and where it would be backed up.`,
	RunE: inspectFunc,
}

func init() {
	Cmd.Flags().BoolVar(&showConfig, "show-config", false, "Print the effective configuration as YAML")
}

func inspectFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return errors.New("container not initialized")
	}
	out := cmd.OutOrStdout()

	if showConfig {
		data, err := config.Dump(c.GetConfig())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", data)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := common.ResolveOptions(root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Backup, c.GetConfig())
	res, err := c.GetImporter().Plan(ctx, opts.SourcePath)
	if err != nil {
		return err
	}

	if err := PrintResult(out, res); err != nil {
		return err
	}
	if opts.TargetPath == "" {
		_, err = fmt.Fprintln(out, "No target configured")
		return err
	}
	return PrintTarget(out, c.NewStore(opts.TargetPath, opts.BackupPath))
}

// PrintTarget describes the bookmarks file an import would overwrite. A
// target that cannot be read is reported, not treated as a failure.
func PrintTarget(w io.Writer, s *store.BookmarkStore) error {
	if !s.Exists() {
		_, err := fmt.Fprintf(w, "No existing target at %s; nothing to back up\n", s.TargetFile)
		return err
	}

	categories, err := s.Load()
	if err != nil {
		_, werr := fmt.Fprintf(w, "Existing target %s could not be read (%v); it would be backed up to %s\n",
			s.TargetFile, err, s.BackupFile)
		return werr
	}

	bookmarks := 0
	for _, c := range categories {
		bookmarks += len(c.Bookmarks)
	}
	_, err = fmt.Fprintf(w, "Existing target %s: %d categories, %d bookmarks (backed up to %s on import)\n",
		s.TargetFile, len(categories), bookmarks, s.BackupFile)
	return err
}

// PrintResult writes a human-readable summary of res.
func PrintResult(w io.Writer, res *importer.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tBOOKMARKS")
	for _, c := range res.Categories {
		fmt.Fprintf(tw, "%s\t%d\n", c.Name, len(c.Bookmarks))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintf(w, "\nSkipped dials:\n")
		for _, s := range res.Skipped {
			fmt.Fprintf(w, "  %s\n", s.Warning())
		}
	}

	_, err := fmt.Fprintf(w, "\n%d categories, %d bookmarks, %d dials, %d skipped\n",
		res.CategoryCount, res.BookmarkCount, res.DialCount, len(res.Skipped))
	return err
}
