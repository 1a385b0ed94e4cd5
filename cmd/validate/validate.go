// Package validate handles the validate command
package validate

import (
	"errors"
	"fmt"

	"linkboard/speeddial-import/cmd/common"
	"linkboard/speeddial-import/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a file is a usable Speed Dial 2 export",
	Long: `Check that a file is a usable Speed Dial 2 export without importing it.

The file must be a JSON object, every group needs an id and every dial needs
an id and an idgroup. Nothing is written.`,
	RunE: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return errors.New("container not initialized")
	}

	source := common.ResolveOptions(root.SharedFlags.Input, "", "", c.GetConfig()).SourcePath
	valid, err := c.GetParser().ValidateFormat(source)
	if err != nil {
		return fmt.Errorf("error validating file: %w", err)
	}
	if !valid {
		return fmt.Errorf("%s: %w", source, common.ErrInvalidFormat)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid Speed Dial export\n", source)
	return nil
}
