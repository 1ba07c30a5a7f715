package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/treesketch/internal/cli"
	"github.com/zoro11031/treesketch/internal/config"
)

var previewCmd = &cobra.Command{
	Use:   "preview OUTLINE",
	Short: "Show the hierarchy an outline would create",
	Long: `Print the hierarchy OUTLINE describes as a tree, without creating anything.

Lines that a build would skip are reported the same way and left out of
the tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	addOutlineFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd, args[0], config.Overrides{})
	if err != nil {
		return err
	}

	ctx, err := cli.NewRunContext(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return ctx.Preview(cmd.OutOrStdout())
}
