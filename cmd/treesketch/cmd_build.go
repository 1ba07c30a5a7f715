package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/treesketch/internal/cli"
	"github.com/zoro11031/treesketch/internal/config"
)

var (
	outDir    string
	assumeYes bool
)

var buildCmd = &cobra.Command{
	Use:   "build OUTLINE",
	Short: "Create the hierarchy described by an outline",
	Long: `Create the directories and empty files described by OUTLINE.

The root entry becomes a directory inside the output directory. If it
already exists you are asked before it is removed and recreated; use
--yes to skip the question. Malformed lines and entries that cannot be
created are reported and skipped without stopping the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to create the root entry in (default \".\")")
	buildCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing root directory without asking")
	addOutlineFlags(buildCmd)

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	flags := config.Overrides{Output: outDir}
	if cmd.Flags().Changed("yes") {
		flags.AssumeYes = &assumeYes
	}

	opts, err := loadOptions(cmd, args[0], flags)
	if err != nil {
		return err
	}

	ctx, err := cli.NewRunContext(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return ctx.Build()
}
