package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/treesketch/internal/config"
	"github.com/zoro11031/treesketch/pkg/version"
)

var (
	// Flags shared by every command
	configPath string
	logLevel   string
	logFormat  string

	// Outline format flags
	delimiter string
	indent    string
	excludes  []string
)

var rootCmd = &cobra.Command{
	Use:   "treesketch",
	Short: "Create directory trees from indented text outlines",
	Long: `treesketch turns a plain-text outline into directories and empty files.

The first line names the root directory and must end with the delimiter.
Every other line is indented one indent marker deeper than its parent
directory; lines ending with the delimiter are directories, all others
are files:

  project/
  	src/
  		main.go
  	README.md

Settings are read from treesketch.yml, TREESKETCH_* environment variables
and flags, in increasing order of precedence.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default \"info\")")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json (default \"text\")")

	rootCmd.AddCommand(versionCmd)
}

// addOutlineFlags registers the flags describing the outline format.
func addOutlineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Trailing marker of directory entries (default \"/\")")
	cmd.Flags().StringVarP(&indent, "indent", "i", "", `Indent marker, e.g. "\t", "tab", "space" or "  " (default tab)`)
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "x", nil, "Glob of entry paths to leave out, relative to the root (repeatable)")
}

// loadOptions resolves the options for source from config file, env and flags.
func loadOptions(cmd *cobra.Command, source string, flags config.Overrides) (config.Options, error) {
	loader := config.Loader{
		ConfigPath: configPath,
		Explicit:   cmd.Flags().Changed("config"),
	}

	flags.Delimiter = delimiter
	flags.Indent = indent
	flags.Exclude = excludes
	flags.LogLevel = logLevel
	flags.LogFormat = logFormat

	opts, err := loader.Load(source, flags)
	if err != nil {
		return opts, fmt.Errorf("failed to load configuration: %w", err)
	}
	return opts, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
