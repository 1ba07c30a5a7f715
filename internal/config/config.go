// Package config resolves the options of a treesketch run. Values are layered
// from built-in defaults, an optional YAML file, TREESKETCH_* environment
// variables and finally command-line flags, each layer overriding the last.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Options holds everything a run needs, fully resolved.
type Options struct {
	Source    string
	Output    string
	Delimiter string
	Indent    string
	Exclude   []string
	AssumeYes bool
	LogLevel  string
	LogFormat string
}

// Overrides captures values coming from the config file, env vars or CLI
// flags. Empty fields leave the current value alone.
type Overrides struct {
	Output    string
	Delimiter string
	Indent    string
	Exclude   []string
	AssumeYes *bool
	LogLevel  string
	LogFormat string
}

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
	// Explicit is set when the path came from the user, making a missing
	// file an error instead of silently using defaults.
	Explicit bool
}

// DefaultOptions returns the baseline configuration when no overrides are provided.
func DefaultOptions() Options {
	return Options{
		Output:    Defaults[KeyOutput],
		Delimiter: Defaults[KeyDelimiter],
		Indent:    Defaults[KeyIndent],
		LogLevel:  Defaults[KeyLogLevel],
		LogFormat: Defaults[KeyLogFormat],
	}
}

// Load resolves the final options for the outline at source.
func (l Loader) Load(source string, flags Overrides) (Options, error) {
	opts := DefaultOptions()
	opts.Source = source

	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	switch {
	case fileExists(path):
		fileOv, err := loadFromFile(path)
		if err != nil {
			return opts, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		opts.apply(fileOv)
	case l.Explicit:
		return opts, fmt.Errorf("config file not found: %s", path)
	}

	opts.apply(overridesFromEnv())
	opts.apply(flags)

	return opts, nil
}

// Validate ensures the markers and logging settings are usable.
func (o Options) Validate() error {
	if o.Delimiter == "" {
		return errors.New("delimiter cannot be empty")
	}
	if strings.IndexFunc(o.Delimiter, unicode.IsSpace) >= 0 {
		return fmt.Errorf("delimiter must not contain whitespace: %q", o.Delimiter)
	}
	if o.Indent == "" {
		return errors.New("indent marker cannot be empty")
	}
	if strings.ContainsAny(o.Indent, "\r\n") {
		return fmt.Errorf("indent marker must not contain line breaks: %q", o.Indent)
	}
	if o.Indent == o.Delimiter {
		return fmt.Errorf("indent marker and delimiter must differ (both %q)", o.Indent)
	}

	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %q", pattern)
		}
	}

	if !slices.Contains(logLevels, o.LogLevel) {
		return fmt.Errorf("unknown log level %q (want one of %s)", o.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, o.LogFormat) {
		return fmt.Errorf("unknown log format %q (want one of %s)", o.LogFormat, strings.Join(logFormats, ", "))
	}

	return nil
}

func (o *Options) apply(src Overrides) {
	if src.Output != "" {
		o.Output = src.Output
	}
	if src.Delimiter != "" {
		o.Delimiter = DecodeMarker(src.Delimiter)
	}
	if src.Indent != "" {
		o.Indent = DecodeMarker(src.Indent)
	}
	if len(src.Exclude) > 0 {
		o.Exclude = cleanList(src.Exclude)
	}
	if src.AssumeYes != nil {
		o.AssumeYes = *src.AssumeYes
	}
	if src.LogLevel != "" {
		o.LogLevel = strings.ToLower(src.LogLevel)
	}
	if src.LogFormat != "" {
		o.LogFormat = strings.ToLower(src.LogFormat)
	}
}

// DecodeMarker turns a user-supplied indent or delimiter into the literal
// string to match. It accepts the names "tab" and "space" and Go escape
// sequences such as \t.
func DecodeMarker(s string) string {
	switch strings.ToLower(s) {
	case "tab":
		return "\t"
	case "space":
		return " "
	}
	if strings.Contains(s, `\`) {
		if unquoted, err := strconv.Unquote(`"` + s + `"`); err == nil {
			return unquoted
		}
	}
	return s
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Output    string   `yaml:"output"`
		Delimiter string   `yaml:"delimiter"`
		Indent    string   `yaml:"indent"`
		Exclude   []string `yaml:"exclude"`
		AssumeYes *bool    `yaml:"assumeYes"`
		LogLevel  string   `yaml:"logLevel"`
		LogFormat string   `yaml:"logFormat"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	return Overrides{
		Output:    raw.Output,
		Delimiter: raw.Delimiter,
		Indent:    raw.Indent,
		Exclude:   raw.Exclude,
		AssumeYes: raw.AssumeYes,
		LogLevel:  raw.LogLevel,
		LogFormat: raw.LogFormat,
	}, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{
		Output:    os.Getenv(KeyOutput),
		Delimiter: os.Getenv(KeyDelimiter),
		Indent:    os.Getenv(KeyIndent),
		LogLevel:  os.Getenv(KeyLogLevel),
		LogFormat: os.Getenv(KeyLogFormat),
	}

	if value := os.Getenv(KeyExclude); value != "" {
		ov.Exclude = strings.Split(value, ",")
	}

	if value := os.Getenv(KeyAssumeYes); value != "" {
		parsed := strings.EqualFold(value, "true") || value == "1"
		ov.AssumeYes = &parsed
	}

	return ov
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
