package config

// Configuration keys, also used as environment variable names
const (
	KeyOutput    = "TREESKETCH_OUTPUT"
	KeyDelimiter = "TREESKETCH_DELIMITER"
	KeyIndent    = "TREESKETCH_INDENT"
	KeyExclude   = "TREESKETCH_EXCLUDE"
	KeyAssumeYes = "TREESKETCH_ASSUME_YES"
	KeyLogLevel  = "TREESKETCH_LOG_LEVEL"
	KeyLogFormat = "TREESKETCH_LOG_FORMAT"
)

// DefaultConfigPath is read from the working directory when --config is not given
const DefaultConfigPath = "treesketch.yml"

// Default values for configuration keys
var Defaults = map[string]string{
	KeyOutput:    ".",
	KeyDelimiter: "/",
	KeyIndent:    "\t",
	KeyLogLevel:  "info",
	KeyLogFormat: "text",
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)
