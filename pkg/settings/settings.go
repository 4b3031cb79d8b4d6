// Package settings provides build metadata, runtime configuration, and
// context helpers used across the navtree CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "navtree"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// LogFormat selects the zap encoder used for log output.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Run holds configuration settings for a single execution of the CLI.
type Run struct {
	MinLogLevel int8
	LogFormat   LogFormat
	ConfigFile  string
	KeyMode     string
	Output      string
	IsQuiet     bool
	NoColor     bool
}

// NewCliParams returns Run settings with the CLI defaults: info level JSON
// logs, colour on, table output.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		LogFormat:   LogFormatJSON,
		Output:      "table",
		IsQuiet:     false,
		NoColor:     false,
	}
}
