package config

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".vgasim"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "vgasim.log"

	// DefaultForeground is the default text color.
	DefaultForeground = "white"
	// DefaultBackground is the default background color.
	DefaultBackground = "black"
	// DefaultRenderMode is the default output mode for run.
	DefaultRenderMode = RenderAuto
)

// Render modes.
const (
	// RenderAuto picks color output for terminals and plain text otherwise.
	RenderAuto = "auto"
	// RenderColor always emits ANSI colors.
	RenderColor = "color"
	// RenderPlain emits text only.
	RenderPlain = "plain"
)
