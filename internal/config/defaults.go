package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Foreground: DefaultForeground,
			Background: DefaultBackground,
		},
		Render: RenderConfig{
			Mode: DefaultRenderMode,
		},
		Log: LogConfig{
			File: "",
		},
	}
}
