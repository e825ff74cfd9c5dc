package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/achilleasa/gopher-console/internal/vga"
)

// Config is the root configuration for vgasim.
type Config struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DisplayConfig configures the simulated console.
type DisplayConfig struct {
	Foreground string `mapstructure:"foreground" yaml:"foreground"`
	Background string `mapstructure:"background" yaml:"background"`
}

// RenderConfig configures how the grid is shown.
type RenderConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode"`
}

// LogConfig configures logging. An empty File logs to stderr.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Attr resolves the configured colors.
func (d DisplayConfig) Attr() (vga.Attr, error) {
	fg, err := vga.ParseColor(d.Foreground)
	if err != nil {
		return 0, fmt.Errorf("display.foreground: %w", err)
	}
	bg, err := vga.ParseColor(d.Background)
	if err != nil {
		return 0, fmt.Errorf("display.background: %w", err)
	}
	return vga.MakeAttr(fg, bg), nil
}

// Validate checks values viper cannot check for us.
func (c Config) Validate() error {
	if _, err := c.Display.Attr(); err != nil {
		return err
	}
	switch c.Render.Mode {
	case RenderAuto, RenderColor, RenderPlain:
	default:
		return fmt.Errorf("render.mode: unknown mode %q", c.Render.Mode)
	}
	return nil
}

// Loader wraps Viper configuration loading for vgasim.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("VGASIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/vgasim")
	v.AddConfigPath("$HOME/" + DefaultConfigDirName)

	defaults := DefaultConfig()
	v.SetDefault("display.foreground", defaults.Display.Foreground)
	v.SetDefault("display.background", defaults.Display.Background)
	v.SetDefault("render.mode", defaults.Render.Mode)
	v.SetDefault("log.file", defaults.Log.File)

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration, unmarshals it into a Config and validates it.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
