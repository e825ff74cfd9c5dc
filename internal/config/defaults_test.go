package config

import (
	"testing"

	"github.com/achilleasa/gopher-console/internal/vga"
)

func TestDefaultConfigUsesConstants(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.Foreground != DefaultForeground {
		t.Fatalf("Display.Foreground = %q, want %q", cfg.Display.Foreground, DefaultForeground)
	}
	if cfg.Display.Background != DefaultBackground {
		t.Fatalf("Display.Background = %q, want %q", cfg.Display.Background, DefaultBackground)
	}
	if cfg.Render.Mode != DefaultRenderMode {
		t.Fatalf("Render.Mode = %q, want %q", cfg.Render.Mode, DefaultRenderMode)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	attr, err := cfg.Display.Attr()
	if err != nil {
		t.Fatalf("Attr: %v", err)
	}
	if attr != vga.DefaultAttr {
		t.Fatalf("default attr = %v, want %v", attr, vga.DefaultAttr)
	}
}
