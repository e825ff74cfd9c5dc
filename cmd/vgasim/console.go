package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/pslog"

	"github.com/achilleasa/gopher-console/internal/config"
	"github.com/achilleasa/gopher-console/internal/render"
	"github.com/achilleasa/gopher-console/internal/vga"
)

// inputFlags are shared by commands that feed text through a console.
type inputFlags struct {
	text string
	fg   string
	bg   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.text, "text", "t", "", "text to write instead of reading a file or stdin")
	flags.StringVar(&f.fg, "fg", "", "foreground color (overrides display.foreground)")
	flags.StringVar(&f.bg, "bg", "", "background color (overrides display.background)")
}

// attr merges the color flags over the configured display colors.
func (f *inputFlags) attr(cmd *cobra.Command, cfg config.Config) (vga.Attr, error) {
	display := cfg.Display
	if cmd.Flags().Changed("fg") {
		display.Foreground = f.fg
	}
	if cmd.Flags().Changed("bg") {
		display.Background = f.bg
	}
	return display.Attr()
}

// read returns the bytes to write: --text if set, else the named file, else
// stdin. A file named "-" is stdin as well.
func (f *inputFlags) read(cmd *cobra.Command, args []string) ([]byte, error) {
	if cmd.Flags().Changed("text") {
		return []byte(f.text), nil
	}
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// simulate clears a fresh in-memory console and writes input through it.
func simulate(ctx context.Context, attr vga.Attr, input []byte) (*vga.Buffer, *vga.Writer, error) {
	buf := vga.NewBuffer()
	console := vga.NewWriter(buf, vga.WithAttr(attr))
	console.Clear()
	if _, err := io.Copy(console, bytes.NewReader(input)); err != nil {
		return nil, nil, err
	}

	row, col := console.Position()
	pslog.Ctx(ctx).Info("console simulated",
		"bytes", len(input),
		"attr", attr.String(),
		"scrolls", console.Scrolls(),
		"row", row,
		"col", col,
	)
	return buf, console, nil
}

func checkMode(mode string) error {
	switch mode {
	case config.RenderAuto, config.RenderColor, config.RenderPlain:
		return nil
	}
	return fmt.Errorf("unknown mode %q", mode)
}

// resolveMode turns RenderAuto into a concrete mode for out.
func resolveMode(ctx context.Context, mode string, out io.Writer) string {
	if mode != config.RenderAuto {
		return mode
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return config.RenderPlain
	}
	if cols, rows, err := term.GetSize(int(f.Fd())); err == nil && (cols < vga.Width || rows < vga.Height) {
		pslog.Ctx(ctx).Warn("terminal smaller than the console", "cols", cols, "rows", rows)
	}
	return config.RenderColor
}

func writeGrid(ctx context.Context, out io.Writer, mode string, buf *vga.Buffer, console *vga.Writer) error {
	opts := render.ANSIOptions{Plain: resolveMode(ctx, mode, out) == config.RenderPlain}
	if console != nil {
		opts.Cursor = true
		opts.CursorRow, opts.CursorCol = console.Position()
	}
	return render.ANSI(out, buf, opts)
}
