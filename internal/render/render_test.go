package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/achilleasa/gopher-console/internal/vga"
)

func TestANSIColorSwapsRedAndBlue(t *testing.T) {
	tests := []struct {
		in   vga.Color
		want int
	}{
		{vga.Black, 0},
		{vga.Blue, 4},
		{vga.Red, 1},
		{vga.Brown, 3},
		{vga.LightGray, 7},
		{vga.DarkGray, 8},
		{vga.LightBlue, 12},
		{vga.Yellow, 11},
		{vga.White, 15},
	}
	for _, tc := range tests {
		if got := ANSIColor(tc.in); got != tc.want {
			t.Fatalf("ANSIColor(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		in   byte
		want rune
	}{
		{0, ' '},
		{'A', 'A'},
		{'\t', '.'},
		{0x7f, '.'},
		{0xdb, '█'},
		{0xb0, '░'},
	}
	for _, tc := range tests {
		if got := Glyph(tc.in); got != tc.want {
			t.Fatalf("Glyph(%#02x) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestANSIPlain(t *testing.T) {
	buf := vga.NewBuffer()
	w := vga.NewWriter(buf)
	w.Clear()
	if _, err := w.WriteString("hello\n  world"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	var out bytes.Buffer
	if err := ANSI(&out, buf, ANSIOptions{Plain: true}); err != nil {
		t.Fatalf("ANSI: %v", err)
	}
	lines := strings.Split(out.String(), "\n")
	if len(lines) != vga.Height+1 {
		t.Fatalf("got %d lines, want %d", len(lines), vga.Height+1)
	}
	if lines[0] != "hello" || lines[1] != "  world" || lines[2] != "" {
		t.Fatalf("unexpected text: %q", lines[:3])
	}
	if strings.Contains(out.String(), "\x1b") {
		t.Fatalf("plain output contains escapes")
	}
}

func TestANSIColorOutput(t *testing.T) {
	buf := vga.NewBuffer()
	w := vga.NewWriter(buf, vga.WithAttr(vga.MakeAttr(vga.Yellow, vga.Blue)))
	w.Clear()
	if _, err := w.WriteString("Hi"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	var out bytes.Buffer
	err := ANSI(&out, buf, ANSIOptions{Cursor: true, CursorRow: 0, CursorCol: 2})
	if err != nil {
		t.Fatalf("ANSI: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, ansiHideCursor+ansiClearScreen+ansiHome) {
		t.Fatalf("missing screen prologue: %q", got[:20])
	}
	if !strings.Contains(got, "\x1b[1;1H\x1b[93;44mHi ") {
		t.Fatalf("first row not rendered with yellow on blue: %q", got[:60])
	}
	if !strings.HasSuffix(got, "\x1b[1;3H"+ansiShowCursor) {
		t.Fatalf("cursor not placed at the end: %q", got[len(got)-20:])
	}
	if n := strings.Count(got, "\x1b[93;44m"); n != vga.Height {
		t.Fatalf("SGR emitted %d times, want once per row (%d)", n, vga.Height)
	}
}

func TestPaintUsesPaletteStyles(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(vga.Width, vga.Height)

	buf := vga.NewBuffer()
	w := vga.NewWriter(buf)
	w.Clear()
	w.SetAttr(vga.MakeAttr(vga.LightGreen, vga.Red))
	if _, err := w.WriteString("ok"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	Paint(screen, buf, 0, 2)

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != 'k' {
		t.Fatalf("cell (0,1) = %q, want 'k'", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.PaletteColor(10) || bg != tcell.PaletteColor(1) {
		t.Fatalf("style = %v/%v, want light green on red", fg, bg)
	}

	mainc, _, style, _ = screen.GetContent(vga.Width-1, vga.Height-1)
	if mainc != ' ' {
		t.Fatalf("bottom-right cell = %q, want blank", mainc)
	}
	if style != Style(vga.DefaultAttr) {
		t.Fatalf("bottom-right style does not match the default attribute")
	}
}
