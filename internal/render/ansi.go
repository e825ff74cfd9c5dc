package render

import (
	"bytes"
	"io"
	"strconv"

	"github.com/achilleasa/gopher-console/internal/vga"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiHome        = "\x1b[H"
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiReset       = "\x1b[0m"
)

// ANSIOptions controls ANSI rendering.
type ANSIOptions struct {
	// Plain writes the text only, one line per row with trailing blanks
	// trimmed.
	Plain bool
	// Cursor places the terminal cursor at CursorRow, CursorCol after the
	// grid is drawn. Ignored for plain output.
	Cursor    bool
	CursorRow int
	CursorCol int
}

// ANSI renders buf to w.
func ANSI(w io.Writer, buf *vga.Buffer, opts ANSIOptions) error {
	var out bytes.Buffer
	if opts.Plain {
		writePlain(&out, buf)
	} else {
		writeColor(&out, buf, opts)
	}
	_, err := w.Write(out.Bytes())
	return err
}

func writePlain(out *bytes.Buffer, buf *vga.Buffer) {
	for row := 0; row < vga.Height; row++ {
		line := buf.Row(row)
		end := len(line)
		for end > 0 && Glyph(line[end-1].Char) == ' ' {
			end--
		}
		for _, c := range line[:end] {
			out.WriteRune(Glyph(c.Char))
		}
		out.WriteByte('\n')
	}
}

func writeColor(out *bytes.Buffer, buf *vga.Buffer, opts ANSIOptions) {
	out.WriteString(ansiHideCursor + ansiClearScreen + ansiHome + ansiReset)
	for row := 0; row < vga.Height; row++ {
		moveTo(out, row, 0)
		current := -1
		for _, c := range buf.Row(row) {
			if int(c.Attr) != current {
				writeSGR(out, c.Attr)
				current = int(c.Attr)
			}
			out.WriteRune(Glyph(c.Char))
		}
		out.WriteString(ansiReset)
	}
	if opts.Cursor {
		moveTo(out, opts.CursorRow, opts.CursorCol)
		out.WriteString(ansiShowCursor)
	} else {
		moveTo(out, vga.Height, 0)
	}
}

func moveTo(out *bytes.Buffer, row, col int) {
	out.WriteString("\x1b[")
	out.WriteString(strconv.Itoa(row + 1))
	out.WriteByte(';')
	out.WriteString(strconv.Itoa(col + 1))
	out.WriteByte('H')
}

func writeSGR(out *bytes.Buffer, attr vga.Attr) {
	fg := ANSIColor(attr.Foreground())
	bg := ANSIColor(attr.Background())
	fgCode, bgCode := 30+fg, 40+bg
	if fg >= 8 {
		fgCode = 90 + fg - 8
	}
	if bg >= 8 {
		bgCode = 100 + bg - 8
	}
	out.WriteString("\x1b[")
	out.WriteString(strconv.Itoa(fgCode))
	out.WriteByte(';')
	out.WriteString(strconv.Itoa(bgCode))
	out.WriteByte('m')
}
