package render

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/achilleasa/gopher-console/internal/vga"
)

// ansiIndex maps VGA palette codes onto the ANSI 16-color order, which swaps
// the red and blue bits.
var ansiIndex = [16]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// ANSIColor returns the ANSI 16-color index for c.
func ANSIColor(c vga.Color) int {
	return ansiIndex[c&0x0f]
}

// Style returns the tcell style for attr.
func Style(attr vga.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(ANSIColor(attr.Foreground()))).
		Background(tcell.PaletteColor(ANSIColor(attr.Background())))
}

// Glyph returns the rune the adapter's code page 437 font draws for ch.
// Control codes come back as '.' and NUL as a space.
func Glyph(ch byte) rune {
	switch {
	case ch == 0:
		return ' '
	case ch < 0x20 || ch == 0x7f:
		return '.'
	case ch < 0x80:
		return rune(ch)
	}
	return charmap.CodePage437.DecodeByte(ch)
}
