package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/achilleasa/gopher-console/internal/vga"
)

// Paint draws buf onto the top-left corner of s and places the cursor at
// (row, col). The caller calls Show.
func Paint(s tcell.Screen, buf *vga.Buffer, row, col int) {
	for y := 0; y < vga.Height; y++ {
		for x, c := range buf.Row(y) {
			s.SetContent(x, y, Glyph(c.Char), nil, Style(c.Attr))
		}
	}
	s.ShowCursor(col, row)
}
