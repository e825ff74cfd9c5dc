package vga

// Cell is one character position as the adapter sees it: the character code
// followed by its attribute byte.
type Cell struct {
	Char byte
	Attr Attr
}

// Blank returns a space drawn with attr.
func Blank(attr Attr) Cell {
	return Cell{Char: ' ', Attr: attr}
}

// Word returns the cell as the little-endian 16-bit value stored in video
// memory.
func (c Cell) Word() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}
