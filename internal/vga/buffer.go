package vga

import (
	"fmt"
	"unsafe"
)

const (
	// Width is the number of character columns.
	Width = 80
	// Height is the number of character rows.
	Height = 25
	// PhysAddr is the physical address of the color text buffer.
	PhysAddr uintptr = 0xb8000

	// ImageSize is the size in bytes of the whole text buffer.
	ImageSize = Width * Height * 2
)

// Row is one line of cells.
type Row [Width]Cell

// Grid is the full text buffer, row-major with no padding.
type Grid [Height]Row

// Buffer is a view of a text buffer. It is either bound to video memory with
// MapBuffer or backed by ordinary memory with NewBuffer; both share the exact
// hardware layout.
//
// Accessors do not check bounds beyond what the Go runtime does for arrays;
// callers keep row < Height and col < Width.
type Buffer struct {
	grid *Grid
}

// NewBuffer returns a buffer backed by an in-process grid. Every cell starts
// out zeroed, as video memory does before the first clear.
func NewBuffer() *Buffer {
	return &Buffer{grid: new(Grid)}
}

// MapBuffer returns a buffer whose grid lives at the physical address addr.
func MapBuffer(addr uintptr) *Buffer {
	return &Buffer{grid: (*Grid)(unsafe.Pointer(addr))}
}

// SetCell stores c at (row, col).
func (b *Buffer) SetCell(row, col int, c Cell) {
	b.grid[row][col] = c
}

// Cell returns the cell at (row, col).
func (b *Buffer) Cell(row, col int) Cell {
	return b.grid[row][col]
}

// SetRow overwrites a whole row.
func (b *Buffer) SetRow(row int, r Row) {
	b.grid[row] = r
}

// Row returns a copy of a whole row.
func (b *Buffer) Row(row int) Row {
	return b.grid[row]
}

// Fill overwrites every cell with c.
func (b *Buffer) Fill(c Cell) {
	var r Row
	for i := range r {
		r[i] = c
	}
	for row := range b.grid {
		b.grid[row] = r
	}
}

// Bytes returns the raw buffer image. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b.grid)), ImageSize)
}

// LoadBytes copies a raw image produced by Bytes into the buffer.
func (b *Buffer) LoadBytes(image []byte) error {
	if len(image) != ImageSize {
		return fmt.Errorf("vga: image is %d bytes, want %d", len(image), ImageSize)
	}
	copy(b.Bytes(), image)
	return nil
}
