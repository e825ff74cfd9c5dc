package vga

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestBufferLayoutMatchesHardware(t *testing.T) {
	if got := unsafe.Sizeof(Cell{}); got != 2 {
		t.Fatalf("Cell is %d bytes, want 2", got)
	}
	if got := unsafe.Sizeof(Grid{}); got != ImageSize {
		t.Fatalf("Grid is %d bytes, want %d", got, ImageSize)
	}
	if ImageSize != 4000 {
		t.Fatalf("ImageSize = %d, want 4000", ImageSize)
	}
}

func TestBufferBytesAreRowMajorCharThenAttr(t *testing.T) {
	buf := NewBuffer()
	attr := MakeAttr(Yellow, Blue)
	buf.SetCell(0, 0, Cell{Char: 'A', Attr: attr})
	buf.SetCell(1, 3, Cell{Char: 'B', Attr: DefaultAttr})
	buf.SetCell(Height-1, Width-1, Cell{Char: 'Z', Attr: attr})

	raw := buf.Bytes()
	if len(raw) != ImageSize {
		t.Fatalf("len(Bytes()) = %d, want %d", len(raw), ImageSize)
	}
	check := func(row, col int, ch byte, a Attr) {
		t.Helper()
		off := (row*Width + col) * 2
		if raw[off] != ch || raw[off+1] != byte(a) {
			t.Fatalf("offset %d = %q/%#02x, want %q/%#02x", off, raw[off], raw[off+1], ch, uint8(a))
		}
	}
	check(0, 0, 'A', attr)
	check(1, 3, 'B', DefaultAttr)
	check(Height-1, Width-1, 'Z', attr)

	if got := buf.Cell(1, 3).Word(); got != 0x0f42 {
		t.Fatalf("Word() = %#04x, want 0x0f42", got)
	}
}

func TestBufferRowCopyIsDetached(t *testing.T) {
	buf := NewBuffer()
	buf.SetCell(2, 0, Cell{Char: 'x', Attr: DefaultAttr})
	r := buf.Row(2)
	r[0].Char = 'y'
	if buf.Cell(2, 0).Char != 'x' {
		t.Fatalf("Row returned an alias of the buffer")
	}
	buf.SetRow(3, r)
	if buf.Cell(3, 0).Char != 'y' {
		t.Fatalf("SetRow did not store the row")
	}
}

func TestBufferLoadBytes(t *testing.T) {
	src := NewBuffer()
	src.Fill(Cell{Char: '#', Attr: MakeAttr(Green, Black)})
	src.SetCell(10, 10, Cell{Char: '@', Attr: DefaultAttr})

	dst := NewBuffer()
	if err := dst.LoadBytes(src.Bytes()); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if !bytes.Equal(dst.Bytes(), src.Bytes()) {
		t.Fatalf("loaded image differs from source")
	}
	if err := dst.LoadBytes(make([]byte, ImageSize-1)); err == nil {
		t.Fatalf("expected error for short image")
	}
}
