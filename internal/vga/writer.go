package vga

// Writer is the console: a cursor and a current attribute over a Buffer.
// All methods are safe for concurrent use; each call holds the writer's lock
// for its whole duration, so output from one call is never interleaved with
// another.
//
// The last column is reserved as the wrap trigger: an ordinary byte arriving
// while the cursor sits on it moves to the next line first.
type Writer struct {
	mu SpinLock

	row  int
	col  int
	attr Attr
	buf  *Buffer

	scrolls uint64
}

// Option configures a Writer.
type Option func(*Writer)

// WithAttr sets the initial attribute.
func WithAttr(attr Attr) Option {
	return func(w *Writer) {
		w.attr = attr
	}
}

// NewWriter returns a writer over buf with the cursor at (0, 0) and
// DefaultAttr. It does not modify buf; call Clear for that.
func NewWriter(buf *Buffer, opts ...Option) *Writer {
	w := &Writer{
		attr: DefaultAttr,
		buf:  buf,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteByte writes one byte. '\n' starts a new line; every other byte is
// stored verbatim. It never fails.
func (w *Writer) WriteByte(b byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.putByte(b)
	return nil
}

// Write writes p in order. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range p {
		w.putByte(b)
	}
	return len(p), nil
}

// WriteString writes the bytes of s in order. s is not decoded.
func (w *Writer) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := 0; i < len(s); i++ {
		w.putByte(s[i])
	}
	return len(s), nil
}

// Newline moves the cursor to the start of a freshly cleared line, scrolling
// the screen up by one when the cursor is on the bottom row.
func (w *Writer) Newline() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.newline()
}

// ClearRow blanks row with the current attribute. The cursor does not move.
func (w *Writer) ClearRow(row int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clearRow(row)
}

// Clear blanks the whole screen with the current attribute and homes the
// cursor.
func (w *Writer) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for row := 0; row < Height; row++ {
		w.clearRow(row)
	}
	w.row, w.col = 0, 0
}

// SetAttr changes the attribute used for subsequent output.
func (w *Writer) SetAttr(attr Attr) {
	w.mu.Lock()
	w.attr = attr
	w.mu.Unlock()
}

// Attr returns the current attribute.
func (w *Writer) Attr() Attr {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attr
}

// Position returns the cursor.
func (w *Writer) Position() (row, col int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.row, w.col
}

// Scrolls returns how many times the screen has scrolled.
func (w *Writer) Scrolls() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrolls
}

func (w *Writer) putByte(b byte) {
	if b == '\n' {
		w.newline()
		return
	}
	if w.col == Width-1 {
		w.newline()
	}
	w.buf.SetCell(w.row, w.col, Cell{Char: b, Attr: w.attr})
	w.col++
}

func (w *Writer) newline() {
	if w.row == Height-1 {
		for row := 0; row < Height-1; row++ {
			w.buf.SetRow(row, w.buf.Row(row+1))
		}
		w.scrolls++
	} else {
		w.row++
	}
	w.col = 0
	w.clearRow(w.row)
}

func (w *Writer) clearRow(row int) {
	var r Row
	blank := Blank(w.attr)
	for i := range r {
		r[i] = blank
	}
	w.buf.SetRow(row, r)
}
