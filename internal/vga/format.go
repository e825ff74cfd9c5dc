package vga

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// ErrFormat reports that formatted output could not be composed. Nothing is
// written when it is returned.
var ErrFormat = errors.New("vga: format error")

// Printf formats according to a format specifier and writes the result as a
// single locked operation.
//
// fmt reports mistakes by embedding "%!" markers in its output. Printf
// instead checks the format string against its operands before formatting
// (missing or extra operands, bad indexes, widths and verbs) and catches
// panics raised by the operands' own formatting methods, returning ErrFormat
// for any of them.
func (w *Writer) Printf(format string, args ...any) error {
	uses, err := scanFormat(format, args)
	if err != nil {
		return err
	}
	var st formatState
	out := fmt.Appendf(nil, format, st.wrap(args, uses)...)
	if st.err != nil {
		return st.err
	}
	return w.emit(out)
}

// Print formats its operands like fmt.Print.
func (w *Writer) Print(args ...any) error {
	var (
		st  formatState
		out []byte
	)
	for i, arg := range args {
		if i > 0 && !isString(args[i-1]) && !isString(arg) {
			out = append(out, ' ')
		}
		out = fmt.Append(out, st.operand(arg))
	}
	if st.err != nil {
		return st.err
	}
	return w.emit(out)
}

// Println formats its operands like fmt.Println.
func (w *Writer) Println(args ...any) error {
	var st formatState
	wrapped := make([]any, len(args))
	for i, arg := range args {
		wrapped[i] = st.operand(arg)
	}
	out := fmt.Appendln(nil, wrapped...)
	if st.err != nil {
		return st.err
	}
	return w.emit(out)
}

// MustPrintf is Printf for callers with nowhere to send an error, such as the
// kernel entry point. It panics on a format error.
func (w *Writer) MustPrintf(format string, args ...any) {
	if err := w.Printf(format, args...); err != nil {
		panic(err)
	}
}

func (w *Writer) emit(out []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range out {
		w.putByte(b)
	}
	return nil
}

func isString(arg any) bool {
	return arg != nil && reflect.TypeOf(arg).Kind() == reflect.String
}

// argUse records one operand consumed by a directive. A zero verb marks a '*'
// width or precision.
type argUse struct {
	index int
	verb  rune
}

// scanFormat walks format the way fmt does and checks every directive
// against args.
func scanFormat(format string, args []any) ([]argUse, error) {
	var (
		uses      []argUse
		argNum    int
		reordered bool
	)
	fail := func(detail string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(detail, a...))
	}

	// argIndex parses an explicit "[n]" at format[i].
	argIndex := func(i int) (next int, idx int, present, ok bool) {
		if i >= len(format) || format[i] != '[' {
			return i, argNum, false, true
		}
		reordered = true
		end := strings.IndexByte(format[i:], ']')
		if end < 0 {
			return i + 1, argNum, true, false
		}
		n, digits := 0, 0
		for _, c := range format[i+1 : i+end] {
			if c < '0' || c > '9' {
				return i + end + 1, argNum, true, false
			}
			n = n*10 + int(c-'0')
			digits++
		}
		if digits == 0 || n < 1 || n > len(args) {
			return i + end + 1, argNum, true, false
		}
		return i + end + 1, n - 1, true, true
	}

	star := func(what string) error {
		if argNum >= len(args) {
			return fail("missing operand for * %s", what)
		}
		if !isSmallInt(args[argNum]) {
			return fail("operand %d for * %s is %T, want int", argNum+1, what, args[argNum])
		}
		uses = append(uses, argUse{index: argNum})
		argNum++
		return nil
	}

	for i := 0; i < len(format); {
		pct := strings.IndexByte(format[i:], '%')
		if pct < 0 {
			break
		}
		i += pct + 1

		for i < len(format) && strings.IndexByte("#0+- ", format[i]) >= 0 {
			i++
		}

		var (
			afterIndex bool
			ok         bool
			idx        int
		)
		i, idx, afterIndex, ok = argIndex(i)
		if !ok {
			return nil, fail("bad operand index in %q", format)
		}
		argNum = idx

		if i < len(format) && format[i] == '*' {
			i++
			if err := star("width"); err != nil {
				return nil, err
			}
			afterIndex = false
		} else {
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			if afterIndex && i > start {
				return nil, fail("width after operand index in %q", format)
			}
		}

		if i+1 < len(format) && format[i] == '.' {
			i++
			if afterIndex {
				return nil, fail("precision after operand index in %q", format)
			}
			i, idx, afterIndex, ok = argIndex(i)
			if !ok {
				return nil, fail("bad operand index in %q", format)
			}
			argNum = idx
			if i < len(format) && format[i] == '*' {
				i++
				if err := star("precision"); err != nil {
					return nil, err
				}
				afterIndex = false
			} else {
				for i < len(format) && format[i] >= '0' && format[i] <= '9' {
					i++
				}
			}
		}

		if !afterIndex {
			i, idx, _, ok = argIndex(i)
			if !ok {
				return nil, fail("bad operand index in %q", format)
			}
			argNum = idx
		}

		if i >= len(format) {
			return nil, fail("missing verb at end of %q", format)
		}
		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size

		switch {
		case verb == '%':
		case argNum >= len(args):
			return nil, fail("missing operand for %%%c", verb)
		case verb == 'w':
			return nil, fail("%%w is not supported")
		default:
			if !verbApplies(args[argNum], verb) {
				return nil, fail("verb %%%c does not apply to operand %d (%T)", verb, argNum+1, args[argNum])
			}
			uses = append(uses, argUse{index: argNum, verb: verb})
			argNum++
		}
	}

	if !reordered && argNum < len(args) {
		return nil, fail("%d extra operand(s)", len(args)-argNum)
	}
	return uses, nil
}

// isSmallInt reports whether fmt accepts v as a '*' width or precision.
func isSmallInt(v any) bool {
	const limit = 1e6
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return n >= -limit && n <= limit
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() <= limit
	}
	return false
}

// verbApplies reports whether fmt can format arg with verb. Whether a verb
// applies depends only on the operand's type, so it is decided on the zero
// value of that type, whose output carries no operand content that could be
// mistaken for an error marker.
func verbApplies(arg any, verb rune) bool {
	if arg == nil {
		return verb == 'v' || verb == 'T'
	}
	switch verb {
	case 'T', 'v':
		return true
	case 'p':
	default:
		if _, ok := arg.(fmt.Formatter); ok {
			return true
		}
		if strings.ContainsRune("sxXq", verb) {
			switch arg.(type) {
			case error, fmt.Stringer:
				return true
			}
		}
	}
	zero := reflect.Zero(reflect.TypeOf(arg)).Interface()
	out := fmt.Sprintf("%"+string(verb), zero)
	return !strings.HasPrefix(out, "%!"+string(verb)+"(")
}

// formatState collects the first failure raised while formatting operands.
type formatState struct {
	err error
}

// wrap guards every operand that is only ever formatted through a plain
// verb. %T, %p and '*' operands are left alone since fmt treats them before
// consulting any Formatter.
func (st *formatState) wrap(args []any, uses []argUse) []any {
	plain := make([]bool, len(args))
	for i := range plain {
		plain[i] = true
	}
	for _, u := range uses {
		if u.verb == 0 || u.verb == 'T' || u.verb == 'p' {
			plain[u.index] = false
		}
	}
	wrapped := make([]any, len(args))
	for i, arg := range args {
		if plain[i] {
			wrapped[i] = st.operand(arg)
		} else {
			wrapped[i] = arg
		}
	}
	return wrapped
}

func (st *formatState) operand(arg any) *operand {
	return &operand{v: arg, st: st}
}

// operand formats its value the way fmt would, but turns a panic in the
// value's Format, Error, String or GoString method into ErrFormat instead of
// an inline "%!v(PANIC=...)" marker.
type operand struct {
	v  any
	st *formatState
}

func (o *operand) Format(f fmt.State, verb rune) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if v := reflect.ValueOf(o.v); v.Kind() == reflect.Pointer && v.IsNil() {
			fmt.Fprintf(f, fmt.FormatString(f, 's'), "<nil>")
			return
		}
		if o.st.err == nil {
			o.st.err = fmt.Errorf("%w: %%%c of %T panicked: %v", ErrFormat, verb, o.v, r)
		}
	}()

	switch v := o.v.(type) {
	case fmt.Formatter:
		v.Format(f, verb)
		return
	}
	if verb == 'v' && f.Flag('#') {
		if gs, ok := o.v.(fmt.GoStringer); ok {
			fmt.Fprintf(f, fmt.FormatString(f, 's'), gs.GoString())
			return
		}
	} else if strings.ContainsRune("vsxXq", verb) {
		switch v := o.v.(type) {
		case error:
			fmt.Fprintf(f, fmt.FormatString(f, verb), v.Error())
			return
		case fmt.Stringer:
			fmt.Fprintf(f, fmt.FormatString(f, verb), v.String())
			return
		}
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), o.v)
}
