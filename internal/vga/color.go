package vga

import (
	"fmt"
	"strings"
)

// Color is one of the 16 entries of the VGA text-mode palette.
type Color uint8

// The palette, in hardware code order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

var colorNames = [...]string{
	"black",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"brown",
	"lightgray",
	"darkgray",
	"lightblue",
	"lightgreen",
	"lightcyan",
	"lightred",
	"pink",
	"yellow",
	"white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a palette name. Matching ignores case, spaces, dashes and
// underscores, so "Light Gray" and "light_gray" both name LightGray.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name))
	switch key {
	case "lightgrey":
		return LightGray, nil
	case "darkgrey":
		return DarkGray, nil
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// Attr is a packed color attribute: background in the high nibble, foreground
// in the low nibble.
type Attr uint8

// DefaultAttr is white text on a black background.
const DefaultAttr = Attr(Black<<4 | White)

// MakeAttr packs a foreground and background color.
func MakeAttr(fg, bg Color) Attr {
	return Attr((bg&0x0f)<<4 | fg&0x0f)
}

// Foreground returns the low nibble.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the high nibble.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

func (a Attr) String() string {
	return a.Foreground().String() + "/" + a.Background().String()
}
