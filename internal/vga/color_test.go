package vga

import "testing"

func TestMakeAttrPacksNibbles(t *testing.T) {
	tests := []struct {
		fg, bg Color
		want   Attr
	}{
		{White, Black, 0x0f},
		{Black, Green, 0x20},
		{Yellow, Blue, 0x1e},
		{LightGray, White, 0xf7},
	}
	for _, tc := range tests {
		got := MakeAttr(tc.fg, tc.bg)
		if got != tc.want {
			t.Fatalf("MakeAttr(%v, %v) = %#02x, want %#02x", tc.fg, tc.bg, uint8(got), uint8(tc.want))
		}
		if got.Foreground() != tc.fg || got.Background() != tc.bg {
			t.Fatalf("attr %#02x unpacks to %v/%v, want %v/%v", uint8(got), got.Foreground(), got.Background(), tc.fg, tc.bg)
		}
	}
	if DefaultAttr != MakeAttr(White, Black) {
		t.Fatalf("DefaultAttr = %#02x, want white on black", uint8(DefaultAttr))
	}
}

func TestPaletteCodes(t *testing.T) {
	if Black != 0 || Blue != 1 || Brown != 6 || DarkGray != 8 || Pink != 13 || White != 15 {
		t.Fatalf("palette codes do not match hardware order")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"black", Black},
		{"White", White},
		{"light gray", LightGray},
		{"light-grey", LightGray},
		{"DARK_GRAY", DarkGray},
		{"pink", Pink},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := Black; c <= White; c++ {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseColor(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if got := Color(16).String(); got != "color(16)" {
		t.Fatalf("String() = %q", got)
	}
}
