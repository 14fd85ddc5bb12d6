package squaregrid

import (
	"errors"
	"image/color"
	"testing"

	"golang.org/x/image/colornames"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"red", colornames.Red},
		{"Red", colornames.Red},
		{"  CornflowerBlue ", colornames.Cornflowerblue},
		{"WHITE", colornames.White},
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#00ff00", color.NRGBA{G: 255, A: 255}},
		{"#00f", color.NRGBA{B: 255, A: 255}},
		{"#0008", color.NRGBA{A: 0x88}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"#ABCDEF", color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 255}},
		{"", nil},
		{"none", nil},
		{"None", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	// Hex needs the '#', so words made of hex digits are not colors.
	for _, in := range []string{"notacolor", "#12", "#12345", "#gggggg", "#1234567", "##fff",
		"bad", "cafe", "00ff00", "fff"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}

func TestHexDigits(t *testing.T) {
	tests := []struct {
		in     string
		want   uint8
		wantOK bool
	}{
		{"0", 0, true},
		{"f", 15, true},
		{"F", 15, true},
		{"ff", 255, true},
		{"7a", 122, true},
		{"x", 0, false},
		{"1z", 0, false},
	}
	for _, tt := range tests {
		got, ok := hexDigits(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("hexDigits(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
