package squaregrid

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ParseColor parses a CSS color name or a hex color.
//
// Names are matched case-insensitively against the SVG 1.1 named colors
// ("red", "CornflowerBlue"). Hex colors must start with '#' and have 3, 4,
// 6 or 8 digits: "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The empty
// string and "none" return a nil color, which WithGridColor and
// SetGridColor take as "no borders".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	name := cases.Fold().String(s)
	if name == "" || name == "none" {
		return nil, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if c, ok := parseHexColor(hex); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// parseHexColor parses "RGB", "RGBA", "RRGGBB" and "RRGGBBAA".
func parseHexColor(hex string) (color.NRGBA, bool) {
	var r, g, b, a uint8
	a = 255

	var ok bool
	switch len(hex) {
	case 3, 4: // RGB, RGBA
		digits := make([]uint8, len(hex))
		for i := range hex {
			if digits[i], ok = hexDigits(hex[i : i+1]); !ok {
				return color.NRGBA{}, false
			}
			digits[i] *= 17
		}
		r, g, b = digits[0], digits[1], digits[2]
		if len(hex) == 4 {
			a = digits[3]
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		components := []*uint8{&r, &g, &b, &a}
		for i := 0; i < len(hex)/2; i++ {
			if *components[i], ok = hexDigits(hex[2*i : 2*i+2]); !ok {
				return color.NRGBA{}, false
			}
		}
	default:
		return color.NRGBA{}, false
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

// hexDigits parses one or two hex digits.
func hexDigits(s string) (uint8, bool) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += c - '0'
		case 'a' <= c && c <= 'f':
			v += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v += c - 'A' + 10
		default:
			return 0, false
		}
	}
	return v, true
}
