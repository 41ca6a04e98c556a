package clearpass

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gputypes"
)

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("clearpass: invalid hex color")

// Color is a straight-alpha color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
//
// Color implements color.Color.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
	Red         = Color{R: 1, G: 0, B: 0, A: 1}
)

// DefaultClearColor is the clear color of a fresh ClearColor: opaque gray.
var DefaultClearColor = Color{R: 0.4, G: 0.4, B: 0.4, A: 1}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGBA implements color.Color. The result is alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: unorm16(c.R),
		G: unorm16(c.G),
		B: unorm16(c.B),
		A: unorm16(c.A),
	}.RGBA()
}

// GPU returns c as a render-pass clear value. Components are passed
// through unclamped.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		unorm16(c.R)>>8, unorm16(c.G)>>8, unorm16(c.B)>>8, unorm16(c.A)>>8)
}

// String returns the hex form of c.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a hex color string.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var digits [8]uint32
	for i := 0; i < len(hex); i++ {
		if i == len(digits) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		digits[i] = d
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4: // RGBA
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6: // RRGGBB
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8: // RRGGBBAA
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for color literals in code.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

// unorm16 converts a [0, 1] component to 16 bits, clamping out-of-range
// values.
func unorm16(x float64) uint16 {
	if !(x > 0) { // also catches NaN
		return 0
	}
	if x >= 1 {
		return 0xffff
	}
	return uint16(x*0xffff + 0.5)
}
