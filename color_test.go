package clearpass

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func colorsClose(a, b Color) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", Red},
		{"f00", Red},
		{"#F00F", Red},
		{"#ff0000", Red},
		{"#FF000080", Color{R: 1, A: 128.0 / 255}},
		{"  #ffffff  ", White},
		{"#000", Black},
		{"#666666", Color{R: 0.4, G: 0.4, B: 0.4, A: 1}},
		{"#00000000", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#123456789", "#ggg", "red", "#ff00zz"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseHex(in); !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
			}
		})
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex(\"nope\") did not panic")
		}
	}()
	MustParseHex("nope")
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Red, Transparent, DefaultClearColor, RGBA(0.2, 0.4, 0.6, 0.8)} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", c.Hex(), err)
		}
		if !colorsClose(got, c) {
			t.Errorf("round trip of %+v = %+v", c, got)
		}
	}
	if got := DefaultClearColor.String(); got != "#666666ff" {
		t.Errorf("DefaultClearColor.String() = %q, want #666666ff", got)
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGB(1, 0, 0)
	got := color.RGBAModel.Convert(c).(color.RGBA)
	if got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Convert(Red) = %v", got)
	}

	// Half-transparent white is premultiplied.
	r, _, _, a := RGBA(1, 1, 1, 0.5).RGBA()
	if r != a {
		t.Errorf("RGBA() r = %d, a = %d, want premultiplied equal values", r, a)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	want := Color{R: 1, A: 128.0 / 255}
	if !colorsClose(got, want) {
		t.Errorf("FromColor() = %+v, want %+v", got, want)
	}
}

func TestColorGPU(t *testing.T) {
	got := RGBA(0.1, 0.2, 0.3, 0.4).GPU()
	want := gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	if got != want {
		t.Errorf("GPU() = %+v, want %+v", got, want)
	}
}

func TestUnorm16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{-1, 0},
		{0, 0},
		{math.NaN(), 0},
		{1, 0xffff},
		{2, 0xffff},
		{0.5, 0x8000},
	}
	for _, tt := range tests {
		if got := unorm16(tt.in); got != tt.want {
			t.Errorf("unorm16(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}
