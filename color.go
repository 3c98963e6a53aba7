package marlin

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Color holds four channels in the range [0, 1]. Fragment stages return the
// final pixel color through this type.
type Color struct {
	R, G, B, A float64
}

// The named palette. Red and Blue carry the demo's exact channel values.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{235.0 / 255, 64.0 / 255, 52.0 / 255, 1}
	Blue        = Color{20.0 / 255, 152.0 / 255, 252.0 / 255, 1}
)

// MakeColor converts a stdlib color, un-premultiplying alpha.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	d := float64(a)
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / 0xffff}
}

// ColorFromBytes builds a Color from 0..255 channels. Out-of-range values
// are an error rather than being clamped silently.
func ColorFromBytes(r, g, b, a int) (Color, error) {
	for _, ch := range [4]struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}} {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, fmt.Errorf("%s value %d out of bounds", ch.name, ch.value)
		}
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}, nil
}

// HexColor parses "rgb", "rrggbb" or "rrggbbaa", with or without a leading #.
func HexColor(x string) Color {
	x = strings.TrimPrefix(x, "#")
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = (r << 4) | r
		g = (g << 4) | g
		b = (b << 4) | b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// Mix averages the channels of the given colors.
func Mix(colors ...Color) Color {
	if len(colors) == 0 {
		return Color{}
	}
	var m Color
	for _, c := range colors {
		m = m.Add(c)
	}
	return m.DivScalar(float64(len(colors)))
}

// LinearizeChannel converts a 0..255 sRGB channel to linear light.
func LinearizeChannel(rgb float64) float64 {
	return math.Pow((rgb/255+0.055)/1.055, 2.4)
}

// NRGBA converts to a non-premultiplied 8-bit color, clamping channels.
func (c Color) NRGBA() color.NRGBA {
	r := uint8(Clamp(c.R, 0, 1) * 255)
	g := uint8(Clamp(c.G, 0, 1) * 255)
	b := uint8(Clamp(c.B, 0, 1) * 255)
	a := uint8(Clamp(c.A, 0, 1) * 255)
	return color.NRGBA{r, g, b, a}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b, a.A * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b, a.A / b}
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B), math.Max(a.A, b.A)}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

// Alpha returns the color with its alpha channel replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}

// Opaque returns the color with alpha forced to 1.
func (a Color) Opaque() Color {
	return Color{a.R, a.G, a.B, 1}
}
