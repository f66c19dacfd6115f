// Package graphics provides the color type written to render targets and
// the interpolation used by color tweens.
package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Hex formats the color as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%06x%02x", uint32(c)&0x00FFFFFF, uint8(c>>24))
}

func (c Color) String() string { return c.Hex() }

// ParseHex parses #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	switch len(h) {
	case 6:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		rgb := uint32(v) >> 8
		return Color(uint32(v)<<24 | rgb), nil
	default:
		return 0, fmt.Errorf("parse color %q: unsupported length", s)
	}
}

// Named looks up an SVG 1.1 color keyword ("red", "rebeccapurple", ...).
func Named(name string) (Color, bool) {
	rgba, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, false
	}
	return RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), true
}

// Parse accepts either a hex literal or a color keyword.
func Parse(s string) (Color, error) {
	if strings.HasPrefix(strings.TrimSpace(s), "#") {
		return ParseHex(s)
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Lerp blends a toward b in CIE L*a*b* space so midpoints do not go muddy
// the way naive RGB blends do. Alpha is interpolated linearly.
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	from := colorful.Color{R: ar, G: ag, B: ab}
	to := colorful.Color{R: br, G: bg, B: bb}
	mixed := from.BlendLab(to, t).Clamped()
	r, g, bl := mixed.RGB255()
	return RGBA8(r, g, bl, alpha01ToByte(aa+(ba-aa)*t))
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

// Palette colors used by the widget collection.
const (
	Blue500   = Color(0xFF3B82F6)
	Blue600   = Color(0xFF2563EB)
	Gray300   = Color(0xFFD1D5DB)
	Gray400   = Color(0xFF9CA3AF)
	Red500    = Color(0xFFEF4444)
	Yellow400 = Color(0xFFFACC15)
)
