// Package color provides the two color spaces used by game state:
// LinearColor, an unclamped floating-point color in linear light for
// HDR math, and Color, a clamped 8-bit sRGB color for storage and
// wire payloads. Conversion between them applies the standard sRGB
// two-piece gamma curve and round-trips every byte value exactly.
package color

import (
	"math"

	"github.com/stormforge/gametypes/pkg/gmath"
)

// LinearColor is a linear-light RGBA color. Channels are not clamped:
// values above 1 (HDR) and below 0 (blend intermediates) are
// representable, and arithmetic never clips them.
type LinearColor struct {
	R, G, B, A float64
}

// Common linear colors.
var (
	LinearWhite       = LinearColor{1, 1, 1, 1}
	LinearBlack       = LinearColor{0, 0, 0, 1}
	LinearRed         = LinearColor{1, 0, 0, 1}
	LinearGreen       = LinearColor{0, 1, 0, 1}
	LinearBlue        = LinearColor{0, 0, 1, 1}
	LinearYellow      = LinearColor{1, 1, 0, 1}
	LinearCyan        = LinearColor{0, 1, 1, 1}
	LinearMagenta     = LinearColor{1, 0, 1, 1}
	LinearGray        = LinearColor{0.5, 0.5, 0.5, 1}
	LinearTransparent = LinearColor{}
)

// NewLinearColor returns the color (r, g, b, a).
func NewLinearColor(r, g, b, a float64) LinearColor {
	return LinearColor{r, g, b, a}
}

// LinearRGB returns an opaque color from RGB channels.
func LinearRGB(r, g, b float64) LinearColor {
	return LinearColor{r, g, b, 1}
}

// FromHSV converts hue (degrees, wrapped into [0, 360)), saturation
// and value (both [0, 1]) to linear RGB.
func FromHSV(h, s, v float64) LinearColor {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return LinearRGB(r+m, g+m, b+m)
}

// HSV converts the color to hue (degrees in [0, 360)), saturation and
// value. The alpha channel is ignored. When saturation is 0 the hue
// is undefined and reported as 0.
func (c LinearColor) HSV() (h, s, v float64) {
	maxc := math.Max(c.R, math.Max(c.G, c.B))
	minc := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxc - minc

	v = maxc
	if maxc > 0 {
		s = delta / maxc
	}
	if delta == 0 {
		return 0, s, v
	}

	switch maxc {
	case c.R:
		h = 60 * math.Mod((c.G-c.B)/delta, 6)
	case c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	default:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// Add returns the channelwise sum, unclamped.
func (c LinearColor) Add(other LinearColor) LinearColor {
	return LinearColor{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Mul returns the channelwise product (modulation), unclamped.
func (c LinearColor) Mul(other LinearColor) LinearColor {
	return LinearColor{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Scale multiplies the RGB channels by factor, leaving alpha
// untouched. Unclamped, matching HDR brightness math.
func (c LinearColor) Scale(factor float64) LinearColor {
	return LinearColor{c.R * factor, c.G * factor, c.B * factor, c.A}
}

// Lerp linearly interpolates every channel, unclamped.
func (c LinearColor) Lerp(other LinearColor, alpha float64) LinearColor {
	return LinearColor{
		gmath.Lerp(c.R, other.R, alpha),
		gmath.Lerp(c.G, other.G, alpha),
		gmath.Lerp(c.B, other.B, alpha),
		gmath.Lerp(c.A, other.A, alpha),
	}
}

// Clamped limits every channel to [0, 1]. This is the only clipping
// operation on LinearColor and is always explicit.
func (c LinearColor) Clamped() LinearColor {
	return LinearColor{
		gmath.Clamp(c.R, 0, 1),
		gmath.Clamp(c.G, 0, 1),
		gmath.Clamp(c.B, 0, 1),
		gmath.Clamp(c.A, 0, 1),
	}
}

// Luminance returns the perceived brightness of the color.
func (c LinearColor) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsNearlyEqual reports whether the colors differ by at most
// tolerance on every channel.
func (c LinearColor) IsNearlyEqual(other LinearColor, tolerance float64) bool {
	return gmath.IsNearlyEqual(c.R, other.R, tolerance) &&
		gmath.IsNearlyEqual(c.G, other.G, tolerance) &&
		gmath.IsNearlyEqual(c.B, other.B, tolerance) &&
		gmath.IsNearlyEqual(c.A, other.A, tolerance)
}

// Color converts to 8-bit sRGB, applying the linear-to-gamma curve
// and clamping each channel into byte range.
func (c LinearColor) Color() Color {
	return Color{
		R: linearToByte(c.R),
		G: linearToByte(c.G),
		B: linearToByte(c.B),
		A: uint8(math.Round(gmath.Clamp(c.A, 0, 1) * 255)),
	}
}

// sRGB transfer functions: linear below the toe threshold, power law
// above it. The byte quantization makes the round trip exact for all
// 256 channel values.

func srgbToLinear(v uint8) float64 {
	n := float64(v) / 255
	if n <= 0.04045 {
		return n / 12.92
	}
	return math.Pow((n+0.055)/1.055, 2.4)
}

func linearToByte(v float64) uint8 {
	clamped := gmath.Clamp(v, 0, 1)
	var encoded float64
	if clamped <= 0.0031308 {
		encoded = clamped * 12.92
	} else {
		encoded = 1.055*math.Pow(clamped, 1/2.4) - 0.055
	}
	return uint8(math.Round(encoded * 255))
}
