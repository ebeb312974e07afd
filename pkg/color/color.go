package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stormforge/gametypes/pkg/gmath"
)

// ErrMalformedHexColor is returned by ParseHex for input that is not
// a #RRGGBB or #RRGGBBAA string.
var ErrMalformedHexColor = errors.New("malformed hex color")

// Color is an 8-bit sRGB color. Channels are always in range by
// construction; arithmetic clamps immediately after each operation.
type Color struct {
	R, G, B, A uint8
}

// Common byte colors.
var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Cyan        = Color{0, 255, 255, 255}
	Magenta     = Color{255, 0, 255, 255}
	Gray        = Color{128, 128, 128, 255}
	Transparent = Color{}
)

// NewColor returns the color (r, g, b, a).
func NewColor(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// RGB returns an opaque color from RGB channels.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// FromHex unpacks an opaque color from 0xRRGGBB.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// FromHexRGBA unpacks a color from 0xRRGGBBAA.
func FromHexRGBA(hex uint32) Color {
	return Color{
		R: uint8(hex >> 24),
		G: uint8(hex >> 16),
		B: uint8(hex >> 8),
		A: uint8(hex),
	}
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
// Errors name the offending part of the input.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q has %d hex digits, want 6 or 8", ErrMalformedHexColor, s, len(hex))
	}
	value, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedHexColor, s)
	}
	if len(hex) == 6 {
		return FromHex(uint32(value)), nil
	}
	return FromHexRGBA(uint32(value)), nil
}

// Hex packs the RGB channels as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// HexRGBA packs all channels as 0xRRGGBBAA.
func (c Color) HexRGBA() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// String renders the color as "#RRGGBBAA".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Linear converts to linear light, applying the sRGB gamma curve to
// the color channels and scaling alpha to [0, 1].
func (c Color) Linear() LinearColor {
	return LinearColor{
		R: srgbToLinear(c.R),
		G: srgbToLinear(c.G),
		B: srgbToLinear(c.B),
		A: float64(c.A) / 255,
	}
}

// Lerp interpolates between two byte colors. Each channel is computed
// in float and clamped back into byte range before returning.
func (c Color) Lerp(other Color, alpha float64) Color {
	blend := func(a, b uint8) uint8 {
		return clampByte(gmath.Lerp(float64(a), float64(b), gmath.Clamp(alpha, 0, 1)))
	}
	return Color{
		R: blend(c.R, other.R),
		G: blend(c.G, other.G),
		B: blend(c.B, other.B),
		A: blend(c.A, other.A),
	}
}

// Scale multiplies the RGB channels by factor, clamping to byte
// range. Alpha is untouched.
func (c Color) Scale(factor float64) Color {
	return Color{
		R: clampByte(float64(c.R) * factor),
		G: clampByte(float64(c.G) * factor),
		B: clampByte(float64(c.B) * factor),
		A: c.A,
	}
}

// Luminance returns the perceived brightness as a byte, computed in
// linear space.
func (c Color) Luminance() uint8 {
	return clampByte(c.Linear().Luminance() * 255)
}

func clampByte(v float64) uint8 {
	return uint8(gmath.Clamp(math.Round(v), 0, 255))
}
