package colorwheel

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
)

const (
	rgbMax = 255
	hueMax = 360
	svMax  = 100
)

// HSV is a color in hue/saturation/value form.
// H is in degrees, S and V are percentages in [0, 100].
type HSV struct {
	H, S, V float64
}

// RGB is a color with red, green and blue channels in [0, 255].
// Channels may be fractional while a color animation is in flight.
type RGB struct {
	R, G, B float64
}

// Verify at compile time that RGB implements color.Color.
var _ color.Color = RGB{}

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(math.Round(clamp(c.R, 0, rgbMax))) * 0x101
	g = uint32(math.Round(clamp(c.G, 0, rgbMax))) * 0x101
	b = uint32(math.Round(clamp(c.B, 0, rgbMax))) * 0x101
	return r, g, b, 0xffff
}

// NormalizeHue wraps degrees into [0, 360).
func NormalizeHue(deg float64) float64 {
	return math.Mod(math.Mod(deg, hueMax)+hueMax, hueMax)
}

// Normalize wraps the hue into [0, 360) and clamps S and V to [0, 100].
func (c HSV) Normalize() HSV {
	return HSV{
		H: NormalizeHue(c.H),
		S: clamp(c.S, 0, svMax),
		V: clamp(c.V, 0, svMax),
	}
}

// RGB converts c to RGB. See HSVToRGB.
func (c HSV) RGB() RGB {
	return HSVToRGB(c.H, c.S, c.V)
}

// Hex converts c to a "#rrggbb" string. See HSVToHex.
func (c HSV) Hex() string {
	return HSVToHex(c.H, c.S, c.V)
}

// HSV converts c to HSV. See RGBToHSV.
func (c RGB) HSV() HSV {
	return RGBToHSV(c.R, c.G, c.B)
}

// Hex converts c to a "#rrggbb" string. See RGBToHex.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// Lerp performs linear interpolation between two colors, channel by channel.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// HSVToRGB converts hue (any real number of degrees), saturation and value
// (percent) to RGB using the six-sector algorithm.
//
// Saturation and value are clamped to [0, 100]; 100 maps to exactly 1.
// Output channels are floor(c * 255), so every channel is a whole number.
func HSVToRGB(h, s, v float64) RGB {
	h = NormalizeHue(h) / hueMax * 6
	s = clamp(s, 0, svMax) / svMax
	v = clamp(v, 0, svMax) / svMax

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{
		R: math.Floor(r * rgbMax),
		G: math.Floor(g * rgbMax),
		B: math.Floor(b * rgbMax),
	}
}

// RGBToHSV converts RGB channels in [0, 255] to HSV.
//
// The hue is taken from whichever channel is the maximum (checked in r, g, b
// order). All three outputs are rounded to whole numbers; a hue that rounds
// to 360 wraps to 0. Achromatic colors have hue 0.
func RGBToHSV(r, g, b float64) HSV {
	r = clamp(r, 0, rgbMax) / rgbMax
	g = clamp(g, 0, rgbMax) / rgbMax
	b = clamp(b, 0, rgbMax) / rgbMax

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	var h, s float64
	if maxC != 0 {
		s = d / maxC
	}

	if d != 0 {
		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := math.Round(h * hueMax)
	if hue >= hueMax {
		hue = 0
	}
	return HSV{
		H: hue,
		S: math.Round(s * svMax),
		V: math.Round(maxC * svMax),
	}
}

// RGBToHex formats RGB channels as a lowercase "#rrggbb" string.
// Channels are rounded to the nearest integer and clamped to [0, 255].
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", hexByte(r), hexByte(g), hexByte(b))
}

func hexByte(c float64) uint8 {
	return uint8(math.Round(clamp(c, 0, rgbMax)))
}

var hexPattern = regexp.MustCompile(`^#?([[:xdigit:]]{2})([[:xdigit:]]{2})([[:xdigit:]]{2})$`)

// HexToRGB parses a "#rrggbb" or "rrggbb" string, case-insensitively.
// Anything other than exactly six hex digits returns ErrInvalidHex.
func HexToRGB(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	var ch [3]float64
	for i := range ch {
		// Two validated hex digits always fit in 8 bits.
		n, _ := strconv.ParseUint(m[i+1], 16, 8)
		ch[i] = float64(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// HSVToHex converts HSV to a "#rrggbb" string.
func HSVToHex(h, s, v float64) string {
	c := HSVToRGB(h, s, v)
	return RGBToHex(c.R, c.G, c.B)
}

// HexToHSV parses a hex color and converts it to HSV.
// It returns ErrInvalidHex for malformed input.
func HexToHSV(hex string) (HSV, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(c.R, c.G, c.B), nil
}

// ParseHexOr is like HexToHSV but returns fallback for malformed input.
func ParseHexOr(hex string, fallback HSV) HSV {
	c, err := HexToHSV(hex)
	if err != nil {
		return fallback
	}
	return c
}

// MustHexToHSV is like HexToHSV but panics on malformed input.
// Use only with hardcoded literals.
func MustHexToHSV(hex string) HSV {
	c, err := HexToHSV(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
