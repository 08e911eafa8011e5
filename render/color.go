package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex converts a #rrggbb string, falling back when empty or malformed
func ParseHex(hex string, fallback colorful.Color) colorful.Color {
	if hex == "" {
		return fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// MustHex parses a palette constant
func MustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGBA converts a texel, ignoring alpha
func FromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ToRGBA converts back to an opaque 8-bit color
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Over composites src onto dst at alpha; alpha is clamped to [0,1]
func Over(dst, src colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	return dst.BlendRgb(src, alpha)
}
