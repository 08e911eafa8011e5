// Package asset decodes image files into small textures for tile rasterization
package asset

import (
	"image"
	"image/color"

	"github.com/lixenwraith/parallax/vmath"
)

// Texture is a decoded, resampled image
type Texture struct {
	img      *image.RGBA
	fallback bool
}

// NewTexture wraps an RGBA image
func NewTexture(img *image.RGBA) *Texture {
	return &Texture{img: img}
}

// Fallback reports whether the texture was generated instead of decoded
func (t *Texture) Fallback() bool { return t.fallback }

// Size returns the texture dimensions in pixels
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Sample returns the nearest texel at normalized coordinates, clamped to the edges
func (t *Texture) Sample(u, v float64) color.RGBA {
	b := t.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.RGBA{}
	}
	x := int(vmath.Clamp(u, 0, 1) * float64(w-1))
	y := int(vmath.Clamp(v, 0, 1) * float64(h-1))
	return t.img.RGBAAt(b.Min.X+x, b.Min.Y+y)
}

// GenerateFallback builds a gradient texture tinted by base
// seed varies the gradient direction so neighbouring tiles differ
func GenerateFallback(size, seed int, base color.RGBA) *Texture {
	size = max(2, size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var t float64
			switch seed % 3 {
			case 0:
				t = float64(y) / float64(size-1)
			case 1:
				t = float64(x) / float64(size-1)
			default:
				t = float64(x+y) / float64(2*(size-1))
			}
			shade := 0.55 + 0.45*t
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(base.R) * shade),
				G: uint8(float64(base.G) * shade),
				B: uint8(float64(base.B) * shade),
				A: 0xff,
			})
		}
	}
	return &Texture{img: img, fallback: true}
}
