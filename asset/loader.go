package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrDecode wraps any failure to open or decode an image file
var ErrDecode = errors.New("decode image")

// DefaultTextureSize is the longest edge textures are resampled to
const DefaultTextureSize = 64

// loadConcurrency bounds parallel decodes
const loadConcurrency = 4

// FallbackTint colors generated textures when no layer color applies
var FallbackTint = color.RGBA{R: 0x9a, G: 0xa5, B: 0xb1, A: 0xff}

// Library is the resolved texture set
// Get is called only from the frame loop after Load returns
type Library struct {
	size      int
	textures  map[string]*Texture
	failures  map[string]error
	fallbacks map[fallbackKey]*Texture
}

type fallbackKey struct {
	seed int
	tint color.RGBA
}

// NewLibrary returns an empty library that serves only fallbacks
func NewLibrary(size int) *Library {
	return &Library{
		size:      size,
		textures:  make(map[string]*Texture),
		failures:  make(map[string]error),
		fallbacks: make(map[fallbackKey]*Texture),
	}
}

// Load decodes every path concurrently and resolves once all have finished
// A file that fails is recorded in Failures and served as a fallback; only
// cancellation of ctx fails the whole load
func Load(ctx context.Context, paths []string, size int) (*Library, error) {
	lib := NewLibrary(size)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)

	for _, path := range paths {
		if path == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tex, err := decodeFile(path, size)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lib.failures[path] = err
				return nil
			}
			lib.textures[path] = tex
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	return lib, nil
}

// Get returns the texture for path, or a generated one when the path is empty or failed
func (l *Library) Get(path string, seed int, tint color.RGBA) *Texture {
	if tex, ok := l.textures[path]; ok {
		return tex
	}
	key := fallbackKey{seed: seed, tint: tint}
	if tex, ok := l.fallbacks[key]; ok {
		return tex
	}
	tex := GenerateFallback(l.size, seed, tint)
	l.fallbacks[key] = tex
	return tex
}

// Failures returns the per-path load errors
func (l *Library) Failures() map[string]error {
	return l.failures
}

// Len returns the number of decoded textures
func (l *Library) Len() int { return len(l.textures) }

func decodeFile(path string, size int) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return NewTexture(resample(src, size)), nil
}

// resample fits src inside a size x size box keeping aspect ratio
func resample(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = max(1, h*size/max(1, w))
		w = size
	} else {
		w = max(1, w*size/max(1, h))
		h = size
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
