// Package motion smooths scroll into scene motion once per frame
package motion

import (
	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/vmath"
)

// Regime is the motion mode selected by comparing the smoothed page to the threshold
type Regime uint8

const (
	// RegimeFree translates the scene vertically with scroll
	RegimeFree Regime = iota
	// RegimePinned freezes vertical position and dollies in depth
	RegimePinned
)

func (r Regime) String() string {
	if r == RegimePinned {
		return "pinned"
	}
	return "free"
}

// Viewport carries the two heights a frame needs
//   - PixelHeight: scroll container height in pixels, normalizes rawOffset to pages
//   - SceneHeight: visible scene height in world units, scales pages back to positions
type Viewport struct {
	PixelHeight float64
	SceneHeight float64
}

// Smoothed is the driver's running scroll position in pages
type Smoothed struct {
	Page float64
}

// Transform is the per-frame motion target, derived fresh from Smoothed and the threshold
type Transform struct {
	YOffset     float64
	DepthOffset float64
	Page        float64 // Smoothed page this transform was derived from
	Threshold   float64
	Sticky      float64 // Threshold * SceneHeight
	Regime      Regime
}

// Step eases s toward target by the fixed smoothing factor
func Step(s Smoothed, target float64) Smoothed {
	return Smoothed{Page: vmath.Lerp(s.Page, target, parameter.SmoothingFactor)}
}

// Derive maps a smoothed page to the scene transform for the given threshold
// Below threshold the scene tracks scroll; at or above it holds at sticky and moves in depth.
// Both branches give threshold*SceneHeight at page == threshold
func Derive(page, threshold, sceneHeight float64) Transform {
	sticky := threshold * sceneHeight
	if page < threshold {
		return Transform{
			YOffset:   page * sceneHeight,
			Page:      page,
			Threshold: threshold,
			Sticky:    sticky,
			Regime:    RegimeFree,
		}
	}
	return Transform{
		YOffset:     sticky,
		DepthOffset: page * parameter.DepthMotionMultiplier,
		Page:        page,
		Threshold:   threshold,
		Sticky:      sticky,
		Regime:      RegimePinned,
	}
}

// Driver owns the smoothed scroll state across frames
type Driver struct {
	smoothed Smoothed
}

// NewDriver starts the smoothed page at rawOffset / pixelHeight
// An unmeasured pixel height starts at page 0
func NewDriver(rawOffset, pixelHeight float64) *Driver {
	d := &Driver{}
	if page := rawOffset / pixelHeight; vmath.Finite(page) {
		d.smoothed.Page = page
	}
	return d
}

// Smoothed returns the current smoothed state
func (d *Driver) Smoothed() Smoothed { return d.smoothed }

// Tick advances one frame and returns the frame's transform
// An unmeasured viewport holds the previous smoothed page
func (d *Driver) Tick(rawOffset float64, vp Viewport, threshold float64) Transform {
	if target := rawOffset / vp.PixelHeight; vp.PixelHeight > 0 && vmath.Finite(target) {
		d.smoothed = Step(d.smoothed, target)
	}
	return Derive(d.smoothed.Page, threshold, vp.SceneHeight)
}
