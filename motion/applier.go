package motion

import (
	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/vmath"
)

// Applier eases the scene node toward each frame's transform and computes layer opacity
// Position is lerped, not assigned, so motion gets a second stage of easing
type Applier struct {
	position     vmath.Vec3F
	ready        bool
	clampOpacity bool
	page         float64
	threshold    float64
}

// NewApplier creates a gated applier at the scene origin
func NewApplier(clampOpacity bool) *Applier {
	return &Applier{
		clampOpacity: clampOpacity,
		threshold:    parameter.ThresholdFloor,
	}
}

// SetReady ungates motion once assets have resolved
func (a *Applier) SetReady(ready bool) { a.ready = ready }

// Ready reports whether motion updates are applied
func (a *Applier) Ready() bool { return a.ready }

// Position returns the current scene node position
func (a *Applier) Position() vmath.Vec3F { return a.position }

// Apply eases the position toward t and records the page for opacity
// Returns false and changes nothing while gated
func (a *Applier) Apply(t Transform) bool {
	if !a.ready {
		return false
	}
	target := vmath.Vec3F{X: 0, Y: t.YOffset, Z: t.DepthOffset}
	a.position = vmath.V3FLerp(a.position, target, parameter.SmoothingFactor)
	a.page = t.Page
	a.threshold = t.Threshold
	return true
}

// LayerOpacity returns the opacity of a depth layer for the last applied frame
func (a *Applier) LayerOpacity(depth float64) float64 {
	return Opacity(a.page, a.threshold, depth, a.clampOpacity)
}

// Opacity fades layers at non-negative depth once page passes threshold*1.7
// Background layers (depth < 0) stay opaque. Unclamped output goes negative past the fade
func Opacity(page, threshold, depth float64, clamp bool) float64 {
	if depth < 0 {
		return 1
	}
	start := threshold * parameter.OpacityFadeMultiplier
	if page < start {
		return 1
	}
	o := 1 - (page - start)
	if clamp {
		return vmath.Clamp(o, 0, 1)
	}
	return o
}
