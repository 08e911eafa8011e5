package render

import (
	"math"

	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/vmath"
)

// Camera is a perspective camera on the +Z axis looking toward the origin
type Camera struct {
	Z       float64
	tanHalf float64
}

// NewCamera creates a camera at distance z with a vertical field of view in degrees
func NewCamera(z, fovDeg float64) Camera {
	return Camera{Z: z, tanHalf: math.Tan(fovDeg * math.Pi / 360)}
}

// Projected is a scene point in fractional terminal coordinates
// Row is in pixel rows (2 per terminal row)
type Projected struct {
	Col, Row float64
	Scale    float64 // Size relative to the origin plane
}

// Project maps p onto a cols x rows terminal
// Returns false for points at or behind the near plane
func (c Camera) Project(p vmath.Vec3F, cols, rows int) (Projected, bool) {
	// Camera space, looking down -Z
	v := vmath.V3FSub(p, vmath.Vec3F{Z: c.Z})
	d := -v.Z
	if d < parameter.NearPlane || cols <= 0 || rows <= 0 {
		return Projected{}, false
	}
	aspect := float64(cols) / (float64(rows) * parameter.CellAspect)
	halfH := d * c.tanHalf
	ndcX := v.X / (halfH * aspect)
	ndcY := v.Y / halfH

	return Projected{
		Col:   (ndcX + 1) / 2 * float64(cols),
		Row:   (1 - ndcY) / 2 * float64(rows*2),
		Scale: c.Z / d,
	}, true
}
