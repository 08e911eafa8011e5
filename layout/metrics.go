package layout

import (
	"math"

	"github.com/lixenwraith/parallax/parameter"
)

// NewMetrics derives scene metrics for a terminal of cols x rows seen by a perspective camera
// at cameraZ with a vertical field of view in degrees. An empty terminal yields zero metrics
func NewMetrics(cols, rows int, cameraZ, fovDeg float64) Metrics {
	if cols <= 0 || rows <= 0 {
		return Metrics{}
	}
	sceneH := 2 * cameraZ * math.Tan(fovDeg*math.Pi/360)
	aspect := float64(cols) / (float64(rows) * parameter.CellAspect)
	sceneW := sceneH * aspect
	return Metrics{
		SceneWidth:  sceneW,
		SceneHeight: sceneH,
		CellWidth:   sceneW / float64(cols),
		CellHeight:  sceneH / float64(rows),
	}
}

// Empty reports whether nothing is visible
func (m Metrics) Empty() bool {
	return m.SceneHeight <= 0 || m.SceneWidth <= 0
}
