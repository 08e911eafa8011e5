package parameter

// Camera and projection
const (
	// DefaultCameraZ is the camera distance from the scene origin plane
	DefaultCameraZ = 10.0

	// DefaultFOV is the vertical field of view in degrees
	DefaultFOV = 75.0

	// NearPlane is the minimum camera-space distance a plane may have and still be drawn
	NearPlane = 0.1

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0
)

// Colors
const (
	ClearColor  = "#f5f5f5"
	TagColor    = "#cccccc"
	TextColor   = "#272727"
	StatusColor = "#888888"
)
