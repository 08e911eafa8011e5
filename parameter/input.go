package parameter

// Scroll container input
const (
	// DefaultCellPixels is the virtual pixel height of one terminal row
	// Scroll offsets are kept in pixels so that they stay un-normalized like a DOM scrollTop
	DefaultCellPixels = 16

	// DefaultWheelStep is the scroll distance in pixels for one wheel notch or j/k press
	DefaultWheelStep = 48
)
