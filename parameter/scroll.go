package parameter

// Scroll synchronization constants
// Values are fixed for behavioral compatibility; changing any of them changes the feel of the page
const (
	// SmoothingFactor is the per-frame lerp factor for both the scroll page and the scene transform
	SmoothingFactor = 0.15

	// ThresholdFloor is the minimum pin threshold in pages
	// Prevents a zero-height pinned region before any section has reported
	ThresholdFloor = 4.0

	// ThresholdRatioNumerator and ThresholdRatioDivisor map summed section height to threshold pages
	// Divisor is 15.8 * 3: the reference height of three sections in scene units
	ThresholdRatioNumerator = 4.0
	ThresholdRatioDivisor   = 15.8 * 3

	// PageCountOffset is extra scroll range in pages reserved for the two depth layers
	PageCountOffset = 5.5

	// OpacityFadeMultiplier scales threshold to the page where the front layer starts fading
	OpacityFadeMultiplier = 1.7

	// DepthMotionMultiplier converts page to scene depth while pinned
	DepthMotionMultiplier = 1.25
)
