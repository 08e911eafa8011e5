package parameter

// Section box sizing in scene units
const (
	// TileMinSize and TileMaxSize bound the edge of an image tile
	TileMinSize = 3.0
	TileMaxSize = 6.0

	// TileMargin is the top and side margin around each tile
	TileMargin = 1.0

	// FlushLeftSection is the section index laid out flush left; all others flow right
	FlushLeftSection = 2

	// DepthLayerBoxes is the number of full-viewport boxes after the sections
	DepthLayerBoxes = 2

	// DepthCardScale sizes a layer card against the larger viewport edge
	DepthCardScale = 0.5
)
