// Package layout measures and places page boxes in scene units
//
// Layout space has its origin at the top-left of the first section with y growing
// downward. The renderer maps it into the scene; nothing here knows about scroll.
package layout

import (
	"math"

	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/parameter"
)

// Metrics describes the visible scene at the origin plane
type Metrics struct {
	SceneWidth  float64
	SceneHeight float64
	CellWidth   float64 // One terminal column in scene units
	CellHeight  float64 // One terminal row in scene units
}

// Rect is an axis-aligned box in layout space
type Rect struct {
	X, Y, W, H float64
}

// Bottom returns the y of the lower edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// SectionBox is the measured layout of one content section
type SectionBox struct {
	Index  int
	Top    float64
	Height float64
	Left   bool
	Tiles  []Rect
	Tag    TextBlock
	Body   TextBlock
}

// Card is a depth layer plane inside the pinned box
type Card struct {
	Layer int
	Depth float64
	Rect  Rect
}

// DepthBox is the two-viewport region after the sections
type DepthBox struct {
	Top     float64
	Height  float64
	Intro   TextBlock
	Cards   []Card
	Caption TextBlock
}

// Page is a full layout pass
type Page struct {
	Sections []SectionBox
	Depth    DepthBox
	Height   float64
}

// Section lays out one section starting at top
// The column is at least one viewport tall; tiles wrap in rows, then the tag, then the body
func Section(index int, sec content.Section, top float64, m Metrics) SectionBox {
	left := index == parameter.FlushLeftSection
	box := SectionBox{Index: index, Top: top, Left: left}

	y := top
	tiles, rowsBottom := tileRows(len(sec.Images), y, left, m)
	box.Tiles = tiles
	y = rowsBottom

	box.Tag = MeasureText(sec.Tag, m)
	box.Tag.Y = y
	box.Tag.X = alignX(box.Tag.W, left, m)
	y += box.Tag.H

	box.Body = MeasureText(sec.Text, m)
	box.Body.Y = y
	box.Body.X = alignX(box.Body.W, left, m)
	y += box.Body.H

	box.Height = max(m.SceneHeight, y-top)
	return box
}

// tileRows flows n square tiles into rows that fit the scene width
// Edge grows to fill a row within [TileMinSize, TileMaxSize]
func tileRows(n int, top float64, left bool, m Metrics) ([]Rect, float64) {
	if n == 0 {
		return nil, top
	}

	margin := parameter.TileMargin
	width := m.SceneWidth

	perRow := n
	edge := tileEdge(width, perRow)
	for perRow > 1 && float64(perRow)*(edge+margin) > width {
		perRow--
		edge = tileEdge(width, perRow)
	}

	rows := int(math.Ceil(float64(n) / float64(perRow)))
	tiles := make([]Rect, 0, n)
	y := top
	for r := 0; r < rows; r++ {
		count := min(perRow, n-r*perRow)
		rowWidth := float64(count) * (edge + margin)

		// Flush-left sections pack toward the right edge and carry a left margin
		x := 0.0
		if left {
			x = width - rowWidth
		}

		y += margin
		for c := 0; c < count; c++ {
			tileX := x + float64(c)*(edge+margin)
			if left {
				tileX += margin
			}
			tiles = append(tiles, Rect{X: tileX, Y: y, W: edge, H: edge})
		}
		y += edge
	}
	return tiles, y
}

func tileEdge(width float64, perRow int) float64 {
	e := width/float64(perRow) - parameter.TileMargin
	return min(parameter.TileMaxSize, max(parameter.TileMinSize, e))
}

// alignX places a block of width w flush left or flush right
func alignX(w float64, left bool, m Metrics) float64 {
	if left {
		return 0
	}
	return max(0, m.SceneWidth-w)
}

// Depth lays out the pinned region: an intro box then the card box, each one viewport tall
func Depth(layers []content.DepthLayer, top float64, m Metrics) DepthBox {
	box := DepthBox{
		Top:    top,
		Height: parameter.DepthLayerBoxes * m.SceneHeight,
	}
	if len(layers) == 0 {
		return box
	}

	box.Intro = MeasureText(layers[0].Text, m)
	box.Intro.X = (m.SceneWidth - box.Intro.W) / 2
	box.Intro.Y = top + (m.SceneHeight-box.Intro.H)/2

	cardTop := top + m.SceneHeight
	edge := max(m.SceneWidth, m.SceneHeight) * parameter.DepthCardScale
	rect := Rect{
		X: (m.SceneWidth - edge) / 2,
		Y: cardTop + (m.SceneHeight-edge)/2,
		W: edge,
		H: edge,
	}
	for i, l := range layers {
		box.Cards = append(box.Cards, Card{Layer: i, Depth: l.Depth, Rect: rect})
	}

	box.Caption = MeasureText(layers[len(layers)-1].Text, m)
	box.Caption.X = (m.SceneWidth - box.Caption.W) / 2
	box.Caption.Y = cardTop + (m.SceneHeight-box.Caption.H)/2
	return box
}
