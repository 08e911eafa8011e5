package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// halfBlock draws the top half of a cell in fg and the bottom half in bg
	halfBlock = '▀'

	// wideTail marks the cell covered by the right half of a wide glyph
	wideTail rune = -1
)

// Cell is two vertically stacked pixels with an optional glyph on top
type Cell struct {
	Top, Bottom colorful.Color
	Glyph       rune
	GlyphFg     colorful.Color
}

// Buffer is a pixel compositor at double vertical resolution
// Pixel rows are 2 per terminal row
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of width x height terminal cells
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

// Size returns terminal cell dimensions
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Clear fills every pixel with bg and drops glyphs
func (b *Buffer) Clear(bg colorful.Color) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Top: bg, Bottom: bg}
	// Exponential copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Pixel returns the color at pixel (x, py) where py counts half rows
func (b *Buffer) Pixel(x, py int) (colorful.Color, bool) {
	c := b.cell(x, py/2)
	if c == nil || py < 0 {
		return colorful.Color{}, false
	}
	if py%2 == 0 {
		return c.Top, true
	}
	return c.Bottom, true
}

// BlendPixel composites col over pixel (x, py) at alpha
func (b *Buffer) BlendPixel(x, py int, col colorful.Color, alpha float64) {
	if py < 0 {
		return
	}
	c := b.cell(x, py/2)
	if c == nil {
		return
	}
	if py%2 == 0 {
		c.Top = Over(c.Top, col, alpha)
	} else {
		c.Bottom = Over(c.Bottom, col, alpha)
	}
}

// SetGlyph places a rune on cell (x, y)
func (b *Buffer) SetGlyph(x, y int, r rune, fg colorful.Color) {
	if c := b.cell(x, y); c != nil {
		c.Glyph = r
		c.GlyphFg = fg
	}
}

// Cell returns a copy of cell (x, y)
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	c := b.cell(x, y)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

func (b *Buffer) cell(x, y int) *Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return &b.cells[y*b.width+x]
}

// Flush writes every cell to the screen
// Glyph cells use the mean of both pixels as background
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := &b.cells[y*b.width+x]
			if c.Glyph == wideTail {
				continue
			}
			if c.Glyph != 0 {
				bg := c.Top.BlendRgb(c.Bottom, 0.5)
				style := tcell.StyleDefault.Foreground(tcellColor(c.GlyphFg)).Background(tcellColor(bg))
				screen.SetContent(x, y, c.Glyph, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(c.Top)).Background(tcellColor(c.Bottom))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, bl := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
