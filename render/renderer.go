package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/parallax/asset"
	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/layout"
	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/vmath"
)

// textMaxScale hides text once perspective would spread its lines too far apart
const textMaxScale = 3.0

// backLayerTint colors generated textures for layers without their own color
var backLayerTint = color.RGBA{R: 0x8a, G: 0x7f, B: 0x72, A: 0xff}

// TextureSource resolves texture paths; asset.Library implements it
type TextureSource interface {
	Get(path string, seed int, tint color.RGBA) *asset.Texture
}

// Frame is everything one draw needs
// A nil Textures means assets have not resolved; only the status line is drawn
type Frame struct {
	Page     layout.Page
	Metrics  layout.Metrics
	Content  *content.Page
	Position vmath.Vec3F
	Opacity  func(depth float64) float64
	Textures TextureSource
	Status   string
}

// Renderer rasterizes the page scene into terminal cells
type Renderer struct {
	screen tcell.Screen
	camera Camera
	buf    *Buffer

	clear  colorful.Color
	tag    colorful.Color
	text   colorful.Color
	status colorful.Color
}

type plane struct {
	rect  layout.Rect
	depth float64
	tex   *asset.Texture
	alpha float64
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen, camera Camera) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: camera,
		buf:    NewBuffer(w, h),
		clear:  MustHex(parameter.ClearColor),
		tag:    MustHex(parameter.TagColor),
		text:   MustHex(parameter.TextColor),
		status: MustHex(parameter.StatusColor),
	}
}

// Buffer exposes the composited frame
func (r *Renderer) Buffer() *Buffer { return r.buf }

// Draw composes and shows one frame
func (r *Renderer) Draw(f Frame) {
	cols, rows := r.screen.Size()
	if w, h := r.buf.Size(); w != cols || h != rows {
		r.buf.Resize(cols, rows)
	}
	r.buf.Clear(r.clear)

	if f.Textures != nil && f.Content != nil && !f.Metrics.Empty() {
		r.drawScene(f, cols, rows)
	}
	r.drawStatus(f.Status, cols, rows)

	r.buf.Flush(r.screen)
	r.screen.Show()
}

func (r *Renderer) drawScene(f Frame, cols, rows int) {
	opacity := f.Opacity
	if opacity == nil {
		opacity = func(float64) float64 { return 1 }
	}

	var planes []plane
	for si, box := range f.Page.Sections {
		if si >= len(f.Content.Sections) {
			break
		}
		images := f.Content.Sections[si].Images
		for ti, rect := range box.Tiles {
			path := ""
			if ti < len(images) {
				path = images[ti]
			}
			planes = append(planes, plane{
				rect:  rect,
				tex:   f.Textures.Get(path, si*len(box.Tiles)+ti, asset.FallbackTint),
				alpha: 1,
			})
		}
	}
	for _, card := range f.Page.Depth.Cards {
		if card.Layer >= len(f.Content.Layers) {
			continue
		}
		l := f.Content.Layers[card.Layer]
		tint := ToRGBA(ParseHex(l.Color, FromRGBA(backLayerTint)))
		planes = append(planes, plane{
			rect:  card.Rect,
			depth: card.Depth,
			tex:   f.Textures.Get(l.Image, 100+card.Layer, tint),
			alpha: opacity(card.Depth),
		})
	}

	// Painter's order: farthest first
	sort.SliceStable(planes, func(i, j int) bool { return planes[i].depth < planes[j].depth })
	for _, p := range planes {
		r.drawPlane(f, p, cols, rows)
	}

	for _, box := range f.Page.Sections {
		r.drawText(f, box.Tag, r.tag, cols, rows)
		r.drawText(f, box.Body, r.text, cols, rows)
	}
	r.drawText(f, f.Page.Depth.Intro, r.text, cols, rows)
	if n := len(f.Content.Layers); n > 0 {
		captionColor := ParseHex(f.Content.Layers[n-1].TextColor, r.text)
		r.drawText(f, f.Page.Depth.Caption, captionColor, cols, rows)
	}
}

// toScene maps layout space into the scene: the page root sits at the top-left of the origin plane
func toScene(f Frame, x, y, z float64) vmath.Vec3F {
	local := vmath.Vec3F{
		X: -f.Metrics.SceneWidth/2 + x,
		Y: f.Metrics.SceneHeight/2 - y,
		Z: z,
	}
	return vmath.V3FAdd(local, f.Position)
}

func (r *Renderer) drawPlane(f Frame, p plane, cols, rows int) {
	if p.alpha <= 0 || p.tex == nil {
		return
	}
	tl, ok := r.camera.Project(toScene(f, p.rect.X, p.rect.Y, p.depth), cols, rows)
	if !ok {
		return
	}
	br, ok := r.camera.Project(toScene(f, p.rect.X+p.rect.W, p.rect.Bottom(), p.depth), cols, rows)
	if !ok {
		return
	}
	spanX, spanY := br.Col-tl.Col, br.Row-tl.Row
	if spanX <= 0 || spanY <= 0 {
		return
	}

	x0 := max(0, int(math.Floor(tl.Col)))
	x1 := min(cols, int(math.Ceil(br.Col)))
	y0 := max(0, int(math.Floor(tl.Row)))
	y1 := min(rows*2, int(math.Ceil(br.Row)))

	for py := y0; py < y1; py++ {
		v := (float64(py) + 0.5 - tl.Row) / spanY
		if v < 0 || v > 1 {
			continue
		}
		for x := x0; x < x1; x++ {
			u := (float64(x) + 0.5 - tl.Col) / spanX
			if u < 0 || u > 1 {
				continue
			}
			r.buf.BlendPixel(x, py, FromRGBA(p.tex.Sample(u, v)), p.alpha)
		}
	}
}

// drawText places text lines on the origin plane; glyphs keep their cell size at any depth
func (r *Renderer) drawText(f Frame, block layout.TextBlock, fg colorful.Color, cols, rows int) {
	if len(block.Lines) == 0 {
		return
	}
	lineH := block.H / float64(len(block.Lines))
	for i, line := range block.Lines {
		anchor, ok := r.camera.Project(toScene(f, block.X, block.Y+float64(i)*lineH, 0), cols, rows)
		if !ok || anchor.Scale > textMaxScale {
			return
		}
		row := int(math.Floor(anchor.Row / 2))
		if row < 0 || row >= rows {
			continue
		}
		col := int(math.Round(anchor.Col))
		for _, ch := range line {
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			if col >= 0 && col+w <= cols {
				r.buf.SetGlyph(col, row, ch, fg)
				if w == 2 {
					r.buf.SetGlyph(col+1, row, wideTail, fg)
				}
			}
			col += w
		}
	}
}

// drawStatus writes the status line over the last row on the clear color
func (r *Renderer) drawStatus(status string, cols, rows int) {
	if status == "" || rows == 0 {
		return
	}
	y := rows - 1
	for x := 0; x < cols; x++ {
		r.buf.BlendPixel(x, y*2, r.clear, 1)
		r.buf.BlendPixel(x, y*2+1, r.clear, 1)
		r.buf.SetGlyph(x, y, ' ', r.status)
	}
	col := 0
	for _, ch := range runewidth.Truncate(status, cols, "…") {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > cols {
			break
		}
		r.buf.SetGlyph(col, y, ch, r.status)
		if w == 2 {
			r.buf.SetGlyph(col+1, y, wideTail, r.status)
		}
		col += w
	}
}
