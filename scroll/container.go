package scroll

import "github.com/lixenwraith/parallax/vmath"

// Container is the scrollable area whose inner height is pageCount viewports
// It owns scrollTop and hands every change to the bridge, like a DOM scroll listener
type Container struct {
	bridge    *Bridge
	state     *State
	scrollTop float64
	viewport  float64 // Visible height in pixels
}

// NewContainer creates a container at scrollTop 0 and pushes that initial offset
func NewContainer(state *State, bridge *Bridge, viewportPx float64) *Container {
	c := &Container{
		bridge:   bridge,
		state:    state,
		viewport: viewportPx,
	}
	c.bridge.Scroll(0)
	return c
}

// ScrollTop returns the current offset in pixels
func (c *Container) ScrollTop() float64 { return c.scrollTop }

// Viewport returns the visible height in pixels
func (c *Container) Viewport() float64 { return c.viewport }

// MaxScroll returns the largest reachable scrollTop for the current page count
func (c *Container) MaxScroll() float64 {
	inner := c.state.PageCount() * c.viewport
	return max(0, inner-c.viewport)
}

// Resize changes the visible height and re-clamps the offset
func (c *Container) Resize(viewportPx float64) {
	if !vmath.Finite(viewportPx) || viewportPx < 0 {
		return
	}
	c.viewport = viewportPx
	c.ScrollTo(c.scrollTop)
}

// ScrollBy moves the offset by delta pixels
func (c *Container) ScrollBy(delta float64) {
	c.ScrollTo(c.scrollTop + delta)
}

// ScrollPage moves by n viewport heights
func (c *Container) ScrollPage(n float64) {
	c.ScrollBy(n * c.viewport)
}

// ScrollTo sets the offset clamped to the scroll range and emits a scroll
func (c *Container) ScrollTo(top float64) {
	if !vmath.Finite(top) {
		return
	}
	c.scrollTop = vmath.Clamp(top, 0, c.MaxScroll())
	c.bridge.Scroll(c.scrollTop)
}

// Home scrolls to the top
func (c *Container) Home() { c.ScrollTo(0) }

// End scrolls to the bottom
func (c *Container) End() { c.ScrollTo(c.MaxScroll()) }
