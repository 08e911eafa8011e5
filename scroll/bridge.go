package scroll

import "github.com/lixenwraith/parallax/vmath"

// Bridge forwards raw scroll and pointer input into the store
type Bridge struct {
	state *State
}

// NewBridge binds a bridge to the store it writes
func NewBridge(state *State) *Bridge {
	return &Bridge{state: state}
}

// Scroll records the container scrollTop in pixels, un-normalized
// Non-finite input keeps the previous value
func (b *Bridge) Scroll(scrollTop float64) {
	if !vmath.Finite(scrollTop) {
		return
	}
	b.state.setRawOffset(scrollTop)
}

// Pointer records client coordinates normalized to [-1, 1] against the viewport size
// Each axis that comes out non-finite (bad input or zero viewport) keeps its previous value
func (b *Bridge) Pointer(clientX, clientY, viewportW, viewportH float64) {
	m := b.state.Mouse()
	if x := clientX/viewportW*2 - 1; vmath.Finite(x) {
		m[0] = x
	}
	if y := clientY/viewportH*2 - 1; vmath.Finite(y) {
		m[1] = y
	}
	b.state.setMouse(m)
}
