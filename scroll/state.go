// Package scroll holds the shared scroll store and the input side that feeds it
package scroll

import "github.com/lixenwraith/parallax/parameter"

// State is the scroll store shared by the input bridge, the reflow aggregator and the frame driver
// Field ownership:
//   - rawOffset, mouse: written by Bridge only
//   - pageCount, threshold: written by reflow.Aggregator only
//
// All access happens on the loop goroutine; no locking
type State struct {
	rawOffset float64
	pageCount float64
	threshold float64
	mouse     [2]float64
}

// NewState returns a store with the threshold at its floor and no scroll range
func NewState() *State {
	return &State{threshold: parameter.ThresholdFloor}
}

// RawOffset returns the container scrollTop in pixels
func (s *State) RawOffset() float64 { return s.rawOffset }

// Mouse returns the normalized pointer position in [-1, 1] on both axes
func (s *State) Mouse() [2]float64 { return s.mouse }

// PageCount returns the scroll range in viewport heights
func (s *State) PageCount() float64 { return s.pageCount }

// Threshold returns the page at which the scene pins
func (s *State) Threshold() float64 { return s.threshold }

// SetPageCount publishes a new scroll range; reflow.Aggregator is the only caller
func (s *State) SetPageCount(pages float64) { s.pageCount = pages }

// SetThreshold publishes a new pin threshold; values below the floor are raised to it
func (s *State) SetThreshold(threshold float64) {
	s.threshold = max(parameter.ThresholdFloor, threshold)
}

func (s *State) setRawOffset(v float64) { s.rawOffset = v }

func (s *State) setMouse(m [2]float64) { s.mouse = m }
