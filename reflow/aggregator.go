// Package reflow turns asynchronous layout measurements into the scroll range and pin threshold
package reflow

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/parallax/event"
	"github.com/lixenwraith/parallax/parameter"
	"github.com/lixenwraith/parallax/scroll"
	"github.com/lixenwraith/parallax/vmath"
)

var (
	// ErrInvalidHeight is returned for negative or non-finite measurements; the previous value is kept
	ErrInvalidHeight = errors.New("invalid height")

	// ErrInvalidSection is returned for negative section indices
	ErrInvalidSection = errors.New("invalid section index")

	// ErrInvalidViewport is returned when a page height arrives with a zero or non-finite viewport
	ErrInvalidViewport = errors.New("invalid viewport height")
)

// ChangeFunc observes published values after they change
type ChangeFunc func(threshold, pageCount float64)

// Aggregator keeps the latest height per section and publishes threshold and page count to the store
// Reports may arrive in any order and any number of times per section
type Aggregator struct {
	state    *scroll.State
	heights  []float64
	watchers []ChangeFunc
}

// NewAggregator creates an aggregator for a known section count
// The height slice grows if a higher index reports
func NewAggregator(state *scroll.State, sections int) *Aggregator {
	return &Aggregator{
		state:   state,
		heights: make([]float64, max(0, sections)),
	}
}

// OnChange registers fn to run whenever Drain publishes a different threshold or page count
func (a *Aggregator) OnChange(fn ChangeFunc) {
	a.watchers = append(a.watchers, fn)
}

// Heights returns a copy of the stored per-section heights
func (a *Aggregator) Heights() []float64 {
	out := make([]float64, len(a.heights))
	copy(out, a.heights)
	return out
}

// ReportSectionHeight stores height at index (last write wins) and republishes the threshold
func (a *Aggregator) ReportSectionHeight(index int, height float64) error {
	if index < 0 {
		return fmt.Errorf("section %d: %w", index, ErrInvalidSection)
	}
	if !vmath.Finite(height) || height < 0 {
		return fmt.Errorf("section %d height %v: %w", index, height, ErrInvalidHeight)
	}

	if index >= len(a.heights) {
		grown := make([]float64, index+1)
		copy(grown, a.heights)
		a.heights = grown
	}
	a.heights[index] = height

	a.state.SetThreshold(Threshold(vmath.Sum(a.heights)))
	return nil
}

// ReportPageCount publishes the scroll range for a full layout height measured against viewportHeight
func (a *Aggregator) ReportPageCount(height, viewportHeight float64) error {
	if !vmath.Finite(height) || height < 0 {
		return fmt.Errorf("page height %v: %w", height, ErrInvalidHeight)
	}
	if !vmath.Finite(viewportHeight) || viewportHeight <= 0 {
		return fmt.Errorf("page viewport %v: %w", viewportHeight, ErrInvalidViewport)
	}

	a.state.SetPageCount(PageCount(height, viewportHeight))
	return nil
}

// Handle applies one reflow message
func (a *Aggregator) Handle(ev event.Event) error {
	switch p := ev.Payload.(type) {
	case event.SectionHeightPayload:
		return a.ReportSectionHeight(p.Index, p.Height)
	case event.PageHeightPayload:
		return a.ReportPageCount(p.Height, p.ViewportHeight)
	default:
		return fmt.Errorf("reflow: unexpected payload %T for %v", ev.Payload, ev.Type)
	}
}

// Drain consumes every pending message, then notifies watchers once if anything changed
// Returns the errors of rejected messages; accepted messages are applied regardless
func (a *Aggregator) Drain(q *event.Queue) []error {
	prevThreshold, prevPages := a.state.Threshold(), a.state.PageCount()

	var errs []error
	for _, ev := range q.Consume() {
		if err := a.Handle(ev); err != nil {
			errs = append(errs, err)
		}
	}

	threshold, pages := a.state.Threshold(), a.state.PageCount()
	if threshold != prevThreshold || pages != prevPages {
		for _, fn := range a.watchers {
			fn(threshold, pages)
		}
	}
	return errs
}

// Threshold maps a summed section height to the pin threshold in pages, floored
func Threshold(totalHeight float64) float64 {
	return max(parameter.ThresholdFloor,
		parameter.ThresholdRatioNumerator/parameter.ThresholdRatioDivisor*totalHeight)
}

// PageCount maps a full layout height to scroll range in viewports plus the depth layer reserve
func PageCount(height, viewportHeight float64) float64 {
	return height/viewportHeight + parameter.PageCountOffset
}
