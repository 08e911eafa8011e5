// Package section composes content sections into the page layout and reports their measured heights
package section

import (
	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/event"
	"github.com/lixenwraith/parallax/layout"
)

// Presenter owns the layout of one content section
// Every layout pass pushes the section's height, changed or not
type Presenter struct {
	index   int
	section content.Section
	queue   *event.Queue
	box     layout.SectionBox
}

// NewPresenter binds section index to its descriptor and the reflow queue
func NewPresenter(index int, sec content.Section, queue *event.Queue) *Presenter {
	return &Presenter{index: index, section: sec, queue: queue}
}

// Index returns the section index reported with each height
func (p *Presenter) Index() int { return p.index }

// Box returns the last computed layout
func (p *Presenter) Box() layout.SectionBox { return p.box }

// Reflow lays the section out from top and reports its height
func (p *Presenter) Reflow(top float64, m layout.Metrics) layout.SectionBox {
	p.box = layout.Section(p.index, p.section, top, m)
	p.queue.Push(event.SectionHeight(p.index, p.box.Height))
	return p.box
}
