package section

import (
	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/event"
	"github.com/lixenwraith/parallax/layout"
)

// Composer is the page root: it stacks presenters, appends the depth region
// and reports the whole layout height
type Composer struct {
	presenters []*Presenter
	layers     []content.DepthLayer
	queue      *event.Queue
	page       layout.Page
}

// NewComposer creates one presenter per section of page
func NewComposer(page *content.Page, queue *event.Queue) *Composer {
	c := &Composer{
		layers: page.Layers,
		queue:  queue,
	}
	for i, sec := range page.Sections {
		c.presenters = append(c.presenters, NewPresenter(i, sec, queue))
	}
	return c
}

// Sections returns the number of presenters
func (c *Composer) Sections() int { return len(c.presenters) }

// Page returns the last layout pass
func (c *Composer) Page() layout.Page { return c.page }

// Reflow runs a full layout pass and queues one height report per section plus the page height
// Empty metrics (terminal not measured yet) skip the pass
func (c *Composer) Reflow(m layout.Metrics) layout.Page {
	if m.Empty() {
		return c.page
	}

	page := layout.Page{Sections: make([]layout.SectionBox, 0, len(c.presenters))}
	top := 0.0
	for _, p := range c.presenters {
		box := p.Reflow(top, m)
		page.Sections = append(page.Sections, box)
		top += box.Height
	}

	page.Depth = layout.Depth(c.layers, top, m)
	page.Height = top + page.Depth.Height

	c.queue.Push(event.PageHeight(page.Height, m.SceneHeight))
	c.page = page
	return page
}
