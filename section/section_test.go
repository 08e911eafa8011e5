package section

import (
	"math"
	"testing"

	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/event"
	"github.com/lixenwraith/parallax/layout"
	"github.com/lixenwraith/parallax/reflow"
	"github.com/lixenwraith/parallax/scroll"
)

func TestPresenter_ReportsEveryPass(t *testing.T) {
	q := event.NewQueue()
	p := NewPresenter(1, content.Section{Tag: "01", Text: "x"}, q)
	m := layout.NewMetrics(80, 24, 10, 75)

	p.Reflow(0, m)
	p.Reflow(0, m)

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	for _, ev := range events {
		payload := ev.Payload.(event.SectionHeightPayload)
		if payload.Index != 1 || payload.Height != p.Box().Height {
			t.Errorf("payload = %+v", payload)
		}
	}
}

func TestComposer_StacksAndReportsPageHeight(t *testing.T) {
	q := event.NewQueue()
	c := NewComposer(content.Default(), q)
	m := layout.NewMetrics(80, 24, 10, 75)

	page := c.Reflow(m)
	if len(page.Sections) != 3 {
		t.Fatalf("sections = %d", len(page.Sections))
	}
	for i := 1; i < len(page.Sections); i++ {
		prev := page.Sections[i-1]
		if page.Sections[i].Top != prev.Top+prev.Height {
			t.Errorf("section %d top = %v, want %v", i, page.Sections[i].Top, prev.Top+prev.Height)
		}
	}

	events := q.Consume()
	if len(events) != 4 {
		t.Fatalf("events = %d, want 3 sections + page", len(events))
	}
	last := events[3].Payload.(event.PageHeightPayload)
	if last.Height != page.Height || last.ViewportHeight != m.SceneHeight {
		t.Errorf("page payload = %+v, page height %v", last, page.Height)
	}
}

func TestComposer_FeedsAggregator(t *testing.T) {
	q := event.NewQueue()
	state := scroll.NewState()
	agg := reflow.NewAggregator(state, 3)
	c := NewComposer(content.Default(), q)
	m := layout.NewMetrics(80, 24, 10, 75)

	page := c.Reflow(m)
	if errs := agg.Drain(q); len(errs) != 0 {
		t.Fatalf("drain errors: %v", errs)
	}

	var sum float64
	for _, s := range page.Sections {
		sum += s.Height
	}
	if math.Abs(state.Threshold()-reflow.Threshold(sum)) > 1e-9 {
		t.Errorf("threshold = %v, want %v", state.Threshold(), reflow.Threshold(sum))
	}
	wantPages := page.Height/m.SceneHeight + 5.5
	if math.Abs(state.PageCount()-wantPages) > 1e-9 {
		t.Errorf("pageCount = %v, want %v", state.PageCount(), wantPages)
	}
}

func TestComposer_EmptyMetricsSkip(t *testing.T) {
	q := event.NewQueue()
	c := NewComposer(content.Default(), q)
	c.Reflow(layout.Metrics{})
	if q.Len() != 0 {
		t.Errorf("queued %d events for empty metrics", q.Len())
	}
}
