package event

// SectionHeightPayload is the latest measured height of one section in scene units
type SectionHeightPayload struct {
	Index  int
	Height float64
}

// PageHeightPayload is the measured height of the full layout and the viewport it was measured in
type PageHeightPayload struct {
	Height         float64
	ViewportHeight float64
}

// SectionHeight builds an EventSectionHeight message
func SectionHeight(index int, height float64) Event {
	return Event{
		Type:    EventSectionHeight,
		Payload: SectionHeightPayload{Index: index, Height: height},
	}
}

// PageHeight builds an EventPageHeight message
func PageHeight(height, viewportHeight float64) Event {
	return Event{
		Type:    EventPageHeight,
		Payload: PageHeightPayload{Height: height, ViewportHeight: viewportHeight},
	}
}
