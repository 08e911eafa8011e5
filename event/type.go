package event

// EventType represents the type of reflow event
type EventType int

const (
	// EventSectionHeight reports the measured height of one content section
	// Trigger: section.Presenter on every layout pass
	// Consumer: reflow.Aggregator | Payload: SectionHeightPayload
	EventSectionHeight EventType = iota

	// EventPageHeight reports the height of the whole composed layout
	// Trigger: layout pass of the page root
	// Consumer: reflow.Aggregator | Payload: PageHeightPayload
	EventPageHeight
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventSectionHeight:
		return "SectionHeight"
	case EventPageHeight:
		return "PageHeight"
	default:
		return "Unknown"
	}
}

// Event is a single reflow message
type Event struct {
	Type    EventType
	Payload any
}
