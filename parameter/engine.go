package parameter

import "time"

// Frame loop timing
const (
	// DefaultFPS is the frame tick rate when not configured
	DefaultFPS = 60

	// FrameUpdateInterval is the frame interval at DefaultFPS (~60 FPS)
	FrameUpdateInterval = time.Second / DefaultFPS

	// InputChannelSize buffers terminal events between the poll goroutine and the loop
	InputChannelSize = 100
)

// Reflow message queue
const (
	// EventQueueSize is the fixed capacity of the reflow ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)
