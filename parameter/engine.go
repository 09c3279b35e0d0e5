package parameter

import "time"

// Host Loop Timing
const (
	// TickRate is the simulation cadence every per-tick constant is tuned for
	TickRate = 60

	// TickInterval is the wall-clock spacing of simulation ticks
	TickInterval = time.Second / TickRate

	// ReadyTimeout forces a session to start when the asset probe never reports ready
	ReadyTimeout = 5 * time.Second

	// ReadyPollInterval is how often the ready gate re-checks its probe
	ReadyPollInterval = 50 * time.Millisecond

	// CommandQueueSize bounds pending host commands between ticks
	CommandQueueSize = 64

	// HeldKeyWindow is how long a direction key counts as held after its last press or repeat
	HeldKeyWindow = 200 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the engine event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Spectator Feed
const (
	// SpectateFrameDivisor publishes one snapshot every N ticks
	SpectateFrameDivisor = 4

	// SpectateClientBuffer is the per-subscriber frame backlog before frames drop
	SpectateClientBuffer = 8

	// SpectateWriteTimeout bounds a single websocket frame write
	SpectateWriteTimeout = 2 * time.Second
)
