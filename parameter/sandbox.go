package parameter

// Sandbox loop
const (
	// TickRate is the simulation frequency (ticks/s)
	TickRate = 60

	// EventQueueSize is the input event ring capacity, must be a power of two
	EventQueueSize  = 64
	EventBufferMask = EventQueueSize - 1

	// CellsPerUnit is the horizontal terminal cells drawn per world unit
	CellsPerUnit = 2.0

	// RowsPerUnit is the terminal rows drawn per world unit
	RowsPerUnit = 1.0
)

// Debug logging
const (
	LogDir      = "logs"
	LogFileName = "loco.log"
	MaxLogSize  = 10 * 1024 * 1024
)
