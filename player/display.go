package player

import (
	"fmt"
	"sync/atomic"
)

// Display mirrors the global explosion force for the HUD
// Written by the tick loop, read by the renderer
type Display struct {
	value   atomic.Int64
	updates atomic.Int64
}

// ForceChanged implements explosive.ForceObserver
func (d *Display) ForceChanged(value int) {
	d.value.Store(int64(value))
	d.updates.Add(1)
}

// Value returns the last shown force
func (d *Display) Value() int { return int(d.value.Load()) }

// Updates returns the number of refreshes received
func (d *Display) Updates() int64 { return d.updates.Load() }

// Text returns the display line
func (d *Display) Text() string {
	return fmt.Sprintf("Force: %d", d.Value())
}
