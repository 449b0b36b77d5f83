package components

import "time"

// Cooldown gates an action to once per Duration of simulation time.
type Cooldown struct {
	Duration time.Duration
	last     time.Duration
	primed   bool
}

// Ready reports whether the action may run at now. A cooldown that never fired is ready.
func (c Cooldown) Ready(now time.Duration) bool {
	return !c.primed || now-c.last >= c.Duration
}

// Trigger records that the action ran at now.
func (c *Cooldown) Trigger(now time.Duration) {
	c.last = now
	c.primed = true
}
