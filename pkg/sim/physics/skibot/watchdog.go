package skibot

import "time"

// DefaultThrustTimeout is how long a recorded thrust command keeps
// driving the body before it reverts to zero input.
const DefaultThrustTimeout = 600 * time.Millisecond

// Watchdog holds the latest thrust command and its receipt time,
// and reports whether it is still in effect. It is a single-slot
// register: each arrival replaces the previous command entirely.
type Watchdog struct {
	timeout    time.Duration
	thrust     Thrust
	receivedAt time.Time
	armed      bool
}

// NewWatchdog creates a Watchdog. A zero timeout selects
// DefaultThrustTimeout.
func NewWatchdog(timeout time.Duration) *Watchdog {
	if timeout == 0 {
		timeout = DefaultThrustTimeout
	}
	return &Watchdog{timeout: timeout}
}

// Record stores the clipped command and its receipt time,
// unconditionally replacing any prior command. Invalid input is
// rejected before any state is touched.
func (w *Watchdog) Record(t Thrust, now time.Time) error {
	if !finite(t.ForceX, t.TorqueZ) {
		return ErrNonFiniteInput
	}
	w.thrust = t.Clip()
	w.receivedAt = now
	w.armed = true
	return nil
}

// Effective reports the command in effect at now: the stored
// clipped command while its age is below the timeout, zero thrust
// otherwise. A command aged exactly the timeout is already stale.
// Pure query: polling after expiry never re-arms the command.
func (w *Watchdog) Effective(now time.Time) Thrust {
	if !w.armed || now.Sub(w.receivedAt) >= w.timeout {
		return Thrust{}
	}
	return w.thrust
}

// Clear drops any stored command, back to "no active command".
func (w *Watchdog) Clear() {
	w.thrust = Thrust{}
	w.receivedAt = time.Time{}
	w.armed = false
}
