package skibot

import (
	"sync"
	"time"

	"github.com/robotalks/skibot.go/pkg/sim"
)

// Engine is the simulation core: it owns the rigid body, the
// command watchdog and the overlay registers behind a single
// mutex, so transport callbacks and the tick path may call it
// from different goroutines. Every operation is a short,
// non-blocking critical section; the engine never performs I/O.
//
// Time is always supplied by the caller and must come from one
// monotonic source (the control loop's clock).
type Engine struct {
	lock     sync.Mutex
	body     Body
	watchdog *Watchdog
	overlay  Overlay
	lastStep time.Time
	stepped  bool
}

// New creates an Engine with zero pose/velocity, no active
// command and empty overlay. A zero timeout selects
// DefaultThrustTimeout.
func New(timeout time.Duration) *Engine {
	return &Engine{watchdog: NewWatchdog(timeout)}
}

// Pose gets the current pose.
func (e *Engine) Pose() sim.Pose2D {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.body.Pose()
}

// Velocity gets the current velocity.
func (e *Engine) Velocity() Velocity {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.body.Velocity()
}

// RecordThrust records a thrust command received at now. The
// stored command is clipped to the safety bounds; any prior
// command is replaced.
func (e *Engine) RecordThrust(forceX, torqueZ float64, now time.Time) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.watchdog.Record(Thrust{ForceX: forceX, TorqueZ: torqueZ}, now)
}

// EffectiveThrust reports the command that would drive a step at
// now. Pure query.
func (e *Engine) EffectiveThrust(now time.Time) Thrust {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.watchdog.Effective(now)
}

// StepFor advances the body by dt under the command effective at
// now. This is the integration primitive: dt must be positive.
func (e *Engine) StepFor(now time.Time, dt time.Duration) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if err := e.body.Integrate(e.watchdog.Effective(now), dt); err != nil {
		return err
	}
	e.lastStep, e.stepped = now.Add(dt), true
	return nil
}

// Step advances the body up to now, deriving dt from the previous
// step. The first call only latches the time base. A now at or
// before the previous step is a caller bug and is rejected
// without touching state.
func (e *Engine) Step(now time.Time) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.stepped {
		e.lastStep, e.stepped = now, true
		return nil
	}
	dt := now.Sub(e.lastStep)
	if dt <= 0 {
		return ErrNonPositiveStep
	}
	last := e.lastStep
	if err := e.body.Integrate(e.watchdog.Effective(last), dt); err != nil {
		return err
	}
	e.lastStep = now
	return nil
}

// Teleport atomically sets the pose (orientation normalized),
// zeroes the velocity and clears any pending thrust command, so a
// stale in-flight command cannot re-accelerate the teleported
// robot. Invalid input is rejected before any state is touched.
func (e *Engine) Teleport(pose sim.Pose2D) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	if err := e.body.Place(pose); err != nil {
		return err
	}
	e.watchdog.Clear()
	return nil
}

// SetTargetPose stores the target pose overlay.
func (e *Engine) SetTargetPose(pose sim.Pose2D) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.overlay.SetTargetPose(pose)
}

// SetTargetPoint stores the target point overlay.
func (e *Engine) SetTargetPoint(point sim.Pos2D) error {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.overlay.SetTargetPoint(point)
}

// Targets gets copies of the stored overlay targets. Either may
// be nil, meaning "do not draw".
func (e *Engine) Targets() (*sim.Pose2D, *sim.Pos2D) {
	e.lock.Lock()
	defer e.lock.Unlock()
	pose, point := e.overlay.Targets()
	if pose != nil {
		p := *pose
		pose = &p
	}
	if point != nil {
		p := *point
		point = &p
	}
	return pose, point
}

// ClearTargets drops both overlay targets.
func (e *Engine) ClearTargets() {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.overlay.Clear()
}
