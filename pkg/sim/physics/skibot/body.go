package skibot

import (
	"time"

	"github.com/robotalks/skibot.go/pkg/sim"
)

// Drag coefficients applied to the velocities on every step.
// Both are fixed at zero: with no active thrust the body coasts
// forever at its last velocity. Changing either value changes
// every trajectory expectation downstream, so they are constants,
// not configuration.
const (
	LinearDrag  = 0.0
	AngularDrag = 0.0
)

// Velocity is the body-frame velocity: forward speed along the
// heading axis (m/s) and yaw rate (rad/s).
type Velocity struct {
	Linear  float64
	Angular float64
}

// Body is the rigid-body state of the robot: one pose and one
// velocity. It is mutated only by Integrate and Place.
type Body struct {
	pose sim.Pose2D
	vel  Velocity
}

// Pose gets the current pose.
func (b *Body) Pose() sim.Pose2D {
	return b.pose
}

// Velocity gets the current velocity.
func (b *Body) Velocity() Velocity {
	return b.vel
}

// Integrate advances the state by dt under the given thrust,
// using forward Euler in the body frame:
//
//	omega += torque * dt
//	v     += force * dt
//	theta += omega * dt   (normalized into (-Pi, Pi])
//	x     += v * cos(theta) * dt
//	y     += v * sin(theta) * dt
//
// The position update uses the heading after the update. Invalid
// input is rejected before any state is touched.
func (b *Body) Integrate(t Thrust, dt time.Duration) error {
	if dt <= 0 {
		return ErrNonPositiveStep
	}
	if !finite(t.ForceX, t.TorqueZ) {
		return ErrNonFiniteInput
	}
	secs := dt.Seconds()
	b.vel.Angular += t.TorqueZ * secs
	b.vel.Linear += t.ForceX * secs
	b.vel.Angular -= b.vel.Angular * AngularDrag * secs
	b.vel.Linear -= b.vel.Linear * LinearDrag * secs
	b.pose.Orientation = b.pose.Orientation.AddRadians(b.vel.Angular * secs)
	b.pose.Pos2D.OffsetBy(b.pose.Orientation.Project(b.vel.Linear * secs))
	return nil
}

// Place sets the pose directly and zeroes the velocity. The
// orientation is normalized into (-Pi, Pi]. Invalid input is
// rejected before any state is touched.
func (b *Body) Place(pose sim.Pose2D) error {
	if !finite(pose.X, pose.Y, pose.Orientation.Radians()) {
		return ErrNonFiniteInput
	}
	pose.Orientation = sim.AngleFromRadians(pose.Orientation.Radians())
	b.pose = pose
	b.vel = Velocity{}
	return nil
}
