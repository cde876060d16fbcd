package skibot

import "github.com/robotalks/skibot.go/pkg/sim"

// Overlay stores the last received target pose and target point
// for an external renderer. The two registers are independent,
// last-write-wins, and have no effect on the dynamics. A nil
// value means "do not draw".
type Overlay struct {
	targetPose  *sim.Pose2D
	targetPoint *sim.Pos2D
}

// SetTargetPose replaces the target pose. The orientation is
// normalized into (-Pi, Pi].
func (o *Overlay) SetTargetPose(pose sim.Pose2D) error {
	if !finite(pose.X, pose.Y, pose.Orientation.Radians()) {
		return ErrNonFiniteInput
	}
	pose.Orientation = sim.AngleFromRadians(pose.Orientation.Radians())
	o.targetPose = &pose
	return nil
}

// SetTargetPoint replaces the target point.
func (o *Overlay) SetTargetPoint(point sim.Pos2D) error {
	if !finite(point.X, point.Y) {
		return ErrNonFiniteInput
	}
	o.targetPoint = &point
	return nil
}

// Targets gets the stored targets. Either may be nil.
func (o *Overlay) Targets() (*sim.Pose2D, *sim.Pos2D) {
	return o.targetPose, o.targetPoint
}

// Clear drops both targets.
func (o *Overlay) Clear() {
	o.targetPose, o.targetPoint = nil, nil
}
