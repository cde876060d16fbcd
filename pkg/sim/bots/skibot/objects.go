package skibot

import (
	"github.com/robotalks/skibot.go/pkg/sim"
)

// TargetPoseMarker is the advisory target pose drawn alongside the
// bot. It carries no physics.
type TargetPoseMarker struct {
	bot  *Controller
	pose sim.Pose2D
}

// Name implements Named.
func (m *TargetPoseMarker) Name() string {
	return m.bot.Name() + "/target-pose"
}

// OutlineRect implements Rectangular.
func (m *TargetPoseMarker) OutlineRect() sim.Rect {
	return markerOutline(m.bot)
}

// Position2D implements Positionable2D.
func (m *TargetPoseMarker) Position2D() sim.Pose2D {
	return m.pose
}

// TargetPointMarker is the advisory target point drawn alongside
// the bot.
type TargetPointMarker struct {
	bot   *Controller
	point sim.Pos2D
}

// Name implements Named.
func (m *TargetPointMarker) Name() string {
	return m.bot.Name() + "/target-point"
}

// OutlineRect implements Rectangular.
func (m *TargetPointMarker) OutlineRect() sim.Rect {
	return markerOutline(m.bot)
}

// Position2D implements Positionable2D.
func (m *TargetPointMarker) Position2D() sim.Pose2D {
	return sim.Pose2D{Pos2D: m.point}
}

// markers draw at half the bot size.
func markerOutline(bot *Controller) sim.Rect {
	rc := bot.Outline
	rc.CX, rc.CY = rc.CX/2, rc.CY/2
	rc.X, rc.Y = -rc.CX/2, -rc.CY/2
	return rc
}
