// Package skibot implements the L1 controller for the skibot:
// a thrust-driven puck integrated by the physics engine, with a
// teleport command and advisory target overlays.
package skibot

import (
	"errors"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/skibot.go/pkg/framework"
	"github.com/robotalks/skibot.go/pkg/l1"
	env "github.com/robotalks/skibot.go/pkg/l1/env/controller"
	"github.com/robotalks/skibot.go/pkg/l1/msgs"
	"github.com/robotalks/skibot.go/pkg/sim"
	physics "github.com/robotalks/skibot.go/pkg/sim/physics/skibot"
)

// ErrOutsideArena indicates a teleport target beyond the arena.
var ErrOutsideArena = errors.New("teleport target outside arena")

// Controller is the L1 controller.
type Controller struct {
	Env *env.Env

	Outline sim.Rect
	// Arena bounds teleport targets. A zero rect disables the check.
	Arena       sim.Rect
	PubInterval time.Duration
	Engine      *physics.Engine

	sim.ObjectsChangeCaster

	changes     int
	lastPub     time.Time
	pubbed      bool
	targetPose  TargetPoseMarker
	targetPoint TargetPointMarker
	shownPose   bool
	shownPoint  bool
}

// NewController creates the controller.
func NewController(e *env.Env) *Controller {
	c := &Controller{
		Env:     e,
		Engine:  physics.New(0),
		changes: 1, // send initial object change.
	}
	c.targetPose.bot = c
	c.targetPoint.bot = c
	return c
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvControl, fx.ControlFunc(c.HandleMessages))
	l.AddController(fx.PrLvAcuate, fx.ControlFunc(c.Advance))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.PublishPose))
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.NotifyChanges))
}

// OutlineRect implements Rectangular.
func (c *Controller) OutlineRect() sim.Rect {
	return c.Outline
}

// Position2D implements Placeable2D.
func (c *Controller) Position2D() sim.Pose2D {
	return c.Engine.Pose()
}

// SetPose2D implements Placeable2D.
func (c *Controller) SetPose2D(pose sim.Pose2D) sim.Pose2D {
	if err := c.Engine.Teleport(pose); err != nil {
		glog.Warningf("place rejected: %v", err)
	} else {
		c.changes = 1
	}
	return c.Engine.Pose()
}

// HandleMessages is a controller processing commands and streams.
func (c *Controller) HandleMessages(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch m := mctx.CurrentMessage().(type) {
		case *l1.CommandMsg:
			if msg, ok := m.Command.Msg().(*msgs.Teleport); ok {
				mctx.MessageTaken()
				m.Command.Done(c.Teleport(msg))
			}
		case *msgs.Thrust:
			mctx.MessageTaken()
			if err := c.Engine.RecordThrust(m.ForceX, m.TorqueZ, cc.Time()); err != nil {
				glog.V(1).Infof("thrust rejected: %v", err)
			}
		case *msgs.TargetPose:
			mctx.MessageTaken()
			pose := sim.Pose2D{
				Pos2D:       sim.Pos2D{X: m.X, Y: m.Y},
				Orientation: sim.AngleFromRadians(m.Theta),
			}
			if err := c.Engine.SetTargetPose(pose); err != nil {
				glog.V(1).Infof("target pose rejected: %v", err)
			} else {
				c.changes = 1
			}
		case *msgs.TargetPoint:
			mctx.MessageTaken()
			if err := c.Engine.SetTargetPoint(sim.Pos2D{X: m.X, Y: m.Y}); err != nil {
				glog.V(1).Infof("target point rejected: %v", err)
			} else {
				c.changes = 1
			}
		case *msgs.ClearTargets:
			mctx.MessageTaken()
			c.Engine.ClearTargets()
			c.changes = 1
		}
	}))
	return nil
}

// Teleport executes the Teleport command and builds the reply.
func (c *Controller) Teleport(m *msgs.Teleport) fx.Message {
	if !physics.Finite(m.X, m.Y, m.Theta) {
		return msgs.NewCommandErr(physics.ErrNonFiniteInput)
	}
	pose := sim.Pose2D{
		Pos2D:       sim.Pos2D{X: m.X, Y: m.Y},
		Orientation: sim.AngleFromRadians(m.Theta),
	}
	if !c.Arena.IsZero() && !c.Arena.Contains(pose.Pos2D) {
		return msgs.NewCommandErr(ErrOutsideArena)
	}
	if err := c.Engine.Teleport(pose); err != nil {
		return msgs.NewCommandErr(err)
	}
	c.changes = 1
	return msgs.NewCommandOK()
}

// Advance is a controller stepping the physics.
func (c *Controller) Advance(cc fx.ControlContext) error {
	before := c.Engine.Pose()
	if err := c.Engine.Step(cc.Time()); err != nil {
		glog.V(2).Infof("step skipped: %v", err)
		return nil
	}
	if c.Engine.Pose() != before {
		c.changes = 1
	}
	return nil
}

// PublishPose is a controller reporting the pose stream.
func (c *Controller) PublishPose(cc fx.ControlContext) error {
	now := cc.Time()
	if c.pubbed && now.Sub(c.lastPub) < c.PubInterval {
		return nil
	}
	c.lastPub, c.pubbed = now, true
	pose, vel := c.Engine.Pose(), c.Engine.Velocity()
	return c.Env.Registrar.SendEvent(cc.Context(), &msgs.Pose{
		X:       pose.X,
		Y:       pose.Y,
		Theta:   pose.Orientation.Radians(),
		Linear:  vel.Linear,
		Angular: vel.Angular,
	})
}

// NotifyChanges notifies object changes, including the target
// overlay markers appearing and disappearing.
func (c *Controller) NotifyChanges(cc fx.ControlContext) error {
	changes := c.changes
	c.changes = 0
	if changes == 0 {
		return nil
	}
	objs := []sim.Object{c}
	var removed []sim.Object
	tpose, tpoint := c.Engine.Targets()
	if tpose != nil {
		c.targetPose.pose = *tpose
		c.shownPose = true
		objs = append(objs, &c.targetPose)
	} else if c.shownPose {
		c.shownPose = false
		removed = append(removed, &c.targetPose)
	}
	if tpoint != nil {
		c.targetPoint.point = *tpoint
		c.shownPoint = true
		objs = append(objs, &c.targetPoint)
	} else if c.shownPoint {
		c.shownPoint = false
		removed = append(removed, &c.targetPoint)
	}
	c.ObjectsChanged(cc, objs...)
	if len(removed) > 0 {
		c.ObjectsRemoved(cc, removed...)
	}
	return nil
}
