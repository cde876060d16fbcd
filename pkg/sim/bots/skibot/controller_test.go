package skibot

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/skibot.go/pkg/framework"
	"github.com/robotalks/skibot.go/pkg/l1"
	"github.com/robotalks/skibot.go/pkg/l1/comm"
	env "github.com/robotalks/skibot.go/pkg/l1/env/controller"
	"github.com/robotalks/skibot.go/pkg/l1/msgs"
	"github.com/robotalks/skibot.go/pkg/sim"
)

type eventRecorder struct {
	events []fx.Message
}

func (r *eventRecorder) SendEvent(_ context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}

func (r *eventRecorder) poses() (res []*msgs.Pose) {
	for _, ev := range r.events {
		if p, ok := ev.(*msgs.Pose); ok {
			res = append(res, p)
		}
	}
	return
}

type fakeCommand struct {
	msg   fx.Message
	reply fx.Message
}

func (c *fakeCommand) Msg() fx.Message { return c.msg }

func (c *fakeCommand) Done(msg fx.Message) error {
	c.reply = msg
	return nil
}

type changeRecorder struct {
	changed []string
	removed []string
}

func (r *changeRecorder) ObjectsChanged(_ fx.ControlContext, objs ...sim.Object) {
	for _, obj := range objs {
		r.changed = append(r.changed, obj.Name())
	}
}

func (r *changeRecorder) ObjectsRemoved(_ fx.ControlContext, objs ...sim.Object) {
	for _, obj := range objs {
		r.removed = append(r.removed, obj.Name())
	}
}

type testBot struct {
	ctl    *Controller
	loop   *fx.Loop
	clock  *clock.Mock
	events *eventRecorder
}

func newTestBot(t *testing.T) *testBot {
	e := &env.Env{
		Config: &env.Config{
			Info: l1.ControllerInfo{Ref: l1.ControllerRef{Type: "skibot", ID: "test"}},
		},
		Registrar: &comm.RegistrarMux{},
	}
	events := &eventRecorder{}
	e.Registrar.Add(events)
	conf := *Default()
	ctl, err := conf.NewController(e)
	require.NoError(t, err)
	loop := fx.NewLoop()
	mock := clock.NewMock()
	loop.Clock = mock
	loop.Add(ctl)
	return &testBot{ctl: ctl, loop: loop, clock: mock, events: events}
}

func (b *testBot) tick(ctx context.Context, dt time.Duration) {
	b.clock.Add(dt)
	b.loop.RunIteration(ctx, b.clock.Now())
}

func TestControllerThrustDrivesMotion(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()

	// first iteration latches the time base
	b.tick(ctx, 0)
	b.loop.PostMessage(&msgs.Thrust{ForceX: 5})
	b.tick(ctx, 100*time.Millisecond)
	b.tick(ctx, 100*time.Millisecond)

	vel := b.ctl.Engine.Velocity()
	assert.InDelta(t, 1.0, vel.Linear, 1e-9)
	pose := b.ctl.Engine.Pose()
	assert.InDelta(t, 0.15, pose.X, 1e-9)
	assert.InDelta(t, 0, pose.Y, 1e-9)

	poses := b.events.poses()
	require.NotEmpty(t, poses)
	last := poses[len(poses)-1]
	assert.InDelta(t, 0.15, last.X, 1e-9)
	assert.InDelta(t, 1.0, last.Linear, 1e-9)
}

func TestControllerThrustClipped(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()

	b.tick(ctx, 0)
	b.loop.PostMessage(&msgs.Thrust{ForceX: 50, TorqueZ: -3})
	b.tick(ctx, 100*time.Millisecond)

	vel := b.ctl.Engine.Velocity()
	assert.InDelta(t, 0.5, vel.Linear, 1e-9)
	assert.InDelta(t, -0.02, vel.Angular, 1e-9)
}

func TestControllerTeleport(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()

	b.tick(ctx, 0)
	b.loop.PostMessage(&msgs.Thrust{ForceX: 5})
	b.tick(ctx, 100*time.Millisecond)

	cmd := &fakeCommand{msg: &msgs.Teleport{X: 1, Y: -1, Theta: math.Pi / 2}}
	b.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	b.tick(ctx, 100*time.Millisecond)

	assert.IsType(t, &msgs.CommandOK{}, cmd.reply)
	pose := b.ctl.Engine.Pose()
	assert.InDelta(t, 1, pose.X, 1e-9)
	assert.InDelta(t, -1, pose.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, pose.Orientation.Radians(), 1e-9)
	vel := b.ctl.Engine.Velocity()
	assert.Zero(t, vel.Linear)
	assert.Zero(t, vel.Angular)

	// the pending thrust was cleared with the teleport, the bot coasts
	b.tick(ctx, 100*time.Millisecond)
	vel = b.ctl.Engine.Velocity()
	assert.Zero(t, vel.Linear)
}

func TestControllerTeleportOutsideArena(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()
	b.tick(ctx, 0)

	cmd := &fakeCommand{msg: &msgs.Teleport{X: 10, Y: 0}}
	b.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	b.tick(ctx, 100*time.Millisecond)

	require.IsType(t, &msgs.CommandErr{}, cmd.reply)
	assert.Equal(t, ErrOutsideArena.Error(), cmd.reply.(*msgs.CommandErr).Message)
	pose := b.ctl.Engine.Pose()
	assert.Zero(t, pose.X)
}

func TestControllerTeleportNonFinite(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()
	b.tick(ctx, 0)

	cmd := &fakeCommand{msg: &msgs.Teleport{X: math.NaN()}}
	b.loop.PostMessage(&l1.CommandMsg{Command: cmd})
	b.tick(ctx, 100*time.Millisecond)

	require.IsType(t, &msgs.CommandErr{}, cmd.reply)
	pose := b.ctl.Engine.Pose()
	assert.Zero(t, pose.X)
}

func TestControllerTargetOverlays(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()
	rec := &changeRecorder{}
	b.ctl.SubscribeObjectsChange(rec)

	b.tick(ctx, 0)
	b.loop.PostMessage(&msgs.TargetPose{X: 1, Y: 1, Theta: 0})
	b.loop.PostMessage(&msgs.TargetPoint{X: -1, Y: -1})
	b.tick(ctx, 100*time.Millisecond)

	assert.Contains(t, rec.changed, "skibot/test/target-pose")
	assert.Contains(t, rec.changed, "skibot/test/target-point")
	assert.Empty(t, rec.removed)

	b.loop.PostMessage(&msgs.ClearTargets{})
	b.tick(ctx, 100*time.Millisecond)

	assert.Contains(t, rec.removed, "skibot/test/target-pose")
	assert.Contains(t, rec.removed, "skibot/test/target-point")
}
