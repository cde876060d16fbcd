package skibot

import (
	"math"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/skibot.go/pkg/sim"
)

func TestEngineFullThrustTicks(t *testing.T) {
	mock := clock.NewMock()
	e := New(0)
	t0 := mock.Now()

	require.NoError(t, e.Step(t0)) // latch the time base
	require.NoError(t, e.RecordThrust(5, 0, t0))

	const dt = 100 * time.Millisecond
	secs := dt.Seconds()

	// Euler rule: v grows 0.5 per tick while the command window
	// (evaluated at each tick's start) is open; x accumulates
	// v*dt at heading 0.
	var expectV, expectX float64
	for i := 1; i <= 6; i++ {
		mock.Add(dt)
		require.NoError(t, e.Step(mock.Now()))
		expectV += 5 * secs
		expectX += expectV * secs

		vel, pose := e.Velocity(), e.Pose()
		require.InDelta(t, expectV, vel.Linear, 1e-12, "tick %d", i)
		require.InDelta(t, expectX, pose.X, 1e-12, "tick %d", i)
		require.InDelta(t, 0, pose.Y, 1e-12, "tick %d", i)
		require.InDelta(t, 0, pose.Orientation.Radians(), 1e-12, "tick %d", i)
	}
	require.InDelta(t, 3.0, e.Velocity().Linear, 1e-12)
	require.InDelta(t, 1.05, e.Pose().X, 1e-12)

	// the 7th tick's window starts at the 0.6s boundary: the
	// command is stale and the robot coasts
	mock.Add(dt)
	require.NoError(t, e.Step(mock.Now()))
	require.InDelta(t, 3.0, e.Velocity().Linear, 1e-12)
	require.InDelta(t, 1.05+3.0*secs, e.Pose().X, 1e-12)
}

func TestEngineTeleportThenIdleTick(t *testing.T) {
	mock := clock.NewMock()
	e := New(0)
	require.NoError(t, e.Step(mock.Now()))

	target := sim.Pose2D{
		Pos2D:       sim.Pos2D{X: 3, Y: 4},
		Orientation: sim.AngleFromRadians(math.Pi / 2),
	}
	require.NoError(t, e.Teleport(target))

	mock.Add(100 * time.Millisecond)
	require.NoError(t, e.Step(mock.Now()))

	pose := e.Pose()
	require.Equal(t, target.Pos2D, pose.Pos2D)
	require.InDelta(t, math.Pi/2, pose.Orientation.Radians(), 1e-12)
	require.Equal(t, Velocity{}, e.Velocity())
}

func TestEngineTeleportClearsPendingThrust(t *testing.T) {
	mock := clock.NewMock()
	e := New(0)
	now := mock.Now()
	require.NoError(t, e.Step(now))
	require.NoError(t, e.RecordThrust(5, 0.1, now))

	require.NoError(t, e.Teleport(sim.Pose2D{Pos2D: sim.Pos2D{X: 5, Y: 5}}))

	// regardless of how recently the thrust arrived
	require.Equal(t, Thrust{}, e.EffectiveThrust(now))
	mock.Add(100 * time.Millisecond)
	require.NoError(t, e.Step(mock.Now()))
	require.Equal(t, sim.Pos2D{X: 5, Y: 5}, e.Pose().Pos2D)
}

func TestEngineRecordThrustClips(t *testing.T) {
	mock := clock.NewMock()
	e := New(0)
	now := mock.Now()
	require.NoError(t, e.RecordThrust(100, -100, now))
	require.Equal(t, Thrust{ForceX: MaxForceX, TorqueZ: -MaxTorqueZ}, e.EffectiveThrust(now))
}

func TestEngineStepRejectsNonIncreasingTime(t *testing.T) {
	mock := clock.NewMock()
	e := New(0)
	now := mock.Now()
	require.NoError(t, e.Step(now))
	require.ErrorIs(t, e.Step(now), ErrNonPositiveStep)
	require.ErrorIs(t, e.Step(now.Add(-time.Second)), ErrNonPositiveStep)
	require.Equal(t, sim.Pose2D{}, e.Pose())
}

func TestEngineStepForRejectsBadStep(t *testing.T) {
	e := New(0)
	var now time.Time
	require.ErrorIs(t, e.StepFor(now, 0), ErrNonPositiveStep)
	require.ErrorIs(t, e.StepFor(now, -time.Millisecond), ErrNonPositiveStep)
}

func TestEngineStepForDrivesFromWindowStart(t *testing.T) {
	e := New(0)
	var t0 time.Time
	require.NoError(t, e.RecordThrust(5, 0, t0))

	// six explicit windows starting at 0, 0.1 ... 0.5s: all open
	const dt = 100 * time.Millisecond
	for i := 0; i < 6; i++ {
		require.NoError(t, e.StepFor(t0.Add(time.Duration(i)*dt), dt))
	}
	require.InDelta(t, 3.0, e.Velocity().Linear, 1e-12)
	require.InDelta(t, 1.05, e.Pose().X, 1e-12)

	// a window starting exactly at the timeout gets zero thrust
	require.NoError(t, e.StepFor(t0.Add(600*time.Millisecond), dt))
	require.InDelta(t, 3.0, e.Velocity().Linear, 1e-12)
}

func TestEngineTargets(t *testing.T) {
	e := New(0)
	pose, point := e.Targets()
	require.Nil(t, pose)
	require.Nil(t, point)

	require.NoError(t, e.SetTargetPose(sim.Pose2D{Pos2D: sim.Pos2D{X: 1, Y: 2}, Orientation: sim.Angle(0.5)}))
	require.NoError(t, e.SetTargetPoint(sim.Pos2D{X: 3, Y: 4}))
	pose, point = e.Targets()
	require.NotNil(t, pose)
	require.NotNil(t, point)
	require.Equal(t, sim.Pos2D{X: 1, Y: 2}, pose.Pos2D)
	require.Equal(t, sim.Pos2D{X: 3, Y: 4}, *point)

	// registers are independent and last-write-wins
	require.NoError(t, e.SetTargetPoint(sim.Pos2D{X: 9, Y: 9}))
	pose, point = e.Targets()
	require.NotNil(t, pose)
	require.Equal(t, sim.Pos2D{X: 9, Y: 9}, *point)

	require.ErrorIs(t, e.SetTargetPose(sim.Pose2D{Pos2D: sim.Pos2D{X: math.NaN()}}), ErrNonFiniteInput)
	require.ErrorIs(t, e.SetTargetPoint(sim.Pos2D{Y: math.Inf(1)}), ErrNonFiniteInput)

	e.ClearTargets()
	pose, point = e.Targets()
	require.Nil(t, pose)
	require.Nil(t, point)
}
