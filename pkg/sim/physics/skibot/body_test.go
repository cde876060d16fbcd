package skibot

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/skibot.go/pkg/sim"
)

func TestBodyIntegrateFromRest(t *testing.T) {
	var b Body
	require.NoError(t, b.Integrate(Thrust{ForceX: 5, TorqueZ: 0.2}, time.Second))

	vel := b.Velocity()
	require.InDelta(t, 5.0, vel.Linear, 1e-12)
	require.InDelta(t, 0.2, vel.Angular, 1e-12)

	// position advances along the heading after the update
	pose := b.Pose()
	require.InDelta(t, 0.2, pose.Orientation.Radians(), 1e-12)
	require.InDelta(t, 5*math.Cos(0.2), pose.X, 1e-12)
	require.InDelta(t, 5*math.Sin(0.2), pose.Y, 1e-12)
}

func TestBodyCoastingKeepsVelocity(t *testing.T) {
	var b Body
	// spin up to v=1 m/s heading 0
	require.NoError(t, b.Integrate(Thrust{ForceX: 5}, 200*time.Millisecond))
	vel := b.Velocity()
	x := b.Pose().X

	require.NoError(t, b.Integrate(Thrust{}, 500*time.Millisecond))
	require.Equal(t, vel, b.Velocity())
	require.InDelta(t, x+vel.Linear*0.5, b.Pose().X, 1e-12)
	require.InDelta(t, 0, b.Pose().Y, 1e-12)
}

func TestBodyCoastingAlongHeading(t *testing.T) {
	var b Body
	require.NoError(t, b.Place(sim.Pose2D{Orientation: sim.AngleFromDegrees(90)}))
	require.NoError(t, b.Integrate(Thrust{ForceX: 2}, time.Second))

	pose := b.Pose()
	require.InDelta(t, 0, pose.X, 1e-9)
	require.InDelta(t, 2, pose.Y, 1e-9)
}

func TestBodyHeadingStaysCanonical(t *testing.T) {
	var b Body
	// keep turning well past a full revolution
	for i := 0; i < 100; i++ {
		require.NoError(t, b.Integrate(Thrust{TorqueZ: 0.2}, time.Second))
		theta := b.Pose().Orientation.Radians()
		require.Greater(t, theta, -math.Pi)
		require.LessOrEqual(t, theta, math.Pi)
	}
}

func TestBodyPlaceNormalizesOrientation(t *testing.T) {
	var b Body
	require.NoError(t, b.Place(sim.Pose2D{
		Pos2D:       sim.Pos2D{X: 1, Y: 2},
		Orientation: sim.Angle(-math.Pi),
	}))
	require.InDelta(t, math.Pi, b.Pose().Orientation.Radians(), 1e-12)
}

func TestBodyPlaceZeroesVelocity(t *testing.T) {
	var b Body
	require.NoError(t, b.Integrate(Thrust{ForceX: 5, TorqueZ: 0.2}, time.Second))
	require.NoError(t, b.Place(sim.Pose2D{Pos2D: sim.Pos2D{X: 3, Y: 4}}))
	require.Equal(t, Velocity{}, b.Velocity())
	require.Equal(t, sim.Pos2D{X: 3, Y: 4}, b.Pose().Pos2D)
}

func TestBodyIntegrateRejectsBeforeMutate(t *testing.T) {
	var b Body
	require.NoError(t, b.Integrate(Thrust{ForceX: 1}, time.Second))
	pose, vel := b.Pose(), b.Velocity()

	require.ErrorIs(t, b.Integrate(Thrust{ForceX: 1}, 0), ErrNonPositiveStep)
	require.ErrorIs(t, b.Integrate(Thrust{ForceX: 1}, -time.Second), ErrNonPositiveStep)
	require.ErrorIs(t, b.Integrate(Thrust{ForceX: math.NaN()}, time.Second), ErrNonFiniteInput)
	require.ErrorIs(t, b.Integrate(Thrust{TorqueZ: math.Inf(1)}, time.Second), ErrNonFiniteInput)

	require.Equal(t, pose, b.Pose())
	require.Equal(t, vel, b.Velocity())
}

func TestBodyPlaceRejectsBeforeMutate(t *testing.T) {
	var b Body
	require.NoError(t, b.Integrate(Thrust{ForceX: 1}, time.Second))
	pose, vel := b.Pose(), b.Velocity()

	require.ErrorIs(t, b.Place(sim.Pose2D{Pos2D: sim.Pos2D{X: math.NaN()}}), ErrNonFiniteInput)
	require.ErrorIs(t, b.Place(sim.Pose2D{Orientation: sim.Angle(math.Inf(1))}), ErrNonFiniteInput)

	require.Equal(t, pose, b.Pose())
	require.Equal(t, vel, b.Velocity())
}
