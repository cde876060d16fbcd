package skibot

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchdogNeverRecorded(t *testing.T) {
	w := NewWatchdog(0)
	var base time.Time
	for _, after := range []time.Duration{0, time.Millisecond, time.Hour} {
		require.Equal(t, Thrust{}, w.Effective(base.Add(after)))
	}
}

func TestWatchdogTimeoutBoundary(t *testing.T) {
	w := NewWatchdog(0)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 2, TorqueZ: 0.1}, t0))

	testCases := []struct {
		name   string
		after  time.Duration
		expect Thrust
	}{
		{name: "fresh", after: 0, expect: Thrust{ForceX: 2, TorqueZ: 0.1}},
		{name: "just inside window", after: 590 * time.Millisecond, expect: Thrust{ForceX: 2, TorqueZ: 0.1}},
		{name: "at boundary is stale", after: 600 * time.Millisecond, expect: Thrust{}},
		{name: "past boundary", after: 610 * time.Millisecond, expect: Thrust{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, w.Effective(t0.Add(tc.after)))
		})
	}
}

func TestWatchdogRecordsClipped(t *testing.T) {
	w := NewWatchdog(0)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 50, TorqueZ: -3}, t0))
	require.Equal(t, Thrust{ForceX: 5, TorqueZ: -0.2}, w.Effective(t0))
}

func TestWatchdogLastWriteWins(t *testing.T) {
	w := NewWatchdog(0)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 1}, t0))
	t1 := t0.Add(500 * time.Millisecond)
	require.NoError(t, w.Record(Thrust{ForceX: -1}, t1))
	// the replacement carries its own receipt time
	require.Equal(t, Thrust{ForceX: -1}, w.Effective(t0.Add(time.Second)))
	require.Equal(t, Thrust{}, w.Effective(t1.Add(600*time.Millisecond)))
}

func TestWatchdogPollingNeverRearms(t *testing.T) {
	w := NewWatchdog(0)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 3}, t0))
	stale := t0.Add(700 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.Equal(t, Thrust{}, w.Effective(stale))
		stale = stale.Add(time.Millisecond)
	}
}

func TestWatchdogClear(t *testing.T) {
	w := NewWatchdog(0)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 3}, t0))
	w.Clear()
	require.Equal(t, Thrust{}, w.Effective(t0))
}

func TestWatchdogRejectsNonFinite(t *testing.T) {
	w := NewWatchdog(0)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 1}, t0))
	for _, bad := range []Thrust{
		{ForceX: math.NaN()},
		{TorqueZ: math.Inf(1)},
		{ForceX: math.Inf(-1), TorqueZ: math.NaN()},
	} {
		err := w.Record(bad, t0.Add(time.Millisecond))
		require.ErrorIs(t, err, ErrNonFiniteInput)
	}
	// the prior command survives a rejected record
	require.Equal(t, Thrust{ForceX: 1}, w.Effective(t0.Add(100*time.Millisecond)))
}

func TestWatchdogCustomTimeout(t *testing.T) {
	w := NewWatchdog(time.Second)
	var t0 time.Time
	require.NoError(t, w.Record(Thrust{ForceX: 1}, t0))
	require.Equal(t, Thrust{ForceX: 1}, w.Effective(t0.Add(900*time.Millisecond)))
	require.Equal(t, Thrust{}, w.Effective(t0.Add(time.Second)))
}
