package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngleNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		rad    float64
		expect float64
	}{
		{name: "zero", rad: 0, expect: 0},
		{name: "within range", rad: 1, expect: 1},
		{name: "negative within range", rad: -1, expect: -1},
		{name: "pi stays pi", rad: math.Pi, expect: math.Pi},
		{name: "minus pi wraps to pi", rad: -math.Pi, expect: math.Pi},
		{name: "just above pi", rad: math.Pi + 0.5, expect: -math.Pi + 0.5},
		{name: "just below minus pi", rad: -math.Pi - 0.5, expect: math.Pi - 0.5},
		{name: "full turn", rad: 2 * math.Pi, expect: 0},
		{name: "negative full turn", rad: -2 * math.Pi, expect: 0},
		{name: "three half turns", rad: 3 * math.Pi, expect: math.Pi},
		{name: "many turns", rad: 9*2*math.Pi + 0.25, expect: 0.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := AngleFromRadians(tc.rad)
			require.InDelta(t, tc.expect, a.Radians(), 1e-9)
			// normalizing twice yields the same value
			require.Equal(t, a, AngleFromRadians(a.Radians()))
		})
	}
}

func TestAngleAddKeepsCanonicalRange(t *testing.T) {
	a := AngleFromRadians(3)
	for i := 0; i < 10; i++ {
		a = a.AddRadians(1)
		require.Greater(t, a.Radians(), -math.Pi)
		require.LessOrEqual(t, a.Radians(), math.Pi)
	}
}

func TestAngleProject(t *testing.T) {
	p := AngleFromDegrees(90).Project(2)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 2, p.Y, 1e-9)
}
