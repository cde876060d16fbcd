package skibot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThrustClip(t *testing.T) {
	testCases := []struct {
		name   string
		in     Thrust
		expect Thrust
	}{
		{
			name:   "zero passes through",
			in:     Thrust{},
			expect: Thrust{},
		},
		{
			name:   "inside bounds passes through",
			in:     Thrust{ForceX: 3.25, TorqueZ: -0.15},
			expect: Thrust{ForceX: 3.25, TorqueZ: -0.15},
		},
		{
			name:   "at bounds passes through",
			in:     Thrust{ForceX: 5.0, TorqueZ: -0.2},
			expect: Thrust{ForceX: 5.0, TorqueZ: -0.2},
		},
		{
			name:   "force above bound",
			in:     Thrust{ForceX: 12.5},
			expect: Thrust{ForceX: 5.0},
		},
		{
			name:   "force below bound",
			in:     Thrust{ForceX: -100},
			expect: Thrust{ForceX: -5.0},
		},
		{
			name:   "torque above bound",
			in:     Thrust{TorqueZ: 1},
			expect: Thrust{TorqueZ: 0.2},
		},
		{
			name:   "torque below bound",
			in:     Thrust{TorqueZ: -0.3},
			expect: Thrust{TorqueZ: -0.2},
		},
		{
			name:   "both clipped independently",
			in:     Thrust{ForceX: 7, TorqueZ: -7},
			expect: Thrust{ForceX: 5.0, TorqueZ: -0.2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.in.Clip())
		})
	}
}
