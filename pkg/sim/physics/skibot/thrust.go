// Package skibot simulates a sliding robot on a frictionless 2D
// plane, driven by a linear force along its heading and a yaw
// torque. It is the physics and command-processing core only:
// transport, rendering and bootstrap live elsewhere.
package skibot

// Safety bounds applied to every incoming thrust command.
const (
	MaxForceX  = 5.0
	MaxTorqueZ = 0.2
)

// Thrust is a linear force (N, along the heading axis) and a yaw
// torque (N·m) applied to the body.
type Thrust struct {
	ForceX  float64
	TorqueZ float64
}

// Clip clamps both components to their safety bounds.
func (t Thrust) Clip() Thrust {
	return Thrust{
		ForceX:  clip(t.ForceX, MaxForceX),
		TorqueZ: clip(t.TorqueZ, MaxTorqueZ),
	}
}

// IsZero reports a no-op thrust.
func (t Thrust) IsZero() bool {
	return t.ForceX == 0 && t.TorqueZ == 0
}

func clip(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
