package skibot

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/skibot.go/pkg/cli/sh"
	"github.com/robotalks/skibot.go/pkg/l1/msgs"
)

func parseFloats(c *ishell.Context, names ...string) ([]float64, error) {
	if len(c.Args) < len(names) {
		return nil, fmt.Errorf("%s required", names[len(c.Args)])
	}
	vals := make([]float64, len(names))
	for i, name := range names {
		val, err := strconv.ParseFloat(c.Args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("Invalid %s: %v", name, err)
		}
		vals[i] = val
	}
	return vals, nil
}

var (
	// ThrustCmd sends the Thrust event stream.
	ThrustCmd = ishell.Cmd{
		Name:    "thrust",
		Aliases: []string{"t"},
		Help:    "FORCE(N) [TORQUE(Nm)]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("FORCE required"))
				return
			}
			var msg msgs.Thrust
			val, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil {
				c.Err(fmt.Errorf("Invalid FORCE: %v", err))
				return
			}
			msg.ForceX = val
			if len(c.Args) > 1 {
				if val, err = strconv.ParseFloat(c.Args[1], 64); err != nil {
					c.Err(fmt.Errorf("Invalid TORQUE: %v", err))
					return
				}
				msg.TorqueZ = val
			}
			sh.SendEvent(c, &msg)
		}),
	}

	// TeleportCmd exposes the Teleport command.
	TeleportCmd = ishell.Cmd{
		Name:    "teleport",
		Aliases: []string{"tp"},
		Help:    "X(m) Y(m) [THETA(rad)]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			vals, err := parseFloats(c, "X", "Y")
			if err != nil {
				c.Err(err)
				return
			}
			msg := msgs.Teleport{X: vals[0], Y: vals[1]}
			if len(c.Args) > 2 {
				if msg.Theta, err = strconv.ParseFloat(c.Args[2], 64); err != nil {
					c.Err(fmt.Errorf("Invalid THETA: %v", err))
					return
				}
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// TargetPoseCmd sends the TargetPose overlay event.
	TargetPoseCmd = ishell.Cmd{
		Name:    "target.pose",
		Aliases: []string{"tgp"},
		Help:    "X(m) Y(m) THETA(rad)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			vals, err := parseFloats(c, "X", "Y", "THETA")
			if err != nil {
				c.Err(err)
				return
			}
			sh.SendEvent(c, &msgs.TargetPose{X: vals[0], Y: vals[1], Theta: vals[2]})
		}),
	}

	// TargetPointCmd sends the TargetPoint overlay event.
	TargetPointCmd = ishell.Cmd{
		Name:    "target.point",
		Aliases: []string{"tgt"},
		Help:    "X(m) Y(m)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			vals, err := parseFloats(c, "X", "Y")
			if err != nil {
				c.Err(err)
				return
			}
			sh.SendEvent(c, &msgs.TargetPoint{X: vals[0], Y: vals[1]})
		}),
	}

	// TargetClearCmd sends the ClearTargets overlay event.
	TargetClearCmd = ishell.Cmd{
		Name:    "target.clear",
		Aliases: []string{"tgc"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.SendEvent(c, &msgs.ClearTargets{})
		}),
	}
)

func init() {
	sh.AddCmds(
		&ThrustCmd,
		&TeleportCmd,
		&TargetPoseCmd,
		&TargetPointCmd,
		&TargetClearCmd,
	)
}
