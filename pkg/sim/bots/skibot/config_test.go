package skibot

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/skibot.go/pkg/l1"
	"github.com/robotalks/skibot.go/pkg/l1/comm"
	env "github.com/robotalks/skibot.go/pkg/l1/env/controller"
)

func TestConfigLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
size: 0.3
arena_w: 2
arena_h: 3
tick_interval: 20ms
pub_interval: 50ms
thrust_timeout: 1s
initial_pose:
  x: 0.5
  y: -0.5
  theta: 1.5707963267948966
`), 0644))

	conf := *Default()
	require.NoError(t, conf.LoadFile(path))
	assert.Equal(t, 0.3, conf.Size)
	assert.Equal(t, 2.0, conf.ArenaW)
	assert.Equal(t, 3.0, conf.ArenaH)
	assert.Equal(t, 20*time.Millisecond, time.Duration(conf.TickInterval))
	assert.Equal(t, 50*time.Millisecond, time.Duration(conf.PubInterval))
	assert.Equal(t, time.Second, time.Duration(conf.ThrustTimeout))

	e := &env.Env{
		Config: &env.Config{
			Info: l1.ControllerInfo{Ref: l1.ControllerRef{Type: "skibot", ID: "test"}},
		},
		Registrar: &comm.RegistrarMux{},
	}
	ctl, err := conf.NewController(e)
	require.NoError(t, err)
	assert.Equal(t, -1.0, ctl.Arena.X)
	assert.Equal(t, 2.0, ctl.Arena.CX)
	pose := ctl.Engine.Pose()
	assert.InDelta(t, 0.5, pose.X, 1e-9)
	assert.InDelta(t, -0.5, pose.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, pose.Orientation.Radians(), 1e-9)
}

func TestConfigBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_interval: fast\n"), 0644))
	conf := *Default()
	assert.Error(t, conf.LoadFile(path))
}

func TestConfigNonFiniteInitialPose(t *testing.T) {
	e := &env.Env{
		Config: &env.Config{
			Info: l1.ControllerInfo{Ref: l1.ControllerRef{Type: "skibot", ID: "test"}},
		},
		Registrar: &comm.RegistrarMux{},
	}
	conf := *Default()
	conf.InitialPose = Pose{X: math.Inf(1)}
	_, err := conf.NewController(e)
	assert.Error(t, err)
}
