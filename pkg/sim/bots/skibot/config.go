package skibot

import (
	"flag"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	env "github.com/robotalks/skibot.go/pkg/l1/env/controller"
	"github.com/robotalks/skibot.go/pkg/sim"
	physics "github.com/robotalks/skibot.go/pkg/sim/physics/skibot"
)

// Config defines the configuration for the bot.
// Lengths are in meters, angles in radians.
type Config struct {
	Size          float64  `yaml:"size"`
	ArenaW        float64  `yaml:"arena_w"`
	ArenaH        float64  `yaml:"arena_h"`
	TickInterval  Duration `yaml:"tick_interval"`
	PubInterval   Duration `yaml:"pub_interval"`
	ThrustTimeout Duration `yaml:"thrust_timeout"`
	InitialPose   Pose     `yaml:"initial_pose"`
}

// Pose is the config form of a 2D pose.
type Pose struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
}

// Duration parses Go duration strings (e.g. "600ms") in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(val)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Defaults
const (
	DefaultSize   float64 = 0.5
	DefaultArenaW float64 = 4.0
	DefaultArenaH float64 = 4.0

	// DefaultTickInterval refreshes the physics at 100Hz while
	// DefaultPubInterval reports poses at 35Hz, so observers see
	// smooth motion without saturating the bus.
	DefaultTickInterval = 10 * time.Millisecond
	DefaultPubInterval  = time.Second / 35
)

var defaultConfig = Config{
	Size:          DefaultSize,
	ArenaW:        DefaultArenaW,
	ArenaH:        DefaultArenaH,
	TickInterval:  Duration(DefaultTickInterval),
	PubInterval:   Duration(DefaultPubInterval),
	ThrustTimeout: Duration(physics.DefaultThrustTimeout),
}

var configFile string

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "bot-config", configFile, "YAML file with bot configuration.")
	flag.Float64Var(&defaultConfig.Size, "bot-size", defaultConfig.Size, "Size (m) of the bot, it's square.")
	flag.Float64Var(&defaultConfig.ArenaW, "arena-w", defaultConfig.ArenaW, "Width (m) of the arena, 0 disables bounds.")
	flag.Float64Var(&defaultConfig.ArenaH, "arena-h", defaultConfig.ArenaH, "Height (m) of the arena, 0 disables bounds.")
	flag.DurationVar((*time.Duration)(&defaultConfig.TickInterval), "tick", time.Duration(defaultConfig.TickInterval), "Physics tick interval.")
	flag.DurationVar((*time.Duration)(&defaultConfig.PubInterval), "pub", time.Duration(defaultConfig.PubInterval), "Pose publishing interval.")
	flag.DurationVar((*time.Duration)(&defaultConfig.ThrustTimeout), "thrust-timeout", time.Duration(defaultConfig.ThrustTimeout), "Staleness timeout for thrust commands.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config from defaults, overlaid with the
// -bot-config file when given.
func NewConfig() *Config {
	conf := defaultConfig
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			log.Fatalf("load %s: %v", configFile, err)
		}
	}
	return &conf
}

// LoadFile overlays configuration from a YAML file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// NewController creates the Controller.
func (c *Config) NewController(e *env.Env) (*Controller, error) {
	ctl := NewController(e)
	ctl.Outline.CX, ctl.Outline.CY = c.Size, c.Size
	ctl.Outline.X, ctl.Outline.Y = -ctl.Outline.CX/2, -ctl.Outline.CY/2
	if c.ArenaW > 0 && c.ArenaH > 0 {
		ctl.Arena = sim.Rect{
			Pos2D:  sim.Pos2D{X: -c.ArenaW / 2, Y: -c.ArenaH / 2},
			Size2D: sim.Size2D{CX: c.ArenaW, CY: c.ArenaH},
		}
	}
	ctl.PubInterval = time.Duration(c.PubInterval)
	ctl.Engine = physics.New(time.Duration(c.ThrustTimeout))
	if p := c.InitialPose; p != (Pose{}) {
		pose := sim.Pose2D{
			Pos2D:       sim.Pos2D{X: p.X, Y: p.Y},
			Orientation: sim.AngleFromRadians(p.Theta),
		}
		if err := ctl.Engine.Teleport(pose); err != nil {
			return nil, err
		}
	}
	return ctl, nil
}

// MustNewController creates the Controller and fails on error.
func (c *Config) MustNewController(e *env.Env) *Controller {
	ctl, err := c.NewController(e)
	if err != nil {
		log.Fatalln(err)
	}
	return ctl
}
