package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"time"

	fx "github.com/robotalks/skibot.go/pkg/framework"
	"github.com/robotalks/skibot.go/pkg/l1"
	env "github.com/robotalks/skibot.go/pkg/l1/env/controller"
	bot "github.com/robotalks/skibot.go/pkg/sim/bots/skibot"
	"github.com/robotalks/skibot.go/pkg/sim/visualization/see"
)

const (
	imageSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-150 -150 300 300">
		<g>
			<circle cx="0" cy="0" r="120" fill="none" stroke="black" stroke-width="8" />
			<circle cx="0" cy="0" r="40" />
			<path d="M 50 -60 L 130 0 L 50 60 Z" />
		</g>
	</svg>`
	arrowSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-150 -150 300 300">
		<g fill="none" stroke="green" stroke-width="12">
			<line x1="-100" y1="0" x2="80" y2="0" />
			<path d="M 40 -40 L 100 0 L 40 40" />
		</g>
	</svg>`
	dotSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-150 -150 300 300">
		<circle cx="0" cy="0" r="50" fill="green" opacity="0.6" />
	</svg>`
)

func init() {
	env.SetControllerType("skibot", l1.ControllerMeta{Description: "Simulation: skibot"})
	env.SetupFlags()
	see.SetupFlags()
	bot.SetupFlags()
}

func main() {
	flag.Parse()

	env := env.NewConfig().MustNewEnv()
	conf := bot.NewConfig()
	ctl := conf.MustNewController(env)
	vis := see.NewConfig().NewAdapter()
	vis.Mapper = see.MapObjectFunc(func(obj see.VisibleObject) []see.Object {
		src := imageSVG
		switch obj.(type) {
		case *bot.TargetPoseMarker:
			src = arrowSVG
		case *bot.TargetPointMarker:
			src = dotSVG
		}
		return []see.Object{
			see.ObjectFrom("image", obj).With("src", "data:image/svg+xml;utf8,"+src),
		}
	})
	vis.Subscribe(ctl)

	loop := fx.NewLoop()
	loop.Interval = time.Duration(conf.TickInterval)
	loop.Add(env, ctl, vis).
		RunOrFail()
}
