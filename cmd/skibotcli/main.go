package main

import (
	"github.com/robotalks/skibot.go/pkg/cli/sh"
	env "github.com/robotalks/skibot.go/pkg/l1/env/connector"

	_ "github.com/robotalks/skibot.go/pkg/cli/cmds/skibot"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
