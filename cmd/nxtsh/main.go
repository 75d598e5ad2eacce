package main

import (
	"github.com/robokits/nxt.go/pkg/cli/sh"

	_ "github.com/robokits/nxt.go/pkg/cli/cmds/brick"
)

//go-build: CGO_ENABLED=0

func main() {
	sh.Main()
}
