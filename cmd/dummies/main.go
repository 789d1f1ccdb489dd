package main

import (
	"github.com/tliron/kutil/util"

	"github.com/amirkhaki/gofordummies/cmd/dummies/cmd"
)

func main() {
	// util.Exit runs the exit handlers registered by the logging backend.
	if err := cmd.Execute(); err != nil {
		util.Exit(1)
	}
	util.Exit(0)
}
