package main

import (
	"os"

	"github.com/amirkhaki/gofordummies/pkg/lessons"
)

// main prints the banner and every lesson, in order, to stdout. The
// dummies command in cmd/dummies offers lesson selection, tracing and
// source listings on top of this.
func main() {
	lessons.RunAll(os.Stdout)
}
