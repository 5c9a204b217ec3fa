// ceilgrid — ceiling panel layout calculator
//
// Computes how to subdivide a rectangular ceiling into a grid of equal
// panels subject to perimeter and inter-panel gaps, scores candidate
// grids, and reports the best layout plus ranked alternates.
//
// Build:
//
//	go build -o ceilgrid ./cmd/ceilgrid
package main

import (
	"os"

	"github.com/mkoppen/ceilgrid/internal/cli"
)

// Injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
