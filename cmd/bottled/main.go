// Package main is the single-binary entrypoint for bottled.
// bottled keeps time-delayed messages for your future self — one binary,
// zero accounts, everything local.
package main

import "github.com/bottled-app/bottled/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
