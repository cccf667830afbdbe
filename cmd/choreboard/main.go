// Package main is the single-binary entrypoint for ChoreBoard.
package main

import "github.com/choreboard/choreboard/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
