package main

import "github.com/gqlgate/gqlgate-cli/internal/interfaces/cli"

// Overridden at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Execute(version, commit, date)
}
