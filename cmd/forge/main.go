// Package main is the single-binary entrypoint for IdeaForge.
package main

import "github.com/ideaforge/forge/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
