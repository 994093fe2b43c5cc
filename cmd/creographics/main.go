// Package main provides the creographics command: an interactive 2D scene
// editor window plus headless rendering and configuration tools.
package main

import (
	"fmt"
	"os"
)

// Version is the current version of creographics.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
