// Package main provides lolstats, a command-line companion for the guessing
// game: it records and shows game statistics from the same save storage the
// desktop build uses, and can play the confetti effect in a terminal.
//
// Usage:
//
//	lolstats record champion --won --attempts 3
//	lolstats show [game-type]
//	lolstats confetti [--sound] [--fps 60]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
