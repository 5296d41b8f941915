// SPDX-License-Identifier: EPL-2.0

// Command dualstereo mixes two audio files into one stereo signal, the
// first panned hard left and the second hard right.
//
// Usage:
//
//	dualstereo [flags] <command> [args]
//
// Commands:
//
//	render   - render LEFT and RIGHT to DualStereo_Mix.wav
//	play     - play LEFT and RIGHT live, controlled from stdin
//	version  - show version information
package main

import (
	"fmt"
	"os"

	"github.com/ik5/dualstereo/cmd/dualstereo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
