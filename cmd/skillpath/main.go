// Command skillpath runs the skill-path solvers over a catalogue and prints
// their results as JSON.
//
//	skillpath all --config run.toml --log dev
//	skillpath optimize --catalogue skills.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "skillpath:", err)
		os.Exit(1)
	}
}
