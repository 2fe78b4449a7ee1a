// cubesim - CLI for tracking Rubik's cube state through move sequences.
package main

import (
	"github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver/internal/cli"
)

func main() {
	cli.Execute()
}
