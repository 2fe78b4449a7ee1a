package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
)

// printState writes a plain-text summary of the tracker state: moves
// applied, displaced pieces, bad edges and twisted corners.
func printState(cmd *cobra.Command, tracker *cubesim.Tracker) {
	out := cmd.OutOrStdout()

	history := tracker.History()
	fmt.Fprintf(out, "moves applied: %d", len(history))
	if len(history) > 0 {
		fmt.Fprintf(out, " (%s)", cubesim.FormatMoves(history))
	}
	fmt.Fprintln(out)

	if tracker.IsSolved() {
		fmt.Fprintln(out, "cube is solved")
		return
	}

	displaced := 0
	for p := cubesim.Piece(0); p < 27; p++ {
		slot, err := tracker.SlotOf(p)
		if err != nil {
			continue
		}
		home, err := cubesim.SolvedSlotOf(p)
		if err != nil || slot == home {
			continue
		}
		displaced++
		fmt.Fprintf(out, "  piece %2d: %s (home %s)\n", p, slot, home)
	}
	fmt.Fprintf(out, "displaced pieces: %d\n", displaced)

	bad := tracker.BadEdgeSlots()
	fmt.Fprintf(out, "bad edges: %d", len(bad))
	for _, s := range bad {
		fmt.Fprintf(out, " %s", s)
	}
	fmt.Fprintln(out)

	twisted := 0
	for _, s := range cubesim.CornerSlots() {
		got, err := tracker.CornerOrientationAt(s)
		if err != nil {
			continue
		}
		want, err := cubesim.SolvedCornerOrientationAt(s)
		if err != nil || got == want {
			continue
		}
		twisted++
		fmt.Fprintf(out, "  corner %s: %s (solved %s)\n", s, got, want)
	}
	fmt.Fprintf(out, "twisted corners: %d\n", twisted)
}
