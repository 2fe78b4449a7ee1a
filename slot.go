package cubesim

import "fmt"

// Slot identifies one of the 27 positions of the cube grid. I runs from
// the front layer (0) to the back layer (2), J from the top row (0) to
// the bottom row (2), and K from the left column (0) to the right
// column (2). Slot{1, 1, 1} is the hidden core.
type Slot struct {
	I, J, K int
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.I, s.J, s.K)
}

// valid reports whether every coordinate is on the grid.
func (s Slot) valid() bool {
	return s.I >= 0 && s.I < 3 && s.J >= 0 && s.J < 3 && s.K >= 0 && s.K < 3
}

// Kind returns the slot's classification in the solved reference model.
// The classification is a property of the position, not of whichever
// piece currently occupies it.
func (s Slot) Kind() PieceKind {
	return slotKinds.at(s)
}
