package cubesim

import "fmt"

// Tracker owns one mutable cube state and applies move sequences to it.
// It is not safe for concurrent use. The lookup tables it borrows are
// read-only and may be shared between trackers.
type Tracker struct {
	tables  *Tables
	state   state
	history []Move
}

// NewTracker creates a tracker at the solved state. The caller supplies
// the precomputed lookup tables; tables that fail validation are a
// fatal setup error, not something to limp along without.
func NewTracker(tables *Tables) (*Tracker, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &Tracker{
		tables: tables,
		state:  solvedState(),
	}, nil
}

// Reset returns the tracker to the solved state and clears the history.
func (t *Tracker) Reset() {
	t.state = solvedState()
	t.history = nil
}

// apply performs one move as an atomic unit: orientation resolution
// against the pre-move state, then the permutation.
func (t *Tracker) apply(m Move) {
	t.state.resolveOrientations(m, t.tables)
	t.state.permute(m)
	t.history = append(t.history, m)
}

// Apply applies the moves in order. The whole batch is checked against
// the move alphabet first; on an unknown move nothing is applied.
func (t *Tracker) Apply(moves ...Move) error {
	for i, m := range moves {
		if _, ok := t.tables.Movement[m]; !ok {
			return fmt.Errorf("move %d (%s): %w", i, m, ErrInvalidMoveToken)
		}
	}
	for _, m := range moves {
		t.apply(m)
	}
	return nil
}

// ApplyString tokenizes s greedily and applies each token as it is
// recognized. On an invalid token it stops and returns an
// InvalidMoveTokenError carrying the byte index; tokens applied before
// the bad one stay applied.
func (t *Tracker) ApplyString(s string) error {
	for i := 0; i < len(s); {
		if s[i] == ' ' {
			i++
			continue
		}
		m, next, ok := nextToken(s, i)
		if !ok {
			return &InvalidMoveTokenError{Input: s, Index: i}
		}
		t.apply(m)
		i = next
	}
	return nil
}

// PieceAt returns the piece currently occupying the slot.
func (t *Tracker) PieceAt(s Slot) (Piece, error) {
	if !s.valid() {
		return 0, fmt.Errorf("slot %s: %w", s, ErrUnknownSlot)
	}
	return t.state.pieces.at(s), nil
}

// SlotOf returns the slot the piece currently occupies.
func (t *Tracker) SlotOf(p Piece) (Slot, error) {
	if p < 0 || int(p) >= len(homes) {
		return Slot{}, fmt.Errorf("piece %d: %w", p, ErrUnknownPiece)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if t.state.pieces[i][j][k] == p {
					return Slot{i, j, k}, nil
				}
			}
		}
	}
	// Unreachable while moves only permute the piece grid.
	return Slot{}, fmt.Errorf("piece %d not on grid: %w", p, ErrUnknownPiece)
}

// EdgeOrientationAt returns the flag of an edge slot.
func (t *Tracker) EdgeOrientationAt(s Slot) (EdgeOrientation, error) {
	if !s.valid() || s.Kind() != KindEdge {
		return 0, fmt.Errorf("slot %s is not an edge slot: %w", s, ErrUnknownSlot)
	}
	return t.state.edges.at(s), nil
}

// CornerOrientationAt returns the label of a corner slot.
func (t *Tracker) CornerOrientationAt(s Slot) (CornerOrientation, error) {
	if !s.valid() || s.Kind() != KindCorner {
		return CornerOrientation{}, fmt.Errorf("slot %s is not a corner slot: %w", s, ErrUnknownSlot)
	}
	return t.state.corners.at(s), nil
}

// OrientationOf returns the boundary encoding of the orientation label
// at the slot the piece currently occupies: "g" or "b" for an edge
// piece, a three-letter axis string for a corner piece. Centers carry
// no tracked orientation.
func (t *Tracker) OrientationOf(p Piece) (string, error) {
	s, err := t.SlotOf(p)
	if err != nil {
		return "", err
	}
	switch p.Kind() {
	case KindEdge:
		return t.state.edges.at(s).String(), nil
	case KindCorner:
		return t.state.corners.at(s).String(), nil
	}
	return "", fmt.Errorf("piece %d is a center with no tracked orientation: %w", p, ErrUnknownPiece)
}

// BadEdgeSlots returns the edge slots whose flag is currently EdgeBad,
// in lexicographic order.
func (t *Tracker) BadEdgeSlots() []Slot {
	var bad []Slot
	for _, s := range edgeSlots {
		if t.state.edges.at(s) == EdgeBad {
			bad = append(bad, s)
		}
	}
	return bad
}

// History returns a copy of every move applied since the last reset,
// including explicit no-ops.
func (t *Tracker) History() []Move {
	return append([]Move(nil), t.history...)
}

// IsSolved reports whether all pieces are home and every orientation
// label matches the solved reference.
func (t *Tracker) IsSolved() bool {
	return t.state == solvedState()
}
