package cubesim

import "fmt"

// SlotPair keys the distance tables: the solved home of a piece paired
// with a slot it might occupy.
type SlotPair struct {
	Home Slot
	Pos  Slot
}

// Tables bundles the precomputed lookup maps the orientation resolver
// and the permutation step consult. They are produced offline, loaded
// once at startup, and treated as read-only; a single Tables value may
// be shared by any number of trackers.
//
// EdgeDistance and CornerDistance give the minimum number of face turns
// moving a piece from its home to a slot, ignoring orientation. The
// edge table covers all home/position pairs of edge slots and the
// corner table all pairs of corner slots. Movement maps every move of
// the alphabet to the destination slot of each of the 27 slots.
type Tables struct {
	EdgeDistance   map[SlotPair]int
	CornerDistance map[SlotPair]int
	Movement       map[Move]map[Slot]Slot
}

// Validate checks that all three tables are present and that the
// movement table covers the whole move alphabet. Trackers refuse to
// start on tables that fail validation.
func (t *Tables) Validate() error {
	if t == nil {
		return fmt.Errorf("nil tables: %w", ErrMissingLookupTable)
	}
	if want := len(edgeSlots) * len(edgeSlots); len(t.EdgeDistance) != want {
		return fmt.Errorf("edge distance table has %d entries, want %d: %w",
			len(t.EdgeDistance), want, ErrMissingLookupTable)
	}
	if want := len(cornerSlots) * len(cornerSlots); len(t.CornerDistance) != want {
		return fmt.Errorf("corner distance table has %d entries, want %d: %w",
			len(t.CornerDistance), want, ErrMissingLookupTable)
	}
	for _, m := range Alphabet() {
		mv, ok := t.Movement[m]
		if !ok {
			return fmt.Errorf("movement table has no entry for %s: %w", m, ErrMissingLookupTable)
		}
		if len(mv) != 27 {
			return fmt.Errorf("movement table for %s covers %d slots, want 27: %w",
				m, len(mv), ErrMissingLookupTable)
		}
	}
	return nil
}
