package cubesim

// resolveOrientations rewrites the orientation labels of the slots the
// move displaces. It must run against the pre-move state: both rules
// compare current occupancy with the movement table, then permute runs
// afterwards and carries the rewritten labels to their new slots.
func (st *state) resolveOrientations(m Move, t *Tables) {
	mv, ok := t.Movement[m]
	if !ok || m.Turn == None {
		return
	}
	st.resolveCorners(m, mv)
	st.resolveEdges(mv, t)
}

// resolveEdges flips the flag of every displaced edge slot whose
// occupying piece keeps its orientation-blind distance to home across
// the move. A distance-preserving step is the sideways case that takes
// the piece off a shortest path, which is what the flag records.
func (st *state) resolveEdges(mv map[Slot]Slot, t *Tables) {
	for _, s := range edgeSlots {
		dst := mv[s]
		if dst == s {
			continue
		}
		home := homes[st.pieces.at(s)]
		if t.EdgeDistance[SlotPair{home, s}] == t.EdgeDistance[SlotPair{home, dst}] {
			st.edges.set(s, st.edges.at(s).flipped())
		}
	}
}

// resolveCorners rewrites the label of every displaced corner slot. The
// facelet on the move's rotation axis keeps its facing. A half turn
// flips the sign of the other two facelets in place. A quarter turn
// reassigns the other two facelets from the destination slot's solved
// label: each takes the destination facing that is neither the fixed
// facing nor on its own current axis.
func (st *state) resolveCorners(m Move, mv map[Slot]Slot) {
	axis, ok := m.axis()
	if !ok {
		return
	}
	for _, s := range cornerSlots {
		dst := mv[s]
		if dst == s {
			continue
		}
		cur := st.corners.at(s)
		ref := cur.indexOf(axis)
		if m.Turn == Double {
			for i := range cur {
				if i != ref {
					cur[i] = cur[i].inverted()
				}
			}
		} else {
			dest := solvedCorners.at(dst)
			fixed := cur[ref]
			for i := range cur {
				if i == ref {
					continue
				}
				for _, cand := range dest {
					if cand != fixed && cand.Axis != cur[i].Axis {
						cur[i] = cand
						break
					}
				}
			}
		}
		st.corners.set(s, cur)
	}
}
