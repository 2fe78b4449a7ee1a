package cubesim

// state is one cube configuration: the piece occupying every slot plus
// the orientation label of every edge and corner slot. Entries of the
// edge and corner grids at slots of another kind are dead weight that
// rotates along but is never read.
type state struct {
	pieces  grid[Piece]
	edges   grid[EdgeOrientation]
	corners grid[CornerOrientation]
}

// solvedState is the reference configuration. The zero edge grid is
// already all EdgeGood.
func solvedState() state {
	return state{pieces: solvedPieces, corners: solvedCorners}
}

// permute applies the move's layer turn to all three grids in lock
// step. One parameterized rotation serves every move family.
func (st *state) permute(m Move) {
	r, ok := m.rotation()
	if !ok {
		return
	}
	st.pieces = rotate(st.pieces, r)
	st.edges = rotate(st.edges, r)
	st.corners = rotate(st.corners, r)
}
