package cubesim

import "fmt"

// Piece is the permanent identity of one physical sub-cube. Ids count
// the solved grid row-major: left to right, top to bottom, front to
// back, so piece id i*9+j*3+k starts life in Slot{i, j, k}.
type Piece int

// PieceKind classifies a piece, or the slot it starts in.
type PieceKind int

const (
	KindCenter PieceKind = iota
	KindEdge
	KindCorner
)

func (k PieceKind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	}
	return "center"
}

// Kind returns the piece's classification. Pieces outside 0..26 report
// KindCenter; callers that care use SolvedSlotOf to reject them first.
func (p Piece) Kind() PieceKind {
	if p < 0 || int(p) >= len(homes) {
		return KindCenter
	}
	return slotKinds.at(homes[p])
}

// solvedPieces is the solved-state occupant of every slot.
var solvedPieces = grid[Piece]{
	{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},
	{{9, 10, 11}, {12, 13, 14}, {15, 16, 17}},
	{{18, 19, 20}, {21, 22, 23}, {24, 25, 26}},
}

// edgeMarker flags edge slots in the solved marker grid. Corner slots
// carry a full three-facelet axis string, centers the letter of their
// outward normal, and the core a plain "C".
const edgeMarker = "g"

// solvedMarkers is the solved-state orientation label of every slot.
// The slot classification below is derived from the shape of these
// labels rather than written out a second time.
var solvedMarkers = [3][3][3]string{
	{
		{"xyZ", "g", "XyZ"},
		{"g", "y", "g"},
		{"xyz", "g", "Xyz"},
	},
	{
		{"g", "Z", "g"},
		{"x", "C", "X"},
		{"g", "z", "g"},
	},
	{
		{"xYZ", "g", "XYZ"},
		{"g", "Y", "g"},
		{"xYz", "g", "XYz"},
	},
}

var (
	edgeSlots     []Slot
	cornerSlots   []Slot
	edgePieces    []Piece
	cornerPieces  []Piece
	homes         [27]Slot
	slotKinds     grid[PieceKind]
	solvedCorners grid[CornerOrientation]
)

func init() {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				s := Slot{i, j, k}
				homes[solvedPieces.at(s)] = s
				marker := solvedMarkers[i][j][k]
				switch {
				case marker == edgeMarker:
					slotKinds.set(s, KindEdge)
					edgeSlots = append(edgeSlots, s)
					edgePieces = append(edgePieces, solvedPieces.at(s))
				case len(marker) == 3:
					o, err := ParseCornerOrientation(marker)
					if err != nil {
						panic(fmt.Sprintf("cubesim: bad solved marker at %s: %v", s, err))
					}
					slotKinds.set(s, KindCorner)
					solvedCorners.set(s, o)
					cornerSlots = append(cornerSlots, s)
					cornerPieces = append(cornerPieces, solvedPieces.at(s))
				default:
					slotKinds.set(s, KindCenter)
				}
			}
		}
	}
	// Row-major iteration leaves both slot lists lexicographically
	// sorted and both piece lists ascending.
}

// EdgeSlots returns the 12 edge slots in lexicographic order.
func EdgeSlots() []Slot {
	return append([]Slot(nil), edgeSlots...)
}

// CornerSlots returns the 8 corner slots in lexicographic order.
func CornerSlots() []Slot {
	return append([]Slot(nil), cornerSlots...)
}

// EdgePieces returns the 12 edge piece ids in ascending order.
func EdgePieces() []Piece {
	return append([]Piece(nil), edgePieces...)
}

// CornerPieces returns the 8 corner piece ids in ascending order.
func CornerPieces() []Piece {
	return append([]Piece(nil), cornerPieces...)
}

// SolvedSlotOf returns the slot the piece occupies in the solved state.
func SolvedSlotOf(p Piece) (Slot, error) {
	if p < 0 || int(p) >= len(homes) {
		return Slot{}, fmt.Errorf("piece %d: %w", p, ErrUnknownPiece)
	}
	return homes[p], nil
}

// SolvedPieceAt returns the piece occupying the slot in the solved state.
func SolvedPieceAt(s Slot) (Piece, error) {
	if !s.valid() {
		return 0, fmt.Errorf("slot %s: %w", s, ErrUnknownSlot)
	}
	return solvedPieces.at(s), nil
}

// SolvedCornerOrientationAt returns the solved-state label of a corner
// slot. It is the reference the orientation resolver rewrites labels
// from when pieces move between corner slots.
func SolvedCornerOrientationAt(s Slot) (CornerOrientation, error) {
	if !s.valid() || slotKinds.at(s) != KindCorner {
		return CornerOrientation{}, fmt.Errorf("slot %s is not a corner slot: %w", s, ErrUnknownSlot)
	}
	return solvedCorners.at(s), nil
}
