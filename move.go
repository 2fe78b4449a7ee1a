package cubesim

import "strings"

// Face selects the layer a move turns.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceN Face = "N" // no-op pseudo-face
)

// faces lists the six real faces in the order the move alphabet is
// enumerated.
var faces = []Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	None   Turn = 0  // no rotation (the no-op token)
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is a single face turn in the half-turn metric, or the explicit
// no-op {FaceN, None}.
type Move struct {
	Face Face
	Turn Turn
}

// NoOp is the explicit do-nothing move. It is a valid token and is
// recorded in move history like any other move.
var NoOp = Move{Face: FaceN, Turn: None}

// Notation returns the move's token: the face letter for a clockwise
// quarter turn, the lower-case letter for counter-clockwise, the face
// letter plus "2" for a half turn, and "N" for the no-op.
func (m Move) Notation() string {
	if m.Face == FaceN || m.Turn == None {
		return string(FaceN)
	}
	switch m.Turn {
	case CCW:
		return strings.ToLower(string(m.Face))
	case Double:
		return string(m.Face) + "2"
	}
	return string(m.Face)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move undoing this one. Half turns and the no-op
// are their own inverses.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// rotation maps the move onto the layer-turn primitive of grid.go. The
// no-op has no rotation.
func (m Move) rotation() (rotation, bool) {
	if m.Turn == None {
		return rotation{}, false
	}
	var r rotation
	switch m.Face {
	case FaceF:
		r = rotation{perspective: 0, layer: 0, turns: -1}
	case FaceB:
		r = rotation{perspective: 0, layer: 2, turns: 1}
	case FaceU:
		r = rotation{perspective: 1, layer: 0, turns: -1}
	case FaceD:
		r = rotation{perspective: 1, layer: 2, turns: 1}
	case FaceL:
		r = rotation{perspective: 2, layer: 0, turns: -1}
	case FaceR:
		r = rotation{perspective: 2, layer: 2, turns: 1}
	default:
		return rotation{}, false
	}
	r.turns *= int(m.Turn)
	return r, true
}

// axis returns the cube axis the move family rotates about. Corner
// facelets on this axis keep their facing through the move.
func (m Move) axis() (Axis, bool) {
	switch m.Face {
	case FaceL, FaceR:
		return AxisX, true
	case FaceF, FaceB:
		return AxisY, true
	case FaceU, FaceD:
		return AxisZ, true
	}
	return 0, false
}

// Alphabet returns the 19 valid moves: three turns per face plus the
// no-op.
func Alphabet() []Move {
	moves := make([]Move, 0, len(faces)*3+1)
	for _, f := range faces {
		moves = append(moves, Move{Face: f, Turn: CW}, Move{Face: f, Turn: CCW}, Move{Face: f, Turn: Double})
	}
	return append(moves, NoOp)
}

func faceKnown(f Face) bool {
	switch f {
	case FaceU, FaceD, FaceL, FaceR, FaceF, FaceB:
		return true
	}
	return false
}

// nextToken scans one move token at byte offset i of s, longest match
// first, and returns the move and the offset past it.
func nextToken(s string, i int) (Move, int, bool) {
	c := s[i]
	if c == 'N' {
		return NoOp, i + 1, true
	}
	if f := Face(c); faceKnown(f) {
		if i+1 < len(s) && s[i+1] == '2' {
			return Move{Face: f, Turn: Double}, i + 2, true
		}
		return Move{Face: f, Turn: CW}, i + 1, true
	}
	if c >= 'a' && c <= 'z' {
		if f := Face(c - ('a' - 'A')); faceKnown(f) {
			return Move{Face: f, Turn: CCW}, i + 1, true
		}
	}
	return Move{}, i, false
}

// ParseMove parses a single move token. Examples: R, r, R2, N.
func ParseMove(s string) (Move, error) {
	if s == "" {
		return Move{}, &InvalidMoveTokenError{Input: s, Index: 0}
	}
	m, n, ok := nextToken(s, 0)
	if !ok {
		return Move{}, &InvalidMoveTokenError{Input: s, Index: 0}
	}
	if n != len(s) {
		return Move{}, &InvalidMoveTokenError{Input: s, Index: n}
	}
	return m, nil
}

// Tokenize splits a move string into moves. Tokens may be run together
// or separated by spaces; matching is greedy, so "U2" is always one
// half turn. On failure it returns the moves parsed so far along with
// an InvalidMoveTokenError carrying the byte index of the offending
// character.
func Tokenize(s string) ([]Move, error) {
	var moves []Move
	for i := 0; i < len(s); {
		if s[i] == ' ' {
			i++
			continue
		}
		m, next, ok := nextToken(s, i)
		if !ok {
			return moves, &InvalidMoveTokenError{Input: s, Index: i}
		}
		moves = append(moves, m)
		i = next
	}
	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation
// string that Tokenize accepts back.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
