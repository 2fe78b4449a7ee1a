package cubesim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"r", RPrime},
		{"R2", R2},
		{"U", U},
		{"u", UPrime},
		{"U2", U2},
		{"F", F},
		{"b", BPrime},
		{"D2", D2},
		{"L", L},
		{"N", NoOp},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoError(t, err, "ParseMove(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseMove(%q)", tt.in)
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "2", "R2x", "n", "l2", "RU"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidMoveToken, "ParseMove(%q)", in)
	}
}

// Middle-slice generators are not part of the alphabet: slice turns
// would move center pieces, which stay fixed in this model.
func TestParseMove_NoSliceTokens(t *testing.T) {
	for _, in := range []string{"M", "m", "M2", "E", "e", "E2", "S", "s", "S2"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidMoveToken, "ParseMove(%q)", in)
	}
	for _, m := range Alphabet() {
		switch m.Face {
		case FaceU, FaceD, FaceL, FaceR, FaceF, FaceB, FaceN:
		default:
			t.Errorf("alphabet contains unexpected face %q", m.Face)
		}
	}
}

func TestNotation_RoundTrip(t *testing.T) {
	for _, m := range Alphabet() {
		got, err := ParseMove(m.Notation())
		require.NoError(t, err, "token %q", m.Notation())
		assert.Equal(t, m, got)
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())
	assert.Equal(t, NoOp, NoOp.Inverse())
}

func TestTokenize_Greedy(t *testing.T) {
	moves, err := Tokenize("U2")
	require.NoError(t, err)
	assert.Equal(t, []Move{U2}, moves)

	// Run together and spaced forms tokenize the same.
	a, err := Tokenize("RUru")
	require.NoError(t, err)
	b, err := Tokenize("R U r u")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []Move{R, U, RPrime, UPrime}, a)
}

func TestTokenize_LowerHalfTurnSplits(t *testing.T) {
	// "r2" is not a token: it parses as r followed by an invalid "2".
	moves, err := Tokenize("r2")
	assert.ErrorIs(t, err, ErrInvalidMoveToken)
	assert.Equal(t, []Move{RPrime}, moves)
}

func TestTokenize_ErrorIndex(t *testing.T) {
	moves, err := Tokenize("RU xD")
	require.Error(t, err)

	var tokenErr *InvalidMoveTokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Equal(t, 3, tokenErr.Index)
	assert.Equal(t, "RU xD", tokenErr.Input)
	assert.Equal(t, []Move{R, U}, moves)
}

func TestTokenize_NoOp(t *testing.T) {
	moves, err := Tokenize("N R N")
	require.NoError(t, err)
	assert.Equal(t, []Move{NoOp, R, NoOp}, moves)
}

func TestFormatMoves_RoundTrip(t *testing.T) {
	seq := []Move{R, U, RPrime, U2, NoOp, BPrime}
	got, err := Tokenize(FormatMoves(seq))
	require.NoError(t, err)
	assert.Equal(t, seq, got)
	assert.Equal(t, "R U r U2 N b", FormatMoves(seq))
}

func TestAlphabet(t *testing.T) {
	moves := Alphabet()
	assert.Len(t, moves, 19)

	seen := make(map[string]bool, len(moves))
	for _, m := range moves {
		seen[m.Notation()] = true
	}
	assert.Len(t, seen, 19, "tokens must be distinct")
	assert.True(t, seen["N"])
}
