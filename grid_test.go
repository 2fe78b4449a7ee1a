package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnLayer_FourQuartersIsIdentity(t *testing.T) {
	f := [3][3]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
	got := f
	for n := 0; n < 4; n++ {
		got = turnLayer(got, 1)
	}
	assert.Equal(t, f, got)

	assert.Equal(t, f, turnLayer(turnLayer(f, 1), -1))
	assert.Equal(t, f, turnLayer(turnLayer(f, 2), 2))
	assert.Equal(t, turnLayer(turnLayer(f, 1), 1), turnLayer(f, 2))
}

func TestReindex_Inverse(t *testing.T) {
	for p := 1; p <= 2; p++ {
		assert.Equal(t, solvedPieces, reindex(reindex(solvedPieces, p, -1), p, 1), "perspective %d", p)
		assert.Equal(t, solvedPieces, reindex(reindex(solvedPieces, p, 1), p, -1), "perspective %d", p)
	}
}

func TestRotate_MovesExpectedSlots(t *testing.T) {
	tests := []struct {
		move Move
		from Slot
		to   Slot
	}{
		{U, Slot{0, 0, 0}, Slot{2, 0, 0}},
		{U, Slot{0, 0, 2}, Slot{0, 0, 0}},
		{R, Slot{0, 0, 2}, Slot{2, 0, 2}},
		{F2, Slot{0, 0, 0}, Slot{0, 2, 2}},
	}
	for _, tt := range tests {
		r, ok := tt.move.rotation()
		require.True(t, ok)
		g := rotate(solvedPieces, r)
		assert.Equal(t, solvedPieces.at(tt.from), g.at(tt.to),
			"%s should carry the piece at %s to %s", tt.move, tt.from, tt.to)
	}
}

func TestRotate_OnlyTargetLayerMoves(t *testing.T) {
	r, ok := U.rotation()
	require.True(t, ok)
	g := rotate(solvedPieces, r)
	for i := 0; i < 3; i++ {
		for j := 1; j < 3; j++ {
			for k := 0; k < 3; k++ {
				s := Slot{i, j, k}
				assert.Equal(t, solvedPieces.at(s), g.at(s), "slot %s is outside the turned layer", s)
			}
		}
	}
}

func TestRotate_NoOpHasNoRotation(t *testing.T) {
	_, ok := NoOp.rotation()
	assert.False(t, ok)
}
