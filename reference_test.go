package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceModel_Partition(t *testing.T) {
	assert.Len(t, EdgeSlots(), 12)
	assert.Len(t, CornerSlots(), 8)
	assert.Len(t, EdgePieces(), 12)
	assert.Len(t, CornerPieces(), 8)

	assert.Equal(t,
		[]Piece{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25},
		EdgePieces())
	assert.Equal(t,
		[]Piece{0, 2, 6, 8, 18, 20, 24, 26},
		CornerPieces())

	centers := 0
	for p := Piece(0); p < 27; p++ {
		if p.Kind() == KindCenter {
			centers++
		}
	}
	assert.Equal(t, 7, centers, "six face centers plus the core")
	assert.Equal(t, KindCenter, Piece(13).Kind())
	assert.Equal(t, KindCenter, Slot{1, 1, 1}.Kind())
}

func TestSolvedSlotOf_RowMajor(t *testing.T) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				s, err := SolvedSlotOf(Piece(i*9 + j*3 + k))
				require.NoError(t, err)
				assert.Equal(t, Slot{i, j, k}, s)

				p, err := SolvedPieceAt(Slot{i, j, k})
				require.NoError(t, err)
				assert.Equal(t, Piece(i*9+j*3+k), p)
			}
		}
	}
}

func TestSolvedSlotOf_Unknown(t *testing.T) {
	_, err := SolvedSlotOf(-1)
	assert.ErrorIs(t, err, ErrUnknownPiece)
	_, err = SolvedSlotOf(27)
	assert.ErrorIs(t, err, ErrUnknownPiece)
	_, err = SolvedPieceAt(Slot{3, 0, 0})
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestSolvedCornerOrientations(t *testing.T) {
	tests := map[Slot]string{
		{0, 0, 0}: "xyZ",
		{0, 0, 2}: "XyZ",
		{0, 2, 0}: "xyz",
		{2, 0, 0}: "xYZ",
		{2, 2, 2}: "XYz",
	}
	for s, want := range tests {
		o, err := SolvedCornerOrientationAt(s)
		require.NoError(t, err)
		assert.Equal(t, want, o.String(), "slot %s", s)
	}

	_, err := SolvedCornerOrientationAt(Slot{0, 0, 1})
	assert.ErrorIs(t, err, ErrUnknownSlot, "edge slot has no corner label")
}
