package tableio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
)

func TestDefault(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)
	require.NoError(t, tables.Validate())

	assert.Len(t, tables.EdgeDistance, 12*12)
	assert.Len(t, tables.CornerDistance, 8*8)
	assert.Len(t, tables.Movement, 19)
}

func TestDefault_SpotValues(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	edgeHome := cubesim.Slot{I: 0, J: 0, K: 1}
	assert.Equal(t, 0, tables.EdgeDistance[cubesim.SlotPair{Home: edgeHome, Pos: edgeHome}])
	assert.Equal(t, 1, tables.EdgeDistance[cubesim.SlotPair{Home: edgeHome, Pos: cubesim.Slot{I: 0, J: 1, K: 0}}])
	assert.Equal(t, 2, tables.EdgeDistance[cubesim.SlotPair{Home: edgeHome, Pos: cubesim.Slot{I: 2, J: 2, K: 1}}])

	cornerHome := cubesim.Slot{I: 0, J: 0, K: 0}
	assert.Equal(t, 1, tables.CornerDistance[cubesim.SlotPair{Home: cornerHome, Pos: cubesim.Slot{I: 0, J: 0, K: 2}}])
	assert.Equal(t, 2, tables.CornerDistance[cubesim.SlotPair{Home: cornerHome, Pos: cubesim.Slot{I: 2, J: 2, K: 2}}])

	mvU := tables.Movement[cubesim.U]
	assert.Equal(t, cubesim.Slot{I: 2, J: 0, K: 0}, mvU[cubesim.Slot{I: 0, J: 0, K: 0}])
	assert.Equal(t, cubesim.Slot{I: 0, J: 0, K: 0}, mvU[cubesim.Slot{I: 0, J: 0, K: 2}])
	assert.Equal(t, cubesim.Slot{I: 2, J: 0, K: 2}, tables.Movement[cubesim.R][cubesim.Slot{I: 0, J: 0, K: 2}])
	assert.Equal(t, cubesim.Slot{I: 0, J: 2, K: 2}, tables.Movement[cubesim.F2][cubesim.Slot{I: 0, J: 0, K: 0}])
}

func TestDefault_NoOpIsIdentity(t *testing.T) {
	tables, err := Default()
	require.NoError(t, err)

	for from, to := range tables.Movement[cubesim.NoOp] {
		assert.Equal(t, from, to)
	}
}

func TestLoad_FromDirectory(t *testing.T) {
	// The embedded data doubles as an on-disk fixture.
	tables, err := Load("data")
	require.NoError(t, err)
	assert.Len(t, tables.Movement, 19)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, cubesim.ErrMissingLookupTable)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{edgeDistanceFile, cornerDistanceFile, movementFile} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{"), 0o644))
	}
	_, err := Load(dir)
	assert.ErrorIs(t, err, cubesim.ErrMissingLookupTable)
}
