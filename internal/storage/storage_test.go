package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cubesim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var version int
	require.NoError(t, db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("scramble practice")
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "session id must be a uuid")

	s, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, id, s.SessionID)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "scramble practice", *s.Notes)
	assert.Nil(t, s.EndedAt)

	require.NoError(t, sessions.End(id))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	assert.NotNil(t, s.EndedAt)

	last, err := sessions.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, id, last.SessionID)
}

func TestSessionGet_Missing(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	s, err := sessions.Get(uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.Error(t, sessions.End(uuid.New().String()))
}

func TestMoveLog_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("")
	require.NoError(t, err)

	seq, err := cubesim.Tokenize("R U2 r N b")
	require.NoError(t, err)
	require.NoError(t, moves.AppendBatch(id, seq))
	require.NoError(t, moves.AppendBatch(id, []cubesim.Move{cubesim.F2}))

	count, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 6)
	for i, rec := range records {
		assert.Equal(t, i, rec.MoveIndex)
	}

	got, err := ToMoves(records)
	require.NoError(t, err)
	assert.Equal(t, append(seq, cubesim.F2), got)
}

func TestSessionDelete_Cascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("")
	require.NoError(t, err)
	require.NoError(t, moves.AppendBatch(id, cubesim.SexyMove))

	require.NoError(t, sessions.Delete(id))

	count, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, count)
}
