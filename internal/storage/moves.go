package storage

import (
	"database/sql"
	"fmt"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
)

// MoveRecord represents one applied move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// AppendBatch stores moves at the end of a session's log in a single
// transaction.
func (r *MoveRepository) AppendBatch(sessionID string, moves []cubesim.Move) error {
	startIndex, err := r.nextIndex(sessionID)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, notation)
				VALUES (?, ?, ?)
			`, sessionID, startIndex+i, move.Notation())
			if err != nil {
				return fmt.Errorf("failed to store move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in applied order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves stored for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// nextIndex returns the next move index for a session.
func (r *MoveRepository) nextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// ToMoves parses stored notations back into moves.
func ToMoves(records []MoveRecord) ([]cubesim.Move, error) {
	moves := make([]cubesim.Move, len(records))
	for i, rec := range records {
		m, err := cubesim.ParseMove(rec.Notation)
		if err != nil {
			return nil, fmt.Errorf("move %d (%q): %w", rec.MoveIndex, rec.Notation, err)
		}
		moves[i] = m
	}
	return moves, nil
}
