package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
	"github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id|last>",
	Short: "Re-apply a recorded session and report the final state",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)

	var session *storage.Session
	if args[0] == "last" {
		session, err = sessions.GetLast()
	} else {
		session, err = sessions.Get(args[0])
	}
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session %q not found", args[0])
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}

	tables, err := loadTables()
	if err != nil {
		return err
	}
	tracker, err := cubesim.NewTracker(tables)
	if err != nil {
		return err
	}
	if err := tracker.Apply(moves...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "session %s\n", session.SessionID)
	printState(cmd, tracker)
	return nil
}
