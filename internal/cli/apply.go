package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
	"github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver/internal/storage"
)

var (
	applyRecord bool
	applyNotes  string
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube and report the result",
	Long: `Apply a move sequence (e.g. "R U r u" or "RUru") to a solved cube and
print the resulting state: displaced pieces, bad edges and twisted
corners. With --record the sequence is stored as a new session.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyRecord, "record", false, "store the sequence as a new session")
	applyCmd.Flags().StringVar(&applyNotes, "notes", "", "notes attached to the recorded session")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}
	tracker, err := cubesim.NewTracker(tables)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if err := tracker.ApplyString(input); err != nil {
		// Earlier tokens were applied; report how far we got.
		fmt.Fprintf(cmd.OutOrStdout(), "applied %d moves before error\n", len(tracker.History()))
		return err
	}

	printState(cmd, tracker)

	if applyRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		sessions := storage.NewSessionRepository(db)
		id, err := sessions.Create(applyNotes)
		if err != nil {
			return err
		}
		if err := storage.NewMoveRepository(db).AppendBatch(id, tracker.History()); err != nil {
			return err
		}
		if err := sessions.End(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "recorded session %s\n", id)
	}

	return nil
}
