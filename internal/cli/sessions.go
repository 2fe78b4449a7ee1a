package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver/internal/storage"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	RunE:  runSessions,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its move log",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "maximum number of sessions to list")
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no sessions recorded")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	for _, s := range sessions {
		count, err := moveRepo.Count(s.SessionID)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s  %s  %d moves", s.SessionID, s.StartedAt.Format(time.RFC3339), count)
		if s.Notes != nil {
			line += "  " + *s.Notes
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSessionRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted session %s\n", args[0])
	return nil
}
