// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cubesim "github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver"
	"github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver/internal/storage"
	"github.com/ngrjchk/Rubiks-Cube-Simulator-and-Solver/internal/tableio"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	tablesDir string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "Rubik's cube state tracker",
	Long: `cubesim tracks a 3x3x3 Rubik's cube through move sequences in standard
face-turn notation, reporting piece positions and edge/corner orientation
after each sequence. Sequences can be recorded as sessions and replayed
later.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path (default: ~/.cubesim/cubesim.db)")
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables", "", "directory with lookup table JSON files (default: embedded tables)")
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("tables", rootCmd.PersistentFlags().Lookup("tables"))
}

// initConfig layers configuration: flags override environment variables,
// which override ~/.cubesim/config.yaml. A missing config file is fine.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".cubesim"))
	}
	viper.SetEnvPrefix("CUBESIM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
}

// loadTables returns the lookup tables from the configured directory, or
// the tables embedded in the binary when none is configured.
func loadTables() (*cubesim.Tables, error) {
	if dir := viper.GetString("tables"); dir != "" {
		return tableio.Load(dir)
	}
	return tableio.Default()
}

// openDB opens the configured database, falling back to the default
// path under the user's home directory.
func openDB() (*storage.DB, error) {
	path := viper.GetString("db")
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return storage.Open(path)
}
