// Package cli wires the sqlite-archiver subcommands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archivist-tools/sqlite-archiver/internal/backup"
	"github.com/archivist-tools/sqlite-archiver/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sqlite-archiver",
	Short: "Backup lifecycle manager for SQLite database files",
	Long: `sqlite-archiver creates, verifies, lists, prunes, and restores
point-in-time copies of a local SQLite database file.

Snapshots are whole-file copies kept in a flat backup directory; the
directory listing itself is the catalog. The sqlite3 shell must be
available on PATH for hot copies and integrity checks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Any failure prints a message and exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func newLogger() logging.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logging.New(level, "console")
}

// newManager builds the backup manager for a database argument.
// backupDir falls back to <database dir>/backups.
func newManager(database, backupDir string) (*backup.Manager, error) {
	dbPath, err := filepath.Abs(database)
	if err != nil {
		return nil, err
	}

	if backupDir == "" {
		backupDir = filepath.Join(filepath.Dir(dbPath), "backups")
	}
	backupDir, err = filepath.Abs(backupDir)
	if err != nil {
		return nil, err
	}

	return backup.NewManager(backup.Config{
		DatabasePath: dbPath,
		BackupDir:    backupDir,
	}, nil, nil, newLogger())
}

// echoOptions prints effective options in verbose mode.
func echoOptions(pairs ...any) {
	if !verbose {
		return
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Printf("  %s: %v\n", pairs[i], pairs[i+1])
	}
}
