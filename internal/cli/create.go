package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/archivist-tools/sqlite-archiver/internal/backup"
	"github.com/archivist-tools/sqlite-archiver/internal/snapshot"
)

var (
	createBackupDir   string
	createFilename    string
	createNoTimestamp bool
	createNoVerify    bool
	createMethod      string
)

var createCmd = &cobra.Command{
	Use:   "create <database>",
	Short: "Create a backup of a database",
	Long: `Create a point-in-time copy of the database in the backup directory.

Examples:
  # Timestamped backup next to the database
  sqlite-archiver create app.db

  # Compacting backup under a fixed name
  sqlite-archiver create app.db --method compact --filename nightly --no-timestamp`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createBackupDir, "backup-dir", "", "backup directory (default <database dir>/backups)")
	createCmd.Flags().StringVar(&createFilename, "filename", "", "custom backup filename")
	createCmd.Flags().BoolVar(&createNoTimestamp, "no-timestamp", false, "omit the timestamp from the generated filename")
	createCmd.Flags().BoolVar(&createNoVerify, "no-verify", false, "skip the post-backup integrity check")
	createCmd.Flags().StringVar(&createMethod, "method", "native", "backup method (native, raw, compact)")
}

func runCreate(cmd *cobra.Command, database string) error {
	strat, err := snapshot.ParseStrategy(createMethod)
	if err != nil {
		return err
	}

	mgr, err := newManager(database, createBackupDir)
	if err != nil {
		return err
	}

	echoOptions(
		"database", mgr.Config().DatabasePath,
		"backup-dir", mgr.Config().BackupDir,
		"method", string(strat),
		"filename", createFilename,
		"timestamp", !createNoTimestamp,
		"verify", !createNoVerify,
	)

	res := mgr.CreateBackup(cmd.Context(), backup.CreateRequest{
		Filename:    createFilename,
		NoTimestamp: createNoTimestamp,
		NoVerify:    createNoVerify,
		Strategy:    strat,
	})
	if !res.Success {
		return fmt.Errorf("backup failed: %s", res.Err)
	}

	fmt.Printf("Created %s (%d bytes, %s, %s)\n", res.Path, res.Size, res.Strategy, res.Duration.Round(time.Millisecond))
	if res.Checksum != "" {
		fmt.Printf("  sha256 %s\n", res.Checksum)
	}
	return nil
}
