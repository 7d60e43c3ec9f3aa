package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archivist-tools/sqlite-archiver/internal/backup"
)

var (
	restoreBackupDir         string
	restoreTarget            string
	restoreNoVerify          bool
	restoreNoSnapshotCurrent bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore <backup> <database>",
	Short: "Reinstate a backup as the live database",
	Long: `Restore a backup over the live database. The candidate backup is
verified first and the current database is snapshotted before it is
overwritten; both safety steps can be switched off.`,

	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestore(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringVar(&restoreBackupDir, "backup-dir", "", "backup directory (default <database dir>/backups)")
	restoreCmd.Flags().StringVar(&restoreTarget, "target", "", "restore destination (default the database path)")
	restoreCmd.Flags().BoolVar(&restoreNoVerify, "no-verify", false, "skip pre-restore verification of the backup")
	restoreCmd.Flags().BoolVar(&restoreNoSnapshotCurrent, "no-snapshot-current", false, "skip the pre-restore safety copy")
}

func runRestore(cmd *cobra.Command, backupPath, database string) error {
	snapPath, err := filepath.Abs(backupPath)
	if err != nil {
		return err
	}

	mgr, err := newManager(database, restoreBackupDir)
	if err != nil {
		return err
	}

	echoOptions(
		"backup", snapPath,
		"database", mgr.Config().DatabasePath,
		"target", restoreTarget,
		"verify", !restoreNoVerify,
		"snapshot-current", !restoreNoSnapshotCurrent,
	)

	res := mgr.Restore(cmd.Context(), snapPath, backup.RestoreRequest{
		Target:            restoreTarget,
		NoVerifyBefore:    restoreNoVerify,
		NoSnapshotCurrent: restoreNoSnapshotCurrent,
	})
	if !res.Success {
		if res.SafetyCopy != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Pre-restore snapshot kept at %s\n", res.SafetyCopy)
		}
		return fmt.Errorf("restore failed: %s", res.Err)
	}

	if res.SafetyCopy != "" {
		fmt.Printf("Previous database saved as %s\n", res.SafetyCopy)
	}
	fmt.Printf("Restored %s to %s\n", res.Snapshot, res.Target)
	return nil
}
