package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archivist-tools/sqlite-archiver/internal/retention"
)

var (
	cleanupBackupDir     string
	cleanupRetentionDays float64
	cleanupMaxBackups    int
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup <database>",
	Short: "Delete backups per a retention policy",
	Long: `Delete backups selected by exactly one retention criterion:
--retention-days removes backups strictly older than the cutoff,
--max-backups keeps only the newest N.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCleanup(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)

	cleanupCmd.Flags().StringVar(&cleanupBackupDir, "backup-dir", "", "backup directory (default <database dir>/backups)")
	cleanupCmd.Flags().Float64Var(&cleanupRetentionDays, "retention-days", 0, "remove backups older than this many days")
	cleanupCmd.Flags().IntVar(&cleanupMaxBackups, "max-backups", 0, "keep only the newest N backups")
	cleanupCmd.MarkFlagsMutuallyExclusive("retention-days", "max-backups")
	cleanupCmd.MarkFlagsOneRequired("retention-days", "max-backups")
}

func runCleanup(cmd *cobra.Command, database string) error {
	var pol retention.Policy
	if cmd.Flags().Changed("retention-days") {
		pol.MaxAgeDays = &cleanupRetentionDays
	}
	if cmd.Flags().Changed("max-backups") {
		pol.MaxCount = &cleanupMaxBackups
	}

	mgr, err := newManager(database, cleanupBackupDir)
	if err != nil {
		return err
	}

	echoOptions(
		"database", mgr.Config().DatabasePath,
		"backup-dir", mgr.Config().BackupDir,
		"retention-days", cleanupRetentionDays,
		"max-backups", cleanupMaxBackups,
	)

	res, err := mgr.Cleanup(cmd.Context(), pol)
	if err != nil {
		return err
	}

	for _, name := range res.RemovedFiles {
		fmt.Printf("Removed %s\n", name)
	}
	for _, msg := range res.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", msg)
	}
	fmt.Printf("Removed %d of %d backups, %d remaining\n", res.Removed, res.Total, res.Remaining)
	return nil
}
