package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listBackupDir        string
	listIncludeChecksums bool
)

var listCmd = &cobra.Command{
	Use:   "list <database>",
	Short: "List backups of a database, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listBackupDir, "backup-dir", "", "backup directory (default <database dir>/backups)")
	listCmd.Flags().BoolVar(&listIncludeChecksums, "include-checksums", false, "compute checksum and validity per backup (slow for large files)")
}

func runList(cmd *cobra.Command, database string) error {
	mgr, err := newManager(database, listBackupDir)
	if err != nil {
		return err
	}

	echoOptions(
		"database", mgr.Config().DatabasePath,
		"backup-dir", mgr.Config().BackupDir,
		"include-checksums", listIncludeChecksums,
	)

	infos, err := mgr.ListBackups(cmd.Context(), listIncludeChecksums)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if listIncludeChecksums {
		fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED\tVALID\tSHA256")
		for _, in := range infos {
			valid := "?"
			if in.Valid != nil {
				valid = fmt.Sprintf("%v", *in.Valid)
			}
			sum := in.Checksum
			if len(sum) > 12 {
				sum = sum[:12]
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
				in.Filename, in.Size, in.ModifiedAt.Format("2006-01-02 15:04:05"), valid, sum)
		}
	} else {
		fmt.Fprintln(w, "NAME\tSIZE\tMODIFIED")
		for _, in := range infos {
			fmt.Fprintf(w, "%s\t%d\t%s\n",
				in.Filename, in.Size, in.ModifiedAt.Format("2006-01-02 15:04:05"))
		}
	}
	return w.Flush()
}
