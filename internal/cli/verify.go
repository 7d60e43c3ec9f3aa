package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archivist-tools/sqlite-archiver/internal/engine"
	"github.com/archivist-tools/sqlite-archiver/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <backup>",
	Short: "Run an integrity check against a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		echoOptions("backup", path)

		ver := verify.NewVerifier(engine.NewCommand(), nil, newLogger())
		if !ver.Verify(cmd.Context(), path) {
			return fmt.Errorf("%s failed integrity check", path)
		}
		fmt.Printf("%s: ok\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
