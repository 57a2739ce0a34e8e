// =============================================================================
// Address Label Converter - Clear Command
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/session"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the editing session",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runClear(cmd.OutOrStdout(), sessionStore())
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(out io.Writer, store *session.Store) error {
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Session cleared.")
	return nil
}
