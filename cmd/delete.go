// =============================================================================
// Address Label Converter - Delete Command
// =============================================================================
//
// This file defines the 'delete' command, which removes one session record.
// The REFERENZ numbers of the remaining records are renumbered 1..n.
//
// COMMAND USAGE:
//   labelconv delete --index <n>
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/records"
	"github.com/ginjaninja78/address-label-converter/internal/session"
)

var deleteIndex int

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one record",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelete(cmd.OutOrStdout(), sessionStore(), deleteIndex)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().IntVar(&deleteIndex, "index", 0, "Record number (1-based)")
	deleteCmd.MarkFlagRequired("index")
}

func runDelete(out io.Writer, store *session.Store, index int) error {
	state := store.Load()
	if state.Empty() {
		return ErrNoSession
	}

	set := records.New(state.Records)
	if err := set.Delete(index - 1); err != nil {
		return err
	}

	state.Records = set.Records()
	if err := store.Save(state); err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted record %d, %d remaining\n", index, set.Len())
	return nil
}
