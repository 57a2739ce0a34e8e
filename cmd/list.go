// =============================================================================
// Address Label Converter - List Command
// =============================================================================
//
// This file defines the 'list' command, which prints the session records
// as a table followed by their validation warnings.
//
// COMMAND USAGE:
//   labelconv list [--warnings-only]
//
// Record numbers are 1-based and are the numbers 'edit' and 'delete'
// expect.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/records"
	"github.com/ginjaninja78/address-label-converter/internal/session"
	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
)

var warningsOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show session records and warnings",

	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout(), sessionStore(), warningsOnly)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&warningsOnly, "warnings-only", false,
		"Show only records that have warnings")
}

func runList(out io.Writer, store *session.Store, onlyWarnings bool) error {
	state := store.Load()
	if state.Empty() {
		return ErrNoSession
	}

	set := records.New(state.Records)
	warnings := set.Warnings()

	fmt.Fprintf(out, "Source: %s (%d records)\n\n", state.Source, set.Len())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\t"+strings.Join(types.ExportColumns, "\t"))
	for i, rec := range set.Records() {
		if onlyWarnings && len(warnings[i]) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\n", i+1, strings.Join(rec.Values(), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := validation.Lines(warnings)
	if len(lines) == 0 {
		fmt.Fprintln(out, "\nNo warnings.")
		return nil
	}

	fmt.Fprintf(out, "\nWarnings (%d):\n", len(lines))
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return nil
}
