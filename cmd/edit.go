// =============================================================================
// Address Label Converter - Edit Command
// =============================================================================
//
// This file defines the 'edit' command, which replaces fields of one
// session record and validates the set again.
//
// COMMAND USAGE:
//   labelconv edit --index <n> --set FIELD=VALUE [--set ...]
//
// EXAMPLE:
//   labelconv edit --index 3 --set PLZ=01067 --set STADT=Dresden
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/records"
	"github.com/ginjaninja78/address-label-converter/internal/session"
)

var (
	editIndex int
	editSets  []string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace fields of one record",
	Long: `The edit command replaces one or more fields of the record with the given
1-based number (as shown by 'list'). Field names are the export columns:
NAME, ZUSATZ, STRASSE, NUMMER, PLZ, STADT, LAND, ADRESS_TYP, REFERENZ.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd.OutOrStdout(), sessionStore(), editIndex, editSets)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().IntVar(&editIndex, "index", 0, "Record number (1-based)")
	editCmd.Flags().StringArrayVar(&editSets, "set", nil, "Assignment FIELD=VALUE (repeatable)")
	editCmd.MarkFlagRequired("index")
	editCmd.MarkFlagRequired("set")
}

func runEdit(out io.Writer, store *session.Store, index int, pairs []string) error {
	if len(pairs) == 0 {
		return errors.New("nothing to do: give at least one --set FIELD=VALUE")
	}
	assignments, err := records.ParseAssignments(pairs)
	if err != nil {
		return err
	}

	state := store.Load()
	if state.Empty() {
		return ErrNoSession
	}

	set := records.New(state.Records)
	rec, err := set.Get(index - 1)
	if err != nil {
		return err
	}
	rec, err = records.Apply(rec, assignments)
	if err != nil {
		return err
	}
	if err := set.Replace(index-1, rec); err != nil {
		return err
	}

	state.Records = set.Records()
	if err := store.Save(state); err != nil {
		return err
	}

	fmt.Fprintf(out, "Updated record %d\n", index)
	warnings := set.Warnings()
	for _, msg := range warnings[index-1] {
		fmt.Fprintf(out, "  warning: %s\n", msg)
	}
	printWarningSummary(out, warnings)
	return nil
}
