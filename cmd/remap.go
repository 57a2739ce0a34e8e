// =============================================================================
// Address Label Converter - Remap Command
// =============================================================================
//
// This file defines the 'remap' command, which converts the raw rows of
// the current session again with a different alias table. Manual edits
// made since the import are discarded.
//
// COMMAND USAGE:
//   labelconv remap --alias "Header=field" [--alias ...]
//   labelconv remap --reset
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/internal/remap"
	"github.com/ginjaninja78/address-label-converter/internal/session"
	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
)

// ErrNoSession is returned by commands that need an imported session.
var ErrNoSession = errors.New("no session; run 'labelconv import --file <path>' first")

var (
	remapAliases []string
	remapReset   bool
)

var remapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Re-map the session with a different alias table",
	Long: `The remap command converts the rows of the last import again using the
given column aliases. It does not read the input file again.

Use --reset to go back to the configured (or built-in) alias table.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemap(cmd.OutOrStdout(), appConfig, sessionStore(), logger, remapAliases, remapReset)
	},
}

func init() {
	rootCmd.AddCommand(remapCmd)

	remapCmd.Flags().StringArrayVar(&remapAliases, "alias", nil,
		`Column alias "Header=field" (repeatable)`)
	remapCmd.Flags().BoolVar(&remapReset, "reset", false,
		"Use the configured alias table")
}

func runRemap(out io.Writer, cfg *config.Config, store *session.Store, log logging.Logger, pairs []string, reset bool) error {
	state := store.Load()
	if len(state.RawRows) == 0 && len(state.Headers) == 0 {
		return ErrNoSession
	}
	if len(pairs) == 0 && !reset {
		return errors.New("nothing to do: give at least one --alias or --reset")
	}

	aliases, err := resolveAliases(cfg, pairs)
	if err != nil {
		return err
	}
	state.Aliases = aliases

	convErr := convertState(state, cfg, log)
	if err := store.Save(state); err != nil {
		return err
	}
	if convErr != nil {
		return convErr
	}

	fmt.Fprintf(out, "Re-mapped %d records\n", len(state.Records))
	printMapping(out, state.Headers, aliases)
	printWarningSummary(out, validation.Validate(state.Records))
	return nil
}

// printMapping shows which source header feeds which canonical field.
func printMapping(out io.Writer, headers []string, aliases map[string]string) {
	table := remap.DefaultAliases()
	if aliases != nil {
		table = remap.AliasTable(aliases)
	}
	row := make(types.RawRow, len(headers))
	for _, h := range headers {
		row[h] = h
	}
	mapped := remap.Remap(row, table)
	for _, field := range types.CanonicalFields {
		source, ok := mapped[field]
		if !ok {
			source = "(unmapped)"
		}
		fmt.Fprintf(out, "  %-18s <- %v\n", field, source)
	}
}
