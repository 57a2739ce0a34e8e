// =============================================================================
// Address Label Converter - Import Command
// =============================================================================
//
// This file defines the 'import' command, which loads one input file into
// the editing session. The session replaces any previous one.
//
// COMMAND USAGE:
//   labelconv import --file <path> [--alias "Header=field"]... [--sheet name]
//
// After an import the records can be reviewed with 'list', corrected with
// 'edit' and 'delete' and written with 'export'.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/converter"
	"github.com/ginjaninja78/address-label-converter/internal/country"
	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/internal/remap"
	"github.com/ginjaninja78/address-label-converter/internal/session"
	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
	"github.com/ginjaninja78/address-label-converter/internal/xlsxparser"
)

var (
	importFile    string
	importSheet   string
	importAliases []string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load an address file into the editing session",
	Long: `The import command reads one CSV or XLSX file, maps its columns onto the
label schema and validates every record. The result replaces the current
session.

Column aliases given with --alias replace the configured alias table for
this import. Each alias has the form "Source Header=canonical_field".

When a required field has no mapped column, the raw rows are still kept in
the session so that 'remap' can retry with a corrected alias table.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if importSheet != "" {
			appConfig.Sheet = importSheet
		}
		return runImport(cmd.OutOrStdout(), appConfig, sessionStore(), logger, importFile, importAliases)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importFile, "file", "", "Input file (.csv or .xlsx)")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Worksheet to read (default: first sheet)")
	importCmd.Flags().StringArrayVar(&importAliases, "alias", nil,
		`Column alias "Header=field" (repeatable, replaces the configured aliases)`)
	importCmd.MarkFlagRequired("file")
}

// runImport parses path, converts it and stores the result as the new
// session.
func runImport(out io.Writer, cfg *config.Config, store *session.Store, log logging.Logger, path string, aliasPairs []string) error {
	aliases, err := resolveAliases(cfg, aliasPairs)
	if err != nil {
		return err
	}

	table, err := converter.LoadTable(path, cfg)
	if errors.Is(err, xlsxparser.ErrSheetNotFound) {
		if sheets, serr := xlsxparser.Sheets(path); serr == nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(sheets, ", "))
		}
	}
	if err != nil {
		return err
	}
	log.Infof("read %d rows from %s", len(table.Rows), filepath.Base(path))

	state := session.NewState(path)
	state.Headers = table.Headers
	state.RawRows = table.Rows
	state.Aliases = aliases
	state.Sender = converter.SenderRecord(cfg.Sender, country.Default())

	convErr := convertState(state, cfg, log)
	if err := store.Save(state); err != nil {
		return err
	}
	if convErr != nil {
		return convErr
	}

	fmt.Fprintf(out, "Imported %d records from %s\n", len(state.Records), filepath.Base(path))
	printWarningSummary(out, validation.Validate(state.Records))
	return nil
}

// convertState maps the raw rows of state with its alias table and stores
// the records. On a mapping error the records are cleared.
func convertState(state *session.State, cfg *config.Config, log logging.Logger) error {
	pipeline := converter.NewPipeline(country.Default(), cfg.MaxConcurrency, log)
	table := &types.Table{Headers: state.Headers, Rows: state.RawRows, SourceFile: state.Source}

	var aliases remap.AliasTable
	if state.Aliases != nil {
		aliases = remap.AliasTable(state.Aliases)
	}

	batch, err := pipeline.Convert(table, aliases, cfg.Required)
	if err != nil {
		state.Records = nil
		var missing *converter.MissingMappingError
		if errors.As(err, &missing) {
			return fmt.Errorf("%w; fix the mapping with 'labelconv remap --alias \"Header=field\"'", err)
		}
		return err
	}
	state.Records = batch.Records
	return nil
}

// resolveAliases picks the alias table for a conversion: flag pairs first,
// then the configured table. nil selects the built-in defaults.
func resolveAliases(cfg *config.Config, pairs []string) (map[string]string, error) {
	if len(pairs) > 0 {
		table, err := remap.ParsePairs(pairs)
		if err != nil {
			return nil, err
		}
		return table, nil
	}
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases, nil
	}
	return nil, nil
}

// printWarningSummary prints the warning counts of a record set.
func printWarningSummary(out io.Writer, warnings types.Warnings) {
	sum := validation.Summarize(warnings)
	if sum.Warnings == 0 {
		fmt.Fprintln(out, "No warnings.")
		return
	}
	fmt.Fprintf(out, "%d warning(s) on %d record(s); see 'labelconv list --warnings-only'\n",
		sum.Warnings, sum.Records)
}
