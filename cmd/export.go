// =============================================================================
// Address Label Converter - Export Command
// =============================================================================
//
// This file defines the 'export' command, which writes the session records
// as a label tool import file.
//
// COMMAND USAGE:
//   labelconv export [--filter all|domestic|international] [--out path] [--no-sender]
//
// OUTPUT FORMAT:
//   - Semicolon-delimited, CRLF line endings, Windows-1252 encoded
//   - Header: NAME;ZUSATZ;STRASSE;NUMMER;PLZ;STADT;LAND;ADRESS_TYP;REFERENZ
//   - The configured sender, if any, is the first data row
//
// Records with warnings are exported as they are; the warnings are written
// to a log next to the export.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/csvwriter"
	"github.com/ginjaninja78/address-label-converter/internal/session"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
	"github.com/ginjaninja78/address-label-converter/pkg/utils"
)

var (
	exportFilter   string
	exportOut      string
	exportNoSender bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the session records as a label file",

	RunE: func(cmd *cobra.Command, args []string) error {
		filter := exportFilter
		if !cmd.Flags().Changed("filter") {
			filter = appConfig.ExportFilter
		}
		return runExport(cmd.OutOrStdout(), appConfig, sessionStore(), filter, exportOut, exportNoSender)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFilter, "filter", "all",
		"Records to export: all, domestic or international")
	exportCmd.Flags().StringVar(&exportOut, "out", "",
		"Output file (default: output directory, named after the import)")
	exportCmd.Flags().BoolVar(&exportNoSender, "no-sender", false,
		"Omit the sender row")
}

func runExport(out io.Writer, cfg *config.Config, store *session.Store, filterName, outPath string, noSender bool) error {
	filter, err := csvwriter.ParseFilter(filterName)
	if err != nil {
		return err
	}

	state := store.Load()
	if state.Empty() {
		return ErrNoSession
	}

	opts := csvwriter.Options{Filter: filter}
	if !noSender {
		opts.Sender = state.Sender
	}

	if outPath == "" {
		name := "session"
		if state.Source != "" {
			base := filepath.Base(state.Source)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		outPath = filepath.Join(cfg.OutputDir,
			utils.GenerateOutputFileName(cfg.OutputFormat, map[string]string{"name": name}))
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := csvwriter.Write(f, state.Records, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	exported := len(filter.Apply(state.Records))
	fmt.Fprintf(out, "Exported %d of %d records to %s\n", exported, len(state.Records), outPath)

	lines := validation.Lines(validation.Validate(state.Records))
	if len(lines) > 0 {
		logPath, err := utils.WriteWarningLog(outPath, state.Source, lines)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d warning(s) written to %s\n", len(lines), logPath)
	}
	return nil
}
