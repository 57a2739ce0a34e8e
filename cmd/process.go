// =============================================================================
// Address Label Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which converts every address
// file in the input directory into a label export without interaction.
//
// COMMAND USAGE:
//   labelconv process [flags]
//
// FLAGS:
//   --dry-run : Convert and validate without writing or archiving
//   --file    : Process only this file
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover CSV and XLSX files in the input directory
//   3. Convert each file concurrently (at most max_concurrency at once)
//   4. Archive successfully processed files
//   5. Print and write a summary report
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/converter"
	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/pkg/utils"
)

var (
	dryRun      bool
	processFile string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert every address file in the input directory",
	Long: `The process command scans the input directory for CSV and XLSX files and
converts each of them into a label export in the output directory.

Files are processed concurrently. An error in one file does not affect the
others.

On success:
  - The export is written to the output directory
  - Validation warnings, if any, are written next to it
  - The input file is moved to the input archive

On error:
  - The input file stays in the input directory
  - The error is listed in the processing summary`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.OutOrStdout(), appConfig, logger, processFile, dryRun)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Convert and validate without writing output or archiving")
	processCmd.Flags().StringVar(&processFile, "file", "",
		"Process only this file instead of scanning the input directory")
}

// runProcess is the main function of the process command.
func runProcess(out io.Writer, cfg *config.Config, log logging.Logger, single string, dry bool) error {
	summary := utils.ProcessingSummary{StartTime: time.Now()}

	// =========================================================================
	// STEP 1: PREPARE DIRECTORIES
	// =========================================================================

	files := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	if err := files.EnsureDirectories(); err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	var inputFiles []string
	if single != "" {
		inputFiles = []string{single}
	} else {
		found, err := files.DiscoverInputFiles()
		if err != nil {
			return fmt.Errorf("failed to discover input files: %w", err)
		}
		inputFiles = found
	}

	if len(inputFiles) == 0 {
		fmt.Fprintln(out, "No CSV or XLSX files found in the input directory.")
		return nil
	}
	summary.TotalFiles = len(inputFiles)
	log.Infof("found %d file(s) to process", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(inputFiles))
	sem := make(chan struct{}, cfg.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			conv := converter.New(path, cfg, log)
			conv.DryRun = dry
			results <- conv.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	for result := range results {
		name := filepath.Base(result.FilePath)
		summary.TotalRows += result.Stats.RowsProcessed

		if !result.Success {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    name,
				ErrorMessage: result.Error.Error(),
			})
			fmt.Fprintf(out, "  ✗ %s: %v\n", name, result.Error)
			continue
		}

		summary.SuccessfulFiles++
		summary.TotalRecords += result.Stats.RecordsExported
		summary.TotalWarnings += result.Stats.Warnings
		summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
			InputFile:   name,
			OutputFile:  filepath.Base(result.OutputFile),
			Rows:        result.Stats.RowsProcessed,
			Records:     result.Stats.RecordsExported,
			Warnings:    result.Stats.Warnings,
			ProcessTime: result.Stats.ProcessingTime,
		})

		target := filepath.Base(result.OutputFile)
		if dry {
			target = "(dry run)"
		}
		fmt.Fprintf(out, "  ✓ %s -> %s (%d records, %d warnings)\n",
			name, target, result.Stats.RecordsExported, result.Stats.Warnings)
	}

	// =========================================================================
	// STEP 5: SUMMARY
	// =========================================================================

	summary.EndTime = time.Now()
	fmt.Fprintln(out, "\n=== Processing Complete ===")
	fmt.Fprintf(out, "Total files:     %d\n", summary.TotalFiles)
	fmt.Fprintf(out, "Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Fprintf(out, "Errors:          %d\n", summary.FailedFiles)
	fmt.Fprintf(out, "Records:         %d\n", summary.TotalRecords)
	fmt.Fprintf(out, "Warnings:        %d\n", summary.TotalWarnings)
	fmt.Fprintf(out, "Time elapsed:    %s\n", summary.EndTime.Sub(summary.StartTime))

	if !dry {
		path, err := utils.WriteSummaryLog(summary, cfg.OutputDir)
		if err != nil {
			log.Warnf("failed to write summary: %v", err)
		} else {
			fmt.Fprintf(out, "Summary:         %s\n", path)
		}
	}

	if summary.FailedFiles > 0 {
		return fmt.Errorf("%d of %d file(s) failed", summary.FailedFiles, summary.TotalFiles)
	}
	return nil
}
