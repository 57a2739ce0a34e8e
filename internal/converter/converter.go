// =============================================================================
// Address Label Converter - Core Conversion Engine
// =============================================================================
//
// This module orchestrates the conversion of one input file into one label
// export.
//
// PROCESSING PIPELINE:
//   1. Parse the input (CSV or XLSX)
//   2. Check that every required field has a source column
//   3. Remap columns onto canonical fields
//   4. Transform each row into a MappedAddress
//   5. Validate the batch
//   6. Render the export (sender row, filter, Windows-1252)
//   7. Write the export and, if any, the warning log
//   8. Archive the input file
//
// Validation warnings never stop an export. A missing required mapping or a
// parse failure stops the file and leaves it in the input directory.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/country"
	"github.com/ginjaninja78/address-label-converter/internal/csvwriter"
	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/internal/remap"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
	"github.com/ginjaninja78/address-label-converter/pkg/utils"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Result contains the result of processing a single file.
type Result struct {
	// FilePath is the input file.
	FilePath string

	// OutputFile is the written export. Empty on failure or dry run.
	OutputFile string

	// WarningLog is the written warning log, if any.
	WarningLog string

	// Success is true if the export was produced.
	Success bool

	// Error is set when Success is false.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsProcessed is the number of non-empty input rows.
	RowsProcessed int

	// RecordsExported is the number of address rows written, excluding
	// the sender row.
	RecordsExported int

	// RecordsWithWarnings is the number of records with at least one
	// warning.
	RecordsWithWarnings int

	// Warnings is the total number of warnings.
	Warnings int

	// ProcessingTime is the wall time spent on the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter handles the conversion of a single input file.
type Converter struct {
	inputPath string
	cfg       *config.Config
	files     *utils.FileManager
	log       logging.Logger

	// DryRun converts and validates without writing or archiving.
	DryRun bool
}

// New creates a Converter for inputPath.
func New(inputPath string, cfg *config.Config, log logging.Logger) *Converter {
	if log == nil {
		log = logging.Nop()
	}
	files := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir)
	files.UseTimestampSubdirs = cfg.ArchiveByDate

	return &Converter{
		inputPath: inputPath,
		cfg:       cfg,
		files:     files,
		log:       log,
	}
}

// Run executes the conversion pipeline for the file.
func (c *Converter) Run() Result {
	start := time.Now()
	result := Result{FilePath: c.inputPath}

	c.log.Infof("processing file: %s", c.inputPath)

	// =========================================================================
	// STEP 1: PARSE INPUT
	// =========================================================================

	table, err := LoadTable(c.inputPath, c.cfg)
	if err != nil {
		result.Error = err
		return c.finish(result, start)
	}
	result.Stats.RowsProcessed = len(table.Rows)
	c.log.Debugf("parsed %d rows, headers %v", len(table.Rows), table.Headers)

	// =========================================================================
	// STEP 2-5: CONVERT AND VALIDATE
	// =========================================================================

	var aliases remap.AliasTable
	if c.cfg.Aliases != nil {
		aliases = remap.AliasTable(c.cfg.Aliases)
	}

	pipeline := NewPipeline(country.Default(), c.cfg.MaxConcurrency, c.log)
	batch, err := pipeline.Convert(table, aliases, c.cfg.Required)
	if err != nil {
		result.Error = err
		return c.finish(result, start)
	}

	sum := validation.Summarize(batch.Warnings)
	result.Stats.RecordsWithWarnings = sum.Records
	result.Stats.Warnings = sum.Warnings
	lines := validation.Lines(batch.Warnings)
	for _, line := range lines {
		c.log.Warnf("%s: %s", filepath.Base(c.inputPath), line)
	}

	// =========================================================================
	// STEP 6: RENDER EXPORT
	// =========================================================================

	filter, err := csvwriter.ParseFilter(c.cfg.ExportFilter)
	if err != nil {
		result.Error = err
		return c.finish(result, start)
	}

	opts := csvwriter.Options{
		Sender: SenderRecord(c.cfg.Sender, country.Default()),
		Filter: filter,
	}
	exported := filter.Apply(batch.Records)
	result.Stats.RecordsExported = len(exported)
	doc := csvwriter.Render(batch.Records, opts)

	if c.DryRun {
		c.log.Infof("dry run: %d of %d records would be exported", len(exported), len(batch.Records))
		result.Success = true
		return c.finish(result, start)
	}

	// =========================================================================
	// STEP 7: WRITE OUTPUT
	// =========================================================================

	outputPath, err := c.writeOutput(doc)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return c.finish(result, start)
	}
	result.OutputFile = outputPath

	logPath, err := utils.WriteWarningLog(outputPath, filepath.Base(c.inputPath), lines)
	if err != nil {
		c.log.Warnf("failed to write warning log: %v", err)
	}
	result.WarningLog = logPath

	// =========================================================================
	// STEP 8: ARCHIVE INPUT
	// =========================================================================

	if archived, err := c.files.ArchiveInputFile(c.inputPath); err != nil {
		c.log.Warnf("failed to archive input file: %v", err)
	} else {
		c.log.Debugf("archived input to %s", archived)
	}

	result.Success = true
	return c.finish(result, start)
}

func (c *Converter) finish(result Result, start time.Time) Result {
	result.Stats.ProcessingTime = time.Since(start)
	if result.Success {
		c.log.Infof("finished %s: %d records exported, %d warnings",
			filepath.Base(c.inputPath), result.Stats.RecordsExported, result.Stats.Warnings)
	} else {
		c.log.Errorf("failed %s: %v", filepath.Base(c.inputPath), result.Error)
	}
	return result
}

func (c *Converter) writeOutput(doc []byte) (string, error) {
	base := filepath.Base(c.inputPath)
	name := utils.GenerateOutputFileName(c.cfg.OutputFormat, map[string]string{
		"name": strings.TrimSuffix(base, filepath.Ext(base)),
	})
	outputPath := filepath.Join(c.cfg.OutputDir, name)

	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}
