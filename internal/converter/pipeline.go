package converter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/address-label-converter/internal/address"
	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/country"
	"github.com/ginjaninja78/address-label-converter/internal/csvparser"
	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/internal/normalize"
	"github.com/ginjaninja78/address-label-converter/internal/remap"
	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
	"github.com/ginjaninja78/address-label-converter/internal/xlsxparser"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrUnsupportedFormat is returned for input files that are neither CSV
// nor XLSX.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// MissingMappingError blocks a whole batch: at least one required canonical
// field has no source column.
type MissingMappingError struct {
	Fields []string
}

func (e *MissingMappingError) Error() string {
	return "no column mapped to required field(s): " + strings.Join(e.Fields, ", ")
}

// =============================================================================
// BATCH CONVERSION
// =============================================================================

// Batch is the outcome of converting one table.
type Batch struct {
	Records  []types.MappedAddress
	Warnings types.Warnings
}

// Pipeline runs remap, transform and validate over a table.
type Pipeline struct {
	transformer *address.Transformer
	log         logging.Logger
}

// NewPipeline creates a pipeline. A nil directory selects the built-in
// country table; a nil logger discards output.
func NewPipeline(dir *country.Directory, workers int, log logging.Logger) *Pipeline {
	if log == nil {
		log = logging.Nop()
	}
	return &Pipeline{
		transformer: address.NewTransformer(dir, workers),
		log:         log,
	}
}

// Convert converts table with the default pipeline.
func Convert(table *types.Table, aliases remap.AliasTable, required []string) (*Batch, error) {
	return NewPipeline(nil, 0, nil).Convert(table, aliases, required)
}

// Convert maps every row of table to a record and validates the batch.
//
// PARAMETERS:
//   - table: The parsed input.
//   - aliases: The alias table. nil selects remap.DefaultAliases().
//   - required: Canonical fields that must be mapped. nil selects
//     remap.DefaultRequired().
//
// RETURNS:
//   - The records and their warnings.
//   - A *MissingMappingError when a required field is unmapped. No records
//     are produced in that case.
func (p *Pipeline) Convert(table *types.Table, aliases remap.AliasTable, required []string) (*Batch, error) {
	if aliases == nil {
		aliases = remap.DefaultAliases()
	}
	if required == nil {
		required = remap.DefaultRequired()
	}

	if missing := remap.MissingRequired(table.Headers, aliases, required); len(missing) > 0 {
		return nil, &MissingMappingError{Fields: missing}
	}

	rows := remap.RemapAll(table.Rows, aliases)
	p.log.Debugf("remapped %d rows", len(rows))

	records := p.transformer.TransformAll(rows)
	warnings := validation.Validate(records)

	sum := validation.Summarize(warnings)
	p.log.Debugf("converted %d records, %d with warnings", len(records), sum.Records)

	return &Batch{Records: records, Warnings: warnings}, nil
}

// =============================================================================
// INPUT
// =============================================================================

// LoadTable parses a CSV or XLSX file, chosen by extension.
func LoadTable(path string, cfg *config.Config) (*types.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		table, err := csvparser.Parse(path, cfg.CSV)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		return table, nil
	case ".xlsx", ".xlsm":
		table, err := xlsxparser.Parse(path, cfg.Sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to parse XLSX: %w", err)
		}
		return table, nil
	}
	return nil, fmt.Errorf("%w: %s (supported: .csv, .xlsx)", ErrUnsupportedFormat, filepath.Base(path))
}

// =============================================================================
// SENDER
// =============================================================================

// SenderRecord builds the export sender row from configuration. It returns
// nil when s is nil or has no name.
func SenderRecord(s *config.Sender, dir *country.Directory) *types.MappedAddress {
	if s == nil || normalize.Clean(s.Name) == "" {
		return nil
	}
	if dir == nil {
		dir = country.Default()
	}

	rec := &types.MappedAddress{
		Name:    normalize.Clean(s.Name),
		Zusatz:  normalize.Clean(s.Addition),
		Strasse: normalize.Clean(s.Street),
		Nummer:  normalize.Clean(s.Number),
		PLZ:     normalize.Clean(s.PostalCode),
		Stadt:   normalize.Clean(s.City),
		Land:    dir.Resolve(s.Country).Code,
	}
	if rec.Nummer == "" {
		rec.Strasse, rec.Nummer = address.SplitStreetNumber(rec.Strasse)
	}
	rec.AdressTyp = address.MapAddressType(rec.Zusatz)

	return rec
}
