// =============================================================================
// Address Label Converter - XLSX Parser Module
// =============================================================================
//
// This module reads address lists from Excel workbooks into a types.Table.
//
// LAYOUT:
//   - One worksheet is read: the named sheet, or the first one
//   - The first non-empty row holds the column headers
//   - Every following non-empty row is one address
//
// Cell values are read as displayed by Excel, so a postal code formatted as
// "01067" keeps its leading zero.
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/address-label-converter/internal/csvparser"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// ErrSheetNotFound is returned when the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Parse reads one worksheet of the workbook at filePath.
//
// PARAMETERS:
//   - filePath: The path to the .xlsx file.
//   - sheet: The worksheet name. Empty selects the first sheet.
//
// RETURNS:
//   - The parsed table with SourceFile set.
//   - An error if the workbook or sheet cannot be read.
func Parse(filePath, sheet string) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	table, err := readSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath
	return table, nil
}

// Sheets lists the worksheet names of the workbook at filePath.
func Sheets(filePath string) ([]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func readSheet(f *excelize.File, sheet string) (*types.Table, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	table, err := csvparser.BuildTable(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return table, nil
}
