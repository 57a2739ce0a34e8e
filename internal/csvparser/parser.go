// =============================================================================
// Address Label Converter - CSV Parser Module
// =============================================================================
//
// This module reads CSV address lists into a types.Table.
//
// KEY FEATURES:
//   - Configurable delimiter, or "auto" to detect ";", "," or tab
//   - UTF-8 or Windows-1252 input, with a UTF-8 byte order mark stripped
//   - Empty rows skipped, empty headers named Column_<n>
//   - Duplicate headers made unique with a _<n> suffix
//
// The first non-empty line is the header row.
//
// =============================================================================

package csvparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// ErrEmpty is returned for input without a header row.
var ErrEmpty = errors.New("CSV file is empty")

// utf8BOM prefixes some UTF-8 exports from spreadsheet applications.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sniffCandidates are tried in order when the delimiter is "auto".
var sniffCandidates = []rune{';', ',', '\t'}

// =============================================================================
// PARSING FUNCTIONS
// =============================================================================

// Parse reads the CSV file at filePath.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: Delimiter and encoding settings.
//
// RETURNS:
//   - The parsed table with SourceFile set.
//   - An error if the file cannot be read or is malformed.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := ParseReader(file, settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath
	return table, nil
}

// ParseReader reads CSV data from r.
func ParseReader(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	data, err = decode(data, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.Comma = delimiter(settings.Delimiter, data)

	// Rows may have fewer or more columns than the header.
	csvReader.FieldsPerRecord = -1

	// Hand-edited exports often carry stray quotes.
	csvReader.LazyQuotes = true

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return BuildTable(allRows)
}

// BuildTable turns string rows into a table. The first non-empty row is the
// header; the remaining non-empty rows become RawRows.
func BuildTable(allRows [][]string) (*types.Table, error) {
	start := 0
	for start < len(allRows) && IsRowEmpty(allRows[start]) {
		start++
	}
	if start == len(allRows) {
		return nil, ErrEmpty
	}

	headers := CleanHeaders(allRows[start])
	table := &types.Table{
		Headers: headers,
		Rows:    make([]types.RawRow, 0, len(allRows)-start-1),
	}

	for _, row := range allRows[start+1:] {
		if IsRowEmpty(row) {
			continue
		}

		raw := make(types.RawRow, len(headers))
		for i, header := range headers {
			if i < len(row) {
				raw[header] = row[i]
			} else {
				raw[header] = nil
			}
		}
		table.Rows = append(table.Rows, raw)
	}

	return table, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// decode converts data to UTF-8 and strips a leading byte order mark.
func decode(data []byte, encoding string) ([]byte, error) {
	switch config.NormalizeEncoding(encoding) {
	case config.EncodingUTF8:
		return bytes.TrimPrefix(data, utf8BOM), nil
	case config.EncodingWindows1252:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode Windows-1252 input: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}

// delimiter resolves the configured delimiter, sniffing data for "auto".
func delimiter(setting string, data []byte) rune {
	switch strings.ToLower(setting) {
	case "", "auto":
		return sniff(data)
	case "\\t", "tab":
		return '\t'
	case "semicolon":
		return ';'
	case "comma":
		return ','
	case "pipe":
		return '|'
	}
	return []rune(setting)[0]
}

// sniff picks the candidate that occurs most often in the first line.
// Ties go to the earlier candidate; no occurrence at all selects ';'.
func sniff(data []byte) rune {
	line := data
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		line = data[:i]
	}

	best, bestCount := sniffCandidates[0], 0
	for _, c := range sniffCandidates {
		if n := strings.Count(string(line), string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// CleanHeaders trims header names, names empty ones Column_<n> and makes
// duplicates unique by appending _<n>.
func CleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	seen := make(map[string]int, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}

		seen[header]++
		if n := seen[header]; n > 1 {
			header = fmt.Sprintf("%s_%d", header, n)
		}

		cleaned[i] = header
	}

	return cleaned
}

// IsRowEmpty reports whether every cell of row is blank.
func IsRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
