package xlsxparser_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/address-label-converter/internal/csvparser"
	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/internal/xlsxparser"
)

// writeWorkbook saves rows to the first sheet of a new workbook. Extra
// sheets are added empty.
func writeWorkbook(t *testing.T, rows [][]any, extraSheets ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	for _, name := range extraSheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "adressen.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseFirstSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]any{
		{"Vorname", "Name", "Adresse1", "PLZ", "Ort", "Land"},
		{"Max", "Mustermann", "Blumenstraße 5", "10115", "Berlin", "Deutschland"},
		{},
		{"Erika", "Musterfrau", "Weg 1", 1010, "Wien", "AT"},
	}, "Leer")

	table, err := xlsxparser.Parse(path, "")
	require.NoError(t, err)

	assert.Equal(t, path, table.SourceFile)
	assert.Equal(t, []string{"Vorname", "Name", "Adresse1", "PLZ", "Ort", "Land"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, types.RawRow{
		"Vorname":  "Max",
		"Name":     "Mustermann",
		"Adresse1": "Blumenstraße 5",
		"PLZ":      "10115",
		"Ort":      "Berlin",
		"Land":     "Deutschland",
	}, table.Rows[0])
	assert.Equal(t, "1010", table.Rows[1]["PLZ"])
}

func TestParseNamedSheet(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]any{{"Name"}, {"A"}}, "Leer")

	_, err := xlsxparser.Parse(path, "Leer")
	assert.ErrorIs(t, err, csvparser.ErrEmpty)

	_, err = xlsxparser.Parse(path, "Fehlt")
	assert.ErrorIs(t, err, xlsxparser.ErrSheetNotFound)
	assert.ErrorContains(t, err, `"Fehlt"`)

	sheets, err := xlsxparser.Sheets(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sheet1", "Leer"}, sheets)
}

func TestParseMissingFile(t *testing.T) {
	t.Parallel()

	_, err := xlsxparser.Parse(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.ErrorContains(t, err, "failed to open workbook")
}
