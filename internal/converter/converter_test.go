package converter_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ginjaninja78/address-label-converter/internal/config"
	"github.com/ginjaninja78/address-label-converter/internal/converter"
	"github.com/ginjaninja78/address-label-converter/internal/remap"
	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/pkg/utils"
)

func sampleTable() *types.Table {
	return &types.Table{
		Headers: []string{"Vorname", "Name", "Adresse1", "Adresse2", "PLZ", "Ort", "Land"},
		Rows: []types.RawRow{
			{"Vorname": "Max", "Name": "Mustermann", "Adresse1": "Blumenstraße 5", "PLZ": "10115", "Ort": "Berlin", "Land": "Deutschland"},
			{"Vorname": "Erika", "Name": "Musterfrau", "Adresse1": "Ring 2", "Adresse2": "Postfach 12", "PLZ": "1010", "Ort": "Wien", "Land": "Atlantis"},
		},
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	batch, err := converter.Convert(sampleTable(), nil, nil)
	require.NoError(t, err)

	require.Len(t, batch.Records, 2)
	assert.Equal(t, types.MappedAddress{
		Name:      "Max Mustermann",
		Strasse:   "Blumenstraße",
		Nummer:    "5",
		PLZ:       "10115",
		Stadt:     "Berlin",
		Land:      "DEU",
		AdressTyp: types.AddressTypeHouse,
		Referenz:  1,
	}, batch.Records[0])

	assert.Equal(t, types.AddressTypePOBox, batch.Records[1].AdressTyp)
	assert.Equal(t, 2, batch.Records[1].Referenz)

	assert.NotContains(t, batch.Warnings, 0)
	assert.Equal(t, []string{`LAND could not be mapped from "Atlantis", defaulted to DEU`}, batch.Warnings[1])
}

func TestConvertMissingMapping(t *testing.T) {
	t.Parallel()

	table := &types.Table{
		Headers: []string{"Vorname", "Name", "PLZ"},
		Rows:    []types.RawRow{{"Vorname": "Max", "Name": "Mustermann", "PLZ": "10115"}},
	}

	batch, err := converter.Convert(table, nil, nil)
	assert.Nil(t, batch)

	var missing *converter.MissingMappingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"street", "city"}, missing.Fields)
	assert.EqualError(t, err, "no column mapped to required field(s): street, city")
}

func TestConvertCustomAliases(t *testing.T) {
	t.Parallel()

	table := &types.Table{
		Headers: []string{"Nachname", "Strasse", "Postleitzahl", "Stadt"},
		Rows:    []types.RawRow{{"Nachname": "Muster", "Strasse": "Weg 1", "Postleitzahl": "50667", "Stadt": "Köln"}},
	}
	aliases := remap.AliasTable{
		"Nachname":     "last_name",
		"Strasse":      "street",
		"Postleitzahl": "postal_code",
		"Stadt":        "city",
	}

	batch, err := converter.Convert(table, aliases, nil)
	require.NoError(t, err)
	assert.Equal(t, "Muster", batch.Records[0].Name)
	assert.Equal(t, "Köln", batch.Records[0].Stadt)

	_, err = converter.Convert(table, nil, nil)
	assert.Error(t, err, "default aliases do not cover these headers")
}

func TestLoadTableUnsupported(t *testing.T) {
	t.Parallel()

	_, err := converter.LoadTable("adressen.ods", config.Default())
	assert.ErrorIs(t, err, converter.ErrUnsupportedFormat)
}

func TestSenderRecord(t *testing.T) {
	t.Parallel()

	assert.Nil(t, converter.SenderRecord(nil, nil))
	assert.Nil(t, converter.SenderRecord(&config.Sender{City: "Bonn"}, nil))

	rec := converter.SenderRecord(&config.Sender{
		Name:       " Versand  AG ",
		Street:     "Lagerweg 1",
		PostalCode: "80331",
		City:       "München",
		Country:    "Deutschland",
	}, nil)
	require.NotNil(t, rec)
	assert.Equal(t, types.MappedAddress{
		Name:      "Versand AG",
		Strasse:   "Lagerweg",
		Nummer:    "1",
		PLZ:       "80331",
		Stadt:     "München",
		Land:      "DEU",
		AdressTyp: types.AddressTypeHouse,
	}, *rec)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.InputDir = filepath.Join(root, "input")
	cfg.OutputDir = filepath.Join(root, "output")
	cfg.InputArchiveDir = filepath.Join(root, "archive")
	cfg.OutputFormat = "{name}_labels.csv"
	require.NoError(t, utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir).EnsureDirectories())
	return cfg
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Sender = &config.Sender{Name: "Versand AG", Street: "Lagerweg", Number: "1", PostalCode: "80331", City: "München"}
	cfg.ExportFilter = "domestic"

	input := filepath.Join(cfg.InputDir, "kunden.csv")
	require.NoError(t, os.WriteFile(input, []byte(
		"Vorname;Name;Adresse1;PLZ;Ort;Land\n"+
			"Jörg;Weiß;Blumenstraße 5;10115;Berlin;DE\n"+
			"Anna;Alpen;Ring 2;1010;Wien;Österreich\n"+
			"Tom;Test;Am Markt 1;12345;Irgendwo;Atlantis\n"), 0o644))

	result := converter.New(input, cfg, nil).Run()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	assert.Equal(t, filepath.Join(cfg.OutputDir, "kunden_labels.csv"), result.OutputFile)
	assert.Equal(t, 3, result.Stats.RowsProcessed)
	assert.Equal(t, 2, result.Stats.RecordsExported)
	assert.Equal(t, 1, result.Stats.RecordsWithWarnings)
	assert.Equal(t, 1, result.Stats.Warnings)
	assert.Positive(t, result.Stats.ProcessingTime)

	raw, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	text, err := charmap.Windows1252.NewDecoder().String(string(raw))
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"NAME;ZUSATZ;STRASSE;NUMMER;PLZ;STADT;LAND;ADRESS_TYP;REFERENZ",
		"Versand AG;;Lagerweg;1;80331;München;DEU;HOUSE;",
		"Jörg Weiß;;Blumenstraße;5;10115;Berlin;DEU;HOUSE;1",
		"Tom Test;;Am Markt;1;12345;Irgendwo;DEU;HOUSE;3",
		"",
	}, "\r\n"), text)

	assert.FileExists(t, result.WarningLog)
	assert.NoFileExists(t, input)
	assert.FileExists(t, filepath.Join(cfg.InputArchiveDir, "kunden.csv"))
}

func TestRunArchivesByDate(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.ArchiveByDate = true
	input := filepath.Join(cfg.InputDir, "kunden.csv")
	require.NoError(t, os.WriteFile(input, []byte("Name;Adresse1;PLZ;Ort\nMuster;Weg 1;10115;Berlin\n"), 0o644))

	before := time.Now()
	result := converter.New(input, cfg, nil).Run()
	require.True(t, result.Success)

	assert.NoFileExists(t, input)
	assert.FileExists(t, filepath.Join(cfg.InputArchiveDir, before.Format("2006"), before.Format("01"), before.Format("02"), "kunden.csv"))
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	input := filepath.Join(cfg.InputDir, "kunden.csv")
	require.NoError(t, os.WriteFile(input, []byte("Name;Adresse1;PLZ;Ort\nMuster;Weg 1;10115;Berlin\n"), 0o644))

	conv := converter.New(input, cfg, nil)
	conv.DryRun = true
	result := conv.Run()

	require.True(t, result.Success)
	assert.Empty(t, result.OutputFile)
	assert.Equal(t, 1, result.Stats.RecordsExported)
	assert.FileExists(t, input)
}

func TestRunMissingMappingKeepsInput(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	input := filepath.Join(cfg.InputDir, "kaputt.csv")
	require.NoError(t, os.WriteFile(input, []byte("Name;PLZ\nMuster;10115\n"), 0o644))

	result := converter.New(input, cfg, nil).Run()

	assert.False(t, result.Success)
	var missing *converter.MissingMappingError
	assert.ErrorAs(t, result.Error, &missing)
	assert.FileExists(t, input)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
