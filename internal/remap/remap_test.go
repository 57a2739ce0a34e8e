package remap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/address-label-converter/internal/remap"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

func TestRemapDefaultAliases(t *testing.T) {
	t.Parallel()

	row := types.RawRow{
		"Anrede":   "Herr",
		"Vorname":  "Max",
		"Name":     "Mustermann",
		"Adresse1": "Hauptstraße 5",
		"PLZ":      10115,
		"Ort":      "Berlin",
		"Land":     "Deutschland",
		"Telefon":  "030 123",
	}

	got := remap.Remap(row, remap.DefaultAliases())

	assert.Equal(t, map[string]any{
		"salutation":  "Herr",
		"first_name":  "Max",
		"last_name":   "Mustermann",
		"street":      "Hauptstraße 5",
		"postal_code": 10115,
		"city":        "Berlin",
		"country":     "Deutschland",
		"telefon":     "030 123",
	}, got)
}

func TestRemapIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := remap.Remap(types.RawRow{"ORT": "Köln", " plz ": "50667"}, remap.DefaultAliases())

	assert.Equal(t, "Köln", got["city"])
	assert.Equal(t, "50667", got["postal_code"])
}

func TestRemapPassthroughKeepsInnerWhitespace(t *testing.T) {
	t.Parallel()

	got := remap.Remap(types.RawRow{" Post  Code ": "50667", "Ort  ": "Köln"}, remap.DefaultAliases())

	assert.Equal(t, map[string]any{"post  code": "50667", "city": "Köln"}, got)
}

func TestRemapCustomTableReplacesDefault(t *testing.T) {
	t.Parallel()

	aliases := remap.AliasTable{"Stadt": "city"}
	got := remap.Remap(types.RawRow{"Stadt": "Bonn", "Ort": "Köln"}, aliases)

	assert.Equal(t, "Bonn", got["city"])
	assert.Equal(t, "Köln", got["ort"], "default alias must not apply")
}

func TestRemapEmptyDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	aliases := remap.AliasTable{"Ort": "city", "Stadt": "city"}
	got := remap.Remap(types.RawRow{"Ort": "Köln", "Stadt": ""}, aliases)

	assert.Equal(t, "Köln", got["city"])
}

func TestRemapAllKeepsOrder(t *testing.T) {
	t.Parallel()

	rows := []types.RawRow{{"Ort": "A"}, {"Ort": "B"}, {"Ort": "C"}}
	got := remap.RemapAll(rows, remap.DefaultAliases())

	require.Len(t, got, 3)
	for i, want := range []string{"A", "B", "C"} {
		assert.Equal(t, want, got[i]["city"])
	}
}

func TestMissingRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers []string
		want    []string
	}{
		{
			name:    "all present",
			headers: []string{"Vorname", "Name", "Adresse1", "PLZ", "Ort"},
			want:    nil,
		},
		{
			name:    "canonical header passes through",
			headers: []string{"Name", "Adresse1", "postal_code", "City"},
			want:    nil,
		},
		{
			name:    "missing street and city",
			headers: []string{"Name", "PLZ"},
			want:    []string{"street", "city"},
		},
		{
			name:    "no headers",
			headers: nil,
			want:    []string{"last_name", "street", "postal_code", "city"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := remap.MissingRequired(tt.headers, remap.DefaultAliases(), remap.DefaultRequired())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePairs(t *testing.T) {
	t.Parallel()

	table, err := remap.ParsePairs([]string{"Stadt=city", " Strasse = street "})
	require.NoError(t, err)
	assert.Equal(t, remap.AliasTable{"Stadt": "city", "Strasse": "street"}, table)

	_, err = remap.ParsePairs([]string{"Stadt"})
	assert.Error(t, err)

	_, err = remap.ParsePairs([]string{"=city"})
	assert.Error(t, err)
}
