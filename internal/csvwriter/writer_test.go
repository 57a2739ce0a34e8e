package csvwriter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/ginjaninja78/address-label-converter/internal/csvwriter"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

const header = "NAME;ZUSATZ;STRASSE;NUMMER;PLZ;STADT;LAND;ADRESS_TYP;REFERENZ\r\n"

func record(name, land string, ref int) types.MappedAddress {
	return types.MappedAddress{
		Name:      name,
		Strasse:   "Blumenstraße",
		Nummer:    "5",
		PLZ:       "10115",
		Stadt:     "Berlin",
		Land:      land,
		AdressTyp: types.AddressTypeHouse,
		Referenz:  ref,
	}
}

func TestTextLayout(t *testing.T) {
	t.Parallel()

	got := csvwriter.Text([]types.MappedAddress{record("Max Mustermann", "DEU", 1)}, csvwriter.Options{})

	assert.Equal(t, header+"Max Mustermann;;Blumenstraße;5;10115;Berlin;DEU;HOUSE;1\r\n", got)
}

func TestTextEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, header, csvwriter.Text(nil, csvwriter.Options{}))
}

func TestQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "Firma GmbH", want: "Firma GmbH"},
		{name: "delimiter", value: "A;B", want: `"A;B"`},
		{name: "quote", value: `Die "Firma"`, want: `"Die ""Firma"""`},
		{name: "newline", value: "A\nB", want: "\"A\nB\""},
		{name: "carriage return", value: "A\rB", want: "\"A\rB\""},
		{name: "comma untouched", value: "A, B", want: "A, B"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := record(tt.value, "DEU", 1)
			got := csvwriter.Text([]types.MappedAddress{rec}, csvwriter.Options{})
			line := strings.TrimPrefix(got, header)
			assert.True(t, strings.HasPrefix(line, tt.want+";"), "line %q", line)
		})
	}
}

func TestSenderIsFirstAndUnfiltered(t *testing.T) {
	t.Parallel()

	sender := types.MappedAddress{
		Name:      "Versand AG",
		Strasse:   "Lagerweg",
		Nummer:    "1",
		PLZ:       "80331",
		Stadt:     "München",
		Land:      "DEU",
		AdressTyp: types.AddressTypeHouse,
	}
	records := []types.MappedAddress{
		record("Anna", "AUT", 1),
		record("Ben", "DEU", 2),
	}

	got := csvwriter.Text(records, csvwriter.Options{Sender: &sender, Filter: csvwriter.FilterInternational})

	assert.Equal(t, header+
		"Versand AG;;Lagerweg;1;80331;München;DEU;HOUSE;\r\n"+
		"Anna;;Blumenstraße;5;10115;Berlin;AUT;HOUSE;1\r\n", got)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	records := []types.MappedAddress{
		record("a", "DEU", 1),
		record("b", " de ", 2),
		record("c", "Germany", 3),
		record("d", "AUT", 4),
		record("e", "", 5),
	}

	names := func(recs []types.MappedAddress) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = r.Name
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names(csvwriter.FilterAll.Apply(records)))
	assert.Equal(t, []string{"a", "b", "c"}, names(csvwriter.FilterDomestic.Apply(records)))
	assert.Equal(t, []string{"d", "e"}, names(csvwriter.FilterInternational.Apply(records)))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names(csvwriter.Filter("").Apply(records)))
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]csvwriter.Filter{
		"":              csvwriter.FilterAll,
		"all":           csvwriter.FilterAll,
		" Domestic ":    csvwriter.FilterDomestic,
		"INTERNATIONAL": csvwriter.FilterInternational,
	} {
		got, err := csvwriter.ParseFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := csvwriter.ParseFilter("abroad")
	assert.Error(t, err)
}

func TestWriteEncodesWindows1252(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := csvwriter.Write(&buf, []types.MappedAddress{record("Jörg Weiß", "DEU", 1)}, csvwriter.Options{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "J\xf6rg Wei\xdf;")
	assert.Contains(t, buf.String(), "Blumenstra\xdfe;")

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, csvwriter.Text([]types.MappedAddress{record("Jörg Weiß", "DEU", 1)}, csvwriter.Options{}), string(decoded))
}
