package country_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/address-label-converter/internal/country"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := country.Default()

	tests := []struct {
		name        string
		input       string
		wantCode    string
		wantMatched bool
	}{
		{name: "empty defaults", input: "", wantCode: "DEU", wantMatched: true},
		{name: "whitespace defaults", input: "   ", wantCode: "DEU", wantMatched: true},
		{name: "english name", input: "Germany", wantCode: "DEU", wantMatched: true},
		{name: "german name", input: "Deutschland", wantCode: "DEU", wantMatched: true},
		{name: "alpha2 lower case", input: "at", wantCode: "AUT", wantMatched: true},
		{name: "alpha3", input: "CHE", wantCode: "CHE", wantMatched: true},
		{name: "german umlaut name", input: "Österreich", wantCode: "AUT", wantMatched: true},
		{name: "upper case umlaut", input: "ÖSTERREICH", wantCode: "AUT", wantMatched: true},
		{name: "padding and case", input: "  fRaNkReIcH ", wantCode: "FRA", wantMatched: true},
		{name: "inner whitespace collapsed", input: "United   Kingdom", wantCode: "GBR", wantMatched: true},
		{name: "schweiz", input: "Schweiz", wantCode: "CHE", wantMatched: true},
		{name: "unknown", input: "Atlantis", wantCode: "DEU", wantMatched: false},
		{name: "no prefix match", input: "Germ", wantCode: "DEU", wantMatched: false},
		{name: "no substring match", input: "Federal Republic of Germany", wantCode: "DEU", wantMatched: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dir.Resolve(tt.input)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMatched, got.Matched)
		})
	}
}

func TestDefaultIsShared(t *testing.T) {
	t.Parallel()
	assert.Same(t, country.Default(), country.Default())
}

func TestBuiltinTableResolvesEveryKey(t *testing.T) {
	t.Parallel()

	dir := country.Default()
	entries := dir.Entries()
	require.Len(t, entries, 249)

	for _, e := range entries {
		for _, key := range []string{e.EnglishShortName, e.GermanShortName, e.Alpha2, e.Alpha3} {
			got := dir.Resolve(key)
			assert.True(t, got.Matched, "key %q", key)
			assert.Equal(t, e.Alpha3, got.Code, "key %q", key)
		}
		assert.Len(t, e.Alpha2, 2)
		assert.Len(t, e.Alpha3, 3)
		assert.Len(t, e.Numeric, 3)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	dir := country.Default()

	e, ok := dir.Lookup("deu")
	require.True(t, ok)
	assert.Equal(t, "Germany", e.EnglishShortName)
	assert.Equal(t, "Deutschland", e.GermanShortName)
	assert.Equal(t, "DE", e.Alpha2)
	assert.Equal(t, "276", e.Numeric)

	_, ok = dir.Lookup("XXX")
	assert.False(t, ok)
}

func TestNewDirectoryLaterEntryWins(t *testing.T) {
	t.Parallel()

	dir := country.NewDirectory([]country.Entry{
		{EnglishShortName: "Freedonia", Alpha2: "FD", Alpha3: "FDA"},
		{EnglishShortName: "Freedonia", Alpha2: "FN", Alpha3: "FDN"},
	})

	assert.Equal(t, "FDN", dir.Resolve("freedonia").Code)
	assert.Equal(t, "FDA", dir.Resolve("FD").Code)
}

func TestNewDirectorySkipsEmptyGermanName(t *testing.T) {
	t.Parallel()

	dir := country.NewDirectory([]country.Entry{
		{EnglishShortName: "Freedonia", Alpha2: "FD", Alpha3: "FDA"},
	})

	assert.Equal(t, 3, dir.Len())
}
