// =============================================================================
// Address Label Converter - Country Directory
// =============================================================================
//
// The directory resolves free-form country strings to ISO 3166-1 alpha-3
// codes. Four keys are registered per country:
//   - English short name
//   - German short name
//   - alpha-2 code
//   - alpha-3 code
//
// All keys are compared case-insensitively after whitespace normalisation.
// There is no fuzzy or substring matching: "Germany " resolves, "Germ" does
// not.
//
// =============================================================================

package country

import (
	"sort"
	"strings"
	"sync"

	"github.com/ginjaninja78/address-label-converter/internal/normalize"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// Entry is one row of the ISO 3166-1 table.
type Entry struct {
	EnglishShortName string
	GermanShortName  string
	Alpha2           string
	Alpha3           string
	Numeric          string
}

// Resolution is the outcome of a lookup.
//
// Matched is false when the input was non-empty and no key matched; Code is
// then the default country.
type Resolution struct {
	Code    string
	Matched bool
}

// Directory is an immutable lookup table from normalised keys to alpha-3
// codes. It is safe for concurrent use.
type Directory struct {
	keys    map[string]string
	byCode  map[string]Entry
	entries []Entry
}

var (
	defaultOnce sync.Once
	defaultDir  *Directory
)

// Default returns the directory over the built-in ISO table. It is built on
// first use and shared afterwards.
func Default() *Directory {
	defaultOnce.Do(func() {
		defaultDir = NewDirectory(builtin)
	})
	return defaultDir
}

// NewDirectory builds a directory over entries.
//
// When two entries register the same key, the later entry wins.
func NewDirectory(entries []Entry) *Directory {
	d := &Directory{
		keys:    make(map[string]string, len(entries)*4),
		byCode:  make(map[string]Entry, len(entries)),
		entries: make([]Entry, len(entries)),
	}
	copy(d.entries, entries)

	for _, e := range entries {
		code := strings.ToUpper(e.Alpha3)
		for _, k := range []string{e.EnglishShortName, e.GermanShortName, e.Alpha2, e.Alpha3} {
			if key := normalizeKey(k); key != "" {
				d.keys[key] = code
			}
		}
		d.byCode[code] = e
	}

	return d
}

// Resolve maps input to an alpha-3 code.
//
// Empty input resolves to the default country and counts as matched. A miss
// also yields the default country, with Matched set to false.
func (d *Directory) Resolve(input string) Resolution {
	key := normalizeKey(input)
	if key == "" {
		return Resolution{Code: types.DefaultCountry, Matched: true}
	}
	if code, ok := d.keys[key]; ok {
		return Resolution{Code: code, Matched: true}
	}
	return Resolution{Code: types.DefaultCountry, Matched: false}
}

// Lookup returns the entry registered for an alpha-3 code.
func (d *Directory) Lookup(alpha3 string) (Entry, bool) {
	e, ok := d.byCode[strings.ToUpper(normalize.Clean(alpha3))]
	return e, ok
}

// Entries returns the table sorted by English short name.
func (d *Directory) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].EnglishShortName < out[j].EnglishShortName
	})
	return out
}

// Len reports the number of registered keys.
func (d *Directory) Len() int {
	return len(d.keys)
}

func normalizeKey(s string) string {
	return strings.ToLower(normalize.Clean(s))
}
