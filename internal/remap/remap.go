// =============================================================================
// Address Label Converter - Column Remapper
// =============================================================================
//
// Source spreadsheets name their columns however the exporting system likes.
// The remapper renames them onto the canonical input keys understood by the
// address transformer, using a case-insensitive alias table.
//
// MATCHING:
//   Alias keys and row keys are both lower-cased and whitespace-cleaned.
//   A row key with an alias is stored under the alias target; every other
//   key is passed through under its lower-cased form, so a column already
//   named "city" needs no alias.
//
// CUSTOMIZATION:
//   A caller-supplied alias table replaces the default table entirely.
//   Add entries for every column you want renamed.
//
// =============================================================================

package remap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ginjaninja78/address-label-converter/internal/normalize"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// AliasTable maps a source column header to a canonical field key.
type AliasTable map[string]string

// DefaultAliases returns the alias table for the German CRM export layout.
func DefaultAliases() AliasTable {
	return AliasTable{
		"Anrede":   types.FieldSalutation,
		"Vorname":  types.FieldFirstName,
		"Name":     types.FieldLastName,
		"Adresse1": types.FieldStreet,
		"Adresse2": types.FieldAddressAddition,
		"PLZ":      types.FieldPostalCode,
		"Ort":      types.FieldCity,
		"Land":     types.FieldCountry,
	}
}

// DefaultRequired lists the canonical fields a batch must be able to fill.
func DefaultRequired() []string {
	return []string{
		types.FieldLastName,
		types.FieldStreet,
		types.FieldPostalCode,
		types.FieldCity,
	}
}

// lookup is an alias table keyed by normalised header.
type lookup map[string]string

func (a AliasTable) lookup() lookup {
	l := make(lookup, len(a))
	for k, v := range a {
		l[key(k)] = key(v)
	}
	return l
}

// target returns the canonical key for header. Headers without an alias
// keep their text, lower-cased and trimmed.
func (l lookup) target(header string) string {
	if t, ok := l[key(header)]; ok {
		return t
	}
	return strings.ToLower(strings.TrimSpace(header))
}

// Remap renames the keys of row according to aliases.
//
// When several source keys land on the same target, keys are applied in
// sorted order and an empty value never replaces a non-empty one.
func Remap(row types.RawRow, aliases AliasTable) map[string]any {
	return aliases.lookup().remap(row)
}

func (l lookup) remap(row types.RawRow) map[string]any {
	out := make(map[string]any, len(row))

	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		target := l.target(k)
		if target == "" {
			continue
		}
		v := row[k]
		if prev, exists := out[target]; exists && normalize.String(v) == "" && normalize.String(prev) != "" {
			continue
		}
		out[target] = v
	}

	return out
}

// RemapAll remaps every row with the same alias table.
func RemapAll(rows []types.RawRow, aliases AliasTable) []map[string]any {
	l := aliases.lookup()
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		out[i] = l.remap(row)
	}
	return out
}

// MissingRequired returns the required canonical fields no header maps to,
// in the order they appear in required.
func MissingRequired(headers []string, aliases AliasTable, required []string) []string {
	l := aliases.lookup()
	covered := make(map[string]bool, len(headers))
	for _, h := range headers {
		covered[l.target(h)] = true
	}

	var missing []string
	for _, field := range required {
		if !covered[key(field)] {
			missing = append(missing, field)
		}
	}
	return missing
}

// ParsePairs builds an alias table from "Header=field" pairs as given on
// the command line.
func ParsePairs(pairs []string) (AliasTable, error) {
	table := make(AliasTable, len(pairs))
	for _, p := range pairs {
		header, field, ok := strings.Cut(p, "=")
		header = normalize.Clean(header)
		field = normalize.Clean(field)
		if !ok || header == "" || field == "" {
			return nil, fmt.Errorf("invalid alias %q: expected Header=field", p)
		}
		table[header] = field
	}
	return table, nil
}

func key(s string) string {
	return strings.ToLower(normalize.Clean(s))
}
