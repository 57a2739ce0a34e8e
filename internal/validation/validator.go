// =============================================================================
// Address Label Converter - Validation Engine
// =============================================================================
//
// This module checks a batch of MappedAddress records against the limits of
// the label tool and reports human-readable warnings per record.
//
// VALIDATION STRATEGY:
//   1. Record-level: unmapped country, per-field max length, full-address
//      length. Every failing check is reported, not only the first.
//   2. Batch-level: REFERENZ uniqueness, computed in one grouping pass after
//      all records were checked.
//
// ERROR HANDLING:
//   - Warnings are collected, never returned as errors
//   - Export proceeds regardless of warnings
//   - The input slice is never modified; each call returns a fresh map
//
// =============================================================================

package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// =============================================================================
// LIMITS
// =============================================================================

// FieldLimit is the maximum character count of one output column.
type FieldLimit struct {
	Field string
	Max   int
}

// FieldLimits lists the per-field limits in reporting order.
var FieldLimits = []FieldLimit{
	{Field: types.ColName, Max: 50},
	{Field: types.ColZusatz, Max: 50},
	{Field: types.ColStrasse, Max: 40},
	{Field: types.ColNummer, Max: 7},
	{Field: types.ColPLZ, Max: 9},
	{Field: types.ColStadt, Max: 40},
	{Field: types.ColLand, Max: 3},
	{Field: types.ColAdressTyp, Max: 99},
	{Field: types.ColReferenz, Max: 20},
}

// MaxFullAddressLength limits the space-joined address block.
const MaxFullAddressLength = 72

// compositeFields make up the printed address block.
var compositeFields = []string{
	types.ColName,
	types.ColZusatz,
	types.ColStrasse,
	types.ColNummer,
	types.ColPLZ,
	types.ColStadt,
}

// MsgReferenzNotUnique is appended to every record sharing its REFERENZ.
const MsgReferenzNotUnique = "REFERENZ must be unique"

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Validate checks every record and returns the warnings keyed by 0-based
// record index. Records without warnings have no entry.
func Validate(records []types.MappedAddress) types.Warnings {
	warnings := make(types.Warnings)

	for i, rec := range records {
		if msgs := validateRecord(rec); len(msgs) > 0 {
			warnings[i] = msgs
		}
	}

	for _, indices := range duplicateReferences(records) {
		for _, i := range indices {
			warnings[i] = append(warnings[i], MsgReferenzNotUnique)
		}
	}

	return warnings
}

// validateRecord runs the record-level checks in reporting order.
func validateRecord(rec types.MappedAddress) []string {
	var msgs []string

	if rec.LandUnmappedOriginal != "" {
		msgs = append(msgs, fmt.Sprintf("LAND could not be mapped from \"%s\", defaulted to %s",
			rec.LandUnmappedOriginal, rec.Land))
	}

	for _, limit := range FieldLimits {
		value, _ := rec.Field(limit.Field)
		if n := utf8.RuneCountInString(value); n > limit.Max {
			msgs = append(msgs, fmt.Sprintf("%s exceeds max length (%d > %d)", limit.Field, n, limit.Max))
		}
	}

	if n := utf8.RuneCountInString(FullAddress(rec)); n > MaxFullAddressLength {
		msgs = append(msgs, fmt.Sprintf("Full address exceeds max length (%d > %d)", n, MaxFullAddressLength))
	}

	return msgs
}

// FullAddress joins the non-empty address block fields with single spaces.
func FullAddress(rec types.MappedAddress) string {
	parts := make([]string, 0, len(compositeFields))
	for _, f := range compositeFields {
		value, _ := rec.Field(f)
		if value = strings.TrimSpace(value); value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, " ")
}

// duplicateReferences groups record indices by REFERENZ and returns the
// groups with more than one member, ordered by REFERENZ.
func duplicateReferences(records []types.MappedAddress) [][]int {
	groups := make(map[int][]int, len(records))
	for i, rec := range records {
		groups[rec.Referenz] = append(groups[rec.Referenz], i)
	}

	refs := make([]int, 0)
	for ref, indices := range groups {
		if len(indices) > 1 {
			refs = append(refs, ref)
		}
	}
	sort.Ints(refs)

	out := make([][]int, len(refs))
	for i, ref := range refs {
		out[i] = groups[ref]
	}
	return out
}

// =============================================================================
// REPORTING
// =============================================================================

// Summary counts the warnings of one validation pass.
type Summary struct {
	// Records is the number of records with at least one warning.
	Records int

	// Warnings is the total number of warning messages.
	Warnings int
}

// Summarize counts affected records and total warnings.
func Summarize(warnings types.Warnings) Summary {
	s := Summary{Records: len(warnings)}
	for _, msgs := range warnings {
		s.Warnings += len(msgs)
	}
	return s
}

// Lines renders the warnings as "Record <n>: <message>" lines, where n is
// the 1-based record position, ordered by position.
func Lines(warnings types.Warnings) []string {
	indices := make([]int, 0, len(warnings))
	for i := range warnings {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	var lines []string
	for _, i := range indices {
		for _, msg := range warnings[i] {
			lines = append(lines, "Record "+strconv.Itoa(i+1)+": "+msg)
		}
	}
	return lines
}
