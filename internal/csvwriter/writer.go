// =============================================================================
// Address Label Converter - CSV Export Writer
// =============================================================================
//
// This module serialises MappedAddress records into the import format of the
// postal provider's label tool.
//
// FILE LAYOUT:
//
//   NAME;ZUSATZ;STRASSE;NUMMER;PLZ;STADT;LAND;ADRESS_TYP;REFERENZ\r\n
//   <sender record, when configured>\r\n
//   <one line per record passing the filter>\r\n
//
// QUOTING:
//   A field is quoted only when it contains the delimiter, a double quote,
//   CR or LF. Inner double quotes are doubled.
//
// ENCODING:
//   The text is produced as UTF-8 and encoded to Windows-1252 as the last
//   step (see cp1252.go).
//
// =============================================================================

package csvwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// =============================================================================
// FORMAT CONSTANTS
// =============================================================================

const (
	// Delimiter separates fields on a line.
	Delimiter = ';'

	// LineEnding terminates every line, including the last.
	LineEnding = "\r\n"
)

// =============================================================================
// FILTER
// =============================================================================

// Filter selects which records are exported.
type Filter string

const (
	FilterAll           Filter = "all"
	FilterDomestic      Filter = "domestic"
	FilterInternational Filter = "international"
)

// domesticCodes are the LAND values counted as domestic after trimming and
// upper-casing.
var domesticCodes = map[string]bool{
	"DE":      true,
	"DEU":     true,
	"GERMANY": true,
}

// ParseFilter parses a filter name. The empty string selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterDomestic, FilterInternational:
		return f, nil
	}
	return "", fmt.Errorf("unknown export filter %q (want all, domestic or international)", s)
}

// IsDomestic reports whether rec is addressed to Germany.
func IsDomestic(rec types.MappedAddress) bool {
	return domesticCodes[strings.ToUpper(strings.TrimSpace(rec.Land))]
}

// Match reports whether rec passes the filter.
func (f Filter) Match(rec types.MappedAddress) bool {
	switch f {
	case FilterDomestic:
		return IsDomestic(rec)
	case FilterInternational:
		return !IsDomestic(rec)
	}
	return true
}

// Apply returns the records passing the filter, in order.
func (f Filter) Apply(records []types.MappedAddress) []types.MappedAddress {
	out := make([]types.MappedAddress, 0, len(records))
	for _, rec := range records {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// =============================================================================
// WRITER
// =============================================================================

// Options controls one export.
type Options struct {
	// Sender is prepended as the first data row when non-nil. It is never
	// filtered.
	Sender *types.MappedAddress

	// Filter selects the exported records. The zero value exports all.
	Filter Filter
}

// Text renders the export as UTF-8 text.
func Text(records []types.MappedAddress, opts Options) string {
	var b strings.Builder

	writeLine(&b, types.ExportColumns)

	if opts.Sender != nil {
		values := opts.Sender.Values()
		if opts.Sender.Referenz == 0 {
			values[len(values)-1] = ""
		}
		writeLine(&b, values)
	}

	for _, rec := range opts.Filter.Apply(records) {
		writeLine(&b, rec.Values())
	}

	return b.String()
}

// Render renders the export as Windows-1252 bytes.
func Render(records []types.MappedAddress, opts Options) []byte {
	return EncodeWindows1252(Text(records, opts))
}

// Write renders the export to w.
func Write(w io.Writer, records []types.MappedAddress, opts Options) error {
	if _, err := io.Copy(w, bytes.NewReader(Render(records, opts))); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(Delimiter)
		}
		b.WriteString(quote(f))
	}
	b.WriteString(LineEnding)
}

// quote wraps f in double quotes when it contains a delimiter, a quote or a
// line break.
func quote(f string) string {
	if !strings.ContainsAny(f, string(Delimiter)+"\"\r\n") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}
