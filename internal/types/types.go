// =============================================================================
// Address Label Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - address     (produces MappedAddress records)
//   - validation  (reads MappedAddress records, produces Warnings)
//   - csvwriter   (serializes MappedAddress records)
//   - csvparser / xlsxparser (produce Table)
//   - records / session (hold the active record set)
//
// =============================================================================

package types

import "strconv"

// =============================================================================
// RAW INPUT
// =============================================================================

// RawRow is one spreadsheet row keyed by its source column header.
// Values are scalars as read by the file parser: string, a number kind,
// or nil when the cell is absent.
type RawRow map[string]any

// Table is the completed result of parsing one input file.
type Table struct {
	// Headers lists the column headers in file order.
	Headers []string

	// Rows holds one RawRow per non-empty data row.
	Rows []RawRow

	// SourceFile is the path the table was read from.
	SourceFile string
}

// =============================================================================
// CANONICAL INPUT KEYS
// =============================================================================

// Canonical field keys understood by the address transformer after
// column remapping.
const (
	FieldSalutation      = "salutation"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldStreet          = "street"
	FieldAddressAddition = "address_addition"
	FieldPostalCode      = "postal_code"
	FieldCity            = "city"
	FieldCountry         = "country"
)

// CanonicalFields lists every canonical input key in display order.
var CanonicalFields = []string{
	FieldSalutation,
	FieldFirstName,
	FieldLastName,
	FieldStreet,
	FieldAddressAddition,
	FieldPostalCode,
	FieldCity,
	FieldCountry,
}

// =============================================================================
// OUTPUT RECORD
// =============================================================================

// AddressType classifies the delivery point of a record.
type AddressType string

const (
	AddressTypeHouse          AddressType = "HOUSE"
	AddressTypePOBox          AddressType = "POBOX"
	AddressTypeMajorRecipient AddressType = "MAJORRECIPIENT"
)

// Valid reports whether t is one of the known address types.
func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeHouse, AddressTypePOBox, AddressTypeMajorRecipient:
		return true
	}
	return false
}

// DefaultCountry is the alpha-3 code used whenever a country cannot be
// resolved or is absent.
const DefaultCountry = "DEU"

// MappedAddress is the canonical output record exported to the label tool.
type MappedAddress struct {
	Name      string      `json:"NAME" yaml:"NAME"`
	Zusatz    string      `json:"ZUSATZ" yaml:"ZUSATZ"`
	Strasse   string      `json:"STRASSE" yaml:"STRASSE"`
	Nummer    string      `json:"NUMMER" yaml:"NUMMER"`
	PLZ       string      `json:"PLZ" yaml:"PLZ"`
	Stadt     string      `json:"STADT" yaml:"STADT"`
	Land      string      `json:"LAND" yaml:"LAND"`
	AdressTyp AddressType `json:"ADRESS_TYP" yaml:"ADRESS_TYP"`
	Referenz  int         `json:"REFERENZ" yaml:"REFERENZ"`

	// LandUnmappedOriginal carries the unresolved source country string.
	// It is empty when the country resolved or was absent.
	LandUnmappedOriginal string `json:"LAND_UNMAPPED_ORIGINAL,omitempty" yaml:"LAND_UNMAPPED_ORIGINAL,omitempty"`
}

// Output field names in export order.
const (
	ColName      = "NAME"
	ColZusatz    = "ZUSATZ"
	ColStrasse   = "STRASSE"
	ColNummer    = "NUMMER"
	ColPLZ       = "PLZ"
	ColStadt     = "STADT"
	ColLand      = "LAND"
	ColAdressTyp = "ADRESS_TYP"
	ColReferenz  = "REFERENZ"
)

// ExportColumns is the fixed, ordered header of the export file.
var ExportColumns = []string{
	ColName, ColZusatz, ColStrasse, ColNummer, ColPLZ,
	ColStadt, ColLand, ColAdressTyp, ColReferenz,
}

// Field returns the stringified value of the named output column.
// Unknown names return an empty string and false.
func (a MappedAddress) Field(name string) (string, bool) {
	switch name {
	case ColName:
		return a.Name, true
	case ColZusatz:
		return a.Zusatz, true
	case ColStrasse:
		return a.Strasse, true
	case ColNummer:
		return a.Nummer, true
	case ColPLZ:
		return a.PLZ, true
	case ColStadt:
		return a.Stadt, true
	case ColLand:
		return a.Land, true
	case ColAdressTyp:
		return string(a.AdressTyp), true
	case ColReferenz:
		return strconv.Itoa(a.Referenz), true
	}
	return "", false
}

// Values returns the record's export values in ExportColumns order.
func (a MappedAddress) Values() []string {
	values := make([]string, len(ExportColumns))
	for i, col := range ExportColumns {
		values[i], _ = a.Field(col)
	}
	return values
}

// =============================================================================
// WARNINGS
// =============================================================================

// Warnings maps a 0-based record index to its ordered warning messages.
// Records without warnings have no entry.
type Warnings map[int][]string
