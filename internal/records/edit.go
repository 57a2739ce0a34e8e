package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/address-label-converter/internal/normalize"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// ParseAssignments parses "FIELD=VALUE" pairs. Field names are export
// column names and are matched case-insensitively.
func ParseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		field, value, ok := strings.Cut(p, "=")
		field = strings.ToUpper(strings.TrimSpace(field))
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected FIELD=VALUE", p)
		}
		if _, known := (types.MappedAddress{}).Field(field); !known {
			return nil, fmt.Errorf("unknown field %q (want one of %s)", field, strings.Join(types.ExportColumns, ", "))
		}
		out[field] = value
	}
	return out, nil
}

// Apply returns rec with the assigned fields replaced. Values are cleaned;
// LAND is upper-cased and clears the unmapped-country marker.
func Apply(rec types.MappedAddress, assignments map[string]string) (types.MappedAddress, error) {
	for field, raw := range assignments {
		value := normalize.Clean(raw)

		switch field {
		case types.ColName:
			rec.Name = value
		case types.ColZusatz:
			rec.Zusatz = value
		case types.ColStrasse:
			rec.Strasse = value
		case types.ColNummer:
			rec.Nummer = value
		case types.ColPLZ:
			rec.PLZ = value
		case types.ColStadt:
			rec.Stadt = value
		case types.ColLand:
			rec.Land = strings.ToUpper(value)
			rec.LandUnmappedOriginal = ""
		case types.ColAdressTyp:
			typ := types.AddressType(strings.ToUpper(value))
			if !typ.Valid() {
				return rec, fmt.Errorf("invalid ADRESS_TYP %q (want HOUSE, POBOX or MAJORRECIPIENT)", value)
			}
			rec.AdressTyp = typ
		case types.ColReferenz:
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return rec, fmt.Errorf("invalid REFERENZ %q: must be a positive integer", value)
			}
			rec.Referenz = n
		default:
			return rec, fmt.Errorf("unknown field %q", field)
		}
	}
	return rec, nil
}
