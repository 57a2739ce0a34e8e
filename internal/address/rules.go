package address

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ginjaninja78/address-label-converter/internal/normalize"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// =============================================================================
// STREET / NUMBER SPLITTING
// =============================================================================

// trailingNumber matches "<street> <digits>[letter|-|/]", e.g. "Musterstraße 12a".
var trailingNumber = regexp.MustCompile(`^(.+?)\s+(\d+[\p{L}/-]?)$`)

// splitRule is one street splitting heuristic. ok is false when the rule
// does not apply.
type splitRule struct {
	name  string
	apply func(street string, tokens []string) (name, number string, ok bool)
}

// splitRules are evaluated in order; the first rule that applies wins.
var splitRules = []splitRule{
	{
		name: "trailing number",
		apply: func(street string, _ []string) (string, string, bool) {
			m := trailingNumber.FindStringSubmatch(street)
			if m == nil {
				return "", "", false
			}
			return m[1], m[2], true
		},
	},
	{
		name: "last token has digit",
		apply: func(_ string, tokens []string) (string, string, bool) {
			if len(tokens) < 2 || !hasDigit(tokens[len(tokens)-1]) {
				return "", "", false
			}
			return strings.Join(tokens[:len(tokens)-1], " "), tokens[len(tokens)-1], true
		},
	},
	{
		name: "leading number",
		apply: func(_ string, tokens []string) (string, string, bool) {
			if len(tokens) < 2 || !hasDigit(tokens[0]) {
				return "", "", false
			}
			return strings.Join(tokens[1:], " "), tokens[0], true
		},
	},
}

// SplitStreetNumber splits a street line into street name and house number.
//
// EXAMPLES:
//
//	"Musterstraße 12a"  -> ("Musterstraße", "12a")
//	"Am Markt 3-5"      -> ("Am Markt", "3-5")
//	"12 Main Street"    -> ("Main Street", "12")
//	"Hauptweg"          -> ("Hauptweg", "")
//	"12a"               -> ("12a", "")
//
// The last-token and first-token rules only apply to lines of at least two
// tokens, so a line made of a single token is always the street name.
func SplitStreetNumber(street string) (name, number string) {
	street = normalize.Clean(street)
	if street == "" {
		return "", ""
	}

	tokens := strings.Fields(street)
	for _, rule := range splitRules {
		if name, number, ok := rule.apply(street, tokens); ok {
			return name, number
		}
	}

	return street, ""
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// =============================================================================
// ADDRESS TYPE
// =============================================================================

// typeRule classifies an address addition by case-sensitive substring.
type typeRule struct {
	substrings []string
	typ        types.AddressType
}

// typeRules are checked in priority order; no match means HOUSE.
var typeRules = []typeRule{
	{substrings: []string{"Postfach"}, typ: types.AddressTypePOBox},
	{substrings: []string{"Großempfänger", "Grossempfänger"}, typ: types.AddressTypeMajorRecipient},
}

// MapAddressType derives ADRESS_TYP from the address addition.
//
// Only the literal spellings listed in typeRules match. "GROSSEMPFAENGER"
// and other transliterations classify as HOUSE.
func MapAddressType(addition string) types.AddressType {
	addition = normalize.Clean(addition)
	for _, rule := range typeRules {
		for _, s := range rule.substrings {
			if strings.Contains(addition, s) {
				return rule.typ
			}
		}
	}
	return types.AddressTypeHouse
}
