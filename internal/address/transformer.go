// =============================================================================
// Address Label Converter - Address Transformer
// =============================================================================
//
// This module turns one remapped input row into one MappedAddress record.
//
// TRANSFORMATION STEPS (in order):
//   1. NAME       first_name + last_name, joined by one space
//   2. STRASSE    street name split off the "street" value
//      NUMMER     house number split off the "street" value
//   3. ZUSATZ     address_addition
//   4. ADRESS_TYP classified from ZUSATZ
//   5. LAND       alpha-3 code resolved through the country directory
//   6. PLZ/STADT  postal_code and city
//   7. REFERENZ   sequence index + 1
//
// Every string is cleaned before it is stored. Malformed input never
// produces an error: fields degrade to an empty string or their default.
//
// =============================================================================

package address

import (
	"runtime"
	"sync"

	"github.com/ginjaninja78/address-label-converter/internal/country"
	"github.com/ginjaninja78/address-label-converter/internal/normalize"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer converts remapped rows into output records. It holds no
// per-row state and is safe for concurrent use.
type Transformer struct {
	countries *country.Directory
	workers   int
}

// NewTransformer creates a Transformer resolving countries through dir.
//
// PARAMETERS:
//   - dir: The country directory. nil selects country.Default().
//   - workers: Upper bound on goroutines used by TransformAll. Values below
//     one select GOMAXPROCS.
func NewTransformer(dir *country.Directory, workers int) *Transformer {
	if dir == nil {
		dir = country.Default()
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Transformer{
		countries: dir,
		workers:   workers,
	}
}

// Transform builds the record for one remapped row.
//
// PARAMETERS:
//   - row: Canonical keys to raw cell values, as returned by remap.Remap.
//   - index: 0-based position of the row in its batch.
//
// RETURNS:
//   - The output record. REFERENZ is index+1.
func (t *Transformer) Transform(row map[string]any, index int) types.MappedAddress {
	field := func(key string) string {
		return normalize.String(row[key])
	}

	var rec types.MappedAddress

	// Step 1: full name.
	rec.Name = normalize.Clean(field(types.FieldFirstName) + " " + field(types.FieldLastName))

	// Step 2: street and house number.
	rec.Strasse, rec.Nummer = SplitStreetNumber(field(types.FieldStreet))

	// Step 3 and 4: addition and the address type derived from it.
	rec.Zusatz = field(types.FieldAddressAddition)
	rec.AdressTyp = MapAddressType(rec.Zusatz)

	// Step 5: country.
	original := field(types.FieldCountry)
	res := t.countries.Resolve(original)
	rec.Land = res.Code
	if !res.Matched && original != "" {
		rec.LandUnmappedOriginal = original
	}

	// Step 6: postal code and city.
	rec.PLZ = field(types.FieldPostalCode)
	rec.Stadt = field(types.FieldCity)

	// Step 7: reference.
	rec.Referenz = index + 1

	return rec
}

// TransformAll transforms rows in parallel. The result has one record per
// row, in row order, with REFERENZ numbered from 1.
func (t *Transformer) TransformAll(rows []map[string]any) []types.MappedAddress {
	out := make([]types.MappedAddress, len(rows))
	if len(rows) == 0 {
		return out
	}

	workers := t.workers
	if workers > len(rows) {
		workers = len(rows)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Each worker writes only to its own index.
				out[i] = t.Transform(rows[i], i)
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
