package encoding

import (
	"fmt"
	"slices"
	"sort"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/internal/hash"
)

// Mapping is the learned state of a fitted ordinal encoder: one category→code
// table per configured column, plus the shape of the fitting dataset.
//
// A Mapping is immutable once built. Re-fitting an encoder produces a fresh
// Mapping and replaces the old one wholesale; holders of a previous Mapping
// snapshot keep seeing the old tables.
type Mapping struct {
	columns []string
	codes   map[string]map[string]int
	inverse map[string]map[int]string
	rows    int
	cols    int
}

// newMapping builds a Mapping from per-column code tables. The tables are
// copied, and the code→category inverse is precomputed so InverseTransform
// never rebuilds it per call.
func newMapping(columns []string, codes map[string]map[string]int, rows, cols int) *Mapping {
	m := &Mapping{
		columns: slices.Clone(columns),
		codes:   make(map[string]map[string]int, len(codes)),
		inverse: make(map[string]map[int]string, len(codes)),
		rows:    rows,
		cols:    cols,
	}
	for col, table := range codes {
		fwd := make(map[string]int, len(table))
		inv := make(map[int]string, len(table))
		for category, code := range table {
			fwd[category] = code
			inv[code] = category
		}
		m.codes[col] = fwd
		m.inverse[col] = inv
	}

	return m
}

// Columns returns the configured column names in fit order.
func (m *Mapping) Columns() []string {
	return slices.Clone(m.columns)
}

// NumColumns returns the number of mapped columns.
func (m *Mapping) NumColumns() int {
	return len(m.columns)
}

// Codes returns a copy of the category→code table for the given column, or
// false if the column is not part of the mapping.
func (m *Mapping) Codes(column string) (map[string]int, bool) {
	table, ok := m.codes[column]
	if !ok {
		return nil, false
	}

	out := make(map[string]int, len(table))
	for category, code := range table {
		out[category] = code
	}

	return out, true
}

// Code returns the learned code for a category in the given column. The
// second result is false for categories not seen during fitting.
func (m *Mapping) Code(column, category string) (int, bool) {
	table, ok := m.codes[column]
	if !ok {
		return 0, false
	}
	code, ok := table[category]

	return code, ok
}

// Category returns the category behind a code in the given column. The second
// result is false for codes outside the learned codomain.
func (m *Mapping) Category(column string, code int) (string, bool) {
	inv, ok := m.inverse[column]
	if !ok {
		return "", false
	}
	category, ok := inv[code]

	return category, ok
}

// Categories returns the categories of the given column ordered by code
// (code 0 first), or nil if the column is not part of the mapping.
func (m *Mapping) Categories(column string) []string {
	table, ok := m.codes[column]
	if !ok {
		return nil
	}

	out := make([]string, len(table))
	for category, code := range table {
		out[code] = category
	}

	return out
}

// FittedShape returns the (rows, columns) of the dataset the mapping was
// learned from.
func (m *Mapping) FittedShape() (rows, cols int) {
	return m.rows, m.cols
}

// Validate checks the mapping invariants: every configured column has a
// non-empty table whose codes are exactly {0..k-1} with no duplicates.
//
// This is run at the end of every fit. A violation means corrupted state, not
// bad input, and surfaces as errs.ErrCorruptedMapping.
func (m *Mapping) Validate() error {
	for _, column := range m.columns {
		table, ok := m.codes[column]
		if !ok || len(table) == 0 {
			return fmt.Errorf("%w: column %q has no learned categories", errs.ErrCorruptedMapping, column)
		}

		seen := make([]bool, len(table))
		for category, code := range table {
			if code < 0 || code >= len(table) {
				return fmt.Errorf("%w: column %q category %q has code %d outside [0, %d)",
					errs.ErrCorruptedMapping, column, category, code, len(table))
			}
			if seen[code] {
				return fmt.Errorf("%w: column %q has duplicate code %d",
					errs.ErrCorruptedMapping, column, code)
			}
			seen[code] = true
		}
	}

	return nil
}

// Fingerprint returns a deterministic xxHash64 digest over the full mapping
// content. Two mappings with identical columns, categories, and codes share a
// fingerprint regardless of map iteration order.
func (m *Mapping) Fingerprint() uint64 {
	d := hash.NewDigest()

	columns := slices.Clone(m.columns)
	sort.Strings(columns)
	for _, column := range columns {
		d.WriteString(column)
		table := m.codes[column]

		categories := make([]string, 0, len(table))
		for category := range table {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			d.WriteString(category)
			d.WriteUint64(uint64(table[category]))
		}
	}

	return d.Sum64()
}
