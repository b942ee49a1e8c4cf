package frame

import "slices"

// Column is a named, fixed-length vector of cells with a per-cell null mask.
// Concrete columns are ValueColumn instantiations; callers type-switch on
// *StringColumn, *IntColumn, or *FloatColumn for typed access.
type Column interface {
	// Name returns the column identifier.
	Name() string
	// Len returns the number of cells.
	Len() int
	// IsNull reports whether the cell at index i holds the missing-value marker.
	IsNull(i int) bool
	// Clone returns a deep copy of the column.
	Clone() Column
}

// ValueColumn is a typed column of values with a null mask. The zero cell of
// a null position retains the zero value of T; callers must consult IsNull
// (or the ok result of Value) before using a cell.
type ValueColumn[T any] struct {
	name   string
	values []T
	valid  []bool
}

// Typed column aliases. These are the concrete column kinds a Frame can hold:
// StringColumn cells are categorical values, IntColumn cells are integer codes,
// FloatColumn cells are numeric measurements.
type (
	StringColumn = ValueColumn[string]
	IntColumn    = ValueColumn[int]
	FloatColumn  = ValueColumn[float64]
)

// NewStringColumn creates a categorical column with all cells non-null.
func NewStringColumn(name string, values []string) *StringColumn {
	return newValueColumn(name, values)
}

// NewIntColumn creates an integer-code column with all cells non-null.
func NewIntColumn(name string, values []int) *IntColumn {
	return newValueColumn(name, values)
}

// NewFloatColumn creates a numeric column with all cells non-null.
func NewFloatColumn(name string, values []float64) *FloatColumn {
	return newValueColumn(name, values)
}

func newValueColumn[T any](name string, values []T) *ValueColumn[T] {
	valid := make([]bool, len(values))
	for i := range valid {
		valid[i] = true
	}

	return &ValueColumn[T]{
		name:   name,
		values: slices.Clone(values),
		valid:  valid,
	}
}

// Name returns the column identifier.
func (c *ValueColumn[T]) Name() string { return c.name }

// Len returns the number of cells.
func (c *ValueColumn[T]) Len() int { return len(c.values) }

// IsNull reports whether the cell at index i is null.
func (c *ValueColumn[T]) IsNull(i int) bool { return !c.valid[i] }

// Value returns the cell at index i. The second result is false when the cell
// is null, in which case the first result is the zero value of T.
func (c *ValueColumn[T]) Value(i int) (T, bool) {
	if !c.valid[i] {
		var zero T
		return zero, false
	}

	return c.values[i], true
}

// Set replaces the cell at index i and clears its null marker.
func (c *ValueColumn[T]) Set(i int, v T) {
	c.values[i] = v
	c.valid[i] = true
}

// SetNull marks the cell at index i as null.
func (c *ValueColumn[T]) SetNull(i int) {
	var zero T
	c.values[i] = zero
	c.valid[i] = false
}

// HasNulls reports whether any cell is null.
func (c *ValueColumn[T]) HasNulls() bool {
	return slices.Contains(c.valid, false)
}

// Clone returns a deep copy of the column.
func (c *ValueColumn[T]) Clone() Column {
	return &ValueColumn[T]{
		name:   c.name,
		values: slices.Clone(c.values),
		valid:  slices.Clone(c.valid),
	}
}

// Rename returns a deep copy of the column under a new name.
func (c *ValueColumn[T]) Rename(name string) *ValueColumn[T] {
	clone := &ValueColumn[T]{
		name:   name,
		values: slices.Clone(c.values),
		valid:  slices.Clone(c.valid),
	}

	return clone
}
