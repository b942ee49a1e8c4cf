package frame

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
)

// Frame is a two-dimensional labeled structure: an ordered set of equal-length
// named columns with an implicit row index. Column order is preserved from
// construction and maintained by WithColumn.
//
// A Frame is cheap to copy by reference but the transforming operations in
// this module never mutate an input Frame; they return a new one.
type Frame struct {
	cols  []Column
	index map[string]int
}

// New creates a Frame from the given columns.
//
// Returns an error if two columns share a name (errs.ErrDuplicateColumn) or
// any two columns differ in length (errs.ErrColumnLengthMismatch).
func New(cols ...Column) (*Frame, error) {
	f := &Frame{
		cols:  make([]Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}

	for _, col := range cols {
		if _, exists := f.index[col.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, col.Name())
		}
		if len(f.cols) > 0 && col.Len() != f.cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				errs.ErrColumnLengthMismatch, col.Name(), col.Len(), f.cols[0].Len())
		}
		f.index[col.Name()] = len(f.cols)
		f.cols = append(f.cols, col)
	}

	return f, nil
}

// NumRows returns the number of rows. A Frame with no columns has zero rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}

	return f.cols[0].Len()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.cols)
}

// ColumnNames returns the column identifiers in frame order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for i, col := range f.cols {
		names[i] = col.Name()
	}

	return names
}

// Column returns the column with the given name, or false if absent.
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}

	return f.cols[i], true
}

// HasColumn reports whether a column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// StringColumnNames returns the names of all categorical (string-typed)
// columns in frame order. This is the capability the encoder uses to resolve
// "all categorical columns" when none are configured explicitly.
func (f *Frame) StringColumnNames() []string {
	var names []string
	for _, col := range f.cols {
		if _, ok := col.(*StringColumn); ok {
			names = append(names, col.Name())
		}
	}

	return names
}

// WithColumn returns a new Frame with col replacing the same-named column, or
// appended if no column of that name exists. The receiver is not modified;
// unchanged columns are shared, not copied.
//
// Returns errs.ErrColumnLengthMismatch if col's length differs from the
// frame's row count.
func (f *Frame) WithColumn(col Column) (*Frame, error) {
	if len(f.cols) > 0 && col.Len() != f.NumRows() {
		return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
			errs.ErrColumnLengthMismatch, col.Name(), col.Len(), f.NumRows())
	}

	out := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.cols)+1),
	}
	copy(out.cols, f.cols)
	for name, i := range f.index {
		out.index[name] = i
	}

	if i, exists := out.index[col.Name()]; exists {
		out.cols[i] = col
	} else {
		out.index[col.Name()] = len(out.cols)
		out.cols = append(out.cols, col)
	}

	return out, nil
}

// Clone returns a deep copy of the Frame, including cell data.
func (f *Frame) Clone() *Frame {
	out := &Frame{
		cols:  make([]Column, len(f.cols)),
		index: make(map[string]int, len(f.cols)),
	}
	for i, col := range f.cols {
		out.cols[i] = col.Clone()
		out.index[col.Name()] = i
	}

	return out
}
