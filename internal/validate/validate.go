// Package validate implements the input precondition checks the encoders rely
// on: structural validity of the frame, presence and type of the configured
// columns, null rejection, and shape compatibility with the fitted state.
//
// All failures wrap sentinel values from the errs package so callers can
// classify them with errors.Is.
package validate

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// Frame rejects inputs that are not usable tabular structures: a nil frame,
// a frame with no columns, or a frame with no rows.
func Frame(x *frame.Frame) error {
	if x == nil {
		return fmt.Errorf("%w: nil frame", errs.ErrInvalidFrame)
	}
	if x.NumCols() == 0 {
		return fmt.Errorf("%w: frame has no columns", errs.ErrInvalidFrame)
	}
	if x.NumRows() == 0 {
		return fmt.Errorf("%w: frame has no rows", errs.ErrInvalidFrame)
	}

	return nil
}

// ColumnsExist verifies that every configured column is present in x.
func ColumnsExist(x *frame.Frame, cols []string) error {
	for _, name := range cols {
		if !x.HasColumn(name) {
			return fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
		}
	}

	return nil
}

// Categorical verifies that every configured column of x holds categorical
// (string) values. Columns must already be known to exist.
func Categorical(x *frame.Frame, cols []string) error {
	for _, name := range cols {
		col, _ := x.Column(name)
		if _, ok := col.(*frame.StringColumn); !ok {
			return fmt.Errorf("%w: %q", errs.ErrNotCategorical, name)
		}
	}

	return nil
}

// Codes verifies that every configured column of x holds integer codes.
// Columns must already be known to exist.
func Codes(x *frame.Frame, cols []string) error {
	for _, name := range cols {
		col, _ := x.Column(name)
		if _, ok := col.(*frame.IntColumn); !ok {
			return fmt.Errorf("%w: %q", errs.ErrNotCodes, name)
		}
	}

	return nil
}

// NoNulls rejects frames whose configured columns contain null cells.
// Columns must already be known to exist.
func NoNulls(x *frame.Frame, cols []string) error {
	for _, name := range cols {
		col, _ := x.Column(name)
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				return fmt.Errorf("%w: column %q, row %d", errs.ErrNullValues, name, i)
			}
		}
	}

	return nil
}

// ColumnCount verifies that x carries the same number of columns the encoder
// observed during fitting. Row count is deliberately unconstrained.
func ColumnCount(x *frame.Frame, want int) error {
	if x.NumCols() != want {
		return fmt.Errorf("%w: fitted on %d columns, input has %d",
			errs.ErrShapeMismatch, want, x.NumCols())
	}

	return nil
}

// TargetLength verifies that the target series is aligned row-for-row with x.
func TargetLength(x *frame.Frame, y *frame.Series) error {
	if y.Len() != x.NumRows() {
		return fmt.Errorf("%w: %d target values for %d rows",
			errs.ErrTargetLengthMismatch, y.Len(), x.NumRows())
	}

	return nil
}

// ResolveCategorical returns the names of all categorical columns of x in
// frame order. It is the auto-resolution capability used when no explicit
// column list is configured; zero categorical columns is an error.
func ResolveCategorical(x *frame.Frame) ([]string, error) {
	names := x.StringColumnNames()
	if len(names) == 0 {
		return nil, errs.ErrNoCategoricalColumns
	}

	return names, nil
}
