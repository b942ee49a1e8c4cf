package encoding

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/internal/options"
	"github.com/arloliu/catenc/internal/validate"
)

// OrdinalEncoder replaces the categories of selected columns with dense
// zero-based integer codes.
//
// With MethodOrdered (the default), categories are ranked by the ascending
// mean of a target variable: the category with the lowest target mean gets
// code 0. With MethodArbitrary, categories are numbered in the order they
// first appear while scanning the fitting data top to bottom.
//
// The encoder follows the fit/transform protocol: Fit learns one
// category→code table per configured column, Transform applies the tables to
// (possibly different) rows with the same columns, and InverseTransform
// recovers the original categories from encoded columns. Categories that were
// not present during fitting transform to null cells rather than failing;
// pre-group rare categories before encoding if that residue is unwanted.
//
// An OrdinalEncoder is safe for concurrent Transform/InverseTransform calls
// once fitted. Calling Fit concurrently with any other method on the same
// instance is a usage error; the encoder provides no internal locking.
type OrdinalEncoder struct {
	cfg     encoderConfig
	mapping *Mapping
}

var _ Transformer = (*OrdinalEncoder)(nil)

// NewOrdinalEncoder creates an ordinal encoder.
//
// By default the encoder uses MethodOrdered and resolves the columns to
// encode automatically at fit time (every categorical column of the input).
// Configuration errors, such as an unknown method name, are reported here,
// before any data is touched.
//
// Example:
//
//	enc, err := encoding.NewOrdinalEncoder(
//	    encoding.WithMethod(encoding.MethodArbitrary),
//	    encoding.WithColumns("colour", "size"),
//	)
func NewOrdinalEncoder(opts ...Option) (*OrdinalEncoder, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &OrdinalEncoder{cfg: cfg}, nil
}

// Method returns the configured code-assignment strategy.
func (e *OrdinalEncoder) Method() Method {
	return e.cfg.method
}

// IsFitted reports whether the encoder holds a learned mapping.
func (e *OrdinalEncoder) IsFitted() bool {
	return e.mapping != nil
}

// Reset discards the learned mapping, returning the encoder to its unfitted
// state. The configuration is kept.
func (e *OrdinalEncoder) Reset() {
	e.mapping = nil
}

// Mapping returns the learned mapping, or nil before a successful Fit. The
// returned value is immutable; a later re-fit replaces it without modifying
// the snapshot the caller holds.
func (e *OrdinalEncoder) Mapping() *Mapping {
	return e.mapping
}

// Columns returns the columns the encoder operates on: the explicitly
// configured list, or the fitted (auto-resolved) list, or nil when neither
// exists yet.
func (e *OrdinalEncoder) Columns() []string {
	if len(e.cfg.columns) > 0 {
		return slices.Clone(e.cfg.columns)
	}
	if e.mapping != nil {
		return e.mapping.Columns()
	}

	return nil
}

// Fit learns one category→code table per configured column.
//
// X may contain columns beyond the configured ones; they are ignored. The
// target y must align row-for-row with X and is required for MethodOrdered;
// MethodArbitrary ignores it and accepts nil.
//
// A failed Fit leaves any previously learned mapping untouched. A successful
// Fit replaces it wholesale.
//
// Parameters:
//   - x: Tabular input containing at least the configured columns
//   - y: Target series (required for MethodOrdered, may be nil otherwise)
//
// Returns:
//   - error: Configuration error (missing target), structural error (bad
//     frame, absent or non-categorical column), or value error (null cells,
//     misaligned target)
func (e *OrdinalEncoder) Fit(x *frame.Frame, y *frame.Series) error {
	if err := validate.Frame(x); err != nil {
		return err
	}

	columns := e.cfg.columns
	if len(columns) == 0 {
		resolved, err := validate.ResolveCategorical(x)
		if err != nil {
			return err
		}
		columns = resolved
	}

	if err := validate.ColumnsExist(x, columns); err != nil {
		return err
	}
	if err := validate.Categorical(x, columns); err != nil {
		return err
	}
	if err := validate.NoNulls(x, columns); err != nil {
		return err
	}

	if e.cfg.method == MethodOrdered {
		if y == nil {
			return fmt.Errorf("%w: method %q", errs.ErrMissingTarget, e.cfg.method)
		}
		if err := validate.TargetLength(x, y); err != nil {
			return err
		}
	}

	codes := make(map[string]map[string]int, len(columns))
	for _, name := range columns {
		col, _ := x.Column(name)
		sc := col.(*frame.StringColumn)

		switch e.cfg.method {
		case MethodOrdered:
			codes[name] = orderedTable(sc, y)
		case MethodArbitrary:
			codes[name] = arbitraryTable(sc)
		}
	}

	mapping := newMapping(columns, codes, x.NumRows(), x.NumCols())
	if err := mapping.Validate(); err != nil {
		return err
	}
	e.mapping = mapping

	return nil
}

// Transform replaces the configured columns' categories with their learned
// codes, leaving every other column untouched.
//
// The output is a new Frame of the same shape and row order; the input is not
// modified. Categories absent from the learned mapping become null cells in
// the output. This is deliberate and silent: rare categories should be
// grouped before encoding if nulls are unacceptable downstream.
//
// Returns errs.ErrNotFitted before a successful Fit, and the same structural
// and value errors as Fit for malformed inputs.
func (e *OrdinalEncoder) Transform(x *frame.Frame) (*frame.Frame, error) {
	if e.mapping == nil {
		return nil, errs.ErrNotFitted
	}
	if err := e.checkTransformInput(x); err != nil {
		return nil, err
	}
	if err := validate.Categorical(x, e.mapping.columns); err != nil {
		return nil, err
	}
	if err := validate.NoNulls(x, e.mapping.columns); err != nil {
		return nil, err
	}

	out := x
	for _, name := range e.mapping.columns {
		col, _ := x.Column(name)
		sc := col.(*frame.StringColumn)

		encoded := frame.NewIntColumn(name, make([]int, sc.Len()))
		for i := 0; i < sc.Len(); i++ {
			category, _ := sc.Value(i)
			if code, ok := e.mapping.Code(name, category); ok {
				encoded.Set(i, code)
			} else {
				encoded.SetNull(i)
			}
		}

		next, err := out.WithColumn(encoded)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// FitTransform fits the encoder on x and returns the transformed x.
func (e *OrdinalEncoder) FitTransform(x *frame.Frame, y *frame.Series) (*frame.Frame, error) {
	if err := e.Fit(x, y); err != nil {
		return nil, err
	}

	return e.Transform(x)
}

// InverseTransform is the dual of Transform: it replaces the configured
// columns' integer codes with their original categories.
//
// Codes outside the learned codomain become null cells, symmetric with
// Transform's unseen-category policy. Null input cells (the residue of unseen
// categories in a previous Transform) pass through as null.
//
// Returns errs.ErrNotFitted before a successful Fit, and structural errors
// when the configured columns are absent or do not hold integer codes.
func (e *OrdinalEncoder) InverseTransform(x *frame.Frame) (*frame.Frame, error) {
	if e.mapping == nil {
		return nil, errs.ErrNotFitted
	}
	if err := e.checkTransformInput(x); err != nil {
		return nil, err
	}
	if err := validate.Codes(x, e.mapping.columns); err != nil {
		return nil, err
	}

	out := x
	for _, name := range e.mapping.columns {
		col, _ := x.Column(name)
		ic := col.(*frame.IntColumn)

		decoded := frame.NewStringColumn(name, make([]string, ic.Len()))
		for i := 0; i < ic.Len(); i++ {
			code, ok := ic.Value(i)
			if !ok {
				decoded.SetNull(i)
				continue
			}
			if category, found := e.mapping.Category(name, code); found {
				decoded.Set(i, category)
			} else {
				decoded.SetNull(i)
			}
		}

		next, err := out.WithColumn(decoded)
		if err != nil {
			return nil, err
		}
		out = next
	}

	return out, nil
}

// checkTransformInput runs the structural checks shared by Transform and
// InverseTransform: valid frame, column count compatible with the fitted
// shape, configured columns present.
func (e *OrdinalEncoder) checkTransformInput(x *frame.Frame) error {
	if err := validate.Frame(x); err != nil {
		return err
	}
	if err := validate.ColumnCount(x, e.mapping.cols); err != nil {
		return err
	}

	return validate.ColumnsExist(x, e.mapping.columns)
}

// orderedTable ranks the column's categories by ascending mean of the target
// and assigns codes 0, 1, 2, ... in that order. Ties on the mean break by
// category name ascending, which keeps the assignment deterministic.
func orderedTable(col *frame.StringColumn, y *frame.Series) map[string]int {
	groups := make(map[string][]float64)
	for i := 0; i < col.Len(); i++ {
		category, _ := col.Value(i)
		groups[category] = append(groups[category], y.At(i))
	}

	categories := make([]string, 0, len(groups))
	means := make(map[string]float64, len(groups))
	for category, values := range groups {
		categories = append(categories, category)
		means[category] = stat.Mean(values, nil)
	}

	sort.Strings(categories)
	slices.SortStableFunc(categories, func(a, b string) int {
		switch {
		case means[a] < means[b]:
			return -1
		case means[a] > means[b]:
			return 1
		default:
			return 0
		}
	})

	table := make(map[string]int, len(categories))
	for code, category := range categories {
		table[category] = code
	}

	return table
}

// arbitraryTable assigns codes in first-seen order scanning top to bottom.
func arbitraryTable(col *frame.StringColumn) map[string]int {
	table := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		category, _ := col.Value(i)
		if _, seen := table[category]; !seen {
			table[category] = len(table)
		}
	}

	return table
}
