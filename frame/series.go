package frame

import "slices"

// Series is a one-dimensional labeled sequence of numeric values, aligned by
// row position to a Frame. It is the shape a target variable arrives in.
type Series struct {
	name   string
	values []float64
}

// NewSeries creates a Series from the given values. The slice is copied.
func NewSeries(name string, values []float64) *Series {
	return &Series{name: name, values: slices.Clone(values)}
}

// Name returns the series label.
func (s *Series) Name() string { return s.name }

// Len returns the number of values.
func (s *Series) Len() int { return len(s.values) }

// At returns the value at row index i.
func (s *Series) At(i int) float64 { return s.values[i] }

// Values returns a copy of the underlying values.
func (s *Series) Values() []float64 {
	return slices.Clone(s.values)
}
