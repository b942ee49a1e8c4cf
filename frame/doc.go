// Package frame provides the minimal tabular data structures catenc operates
// on: a Frame of named, equal-length columns with per-cell null masks, and a
// Series carrying a numeric target variable aligned to the Frame by row index.
//
// # Columns
//
// A Frame holds three concrete column kinds:
//
//   - StringColumn: categorical values, the input of ordinal encoding
//   - IntColumn: integer codes, the output of ordinal encoding
//   - FloatColumn: numeric measurements, passed through untouched
//
// All three share the ValueColumn implementation; type-switch on the pointer
// type for typed cell access:
//
//	col, _ := f.Column("colour")
//	if sc, ok := col.(*frame.StringColumn); ok {
//	    v, ok := sc.Value(0) // ok is false for null cells
//	    _ = v
//	}
//
// # Null cells
//
// Every column carries a null mask. Null is the missing-value marker the
// encoder writes for categories and codes it never saw during fitting, so
// downstream consumers must check IsNull (or the ok result of Value) before
// trusting a cell.
//
// # Construction
//
// Frames are built from columns directly or read from CSV with type inference:
//
//	f, err := frame.New(
//	    frame.NewStringColumn("colour", []string{"blue", "red"}),
//	    frame.NewFloatColumn("price", []float64{1.5, 2.5}),
//	)
//
//	f, err = frame.ReadCSV(file)
//
// Frames are never mutated by catenc transforms; WithColumn returns a new
// Frame sharing the untouched columns.
package frame
