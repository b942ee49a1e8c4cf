// Package catenc provides categorical-to-numeric feature encoding for tabular
// data, as a preprocessing step before statistical or machine-learning
// modeling.
//
// The core transform is the ordinal encoder: each distinct category of a
// labeled (string-typed) column is replaced with a dense zero-based integer
// code. Codes are either ordered by the mean of a target variable per
// category ("ordered" mode) or assigned in first-seen order ("arbitrary"
// mode).
//
// # Basic Usage
//
// Fitting on training data and encoding new rows:
//
//	import "github.com/arloliu/catenc"
//	import "github.com/arloliu/catenc/frame"
//
//	train, _ := frame.New(
//	    frame.NewStringColumn("colour", []string{"blue", "red", "grey", "blue", "red", "red"}),
//	)
//	target := frame.NewSeries("defaulted", []float64{0.5, 0.8, 0.1, 0.6, 0.9, 0.7})
//
//	enc, _ := catenc.NewOrderedEncoder("colour")
//	if err := enc.Fit(train, target); err != nil {
//	    return err
//	}
//
//	encoded, err := enc.Transform(train)
//
// Recovering the original categories:
//
//	restored, err := enc.InverseTransform(encoded)
//
// Categories the encoder never saw during fitting become null cells in the
// output instead of raising an error; group rare categories before encoding
// if that residue is unwanted.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding
// package, simplifying the most common use cases. For fine-grained control
// (custom options, persistence codecs), use the encoding package directly.
package catenc

import (
	"io"

	"github.com/arloliu/catenc/encoding"
)

// NewOrderedEncoder creates an ordinal encoder that ranks categories by
// ascending target mean. Fitting requires a target series.
//
// With no columns given, every categorical column of the fitting frame is
// encoded; an explicit list is authoritative and disables auto-resolution.
func NewOrderedEncoder(columns ...string) (*encoding.OrdinalEncoder, error) {
	return encoding.NewOrdinalEncoder(
		encoding.WithMethod(encoding.MethodOrdered),
		encoding.WithColumns(columns...),
	)
}

// NewArbitraryEncoder creates an ordinal encoder that numbers categories in
// first-seen order. No target series is needed at fit time.
//
// With no columns given, every categorical column of the fitting frame is
// encoded; an explicit list is authoritative and disables auto-resolution.
func NewArbitraryEncoder(columns ...string) (*encoding.OrdinalEncoder, error) {
	return encoding.NewOrdinalEncoder(
		encoding.WithMethod(encoding.MethodArbitrary),
		encoding.WithColumns(columns...),
	)
}

// LoadEncoder restores a fitted ordinal encoder from serialized state
// previously written with the encoder's Save or MarshalBinary.
func LoadEncoder(r io.Reader) (*encoding.OrdinalEncoder, error) {
	enc, err := encoding.NewOrdinalEncoder()
	if err != nil {
		return nil, err
	}
	if err := enc.Load(r); err != nil {
		return nil, err
	}

	return enc, nil
}

// LoadEncoderFile restores a fitted ordinal encoder from the named file.
func LoadEncoderFile(path string) (*encoding.OrdinalEncoder, error) {
	enc, err := encoding.NewOrdinalEncoder()
	if err != nil {
		return nil, err
	}
	if err := enc.LoadFile(path); err != nil {
		return nil, err
	}

	return enc, nil
}
