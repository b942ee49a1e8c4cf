// Package errs defines the sentinel errors returned by catenc.
//
// Callers should use errors.Is to test for these values, since catenc wraps
// them with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Configuration errors. These indicate the encoder was constructed or invoked
// with settings that can never succeed, regardless of the input data.
var (
	// ErrInvalidMethod indicates an unrecognized encoding method name or value.
	ErrInvalidMethod = errors.New("invalid encoding method")
	// ErrMissingTarget indicates ordered encoding was requested without a target series.
	ErrMissingTarget = errors.New("target series required for ordered encoding")
	// ErrNotFitted indicates Transform or InverseTransform was called before a successful Fit.
	ErrNotFitted = errors.New("encoder is not fitted")
)

// Structural errors. These indicate the input is not a usable tabular structure.
var (
	// ErrInvalidFrame indicates the input frame is nil or empty.
	ErrInvalidFrame = errors.New("invalid input frame")
	// ErrColumnNotFound indicates a configured column is absent from the input frame.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNotCategorical indicates a configured column does not hold categorical (string) values.
	ErrNotCategorical = errors.New("column is not categorical")
	// ErrNotCodes indicates an inverse-transform column does not hold integer codes.
	ErrNotCodes = errors.New("column does not hold integer codes")
)

// Value errors. These indicate well-formed inputs carrying values the
// operation cannot accept.
var (
	// ErrNullValues indicates a configured column contains null cells.
	ErrNullValues = errors.New("column contains null values")
	// ErrShapeMismatch indicates the input column count differs from the fitted dataset.
	ErrShapeMismatch = errors.New("input shape incompatible with fitted state")
	// ErrTargetLengthMismatch indicates the target series length differs from the input row count.
	ErrTargetLengthMismatch = errors.New("target length does not match input rows")
	// ErrNoCategoricalColumns indicates automatic column resolution found nothing to encode.
	ErrNoCategoricalColumns = errors.New("no categorical columns found")
	// ErrCorruptedMapping indicates a learned mapping is empty or has duplicate codes.
	// This should be unreachable under correct builder logic.
	ErrCorruptedMapping = errors.New("corrupted encoder mapping")
)

// Frame construction errors.
var (
	// ErrDuplicateColumn indicates two columns share the same name.
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrColumnLengthMismatch indicates columns of differing lengths.
	ErrColumnLengthMismatch = errors.New("column length mismatch")
)

// Persistence errors for fitted-state serialization.
var (
	// ErrInvalidStateData indicates the serialized state is truncated or not catenc data.
	ErrInvalidStateData = errors.New("invalid encoder state data")
	// ErrChecksumMismatch indicates the state payload failed checksum verification.
	ErrChecksumMismatch = errors.New("encoder state checksum mismatch")
	// ErrUnsupportedVersion indicates the state was written by an incompatible format version.
	ErrUnsupportedVersion = errors.New("unsupported encoder state version")
)
