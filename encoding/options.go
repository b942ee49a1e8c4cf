package encoding

import (
	"fmt"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
	"github.com/arloliu/catenc/internal/options"
)

// encoderConfig holds the construction-time configuration of an OrdinalEncoder.
type encoderConfig struct {
	method           Method
	columns          []string
	stateCompression format.CompressionType
}

// defaultEncoderConfig returns the default config: ordered encoding, columns
// resolved automatically at fit time, LZ4-compressed persisted state.
func defaultEncoderConfig() encoderConfig {
	return encoderConfig{
		method:           MethodOrdered,
		columns:          nil,
		stateCompression: format.CompressionLZ4,
	}
}

// Option is a functional option for the OrdinalEncoder.
type Option = options.Option[*encoderConfig]

// WithMethod sets the code-assignment strategy. Invalid values are rejected
// at construction.
func WithMethod(method Method) Option {
	return options.New(func(cfg *encoderConfig) error {
		if !method.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMethod, method)
		}
		cfg.method = method

		return nil
	})
}

// WithMethodName sets the strategy by name ("ordered" or "arbitrary").
// Unknown names are rejected at construction.
func WithMethodName(name string) Option {
	return options.New(func(cfg *encoderConfig) error {
		method, err := MethodFromString(name)
		if err != nil {
			return err
		}
		cfg.method = method

		return nil
	})
}

// WithColumns sets the explicit list of columns to encode. When given, the
// list is authoritative: fit performs no automatic resolution of categorical
// columns. When absent, fit encodes every categorical column it finds.
func WithColumns(columns ...string) Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.columns = columns
	})
}

// WithStateCompression sets the compression codec used when serializing the
// fitted state. Invalid values are rejected at construction.
func WithStateCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("invalid state compression: %d", compression)
		}
		cfg.stateCompression = compression

		return nil
	})
}
