package encoding

import "github.com/arloliu/catenc/frame"

// Transformer is the fit/transform contract shared by catenc encoders.
//
// Fit learns transformation parameters from a Frame and an optional target
// Series; Transform and InverseTransform are pure with respect to the learned
// state and never modify their input Frame.
type Transformer interface {
	// Fit learns the transformation parameters from x and the optional target y.
	Fit(x *frame.Frame, y *frame.Series) error

	// Transform applies the learned transformation and returns a new Frame.
	Transform(x *frame.Frame) (*frame.Frame, error)

	// FitTransform fits on x and returns the transformed x.
	FitTransform(x *frame.Frame, y *frame.Series) (*frame.Frame, error)

	// InverseTransform reverses Transform on an encoded Frame.
	InverseTransform(x *frame.Frame) (*frame.Frame, error)
}
