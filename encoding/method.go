package encoding

import (
	"fmt"
	"strings"

	"github.com/arloliu/catenc/errs"
)

// Method selects the code-assignment strategy of the ordinal encoder.
type Method int

const (
	// MethodOrdered assigns codes by ascending mean of the target variable per
	// category: the category with the lowest target mean gets code 0. Fitting
	// with this method requires a target series.
	MethodOrdered Method = iota
	// MethodArbitrary assigns codes in first-seen order while scanning the
	// fitting data top to bottom. No target is needed.
	MethodArbitrary
)

// methodNames maps Method to their string representations.
var methodNames = map[Method]string{
	MethodOrdered:   "ordered",
	MethodArbitrary: "arbitrary",
}

// String returns the string representation of the method.
func (m Method) String() string {
	if name, exists := methodNames[m]; exists {
		return name
	}

	return "unknown"
}

// IsValid reports whether m is a defined method.
func (m Method) IsValid() bool {
	_, exists := methodNames[m]
	return exists
}

// MethodFromString returns the Method for a given name ("ordered" or
// "arbitrary", case-insensitive). Returns errs.ErrInvalidMethod for any other
// name.
func MethodFromString(name string) (Method, error) {
	for method, methodName := range methodNames {
		if methodName == strings.ToLower(name) {
			return method, nil
		}
	}

	return Method(-1), fmt.Errorf("%w: %q (want \"ordered\" or \"arbitrary\")", errs.ErrInvalidMethod, name)
}
