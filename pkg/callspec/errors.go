package callspec

import "errors"

var (
	// ErrInvalidShape indicates the root call node is neither a method
	// invocation nor a property read.
	ErrInvalidShape = errors.New("callspec: node is neither a method call nor a property read")

	// ErrMethodNotFound indicates the named method does not exist on the
	// declaring type (value or pointer method set).
	ErrMethodNotFound = errors.New("callspec: method not found on declaring type")

	// ErrPropertyNotReadable indicates the named property has no zero-argument
	// getter method on the declaring type.
	ErrPropertyNotReadable = errors.New("callspec: property has no zero-argument getter")
)
