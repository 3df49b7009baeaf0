package java

import "errors"

// Render failures. They mark declarations that are not legal Java and are
// returned wrapped with the name of the offending element.
var (
	ErrConflictingModifiers = errors.New("conflicting access modifiers")
	ErrUnknownModifier      = errors.New("unknown modifier")
	ErrAbstractMethodBody   = errors.New("abstract method has a body")
	ErrInterfaceMethodBody  = errors.New("interface method has a body")
	ErrMissingPackage       = errors.New("missing package")
	ErrInvalidTypeName      = errors.New("invalid type name")
)
