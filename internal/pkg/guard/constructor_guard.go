// Package guard provides a defensive construction marker for commands and
// value objects. Embedding a ConstructorGuard lets a type detect whether it
// was produced by its designated constructor or left as a zero value.
package guard

import "errors"

// ErrNotConstructed is the default error returned by Validate when no custom
// error is supplied.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard is a flag set only by NewConstructorGuard. A zero-value
// guard fails Validate, which catches structs that bypassed their constructor.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrNotConstructed when nil is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrNotConstructed
	}
	return notConstructedErr
}
