// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to tell a constructor-built value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was produced by its
// designated constructor. The zero value reports "not constructed".
//
// Example usage:
//
//	var ErrGetContractQueryIsNotConstructed = errors.New("GetContractQuery must be created via NewGetContractQuery")
//
//	type GetContractQuery struct {
//	    contractID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func (q GetContractQuery) Validate() error {
//	    return q.guard.Validate(ErrGetContractQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it from
// the constructor of the guarded type only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
