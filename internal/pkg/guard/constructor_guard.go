// Package guard provides the ConstructorGuard pattern used by domain objects
// and commands to ensure they are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed. Validation always fails with a meaningful message even if
// no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, entities, and commands are only
// created through their constructors. A zero-value guard fails validation,
// so structs embedding it can detect direct (unvalidated) instantiation.
//
// Example usage:
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of every guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its
// constructor. Returns validationError (or ErrDefaultConstructorGuard when
// validationError is nil) for zero-value guards, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
