// Package guard provides a defensive programming primitive that ensures
// value objects and entities are only created through their designated
// constructor functions.
//
// By embedding a ConstructorGuard in a struct, code can detect whether the
// struct was properly initialized through its constructor or created as a
// zero value. This keeps domain objects in a valid state and surfaces
// misuse with a clear error instead of silent zero-value behavior.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that
// validation always fails with a meaningful message even if no specific
// error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so any struct embedding a guard must go through its
// constructor to be usable.
//
// Example usage:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount decimal.Decimal) (Money, error) {
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// designated constructor.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and the object
//     was not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
