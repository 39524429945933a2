// Package guard provides ConstructorGuard, a marker that lets commands, queries and
// value objects detect whether they were built through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose zero value must be rejected.
//
// Example:
//
//	type ListDishesQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewListDishesQuery() ListDishesQuery {
//	    return ListDishesQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q ListDishesQuery) Validate() error {
//	    return q.guard.Validate(ErrListDishesQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
