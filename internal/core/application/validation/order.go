package validation

import (
	"context"
	"errors"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

const (
	msgNoDishes       = "Order must include at least one dish."
	msgInvalidStatus  = "Order must have a status of pending, preparing, out-for-delivery, or delivered."
	msgDelivered      = "A delivered order cannot be changed."
	msgDeleteNotReady = "An order cannot be deleted unless it is pending."
)

// ErrOrderNotResolved means a stage that needs the stored order ran before OrderExists.
var ErrOrderNotResolved = errors.New("order has not been resolved")

// OrderFields lists the required order fields in the order they are checked.
var OrderFields = []string{"deliverTo", "mobileNumber", "dishes"}

// RequireOrderField fails unless the named field is present and truthy.
// An empty dishes array passes here and is caught by DishesNonEmpty.
func RequireOrderField(name string) pipeline.Stage[*request.OrderScope] {
	return func(_ context.Context, scope *request.OrderScope) error {
		if !present(name, scope.Data.Field(name)) {
			return errs.NewValidationError(fmt.Sprintf("Order must include a %s.", name))
		}
		return nil
	}
}

// DishesNonEmpty fails unless dishes is an array with at least one element.
func DishesNonEmpty() pipeline.Stage[*request.OrderScope] {
	return func(_ context.Context, scope *request.OrderScope) error {
		if list, ok := scope.Data.List("dishes"); !ok || len(list) == 0 {
			return errs.NewValidationError(msgNoDishes)
		}
		return nil
	}
}

// QuantitiesValid fails on the first order line whose quantity is not a whole number
// of at least 1. The message names the zero-based line index.
func QuantitiesValid() pipeline.Stage[*request.OrderScope] {
	return func(_ context.Context, scope *request.OrderScope) error {
		list, _ := scope.Data.List("dishes")
		for i, raw := range list {
			quantity, ok := request.WholeNumber(request.NewPayload(raw).Field("quantity"))
			if !ok || quantity < 1 {
				return errs.NewValidationError(fmt.Sprintf(
					"Dish %d must have a quantity that is an integer greater than 0.", i))
			}
		}
		return nil
	}
}

// StatusTransition checks the requested status and the stored one.
// The requested status must be one of the four lifecycle states, and the stored
// order must not be delivered.
func StatusTransition() pipeline.Stage[*request.OrderScope] {
	return func(_ context.Context, scope *request.OrderScope) error {
		if !scope.Resolved() {
			return ErrOrderNotResolved
		}

		target, err := order.ParseStatus(scope.Data.String("status"))
		if err != nil {
			return errs.NewValidationErrorWithCause(msgInvalidStatus, err)
		}
		if _, err = scope.Order.Status().ChangeTo(target); err != nil {
			return errs.NewValidationErrorWithCause(msgDelivered, err)
		}
		return nil
	}
}

// OrderIDMatchesPath fails when the payload carries an id other than the route id.
func OrderIDMatchesPath() pipeline.Stage[*request.OrderScope] {
	return func(_ context.Context, scope *request.OrderScope) error {
		submitted := scope.Data.Field("id")
		if idMismatch(submitted, scope.OrderID) {
			return errs.NewValidationError(fmt.Sprintf(
				"Order id does not match route id. Order: %v, Route: %s.", submitted, scope.OrderID))
		}
		return nil
	}
}

// OrderIsPending fails unless the resolved order may be deleted.
func OrderIsPending() pipeline.Stage[*request.OrderScope] {
	return func(_ context.Context, scope *request.OrderScope) error {
		if !scope.Resolved() {
			return ErrOrderNotResolved
		}
		if err := scope.Order.ValidateDelete(); err != nil {
			return errs.NewValidationErrorWithCause(msgDeleteNotReady, err)
		}
		return nil
	}
}
