package commands

import (
	"errors"

	"grubdash/internal/core/application/request"
	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand replaces deliverTo, mobileNumber, dishes and status of the
// order named by the route.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	data    request.Payload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates the command. orderID must not be empty.
func NewUpdateOrderCommand(orderID string, data request.Payload) (UpdateOrderCommand, error) {
	if orderID == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	return UpdateOrderCommand{orderID: orderID, data: data, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the route identifier.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// Data returns the submitted payload.
func (c UpdateOrderCommand) Data() request.Payload {
	return c.data
}
