package commands

import (
	"errors"

	"grubdash/internal/core/application/request"
	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var (
	ErrUpdateDishCommandIsNotConstructed = errors.New(
		"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
	)
)

// UpdateDishCommand replaces every mutable field of the dish named by the route.
type UpdateDishCommand struct { //nolint:recvcheck //using for validation
	dishID string
	data   request.Payload

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates the command. dishID is the route identifier and
// must not be empty.
func NewUpdateDishCommand(dishID string, data request.Payload) (UpdateDishCommand, error) {
	if dishID == "" {
		return UpdateDishCommand{}, errs.NewValueIsRequiredError("dishId")
	}
	return UpdateDishCommand{dishID: dishID, data: data, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the route identifier.
func (c UpdateDishCommand) DishID() string {
	return c.dishID
}

// Data returns the submitted payload.
func (c UpdateDishCommand) Data() request.Payload {
	return c.data
}
