package commands

import (
	"errors"

	"grubdash/internal/pkg/errs"
	"grubdash/internal/pkg/guard"
)

var (
	ErrDeleteDishCommandIsNotConstructed = errors.New(
		"DeleteDishCommand must be created via NewDeleteDishCommand constructor",
	)
)

// DeleteDishCommand is a request to remove a dish. Dishes cannot be removed, so the
// handler only decides which MethodNotAllowed message to report.
type DeleteDishCommand struct { //nolint:recvcheck //using for validation
	dishID string

	guard guard.ConstructorGuard
}

func NewDeleteDishCommand(dishID string) (DeleteDishCommand, error) {
	if dishID == "" {
		return DeleteDishCommand{}, errs.NewValueIsRequiredError("dishId")
	}
	return DeleteDishCommand{dishID: dishID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteDishCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDishCommandIsNotConstructed)
}

func (c DeleteDishCommand) DishID() string {
	return c.dishID
}
