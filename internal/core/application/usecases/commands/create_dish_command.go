package commands

import (
	"errors"

	"grubdash/internal/core/application/request"
	"grubdash/internal/pkg/guard"
)

var (
	ErrCreateDishCommandIsNotConstructed = errors.New(
		"CreateDishCommand must be created via NewCreateDishCommand constructor",
	)
)

// CreateDishCommand carries the submitted data envelope for a new dish.
// The payload is unchecked here; the handler's pipeline validates it.
//
// Example:
//
//	cmd := NewCreateDishCommand(request.NewPayload(body["data"]))
//	created, err := handler.Handle(ctx, cmd)
type CreateDishCommand struct { //nolint:recvcheck //using for validation
	data request.Payload

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command from a decoded data envelope.
func NewCreateDishCommand(data request.Payload) CreateDishCommand {
	return CreateDishCommand{data: data, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Data returns the submitted payload.
func (c CreateDishCommand) Data() request.Payload {
	return c.data
}
