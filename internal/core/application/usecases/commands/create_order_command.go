package commands

import (
	"errors"

	"grubdash/internal/core/application/request"
	"grubdash/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand carries the submitted data envelope for a new order.
// Any status in the payload is ignored; new orders always start as pending.
//
// Example:
//
//	cmd := NewCreateOrderCommand(request.NewPayload(body["data"]))
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	data request.Payload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from a decoded data envelope.
func NewCreateOrderCommand(data request.Payload) CreateOrderCommand {
	return CreateOrderCommand{data: data, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Data returns the submitted payload.
func (c CreateOrderCommand) Data() request.Payload {
	return c.data
}
