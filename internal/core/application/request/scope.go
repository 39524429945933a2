package request

import (
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
)

// Carrier is implemented by every scope that carries a submitted payload.
type Carrier interface {
	Payload() Payload
}

// DishScope is the request context for dish routes.
// Dish and Index are set by the existence resolver or by the create handler.
type DishScope struct {
	DishID string
	Data   Payload

	Dish  *dish.Dish
	Index int
}

// Payload returns the submitted data.
func (s *DishScope) Payload() Payload {
	return s.Data
}

// Resolved reports whether a dish has been attached.
func (s *DishScope) Resolved() bool {
	return s.Dish != nil
}

// OrderScope is the request context for order routes.
// Order and Index are set by the existence resolver or by the create handler.
type OrderScope struct {
	OrderID string
	Data    Payload

	Order *order.Order
	Index int
}

// Payload returns the submitted data.
func (s *OrderScope) Payload() Payload {
	return s.Data
}

// Resolved reports whether an order has been attached.
func (s *OrderScope) Resolved() bool {
	return s.Order != nil
}
