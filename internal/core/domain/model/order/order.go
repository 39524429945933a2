package order

import (
	"errors"
	"fmt"
	"slices"

	"grubdash/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's delivery order. It is the aggregate root that owns the
// order lifecycle from placement to delivery.
//
// Order follows these invariants:
//   - id is non-empty and never changes
//   - deliverTo and mobileNumber are non-empty
//   - there is at least one item, and every item has a quantity of at least 1
//   - status transitions follow the rules of Status.ChangeTo
type Order struct {
	id           string
	deliverTo    string
	mobileNumber string
	status       Status
	items        []Item

	isConstructed bool
}

// NewOrder places a new order in Pending status.
//
// Example:
//
//	item, _ := order.NewItem(dishID, 2)
//	o, err := order.NewOrder(ids.NextID(), "308 Negra Arroyo Lane", "(505) 143-3369", []order.Item{item})
func NewOrder(id, deliverTo, mobileNumber string, items []Item) (*Order, error) {
	return RestoreOrder(id, deliverTo, mobileNumber, Pending, items)
}

// RestoreOrder rebuilds an order in any valid status. It is used by repositories
// and seed loading; new orders go through NewOrder.
func RestoreOrder(id, deliverTo, mobileNumber string, status Status, items []Item) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDeliverTo(deliverTo),
		o.setMobileNumber(mobileNumber),
		o.setStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() string {
	return o.id
}

// DeliverTo returns the delivery address.
func (o *Order) DeliverTo() string {
	return o.deliverTo
}

// MobileNumber returns the customer's contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Replace overwrites deliverTo, mobileNumber, items and status in one step.
//
// This method enforces the following business rules:
//   - a delivered order cannot be changed
//   - the new status must be a valid lifecycle state
//   - all fields must satisfy the constructor invariants
//
// Nothing is modified when any rule fails.
func (o *Order) Replace(deliverTo, mobileNumber string, items []Item, status Status) error {
	next, err := o.status.ChangeTo(status)
	if err != nil {
		return err
	}

	updated := *o
	if err = errors.Join(
		updated.setDeliverTo(deliverTo),
		updated.setMobileNumber(mobileNumber),
		updated.setItems(items),
	); err != nil {
		return err
	}
	updated.status = next

	*o = updated
	return nil
}

// ValidateDelete checks that the order may be removed. Only pending orders qualify.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

func (o *Order) setDeliverTo(deliverTo string) error {
	if deliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	o.deliverTo = deliverTo
	return nil
}

func (o *Order) setMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	o.mobileNumber = mobileNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("dishes")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("dishes[%d]", i), err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}
