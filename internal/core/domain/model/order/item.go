package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Item is one line of an order: a dish reference and how many of it.
type Item struct {
	dishID   string
	quantity int
}

// NewItem creates an order line. The quantity must be at least 1.
// The dish id is a plain reference and is not checked against the menu.
func NewItem(dishID string, quantity int) (Item, error) {
	item := Item{dishID: dishID}
	if err := item.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	return item, nil
}

// DishID returns the referenced dish id.
func (i Item) DishID() string {
	return i.dishID
}

// Quantity returns the number of portions ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Validate rejects zero-value items.
func (i Item) Validate() error {
	if i.quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", i.quantity))
	}
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
