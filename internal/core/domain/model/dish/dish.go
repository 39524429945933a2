package dish

import (
	"errors"
	"fmt"

	"grubdash/internal/pkg/errs"
)

var (
	// ErrDishIsNotConstructed is returned when a Dish was not created through NewDish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
)

// Dish represents a menu entry.
//
// Dish follows these invariants:
//   - id is non-empty and never changes
//   - name, description and imageURL are non-empty
//   - price is strictly greater than zero
type Dish struct {
	id          string
	name        string
	description string
	price       int
	imageURL    string

	isConstructed bool
}

// NewDish creates a Dish, validating every field.
//
// Example:
//
//	d, err := dish.NewDish(ids.NextID(), "Falafel and tahini bagel", "A warm bagel", 6, "https://...")
//	if err != nil {
//	    // Handle validation error
//	}
func NewDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	d := &Dish{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Dish was created through NewDish.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// Replace overwrites every mutable field. The id is left untouched.
// Nothing is changed when any field is invalid.
func (d *Dish) Replace(name, description string, price int, imageURL string) error {
	next := *d
	if err := errors.Join(
		next.setName(name),
		next.setDescription(description),
		next.setPrice(price),
		next.setImageURL(imageURL),
	); err != nil {
		return err
	}

	*d = next
	return nil
}

// Clone returns an independent copy of the dish.
func (d *Dish) Clone() *Dish {
	c := *d
	return &c
}

// ID returns the dish identifier.
func (d *Dish) ID() string {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the price in whole currency units.
func (d *Dish) Price() int {
	return d.price
}

// ImageURL returns the dish picture location.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

func (d *Dish) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	d.price = price
	return nil
}

func (d *Dish) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	d.imageURL = imageURL
	return nil
}
