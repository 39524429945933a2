package order

import (
	"fmt"

	"grubdash/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order. Pending orders can be deleted.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Delivered is the final state. No further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:        "pending",
		Preparing:      "preparing",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
	}
}

// ParseStatus converts the wire representation into a Status.
// Anything other than pending, preparing, out-for-delivery or delivered is rejected.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether the status is terminal.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// ValidateChange checks that an order in this status may still be modified.
func (s Status) ValidateChange() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s is a final status", s))
	}
	return nil
}

// ChangeTo returns target if the transition from s is allowed.
//
// Valid transitions:
//   - pending, preparing, out-for-delivery -> any valid status
//
// Invalid transitions:
//   - delivered -> anything (delivered is final)
//   - anything -> Unknown
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := s.ValidateChange(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}

// ValidateDelete checks that an order in this status can be removed.
// Only pending orders can be deleted.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s orders cannot be deleted", s))
	}
	return nil
}
