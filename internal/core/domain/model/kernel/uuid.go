package kernel

import (
	"fmt"
	"strings"

	"grubdash/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through NewUUID or UUIDFromString.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID is a value object that represents a universally unique identifier.
// The zero value is invalid.
//
// Example usage:
//
//	id := kernel.NewUUID()
//	fmt.Println(id.Hex()) // e.g. "550e8400e29b41d4a716446655440000"
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from any representation accepted by uuid.Parse,
// including the 32 character hex form produced by Hex.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Hex returns the UUID as 32 lowercase hex characters without hyphens.
// This is the form used for dish and order identifiers.
func (u UUID) Hex() string {
	return strings.ReplaceAll(u.id.String(), "-", "")
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// UUIDGenerator hands out identifiers for newly created dishes and orders.
// Version 4 UUIDs make collisions with existing entries practically impossible,
// so no lookup against the store is performed.
type UUIDGenerator struct{}

// NewUUIDGenerator returns the default identifier source.
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NextID returns a fresh identifier.
func (UUIDGenerator) NextID() string {
	return NewUUID().Hex()
}
