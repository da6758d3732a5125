package kernel

import (
	"fmt"

	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used for contract record keys and
// event identifiers. It wraps github.com/google/uuid; the zero value is invalid.
//
// UUID is comparable and can be used as a map key.
//
// Example usage:
//
//	key := kernel.NewUUID()
//
//	key, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how the registry allocates record keys.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// NewTimeOrderedUUID generates a version 7 UUID whose byte order follows its
// creation time. Outbox messages use it so that key order equals emission order.
func NewTimeOrderedUUID() (UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return UUID{}, fmt.Errorf("generate time ordered UUID: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the canonical, braced, urn and hyphen-less forms.
//
// Example:
//
//	key, err := kernel.UUIDFromString(c.Param("key"))
//	if err != nil {
//	    return fmt.Errorf("invalid contract key: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16 byte slice.
// The nil UUID is rejected with ErrUUIDIsNotConstructed.
//
// Repositories use it to rebuild keys from their storage representation:
//
//	key, err := kernel.UUIDFromBytes(dto.ID[:])
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying github.com/google/uuid value.
// Use key.Bytes()[:] for a byte slice.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler so UUIDs serialize as
// their canonical string inside event payloads.
func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(data []byte) error {
	parsed, err := UUIDFromString(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
