package contract

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle stage of a contract record (the purchase
// order status).
//
// State transitions:
//
//	Created ──> Delivered
//
// Created is the only initial state and Delivered is terminal. There is no
// way back and no other transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) catches uninitialized Status values.
	Unknown Status = iota

	// Created is the status of every record right after creation.
	Created

	// Delivered is the terminal status reached once the actual delivery
	// time has been recorded.
	Delivered
)

// String returns the name of the status and implements fmt.Stringer.
// Any value outside the enum renders as "Unknown".
func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Delivered:
		return "Delivered"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Validate returns an error unless s is Created or Delivered.
// Used to check values coming from storage or the API.
func (s Status) Validate() error {
	switch s {
	case Created, Delivered:
		return nil
	case Unknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Deliver returns the status that follows a recorded delivery.
//
// Valid transitions:
//   - Created -> Delivered
//
// Invalid transitions:
//   - Delivered -> Delivered (delivery is recorded at most once)
//   - Unknown -> Delivered
//
// Rejected transitions return a StateTransitionIsInvalidError.
func (s Status) Deliver() (Status, error) {
	if s != Created {
		return Unknown, errs.NewStateTransitionIsInvalidError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// ParseStatus converts a status name ("Created", "Delivered") back to a Status.
func ParseStatus(name string) (Status, error) {
	switch name {
	case Created.String():
		return Created, nil
	case Delivered.String():
		return Delivered, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
	}
}
