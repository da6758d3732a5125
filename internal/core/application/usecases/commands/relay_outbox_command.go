package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrRelayOutboxCommandIsNotConstructed = errors.New(
		"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
	)
)

// RelayOutboxCommand asks for one relay pass over stored events.
type RelayOutboxCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewRelayOutboxCommand creates a relay command handling at most batchSize messages.
func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize <= 0 {
		return RelayOutboxCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size",
			fmt.Errorf("%d is not greater than 0", batchSize),
		)
	}

	return RelayOutboxCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages to relay.
func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
