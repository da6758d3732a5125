package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/pkg/guard"
)

var (
	ErrCreateContractCommandIsNotConstructed = errors.New(
		"CreateContractCommand must be created via NewCreateContractCommand constructor",
	)
)

// CreateContractCommand represents a request to register a new contract record.
// The registry allocates the key; the command only carries the agreed terms.
//
// Example:
//
//	items, err := contract.NewLineItems(names, quantities, options)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCreateContractCommand(contract.Terms{ /* ... */ Items: items})
//	if err != nil {
//	    return fmt.Errorf("invalid contract data: %w", err)
//	}
//
//	key, err := handler.Handle(ctx, cmd)
type CreateContractCommand struct { //nolint:recvcheck //using for validation
	terms contract.Terms

	guard guard.ConstructorGuard
}

// NewCreateContractCommand creates a command to register a contract.
// Returns the validation errors of terms, if any.
func NewCreateContractCommand(terms contract.Terms) (CreateContractCommand, error) {
	cmd := CreateContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTerms(terms); err != nil {
		return CreateContractCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContractCommand) Validate() error {
	return c.guard.Validate(ErrCreateContractCommandIsNotConstructed)
}

// Terms returns the terms of the contract to create.
func (c CreateContractCommand) Terms() contract.Terms {
	return c.terms
}

func (c *CreateContractCommand) setTerms(terms contract.Terms) error {
	if err := terms.Validate(); err != nil {
		return err
	}

	c.terms = terms
	return nil
}
