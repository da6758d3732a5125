package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetContractQueryIsNotConstructed = errors.New(
		"GetContractQuery must be created via NewGetContractQuery constructor",
	)
)

// GetContractQuery retrieves one contract by key.
//
// Example:
//
//	query, err := NewGetContractQuery(key)
//	if err != nil {
//	    return err
//	}
//
//	record, err := handler.Handle(ctx, query)
//	if errs.IsNotFound(err) {
//	    // unknown key
//	}
type GetContractQuery struct {
	contractID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetContractQuery creates a query for the contract with the given key.
func NewGetContractQuery(contractID kernel.UUID) (GetContractQuery, error) {
	if err := contractID.Validate(); err != nil {
		return GetContractQuery{}, err
	}

	return GetContractQuery{
		contractID: contractID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContractQuery) Validate() error {
	return q.guard.Validate(ErrGetContractQueryIsNotConstructed)
}

// ContractID returns the requested key.
func (q GetContractQuery) ContractID() kernel.UUID {
	return q.contractID
}
