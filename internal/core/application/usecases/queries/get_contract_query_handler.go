package queries

import (
	"context"

	"supplychain/internal/core/ports"
)

// GetContractQueryHandler reads one contract from the store.
// The response reflects either the state before or after any concurrent
// delivery of the same record, never a mix.
type GetContractQueryHandler struct {
	reader ports.ContractReader
}

// NewGetContractQueryHandler creates a handler reading through reader.
func NewGetContractQueryHandler(reader ports.ContractReader) GetContractQueryHandler {
	return GetContractQueryHandler{reader: reader}
}

// Handle returns the contract snapshot or an ObjectNotFoundError for unknown keys.
func (h GetContractQueryHandler) Handle(ctx context.Context, query GetContractQuery) (ContractResponse, error) {
	if err := query.Validate(); err != nil {
		return ContractResponse{}, err
	}

	c, err := h.reader.Get(ctx, query.ContractID())
	if err != nil {
		return ContractResponse{}, err
	}

	return newContractResponse(c), nil
}
