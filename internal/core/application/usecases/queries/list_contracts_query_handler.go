package queries

import (
	"context"

	"supplychain/internal/core/ports"
)

// ListContractsQueryHandler lists stored contracts ordered by key.
type ListContractsQueryHandler struct {
	reader ports.ContractReader
}

// NewListContractsQueryHandler creates a handler reading through reader.
func NewListContractsQueryHandler(reader ports.ContractReader) ListContractsQueryHandler {
	return ListContractsQueryHandler{reader: reader}
}

// Handle returns the matching contracts. An empty store yields an empty, non-nil slice.
func (h ListContractsQueryHandler) Handle(ctx context.Context, query ListContractsQuery) ([]ContractResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	contracts, err := h.reader.ListByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	responses := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, newContractResponse(c))
	}
	return responses, nil
}
