package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/pkg/guard"
)

var (
	ErrListContractsQueryIsNotConstructed = errors.New(
		"ListContractsQuery must be created via NewListContractsQuery constructor",
	)
)

// ListContractsQuery retrieves stored contracts, optionally in one status only.
type ListContractsQuery struct {
	status *contract.Status

	guard guard.ConstructorGuard
}

// NewListContractsQuery creates a listing query. A nil status lists every contract.
func NewListContractsQuery(status *contract.Status) (ListContractsQuery, error) {
	query := ListContractsQuery{guard: guard.NewConstructorGuard()}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListContractsQuery{}, err
		}
		s := *status
		query.status = &s
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListContractsQuery) Validate() error {
	return q.guard.Validate(ErrListContractsQueryIsNotConstructed)
}

// Status returns the requested status filter, or nil for no filter.
func (q ListContractsQuery) Status() *contract.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}
