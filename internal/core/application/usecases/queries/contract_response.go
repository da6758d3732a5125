// Package queries contains read operations for retrieving registry state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models detached from the stored aggregates.
package queries

import (
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
)

// ContractResponse is the read model of one stored contract.
// Every field is a copy; changing it has no effect on the registry.
type ContractResponse struct {
	ID                     kernel.UUID
	PurchaseOrderID        int64
	TransportOrderID       int64
	SellerShortID          string
	BuyerShortID           string
	TransporterID          string
	TotalBuyerPayment      int64
	TotalTransportPayment  int64
	EstimatedDeliveryTimes []int64
	SellerAddress          string
	BuyerAddress           string
	Items                  []LineItemResponse
	Status                 contract.Status
	ActualDeliveryTime     int64
}

// LineItemResponse is the read model of one line item.
type LineItemResponse struct {
	Name     string
	Quantity int64
	Options  string
}

func newContractResponse(c *contract.Contract) ContractResponse {
	items := make([]LineItemResponse, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, LineItemResponse{
			Name:     item.Name().String(),
			Quantity: item.Quantity(),
			Options:  item.Options(),
		})
	}

	return ContractResponse{
		ID:                     c.ID(),
		PurchaseOrderID:        c.PurchaseOrderID(),
		TransportOrderID:       c.TransportOrderID(),
		SellerShortID:          c.SellerShortID().String(),
		BuyerShortID:           c.BuyerShortID().String(),
		TransporterID:          c.TransporterID().String(),
		TotalBuyerPayment:      c.TotalBuyerPayment(),
		TotalTransportPayment:  c.TotalTransportPayment(),
		EstimatedDeliveryTimes: c.EstimatedDeliveryTimes(),
		SellerAddress:          c.SellerAddress(),
		BuyerAddress:           c.BuyerAddress(),
		Items:                  items,
		Status:                 c.Status(),
		ActualDeliveryTime:     c.ActualDeliveryTime(),
	}
}
