// Package contracttest provides contract fixtures shared by tests across the
// domain, application and adapter layers.
package contracttest

import (
	"testing"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
)

// Scenario values of the reference purchase order.
const (
	PurchaseOrderID       = 4
	TransportOrderID      = 8
	SellerShortID         = "seller2"
	BuyerShortID          = "buyer2"
	TransporterID         = "transporter1"
	TotalBuyerPayment     = 700
	TotalTransportPayment = 100
	SellerAddress         = "Ksa,jeddah,Al Faisaliyyah,Sari,2345"
	BuyerAddress          = "ksa,Riyadh, Alyasmin,Olaya,2387"
	ItemName              = "RawMaterial1"
	ItemQuantity          = 100
	ItemOptions           = "color red , size small"
	ActualDeliveryTime    = 1635633600
)

// EstimatedDeliveryTimes returns the two delivery estimates of the reference purchase order.
func EstimatedDeliveryTimes() []int64 {
	return []int64{1635553600, 1635630000}
}

// Terms returns valid terms for the reference purchase order with one line item.
func Terms(tb testing.TB) contract.Terms {
	tb.Helper()

	items, err := contract.NewLineItems(
		[]string{ItemName},
		[]int64{ItemQuantity},
		[]string{ItemOptions},
	)
	if err != nil {
		tb.Fatalf("build line items: %v", err)
	}

	return contract.Terms{
		PurchaseOrderID:        PurchaseOrderID,
		TransportOrderID:       TransportOrderID,
		SellerShortID:          ShortID(tb, SellerShortID),
		BuyerShortID:           ShortID(tb, BuyerShortID),
		TransporterID:          ShortID(tb, TransporterID),
		TotalBuyerPayment:      TotalBuyerPayment,
		TotalTransportPayment:  TotalTransportPayment,
		EstimatedDeliveryTimes: EstimatedDeliveryTimes(),
		SellerAddress:          SellerAddress,
		BuyerAddress:           BuyerAddress,
		Items:                  items,
	}
}

// Contract returns a new Created contract built from Terms with a fresh key.
func Contract(tb testing.TB) *contract.Contract {
	tb.Helper()

	c, err := contract.NewContract(kernel.NewUUID(), Terms(tb))
	if err != nil {
		tb.Fatalf("build contract: %v", err)
	}
	return c
}

// ShortID builds a ShortID or fails the test.
func ShortID(tb testing.TB, value string) kernel.ShortID {
	tb.Helper()

	id, err := kernel.NewShortID(value)
	if err != nil {
		tb.Fatalf("build short id %q: %v", value, err)
	}
	return id
}
