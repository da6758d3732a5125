package contract

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// Terms holds everything agreed when a contract is created. None of it
// changes afterwards.
//
// Timestamps are Unix epoch seconds.
type Terms struct {
	PurchaseOrderID        int64
	TransportOrderID       int64
	SellerShortID          kernel.ShortID
	BuyerShortID           kernel.ShortID
	TransporterID          kernel.ShortID
	TotalBuyerPayment      int64
	TotalTransportPayment  int64
	EstimatedDeliveryTimes []int64
	SellerAddress          string
	BuyerAddress           string
	Items                  []LineItem
}

// Validate checks every field and reports all violations at once.
//
// Rules:
//   - order identifiers and payment totals are non-negative
//   - seller, buyer and transporter ids are constructed ShortIDs
//   - at least one estimated delivery time, none negative
//   - at least one line item, each constructed through NewLineItem
func (t Terms) Validate() error {
	return errors.Join(
		validateNonNegative("purchase order id", t.PurchaseOrderID),
		validateNonNegative("transport order id", t.TransportOrderID),
		wrapField("seller short id", t.SellerShortID.Validate()),
		wrapField("buyer short id", t.BuyerShortID.Validate()),
		wrapField("transporter id", t.TransporterID.Validate()),
		validateNonNegative("total buyer payment", t.TotalBuyerPayment),
		validateNonNegative("total transport payment", t.TotalTransportPayment),
		validateEstimatedDeliveryTimes(t.EstimatedDeliveryTimes),
		validateItems(t.Items),
	)
}

// clone returns a copy that shares no slices with t.
func (t Terms) clone() Terms {
	t.EstimatedDeliveryTimes = slices.Clone(t.EstimatedDeliveryTimes)
	t.Items = slices.Clone(t.Items)
	return t
}

func validateNonNegative(name string, value int64) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, int64(math.MaxInt64))
	}
	return nil
}

func validateEstimatedDeliveryTimes(times []int64) error {
	if len(times) == 0 {
		return errs.NewValueIsRequiredError("estimated delivery times")
	}
	for i, ts := range times {
		if ts < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"estimated delivery times",
				fmt.Errorf("timestamp %d is negative: %d", i, ts),
			)
		}
	}
	return nil
}

func validateItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d: %w", i, err))
		}
	}
	return nil
}

func wrapField(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
