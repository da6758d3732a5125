package contract

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when validating a zero-value LineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered entry of a purchase order.
type LineItem struct {
	name     kernel.ShortID
	quantity int64
	options  string
}

// NewLineItem validates and builds a line item.
// The name must be a constructed ShortID and the quantity must be positive.
// Options are free text and may be empty.
func NewLineItem(name kernel.ShortID, quantity int64, options string) (LineItem, error) {
	if err := errors.Join(
		name.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{name: name, quantity: quantity, options: options}, nil
}

// NewLineItems zips the parallel name/quantity/options sequences into line items.
//
// The three sequences must have the same, non-zero length. Entry i of each
// sequence describes item i. Every entry is validated and all failures are
// reported together.
//
// Example:
//
//	items, err := contract.NewLineItems(
//	    []string{"RawMaterial1"},
//	    []int64{100},
//	    []string{"color red , size small"},
//	)
func NewLineItems(names []string, quantities []int64, options []string) ([]LineItem, error) {
	if len(names) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if len(names) != len(quantities) || len(names) != len(options) {
		return nil, errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf(
			"item names, quantities and options must have equal length, got %d, %d and %d",
			len(names), len(quantities), len(options),
		))
	}

	items := make([]LineItem, 0, len(names))
	var failures []error
	for i := range names {
		name, err := kernel.NewShortID(names[i])
		if err != nil {
			failures = append(failures, fmt.Errorf("item %d name: %w", i, err))
			continue
		}
		item, err := NewLineItem(name, quantities[i], options[i])
		if err != nil {
			failures = append(failures, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(failures...); err != nil {
		return nil, err
	}

	return items, nil
}

// Name returns the item identifier.
func (i LineItem) Name() kernel.ShortID {
	return i.name
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int64 {
	return i.quantity
}

// Options returns the free-text options of the item.
func (i LineItem) Options() string {
	return i.options
}

// Validate returns ErrLineItemIsNotConstructed for the zero value.
func (i LineItem) Validate() error {
	if i.name.Validate() != nil || i.quantity <= 0 {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
