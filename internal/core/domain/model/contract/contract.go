package contract

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrContractIsNotConstructed is returned when a Contract instance was not created through
	// NewContract or RestoreContract.
	ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")
)

// Contract is the record of one multi-party purchase/transport agreement.
// It is the aggregate root the registry stores under its key.
//
// Contract follows these invariants:
//   - The key is a valid UUID and never changes
//   - Terms (identifiers, payments, delivery estimates, addresses, items) never change
//   - Status moves only from Created to Delivered, at most once
//   - ActualDeliveryTime is zero while Created and positive once Delivered
//
// Accessors return copies, so a *Contract handed out by a repository cannot be
// used to mutate stored state except through MarkAsDelivered.
type Contract struct {
	// id is the record key
	id kernel.UUID

	// terms are the immutable fields agreed at creation
	terms Terms

	// actualDeliveryTime is the Unix time of delivery, zero until delivered
	actualDeliveryTime int64

	// status is the current lifecycle stage
	status Status

	// version counts persisted changes and guards concurrent updates
	version int

	// events holds domain events not yet handed to a unit of work
	events []kernel.DomainEvent

	// isConstructed ensures the contract was created via a constructor
	isConstructed bool
}

// NewContract creates a contract in Created status with no delivery recorded
// and records a CreatedEvent.
//
// Parameters:
//   - id: the record key, allocated by the caller (must be a valid UUID)
//   - terms: the creation fields, validated with Terms.Validate
//
// Example:
//
//	items, _ := contract.NewLineItems([]string{"RawMaterial1"}, []int64{100}, []string{"color red , size small"})
//	c, err := contract.NewContract(kernel.NewUUID(), contract.Terms{
//	    PurchaseOrderID:        4,
//	    TransportOrderID:       8,
//	    SellerShortID:          seller,
//	    BuyerShortID:           buyer,
//	    TransporterID:          transporter,
//	    TotalBuyerPayment:      700,
//	    TotalTransportPayment:  100,
//	    EstimatedDeliveryTimes: []int64{1635553600, 1635630000},
//	    Items:                  items,
//	})
func NewContract(id kernel.UUID, terms Terms) (*Contract, error) {
	c := &Contract{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTerms(terms),
	); err != nil {
		return nil, err
	}

	eventID, err := kernel.NewTimeOrderedUUID()
	if err != nil {
		return nil, err
	}
	c.raise(CreatedEvent{
		ID:               eventID,
		ContractID:       c.id,
		PurchaseOrderID:  c.terms.PurchaseOrderID,
		TransportOrderID: c.terms.TransportOrderID,
		At:               time.Now().UTC(),
	})

	return c, nil
}

// RestoreContract rebuilds a contract from persisted state. No events are recorded.
//
// Besides the NewContract rules it checks that status and actualDeliveryTime
// agree: Created requires zero, Delivered requires a positive value.
func RestoreContract(
	id kernel.UUID,
	terms Terms,
	status Status,
	actualDeliveryTime int64,
	version int,
) (*Contract, error) {
	c := &Contract{
		isConstructed: true,
		version:       version,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTerms(terms),
		c.setDeliveryState(status, actualDeliveryTime),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Contract instance was properly constructed.
func (c *Contract) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContractIsNotConstructed
	}
	return nil
}

// IsEqual compares two contracts by key.
func (c *Contract) IsEqual(other *Contract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the record key.
func (c *Contract) ID() kernel.UUID {
	return c.id
}

// Terms returns a copy of the creation fields.
func (c *Contract) Terms() Terms {
	return c.terms.clone()
}

// PurchaseOrderID returns the purchase order identifier.
func (c *Contract) PurchaseOrderID() int64 {
	return c.terms.PurchaseOrderID
}

// TransportOrderID returns the transport order identifier.
func (c *Contract) TransportOrderID() int64 {
	return c.terms.TransportOrderID
}

// SellerShortID returns the seller identifier.
func (c *Contract) SellerShortID() kernel.ShortID {
	return c.terms.SellerShortID
}

// BuyerShortID returns the buyer identifier.
func (c *Contract) BuyerShortID() kernel.ShortID {
	return c.terms.BuyerShortID
}

// TransporterID returns the transporter identifier.
func (c *Contract) TransporterID() kernel.ShortID {
	return c.terms.TransporterID
}

// TotalBuyerPayment returns the amount the buyer pays.
func (c *Contract) TotalBuyerPayment() int64 {
	return c.terms.TotalBuyerPayment
}

// TotalTransportPayment returns the amount paid for transport.
func (c *Contract) TotalTransportPayment() int64 {
	return c.terms.TotalTransportPayment
}

// EstimatedDeliveryTimes returns a copy of the planned delivery timestamps.
func (c *Contract) EstimatedDeliveryTimes() []int64 {
	return slices.Clone(c.terms.EstimatedDeliveryTimes)
}

// SellerAddress returns the seller's postal address.
func (c *Contract) SellerAddress() string {
	return c.terms.SellerAddress
}

// BuyerAddress returns the buyer's postal address.
func (c *Contract) BuyerAddress() string {
	return c.terms.BuyerAddress
}

// Items returns a copy of the line items in order.
func (c *Contract) Items() []LineItem {
	return slices.Clone(c.terms.Items)
}

// ActualDeliveryTime returns the recorded delivery time, or zero if not delivered.
func (c *Contract) ActualDeliveryTime() int64 {
	return c.actualDeliveryTime
}

// Status returns the current lifecycle stage.
func (c *Contract) Status() Status {
	return c.status
}

// Version returns the persisted version the contract was loaded at.
func (c *Contract) Version() int {
	return c.version
}

// MarkAsDelivered records the actual delivery time and moves the contract to Delivered.
//
// This method enforces the following business rules:
//   - The contract must be in Created status; a second call fails with a
//     StateTransitionIsInvalidError whatever the time passed
//   - actualDeliveryTime must be a positive Unix timestamp
//
// On failure the contract is left unchanged. On success a DeliveredEvent is recorded.
func (c *Contract) MarkAsDelivered(actualDeliveryTime int64) error {
	newStatus, err := c.status.Deliver()
	if err != nil {
		return err
	}
	if err = validateActualDeliveryTime(actualDeliveryTime); err != nil {
		return err
	}

	eventID, err := kernel.NewTimeOrderedUUID()
	if err != nil {
		return err
	}

	c.status = newStatus
	c.actualDeliveryTime = actualDeliveryTime
	c.raise(DeliveredEvent{
		ID:                 eventID,
		ContractID:         c.id,
		PurchaseOrderID:    c.terms.PurchaseOrderID,
		ActualDeliveryTime: actualDeliveryTime,
		At:                 time.Now().UTC(),
	})
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (c *Contract) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(c.events)
}

// ClearDomainEvents drops recorded events once a unit of work has stored them.
func (c *Contract) ClearDomainEvents() {
	c.events = nil
}

func (c *Contract) raise(event kernel.DomainEvent) {
	c.events = append(c.events, event)
}

func (c *Contract) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Contract) setTerms(terms Terms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	c.terms = terms.clone()
	return nil
}

func (c *Contract) setDeliveryState(status Status, actualDeliveryTime int64) error {
	if err := status.Validate(); err != nil {
		return err
	}

	switch status {
	case Created:
		if actualDeliveryTime != 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"actual delivery time",
				fmt.Errorf("%s contract cannot have a delivery time, got %d", status, actualDeliveryTime),
			)
		}
	case Delivered:
		if err := validateActualDeliveryTime(actualDeliveryTime); err != nil {
			return err
		}
	case Unknown:
	}

	c.status = status
	c.actualDeliveryTime = actualDeliveryTime
	return nil
}

func validateActualDeliveryTime(ts int64) error {
	if ts <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actual delivery time", fmt.Errorf("%d is not greater than 0", ts))
	}
	return nil
}
