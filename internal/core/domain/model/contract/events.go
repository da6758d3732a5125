package contract

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
)

const (
	// CreatedEventName names the event recorded when a contract is created.
	CreatedEventName = "ContractCreated"
	// DeliveredEventName names the event recorded when delivery is recorded.
	DeliveredEventName = "ContractDelivered"
)

// CreatedEvent is recorded by NewContract.
type CreatedEvent struct {
	ID               kernel.UUID `json:"event_id"`
	ContractID       kernel.UUID `json:"contract_id"`
	PurchaseOrderID  int64       `json:"purchase_order_id"`
	TransportOrderID int64       `json:"transport_order_id"`
	At               time.Time   `json:"occurred_at"`
}

func (e CreatedEvent) EventID() kernel.UUID     { return e.ID }
func (e CreatedEvent) EventName() string        { return CreatedEventName }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.ContractID }
func (e CreatedEvent) OccurredAt() time.Time    { return e.At }

// DeliveredEvent is recorded by Contract.MarkAsDelivered.
type DeliveredEvent struct {
	ID                 kernel.UUID `json:"event_id"`
	ContractID         kernel.UUID `json:"contract_id"`
	PurchaseOrderID    int64       `json:"purchase_order_id"`
	ActualDeliveryTime int64       `json:"actual_delivery_time"`
	At                 time.Time   `json:"occurred_at"`
}

func (e DeliveredEvent) EventID() kernel.UUID     { return e.ID }
func (e DeliveredEvent) EventName() string        { return DeliveredEventName }
func (e DeliveredEvent) AggregateID() kernel.UUID { return e.ContractID }
func (e DeliveredEvent) OccurredAt() time.Time    { return e.At }
