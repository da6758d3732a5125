package leveldb

import (
	"time"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
)

// contractRecord is the stored form of a contract aggregate.
type contractRecord struct {
	ID                     string           `json:"id"`
	PurchaseOrderID        int64            `json:"purchase_order_id"`
	TransportOrderID       int64            `json:"transport_order_id"`
	SellerShortID          string           `json:"seller_short_id"`
	BuyerShortID           string           `json:"buyer_short_id"`
	TransporterID          string           `json:"transporter_id"`
	TotalBuyerPayment      int64            `json:"total_buyer_payment"`
	TotalTransportPayment  int64            `json:"total_transport_payment"`
	EstimatedDeliveryTimes []int64          `json:"estimated_delivery_times"`
	SellerAddress          string           `json:"seller_address"`
	BuyerAddress           string           `json:"buyer_address"`
	Items                  []lineItemRecord `json:"items"`
	Status                 int              `json:"status"`
	ActualDeliveryTime     int64            `json:"actual_delivery_time"`
	Version                int              `json:"version"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

type lineItemRecord struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Options  string `json:"options"`
}

type outboxRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     []byte    `json:"payload"`
}

func contractKey(id kernel.UUID) []byte {
	return []byte(contractPrefix + id.String())
}

func outboxKey(id kernel.UUID) []byte {
	return []byte(outboxPrefix + id.String())
}

func fromDomain(aggregate *contract.Contract) contractRecord {
	items := make([]lineItemRecord, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, lineItemRecord{
			Name:     item.Name().String(),
			Quantity: item.Quantity(),
			Options:  item.Options(),
		})
	}

	return contractRecord{
		ID:                     aggregate.ID().String(),
		PurchaseOrderID:        aggregate.PurchaseOrderID(),
		TransportOrderID:       aggregate.TransportOrderID(),
		SellerShortID:          aggregate.SellerShortID().String(),
		BuyerShortID:           aggregate.BuyerShortID().String(),
		TransporterID:          aggregate.TransporterID().String(),
		TotalBuyerPayment:      aggregate.TotalBuyerPayment(),
		TotalTransportPayment:  aggregate.TotalTransportPayment(),
		EstimatedDeliveryTimes: aggregate.EstimatedDeliveryTimes(),
		SellerAddress:          aggregate.SellerAddress(),
		BuyerAddress:           aggregate.BuyerAddress(),
		Items:                  items,
		Status:                 int(aggregate.Status()),
		ActualDeliveryTime:     aggregate.ActualDeliveryTime(),
		Version:                aggregate.Version(),
	}
}

func toDomain(record contractRecord) (*contract.Contract, error) {
	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	seller, err := kernel.NewShortID(record.SellerShortID)
	if err != nil {
		return nil, err
	}
	buyer, err := kernel.NewShortID(record.BuyerShortID)
	if err != nil {
		return nil, err
	}
	transporter, err := kernel.NewShortID(record.TransporterID)
	if err != nil {
		return nil, err
	}

	items := make([]contract.LineItem, 0, len(record.Items))
	for _, r := range record.Items {
		name, nameErr := kernel.NewShortID(r.Name)
		if nameErr != nil {
			return nil, nameErr
		}
		item, itemErr := contract.NewLineItem(name, r.Quantity, r.Options)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return contract.RestoreContract(id, contract.Terms{
		PurchaseOrderID:        record.PurchaseOrderID,
		TransportOrderID:       record.TransportOrderID,
		SellerShortID:          seller,
		BuyerShortID:           buyer,
		TransporterID:          transporter,
		TotalBuyerPayment:      record.TotalBuyerPayment,
		TotalTransportPayment:  record.TotalTransportPayment,
		EstimatedDeliveryTimes: record.EstimatedDeliveryTimes,
		SellerAddress:          record.SellerAddress,
		BuyerAddress:           record.BuyerAddress,
		Items:                  items,
	}, contract.Status(record.Status), record.ActualDeliveryTime, record.Version)
}

func outboxFromMessage(message ports.OutboxMessage) outboxRecord {
	return outboxRecord{
		ID:          message.ID.String(),
		Name:        message.Name,
		AggregateID: message.AggregateID.String(),
		OccurredAt:  message.OccurredAt,
		Payload:     message.Payload,
	}
}

func outboxToMessage(record outboxRecord) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromString(record.AggregateID)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		Name:        record.Name,
		AggregateID: aggregateID,
		OccurredAt:  record.OccurredAt,
		Payload:     record.Payload,
	}, nil
}
