// Package contractrepo persists contract aggregates in PostgreSQL through GORM.
// A contract is stored as one row in "contracts" plus its rows in "line_items".
package contractrepo

import (
	"time"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContractDTO represents the database structure for persisting contract aggregates.
type ContractDTO struct {
	ID                     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	PurchaseOrderID        int64         `gorm:"type:bigint;not null;index"`
	TransportOrderID       int64         `gorm:"type:bigint;not null"`
	SellerShortID          string        `gorm:"type:varchar(32);not null"`
	BuyerShortID           string        `gorm:"type:varchar(32);not null"`
	TransporterID          string        `gorm:"type:varchar(32);not null"`
	TotalBuyerPayment      int64         `gorm:"type:bigint;not null"`
	TotalTransportPayment  int64         `gorm:"type:bigint;not null"`
	EstimatedDeliveryTimes pq.Int64Array `gorm:"type:bigint[];not null"`
	SellerAddress          string        `gorm:"type:text;not null"`
	BuyerAddress           string        `gorm:"type:text;not null"`
	Status                 int           `gorm:"type:smallint;not null;index"`
	ActualDeliveryTime     int64         `gorm:"type:bigint;not null;default:0"`
	Version                int           `gorm:"type:int;not null"`
	CreatedAt              time.Time     `gorm:"not null"`
	UpdatedAt              time.Time     `gorm:"not null"`
	Items                  []LineItemDTO `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "contract_dtos".
func (ContractDTO) TableName() string {
	return "contracts"
}

// LineItemDTO is one line item of a contract, kept in input order by Position.
type LineItemDTO struct {
	ContractID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"type:int;primaryKey"`
	Name       string    `gorm:"type:varchar(32);not null"`
	Quantity   int64     `gorm:"type:bigint;not null"`
	Options    string    `gorm:"type:text;not null"`
}

// TableName overrides GORM's default "line_item_dtos".
func (LineItemDTO) TableName() string {
	return "line_items"
}

func fromDomain(aggregate *contract.Contract) ContractDTO {
	contractID := aggregate.ID().Bytes()
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ContractID: contractID,
			Position:   i,
			Name:       item.Name().String(),
			Quantity:   item.Quantity(),
			Options:    item.Options(),
		})
	}

	return ContractDTO{
		ID:                     contractID,
		PurchaseOrderID:        aggregate.PurchaseOrderID(),
		TransportOrderID:       aggregate.TransportOrderID(),
		SellerShortID:          aggregate.SellerShortID().String(),
		BuyerShortID:           aggregate.BuyerShortID().String(),
		TransporterID:          aggregate.TransporterID().String(),
		TotalBuyerPayment:      aggregate.TotalBuyerPayment(),
		TotalTransportPayment:  aggregate.TotalTransportPayment(),
		EstimatedDeliveryTimes: pq.Int64Array(aggregate.EstimatedDeliveryTimes()),
		SellerAddress:          aggregate.SellerAddress(),
		BuyerAddress:           aggregate.BuyerAddress(),
		Status:                 int(aggregate.Status()),
		ActualDeliveryTime:     aggregate.ActualDeliveryTime(),
		Version:                aggregate.Version(),
		Items:                  items,
	}
}

func toDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	seller, err := kernel.NewShortID(dto.SellerShortID)
	if err != nil {
		return nil, err
	}
	buyer, err := kernel.NewShortID(dto.BuyerShortID)
	if err != nil {
		return nil, err
	}
	transporter, err := kernel.NewShortID(dto.TransporterID)
	if err != nil {
		return nil, err
	}

	items := make([]contract.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return contract.RestoreContract(id, contract.Terms{
		PurchaseOrderID:        dto.PurchaseOrderID,
		TransportOrderID:       dto.TransportOrderID,
		SellerShortID:          seller,
		BuyerShortID:           buyer,
		TransporterID:          transporter,
		TotalBuyerPayment:      dto.TotalBuyerPayment,
		TotalTransportPayment:  dto.TotalTransportPayment,
		EstimatedDeliveryTimes: []int64(dto.EstimatedDeliveryTimes),
		SellerAddress:          dto.SellerAddress,
		BuyerAddress:           dto.BuyerAddress,
		Items:                  items,
	}, contract.Status(dto.Status), dto.ActualDeliveryTime, dto.Version)
}

func lineItemToDomain(dto LineItemDTO) (contract.LineItem, error) {
	name, err := kernel.NewShortID(dto.Name)
	if err != nil {
		return contract.LineItem{}, err
	}
	return contract.NewLineItem(name, dto.Quantity, dto.Options)
}
