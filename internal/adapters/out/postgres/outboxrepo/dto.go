// Package outboxrepo stores domain events in the "outbox" table until they are relayed.
package outboxrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one stored domain event. ProcessedAt is set once the event is relayed.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	OccurredAt  time.Time  `gorm:"not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	ProcessedAt *time.Time `gorm:"index"`
}

// TableName overrides GORM's default "message_dtos".
func (MessageDTO) TableName() string {
	return "outbox"
}

func fromMessage(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:          message.ID.Bytes(),
		Name:        message.Name,
		AggregateID: message.AggregateID.Bytes(),
		OccurredAt:  message.OccurredAt,
		Payload:     message.Payload,
	}
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		Name:        dto.Name,
		AggregateID: aggregateID,
		OccurredAt:  dto.OccurredAt,
		Payload:     dto.Payload,
	}, nil
}
