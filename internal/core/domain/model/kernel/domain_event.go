package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate while it changes state.
// Units of work persist the events of every tracked aggregate next to the
// aggregate itself so that they are relayed after the write commits.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}
