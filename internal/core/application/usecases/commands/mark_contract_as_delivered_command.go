package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrMarkContractAsDeliveredCommandIsNotConstructed = errors.New(
		"MarkContractAsDeliveredCommand must be created via NewMarkContractAsDeliveredCommand constructor",
	)
)

// MarkContractAsDeliveredCommand represents the delivery of a contract's order.
//
// The delivery time is validated by the aggregate, after the status check, so
// that repeated deliveries are always reported as invalid transitions.
type MarkContractAsDeliveredCommand struct { //nolint:recvcheck //using for validation
	contractID         kernel.UUID
	actualDeliveryTime int64

	guard guard.ConstructorGuard
}

// NewMarkContractAsDeliveredCommand creates a delivery command for the contract with the given key.
func NewMarkContractAsDeliveredCommand(
	contractID kernel.UUID,
	actualDeliveryTime int64,
) (MarkContractAsDeliveredCommand, error) {
	cmd := MarkContractAsDeliveredCommand{
		actualDeliveryTime: actualDeliveryTime,
		guard:              guard.NewConstructorGuard(),
	}

	if err := cmd.setContractID(contractID); err != nil {
		return MarkContractAsDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkContractAsDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkContractAsDeliveredCommandIsNotConstructed)
}

// ContractID returns the key of the contract being delivered.
func (c MarkContractAsDeliveredCommand) ContractID() kernel.UUID {
	return c.contractID
}

// ActualDeliveryTime returns the Unix time of delivery.
func (c MarkContractAsDeliveredCommand) ActualDeliveryTime() int64 {
	return c.actualDeliveryTime
}

func (c *MarkContractAsDeliveredCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}

	c.contractID = contractID
	return nil
}
