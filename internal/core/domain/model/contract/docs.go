// Package contract provides the contract record aggregate of the registry.
// A contract binds a buyer, a seller and a transporter to one purchase order:
// line items, payment totals, delivery estimates and addresses.
//
// The package includes:
//   - Contract: the aggregate root holding a record and its delivery state
//   - Terms: the fields fixed at creation
//   - LineItem: one ordered entry (name, quantity, options)
//   - Status: the Created -> Delivered state machine
//   - CreatedEvent, DeliveredEvent: the domain events a contract records
//
// Key business rules:
//   - Item names, quantities and options are supplied as parallel sequences of equal, non-zero length
//   - At least one estimated delivery time is required
//   - Payment totals are non-negative and quantities positive
//   - Delivery is recorded exactly once and never reverted
package contract
