// Package kernel provides the shared domain primitives of the contract registry.
//
// The package includes:
//   - UUID: the value object used for record keys and event identifiers
//   - ShortID: a fixed-width (32 byte) opaque text identifier with a padded
//     wire form and an exact decode
//   - DomainEvent: the contract every recorded domain event satisfies
//
// Primitives are immutable and validate on construction; their zero values
// fail Validate so that uninitialized fields are caught early.
package kernel
