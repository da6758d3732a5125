package kernel

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"supplychain/internal/pkg/errs"
)

// ShortIDSize is the fixed width, in bytes, of a ShortID.
const ShortIDSize = 32

var (
	// ErrShortIDIsNotConstructed is returned when validating a zero-value ShortID.
	ErrShortIDIsNotConstructed = errs.NewValueIsRequiredError("ShortID must be created via NewShortID or ShortIDFromBytes")

	errShortIDContainsNUL   = errors.New("contains a NUL byte")
	errShortIDIsNotUTF8     = errors.New("is not valid UTF-8")
	errShortIDIsNotPadded   = errors.New("padding after the value must be zero bytes")
	errShortIDIsEmpty      = errors.New("value occupies no bytes")
)

// ShortID is a fixed-width opaque text identifier used for party ids
// (seller, buyer, transporter) and line item names. The text is at most
// ShortIDSize bytes and travels as a zero-padded 32-byte value.
//
// Example usage:
//
//	seller, err := kernel.NewShortID("seller2")
//	if err != nil {
//	    return err
//	}
//	raw := seller.Bytes()             // "seller2" followed by 25 zero bytes
//	again, _ := kernel.ShortIDFromBytes(raw)
//	fmt.Println(again.String())       // "seller2"
type ShortID struct {
	value string
}

// NewShortID validates s and returns it as a ShortID.
//
// Rules:
//   - s must not be empty
//   - s must be at most ShortIDSize bytes; longer values are rejected, not truncated
//   - s must be valid UTF-8 and contain no NUL bytes, so that decoding the
//     padded form yields exactly s again
func NewShortID(s string) (ShortID, error) {
	if s == "" {
		return ShortID{}, errs.NewValueIsRequiredError("short id")
	}
	if len(s) > ShortIDSize {
		return ShortID{}, errs.NewValueIsOutOfRangeError("short id length", len(s), 1, ShortIDSize)
	}
	if !utf8.ValidString(s) {
		return ShortID{}, errs.NewValueIsInvalidErrorWithCause("short id", errShortIDIsNotUTF8)
	}
	if bytes.IndexByte([]byte(s), 0) >= 0 {
		return ShortID{}, errs.NewValueIsInvalidErrorWithCause("short id", errShortIDContainsNUL)
	}
	return ShortID{value: s}, nil
}

// ShortIDFromBytes decodes the zero-padded fixed-width form produced by Bytes.
func ShortIDFromBytes(raw [ShortIDSize]byte) (ShortID, error) {
	end := bytes.IndexByte(raw[:], 0)
	if end == -1 {
		end = ShortIDSize
	}
	if end == 0 {
		return ShortID{}, errs.NewValueIsRequiredErrorWithCause("short id", errShortIDIsEmpty)
	}
	for _, b := range raw[end:] {
		if b != 0 {
			return ShortID{}, errs.NewValueIsInvalidErrorWithCause("short id", errShortIDIsNotPadded)
		}
	}
	return NewShortID(string(raw[:end]))
}

// String returns the decoded text.
func (s ShortID) String() string {
	return s.value
}

// Bytes returns the zero-padded fixed-width form.
func (s ShortID) Bytes() [ShortIDSize]byte {
	var raw [ShortIDSize]byte
	copy(raw[:], s.value)
	return raw
}

// IsEqual reports whether both identifiers hold the same text.
func (s ShortID) IsEqual(other ShortID) bool {
	return s.value == other.value
}

// Validate returns ErrShortIDIsNotConstructed for the zero value.
func (s ShortID) Validate() error {
	if s.value == "" {
		return ErrShortIDIsNotConstructed
	}
	return nil
}
