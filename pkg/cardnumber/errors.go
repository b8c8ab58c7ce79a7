package cardnumber

import (
	"errors"
	"fmt"
)

// Edit rejection errors
var (
	// ErrRejected is wrapped by every edit rejection
	ErrRejected = errors.New("edit rejected")

	// ErrNotNumeric indicates that the edit would leave a non-digit character in the number
	ErrNotNumeric = fmt.Errorf("%w: card number must contain only digits", ErrRejected)

	// ErrTooLong indicates that the edit would exceed MaxDigits
	ErrTooLong = fmt.Errorf("%w: card number must not exceed %d digits", ErrRejected, MaxDigits)

	// ErrRangeOutOfBounds indicates that the edit range lies outside the display text
	ErrRangeOutOfBounds = fmt.Errorf("%w: range out of bounds", ErrRejected)
)

// CodeCardInfoNotFound is reported for a complete number that fails the Luhn check.
const CodeCardInfoNotFound = 101

// CardError describes a validation failure of a complete card number.
type CardError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ErrCardInfoNotFound is returned for complete numbers failing the checksum.
var ErrCardInfoNotFound = &CardError{Code: CodeCardInfoNotFound, Message: "Card info not found"}

func (e *CardError) Error() string {
	return e.Message
}

// Is reports whether target is a CardError with the same code.
func (e *CardError) Is(target error) bool {
	var ce *CardError
	if !errors.As(target, &ce) {
		return false
	}
	return ce.Code == e.Code
}
