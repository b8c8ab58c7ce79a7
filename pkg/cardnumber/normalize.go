package cardnumber

import "strings"

const (
	// MaxDigits is the number of digits in a complete card number
	MaxDigits = 16

	// GroupSize is the number of digits between grouping spaces
	GroupSize = 4

	// Placeholder is the display template filling the width not yet entered
	Placeholder = "XXXX XXXX XXXX XXXX"

	// FillerChar marks a not yet entered digit in Placeholder
	FillerChar = 'X'

	separator = ' '
)

// Normalize strips grouping spaces and placeholder filler from a display string.
// Other characters are kept as is; it does not check that the rest are digits.
func Normalize(display string) string {
	return strings.Map(func(r rune) rune {
		if r == separator || r == FillerChar {
			return -1
		}
		return r
	}, display)
}

// isDigits reports whether s consists of decimal digits only.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
