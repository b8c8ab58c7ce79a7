package cardnumber

import (
	"fmt"
	"unicode/utf8"
)

// Range addresses a contiguous run of characters in a display string.
// Location and Length count characters (runes), not bytes.
type Range struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// End returns the offset just past the range.
func (r Range) End() int {
	return r.Location + r.Length
}

// Splice replaces the characters of s covered by r with replacement.
func Splice(s string, r Range, replacement string) (string, error) {
	n := utf8.RuneCountInString(s)
	if r.Location < 0 || r.Length < 0 || r.End() > n {
		return "", fmt.Errorf("%w: [%d,%d) in text of %d characters", ErrRangeOutOfBounds, r.Location, r.End(), n)
	}

	runes := []rune(s)
	out := make([]rune, 0, n-r.Length+utf8.RuneCountInString(replacement))
	out = append(out, runes[:r.Location]...)
	out = append(out, []rune(replacement)...)
	out = append(out, runes[r.End():]...)
	return string(out), nil
}

// AcceptEdit applies an edit to the display text and returns the resulting digits.
// The whole candidate is rejected, never truncated: it must be empty or all
// digits, and no longer than MaxDigits.
func AcceptEdit(display string, r Range, replacement string) (string, error) {
	spliced, err := Splice(display, r, replacement)
	if err != nil {
		return "", err
	}

	digits := Normalize(spliced)
	if !isDigits(digits) {
		return "", ErrNotNumeric
	}
	if len(digits) > MaxDigits {
		return "", ErrTooLong
	}
	return digits, nil
}
