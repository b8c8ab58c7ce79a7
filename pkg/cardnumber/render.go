package cardnumber

import "strings"

// Rendering is the display form of a digit sequence.
//
// Text always has the length of Placeholder. The first EnteredLength
// characters are the entered digits with their grouping spaces; the rest is
// placeholder filler. Hosts style the two parts differently and put the
// cursor at EnteredLength.
type Rendering struct {
	Text          string `json:"text"`
	EnteredLength int    `json:"entered_length"`
}

// Entered returns the entered part of the text.
func (r Rendering) Entered() string {
	return r.Text[:r.EnteredLength]
}

// Filler returns the placeholder part of the text.
func (r Rendering) Filler() string {
	return r.Text[r.EnteredLength:]
}

// Render groups digits by four and pads them with the rest of Placeholder.
// digits must hold at most MaxDigits digits.
func Render(digits string) Rendering {
	var b strings.Builder
	b.Grow(len(Placeholder))

	for i := 0; i < len(digits); i++ {
		if i > 0 && i%GroupSize == 0 {
			b.WriteByte(separator)
		}
		b.WriteByte(digits[i])
	}

	entered := b.Len()
	if entered < len(Placeholder) {
		b.WriteString(Placeholder[entered:])
	}

	return Rendering{
		Text:          b.String(),
		EnteredLength: entered,
	}
}
