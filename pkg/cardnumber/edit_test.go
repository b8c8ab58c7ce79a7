package cardnumber

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		r           Range
		replacement string
		want        string
		wantErr     bool
	}{
		{name: "insert at start", s: "abc", r: Range{}, replacement: "x", want: "xabc"},
		{name: "insert at end", s: "abc", r: Range{Location: 3}, replacement: "x", want: "abcx"},
		{name: "replace middle", s: "abc", r: Range{Location: 1, Length: 1}, replacement: "xy", want: "axyc"},
		{name: "delete all", s: "abc", r: Range{Length: 3}, replacement: "", want: ""},
		{name: "multibyte", s: "äbc", r: Range{Location: 1, Length: 1}, replacement: "ß", want: "äßc"},
		{name: "negative location", s: "abc", r: Range{Location: -1}, wantErr: true},
		{name: "negative length", s: "abc", r: Range{Location: 1, Length: -1}, wantErr: true},
		{name: "past the end", s: "abc", r: Range{Location: 2, Length: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Splice(tt.s, tt.r, tt.replacement)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrRangeOutOfBounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAcceptEdit(t *testing.T) {
	full := "4532 0151 1283 0366"

	tests := []struct {
		name        string
		display     string
		r           Range
		replacement string
		want        string
		wantErr     error
	}{
		{name: "first digit", display: Placeholder, r: Range{}, replacement: "4", want: "4"},
		{name: "digit at cursor", display: "4XXX XXXX XXXX XXXX", r: Range{Location: 1}, replacement: "5", want: "45"},
		{name: "digit after group", display: "4532 XXXX XXXX XXXX", r: Range{Location: 4}, replacement: "0", want: "45320"},
		{name: "delete last digit", display: "4532 XXXX XXXX XXXX", r: Range{Location: 3, Length: 1}, want: "453"},
		{name: "delete grouping space", display: "4532 0XXX XXXX XXXX", r: Range{Location: 4, Length: 1}, want: "45320"},
		{name: "typing over placeholder", display: "4532 XXXX XXXX XXXX", r: Range{Location: 10, Length: 1}, replacement: "7", want: "45327"},
		{name: "paste with spaces", display: Placeholder, r: Range{}, replacement: "4532 0151", want: "45320151"},
		{name: "clear", display: full, r: Range{Length: len(full)}, want: ""},
		{name: "last digit", display: "4532 0151 1283 036X", r: Range{Location: 18}, replacement: "6", want: "4532015112830366"},
		{name: "letter", display: Placeholder, r: Range{}, replacement: "45a2", wantErr: ErrNotNumeric},
		{name: "lowercase x", display: "4XXX XXXX XXXX XXXX", r: Range{Location: 1}, replacement: "x", wantErr: ErrNotNumeric},
		{name: "sign", display: Placeholder, r: Range{}, replacement: "-1", wantErr: ErrNotNumeric},
		{name: "seventeenth digit", display: full, r: Range{Location: 19}, replacement: "1", wantErr: ErrTooLong},
		{name: "oversized paste", display: Placeholder, r: Range{}, replacement: "45320151128303661", wantErr: ErrTooLong},
		{name: "out of bounds", display: Placeholder, r: Range{Location: 20}, replacement: "1", wantErr: ErrRangeOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AcceptEdit(tt.display, tt.r, tt.replacement)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrRejected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRejectionErrors(t *testing.T) {
	for _, err := range []error{ErrNotNumeric, ErrTooLong, ErrRangeOutOfBounds, ErrNothingToDelete} {
		assert.True(t, errors.Is(err, ErrRejected), err.Error())
	}
	assert.False(t, errors.Is(ErrCardInfoNotFound, ErrRejected))
}
