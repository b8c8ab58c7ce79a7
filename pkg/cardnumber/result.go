package cardnumber

// State is the validation state of a digit sequence.
type State uint8

const (
	// StateIncomplete means fewer than MaxDigits digits; no error is shown
	StateIncomplete State = iota
	// StateValid means a complete number passing the Luhn check
	StateValid
	// StateInvalid means a complete number failing the Luhn check
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateIncomplete:
		return "incomplete"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is everything a host needs after an accepted edit.
type Result struct {
	// Err is set only when State is StateInvalid
	Err       *CardError `json:"error,omitempty"`
	Digits    string     `json:"digits"`
	Rendering Rendering  `json:"rendering"`
	Network   Network    `json:"network"`
	State     State      `json:"state"`
}

// Error returns the validation error as an error value, nil when there is none.
func (r Result) Error() error {
	if r.Err == nil {
		return nil
	}
	return r.Err
}

// Complete reports whether the number has all MaxDigits digits.
func (r Result) Complete() bool {
	return len(r.Digits) == MaxDigits
}

// Evaluate renders, classifies and, for a complete number, validates digits.
func Evaluate(digits string) Result {
	res := Result{
		Digits:    digits,
		Rendering: Render(digits),
		Network:   Classify(digits),
		State:     StateIncomplete,
	}

	if len(digits) == MaxDigits {
		if IsLuhnValid(digits) {
			res.State = StateValid
		} else {
			res.State = StateInvalid
			res.Err = ErrCardInfoNotFound
		}
	}

	return res
}

// EvaluateEdit applies an edit to the current display text.
//
// A non-nil error means the edit is rejected (errors.Is(err, ErrRejected))
// and the host must leave the field unchanged. Otherwise the returned Result
// describes the new state of the field.
func EvaluateEdit(display string, r Range, replacement string) (Result, error) {
	digits, err := AcceptEdit(display, r, replacement)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(digits), nil
}
