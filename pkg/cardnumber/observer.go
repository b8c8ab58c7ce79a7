package cardnumber

//go:generate moq -out observer_mock.go . Observer

// Observer is notified once after every accepted edit of a Field.
// err is non-nil only for a complete number that failed validation.
type Observer interface {
	CardNumberChanged(digits string, err error)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(digits string, err error)

// CardNumberChanged calls f(digits, err).
func (f ObserverFunc) CardNumberChanged(digits string, err error) {
	f(digits, err)
}
