package cardnumber

import (
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"
)

// ErrNothingToDelete is returned by Backspace on an empty field.
var ErrNothingToDelete = fmt.Errorf("%w: nothing to delete", ErrRejected)

type subscription struct {
	observer Observer
	id       int
}

// Field holds the state of one card number input field.
//
// A field is meant to be driven from the single goroutine that delivers
// input events. Every accepted edit replaces the whole state and notifies
// observers; rejected edits change nothing.
type Field struct {
	logger      *slog.Logger
	subscribers []subscription
	result      Result
	nextID      int
	mu          sync.Mutex
}

// Option configures a Field.
type Option func(*Field)

// WithLogger sets the logger for edit events. Digits are always logged masked.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithObserver subscribes o to the field. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(f *Field) {
		if o != nil {
			f.subscribe(o)
		}
	}
}

// NewField creates an empty field.
func NewField(opts ...Option) *Field {
	f := &Field{
		logger: slog.New(slog.DiscardHandler),
		result: Evaluate(""),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Subscribe registers o and returns a function removing it again.
// Subscribing nil does nothing.
func (f *Field) Subscribe(o Observer) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}

	f.mu.Lock()
	id := f.subscribe(o)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.subscribers {
			if s.id == id {
				f.subscribers = append(f.subscribers[:i], f.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (f *Field) subscribe(o Observer) int {
	f.nextID++
	f.subscribers = append(f.subscribers, subscription{id: f.nextID, observer: o})
	return f.nextID
}

// Edit replaces the characters of the display text covered by r with
// replacement. On rejection the error wraps ErrRejected and the field keeps
// its previous state.
func (f *Field) Edit(r Range, replacement string) (Result, error) {
	return f.apply(func(Rendering) (Range, error) { return r, nil }, replacement)
}

// Insert inserts text at the cursor, like typing or pasting into the field.
func (f *Field) Insert(text string) (Result, error) {
	return f.apply(func(cur Rendering) (Range, error) {
		return Range{Location: cur.EnteredLength}, nil
	}, text)
}

// Backspace deletes the last entered digit.
func (f *Field) Backspace() (Result, error) {
	return f.apply(func(cur Rendering) (Range, error) {
		if cur.EnteredLength == 0 {
			return Range{}, ErrNothingToDelete
		}
		// введённая часть всегда заканчивается цифрой, а не пробелом
		return Range{Location: cur.EnteredLength - 1, Length: 1}, nil
	}, "")
}

// Clear removes all digits.
func (f *Field) Clear() (Result, error) {
	return f.apply(func(cur Rendering) (Range, error) {
		return Range{Length: utf8.RuneCountInString(cur.Text)}, nil
	}, "")
}

// apply resolves the edit range against the current rendering and applies
// the edit under the same lock.
func (f *Field) apply(target func(Rendering) (Range, error), replacement string) (Result, error) {
	f.mu.Lock()
	r, err := target(f.result.Rendering)
	if err != nil {
		f.mu.Unlock()
		return Result{}, err
	}

	res, err := EvaluateEdit(f.result.Rendering.Text, r, replacement)
	if err != nil {
		f.mu.Unlock()
		f.logger.Debug("card number edit rejected",
			"location", r.Location,
			"length", r.Length,
			"error", err,
		)
		return Result{}, err
	}

	f.result = res
	observers := make([]Observer, 0, len(f.subscribers))
	for _, s := range f.subscribers {
		observers = append(observers, s.observer)
	}
	f.mu.Unlock()

	f.logger.Debug("card number changed",
		"number", Mask(res.Digits),
		"length", len(res.Digits),
		"network", res.Network.String(),
		"state", res.State.String(),
	)

	// наблюдатели вызываются вне блокировки, чтобы они могли читать состояние поля
	for _, o := range observers {
		o.CardNumberChanged(res.Digits, res.Error())
	}

	return res, nil
}

// Result returns the current state of the field.
func (f *Field) Result() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Digits returns the canonical digit sequence.
func (f *Field) Digits() string {
	return f.Result().Digits
}

// Display returns the full display text including placeholder filler.
func (f *Field) Display() string {
	return f.Result().Rendering.Text
}

// Cursor returns the cursor offset: the end of the entered digits.
func (f *Field) Cursor() int {
	return f.Result().Rendering.EnteredLength
}
