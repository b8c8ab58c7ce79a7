package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/iudanet/cardinput/pkg/cardnumber"
)

const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyCtrlH     = 0x08
	keyNewline   = '\n'
	keyEnter     = '\r'
	keyCtrlU     = 0x15
	keyEscape    = 0x1b
	keyBackspace = 0x7f
)

// changeCounter is the field observer of the type command
type changeCounter struct {
	lastErr error
	changes int
}

func (cc *changeCounter) CardNumberChanged(_ string, err error) {
	cc.changes++
	cc.lastErr = err
}

func (c *Cli) runType(ctx context.Context) error {
	sessionID := uuid.New().String()
	logger := c.logger.With("session_id", sessionID)

	counter := &changeCounter{}
	field := cardnumber.NewField(
		cardnumber.WithLogger(logger),
		cardnumber.WithObserver(counter),
	)

	logger.Info("card input session started", "terminal", c.io.IsTerminal())

	var err error
	if c.io.IsTerminal() {
		err = c.typeRaw(ctx, field)
	} else {
		err = c.typeLines(ctx, field)
	}
	if err != nil {
		return err
	}

	res := field.Result()
	logger.Info("card input session finished",
		"number", cardnumber.Mask(res.Digits),
		"network", res.Network.String(),
		"state", res.State.String(),
		"changes", counter.changes,
		"error", counter.lastErr,
	)

	return c.render("result", resultTemplate, c.resultView(c.tr.T("type.title"), res))
}

// typeRaw reads single key presses and redraws the field after each accepted edit
func (c *Cli) typeRaw(ctx context.Context, field *cardnumber.Field) (err error) {
	restore, err := c.io.MakeRaw()
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", rerr)
		}
	}()

	if err := c.render("type", typeHeaderTemplate, c.typeHeader()); err != nil {
		return err
	}
	c.drawField(field.Result())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		key, err := c.readKey(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if key == keyEscape {
			if err := c.skipEscapeSequence(ctx); err != nil {
				return err
			}
			continue
		}

		done, changed := c.applyKey(field, key)
		if changed {
			c.drawField(field.Result())
		}
		if done {
			break
		}
	}

	c.io.Println()
	return nil
}

// typeLines feeds piped input into the field, one character at a time
func (c *Cli) typeLines(ctx context.Context, field *cardnumber.Field) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := awaitInput(ctx, func() (string, error) { return c.io.ReadInput("") })
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		for _, key := range line {
			if done, _ := c.applyKey(field, key); done {
				return nil
			}
		}
	}
}

// applyKey turns one key press into a field edit
func (c *Cli) applyKey(field *cardnumber.Field, key rune) (done, changed bool) {
	var err error
	switch key {
	case keyEnter, keyNewline, keyCtrlC, keyCtrlD:
		return true, false
	case keyBackspace, keyCtrlH:
		_, err = field.Backspace()
	case keyCtrlU:
		_, err = field.Clear()
	default:
		_, err = field.Insert(string(key))
	}

	// отклонённое нажатие просто игнорируется, поле не меняется
	return false, err == nil
}

// skipEscapeSequence drops the rest of an arrow or function key sequence
func (c *Cli) skipEscapeSequence(ctx context.Context) error {
	key, err := c.readKey(ctx)
	if err != nil {
		return ignoreEOF(err)
	}
	if key != '[' && key != 'O' {
		return nil
	}
	for {
		key, err = c.readKey(ctx)
		if err != nil {
			return ignoreEOF(err)
		}
		if key >= 0x40 && key <= 0x7e {
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readKey waits for the next key press or for ctx to be done
func (c *Cli) readKey(ctx context.Context) (rune, error) {
	key, err := awaitInput(ctx, c.io.ReadKey)
	if err != nil && ctx.Err() == nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read key: %w", err)
	}
	return key, err
}

type inputResult[T any] struct {
	err   error
	value T
}

// awaitInput runs a blocking read in its own goroutine and returns early when ctx is done.
// После отмены горутина остаётся в чтении до следующего ввода или выхода процесса.
func awaitInput[T any](ctx context.Context, read func() (T, error)) (T, error) {
	done := make(chan inputResult[T], 1)
	go func() {
		v, err := read()
		done <- inputResult[T]{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-done:
		return res.value, res.err
	}
}

func (c *Cli) typeHeader() any {
	return struct {
		Title string
		Hint  string
	}{
		Title: c.tr.T("type.title"),
		Hint:  c.tr.T("type.hint"),
	}
}

// drawField redraws the field line and puts the cursor after the entered digits
func (c *Cli) drawField(res cardnumber.Result) {
	var b strings.Builder
	b.WriteString("\r\x1b[2K")
	b.WriteString(c.styles.Field(res.Rendering))

	if title := c.tr.Network(res.Network); title != "" {
		b.WriteString("  ")
		b.WriteString(c.styles.Network.Render(title))
	}
	if msg := c.tr.Error(res.Err); msg != "" {
		b.WriteString("  ")
		b.WriteString(c.styles.Error.Render(msg))
	}

	b.WriteString("\r")
	if n := res.Rendering.EnteredLength; n > 0 {
		fmt.Fprintf(&b, "\x1b[%dC", n)
	}

	c.io.Printf("%s", b.String())
}
