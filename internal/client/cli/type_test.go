package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardinput/internal/client/iocli"
	"github.com/iudanet/cardinput/pkg/cardnumber"
)

func newRawIO(out *bytes.Buffer, keys string, restored *bool) *iocli.IOMock {
	mockIO := newBufferIO(out)
	mockIO.IsTerminalFunc = func() bool { return true }
	mockIO.MakeRawFunc = func() (func() error, error) {
		return func() error {
			*restored = true
			return nil
		}, nil
	}
	mockIO.ReadKeyFunc = keyQueue(keys)
	return mockIO
}

func TestCli_runType_Typing(t *testing.T) {
	var out bytes.Buffer
	restored := false
	mockIO := newRawIO(&out, "4532\r", &restored)
	cli := newTestCli(t, "en", mockIO)

	require.NoError(t, cli.Run(context.Background(), "type", nil))

	output := out.String()
	assert.True(t, restored, "terminal must be restored")
	assert.Contains(t, output, "=== Enter Card Number ===")
	assert.Contains(t, output, "4XXX XXXX XXXX XXXX  Visa")
	assert.Contains(t, output, "4532 XXXX XXXX XXXX  Visa\r\x1b[4C")
	assert.Contains(t, output, "Number: 4532 XXXX XXXX XXXX")
	assert.Contains(t, output, "Network: Visa")
	assert.Contains(t, output, "Status: Incomplete")
	assert.Len(t, mockIO.MakeRawCalls(), 1)
}

func TestCli_runType_RejectedKeysAreIgnored(t *testing.T) {
	var out bytes.Buffer
	restored := false
	// стрелка влево и буква не должны менять поле
	mockIO := newRawIO(&out, "45\x1b[Da2\r", &restored)
	cli := newTestCli(t, "en", mockIO)

	require.NoError(t, cli.Run(context.Background(), "type", nil))
	assert.Contains(t, out.String(), "Number: 452X XXXX XXXX XXXX")
}

func TestCli_runType_BackspaceAndClear(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{name: "backspace", keys: "453\x7f\r", want: "Number: 45XX XXXX XXXX XXXX"},
		{name: "ctrl-h", keys: "45320\x08\r", want: "Number: 4532 XXXX XXXX XXXX"},
		{name: "backspace on empty", keys: "\x7f4\r", want: "Number: 4XXX XXXX XXXX XXXX"},
		{name: "clear", keys: "4532\x15\r", want: "Number: XXXX XXXX XXXX XXXX"},
		{name: "ends on EOF", keys: "37", want: "Network: American Express"},
		{name: "ends on ctrl-c", keys: "5\x0312", want: "Number: 5XXX XXXX XXXX XXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			restored := false
			cli := newTestCli(t, "en", newRawIO(&out, tt.keys, &restored))

			require.NoError(t, cli.Run(context.Background(), "type", nil))
			assert.Contains(t, out.String(), tt.want)
			assert.True(t, restored)
		})
	}
}

func TestCli_runType_CompleteInvalid(t *testing.T) {
	var out bytes.Buffer
	restored := false
	cli := newTestCli(t, "en", newRawIO(&out, "4532015112830367\r", &restored))

	require.NoError(t, cli.Run(context.Background(), "type", nil))

	output := out.String()
	assert.Contains(t, output, "4532 0151 1283 0367  Visa  Card info not found\r\x1b[19C")
	assert.Contains(t, output, "Status: Invalid")
	assert.Contains(t, output, "Error: Card info not found")
}

func TestCli_runType_PipedInput(t *testing.T) {
	var out bytes.Buffer
	lines := []string{"4532 0151", "1283 0366"}

	mockIO := newBufferIO(&out)
	mockIO.IsTerminalFunc = func() bool { return false }
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}
	cli := newTestCli(t, "en", mockIO)

	require.NoError(t, cli.Run(context.Background(), "type", nil))

	output := out.String()
	assert.Contains(t, output, "Number: 4532 0151 1283 0366")
	assert.Contains(t, output, "Status: Valid")
	assert.Empty(t, mockIO.MakeRawCalls())
}

func TestCli_runType_MakeRawError(t *testing.T) {
	var out bytes.Buffer
	mockIO := newBufferIO(&out)
	mockIO.IsTerminalFunc = func() bool { return true }
	mockIO.MakeRawFunc = func() (func() error, error) {
		return nil, errors.New("no tty")
	}
	cli := newTestCli(t, "en", mockIO)

	err := cli.Run(context.Background(), "type", nil)
	assert.EqualError(t, err, "no tty")
}

func TestCli_runType_ReadError(t *testing.T) {
	var out bytes.Buffer
	restored := false
	mockIO := newRawIO(&out, "", &restored)
	mockIO.ReadKeyFunc = func() (rune, error) {
		return 0, errors.New("broken pipe")
	}
	cli := newTestCli(t, "en", mockIO)

	err := cli.Run(context.Background(), "type", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.True(t, restored)
}

func TestCli_runType_CanceledContext(t *testing.T) {
	var out bytes.Buffer
	restored := false
	cli := newTestCli(t, "en", newRawIO(&out, "4532", &restored))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cli.Run(ctx, "type", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, restored)
}

// blockingRead returns a read func that blocks until the test ends and a
// channel signalled on the first call.
func blockingRead[T any](t *testing.T) (func() (T, error), <-chan struct{}) {
	t.Helper()
	reading := make(chan struct{}, 1)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	return func() (T, error) {
		select {
		case reading <- struct{}{}:
		default:
		}
		<-release
		var zero T
		return zero, io.EOF
	}, reading
}

func runUntilCanceled(t *testing.T, cli *Cli, reading <-chan struct{}) error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- cli.Run(ctx, "type", nil) }()

	select {
	case <-reading:
	case <-time.After(time.Second):
		t.Fatal("type never started reading input")
	}
	cancel()

	select {
	case err := <-errCh:
		return err
	case <-time.After(time.Second):
		t.Fatal("type kept waiting for input after cancel")
		return nil
	}
}

func TestCli_runType_CancelWhileWaitingForKey(t *testing.T) {
	var out bytes.Buffer
	restored := false
	mockIO := newRawIO(&out, "", &restored)
	read, reading := blockingRead[rune](t)
	mockIO.ReadKeyFunc = read
	cli := newTestCli(t, "en", mockIO)

	err := runUntilCanceled(t, cli, reading)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, restored, "terminal must be restored")
}

func TestCli_runType_CancelWhileWaitingForLine(t *testing.T) {
	var out bytes.Buffer
	mockIO := newBufferIO(&out)
	mockIO.IsTerminalFunc = func() bool { return false }
	read, reading := blockingRead[string](t)
	mockIO.ReadInputFunc = func(string) (string, error) { return read() }
	cli := newTestCli(t, "en", mockIO)

	err := runUntilCanceled(t, cli, reading)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "Status:")
}

func TestChangeCounter(t *testing.T) {
	counter := &changeCounter{}
	field := cardnumber.NewField(cardnumber.WithObserver(counter))

	_, err := field.Insert("4532015112830367")
	require.NoError(t, err)
	_, err = field.Insert("x")
	require.Error(t, err)

	assert.Equal(t, 1, counter.changes)
	assert.ErrorIs(t, counter.lastErr, cardnumber.ErrCardInfoNotFound)
}
