package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console the terminal host talks to.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// ReadKey reads one key press; in raw mode control keys arrive as is
	ReadKey() (rune, error)
	// MakeRaw switches the terminal to raw mode until restore is called
	MakeRaw() (restore func() error, err error)
	IsTerminal() bool
	Write(p []byte) (n int, err error)
}
