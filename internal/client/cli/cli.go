package cli

import (
	"errors"
	"log/slog"

	"github.com/iudanet/cardinput/internal/client/iocli"
	"github.com/iudanet/cardinput/internal/i18n"
)

// ErrUnknownCommand is returned by Run for commands it does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Cli is the terminal host of the card number field.
type Cli struct {
	io     iocli.IO
	tr     *i18n.Translator
	logger *slog.Logger
	styles Styles
}

func New(io iocli.IO, tr *i18n.Translator, logger *slog.Logger, styles Styles) *Cli {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cli{
		io:     io,
		tr:     tr,
		logger: logger,
		styles: styles,
	}
}

// PrintUsage prints command line help.
func (c *Cli) PrintUsage() {
	if err := c.render("usage", usageTemplate, nil); err != nil {
		c.logger.Error("failed to print usage", "error", err)
	}
}
