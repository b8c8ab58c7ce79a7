package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/cardinput/internal/validation"
	"github.com/iudanet/cardinput/pkg/cardnumber"
)

// ErrCheckFailed is returned when at least one checked number is rejected or invalid.
var ErrCheckFailed = errors.New("card check failed")

func (c *Cli) runCheck(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing card number. Usage: cardinput check NUMBER...")
	}

	title := c.tr.T("check.title")
	failed := 0

	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := c.checkNumber(arg)
		if err != nil {
			failed++
			c.logger.Info("card number rejected", "error", err)
			if err := c.render("result", resultTemplate, c.rejectedView(title, arg, err)); err != nil {
				return err
			}
			continue
		}

		if res.State != cardnumber.StateValid {
			failed++
		}
		c.logger.Info("card number checked",
			"number", cardnumber.Mask(res.Digits),
			"network", res.Network.String(),
			"state", res.State.String(),
		)
		if err := c.render("result", resultTemplate, c.resultView(title, res)); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d number(s) not valid", ErrCheckFailed, failed, len(args))
	}
	return nil
}

// checkNumber pastes the digits of number into a fresh field
func (c *Cli) checkNumber(number string) (cardnumber.Result, error) {
	digits, err := validation.ValidateCardNumber(number)
	if err != nil {
		return cardnumber.Result{}, err
	}

	field := cardnumber.NewField(cardnumber.WithLogger(c.logger))
	res, err := field.Insert(digits)
	if err != nil {
		return cardnumber.Result{}, fmt.Errorf("failed to enter card number: %w", err)
	}
	return res, nil
}
