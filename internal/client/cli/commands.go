package cli

import (
	"context"
	"fmt"
)

// Run executes a command with its arguments.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "type":
		return c.runType(ctx)
	case "check":
		return c.runCheck(ctx, args)
	case "networks":
		return c.runNetworks(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
