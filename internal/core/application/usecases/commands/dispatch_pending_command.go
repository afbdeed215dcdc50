package commands

import (
	"errors"

	"domicilios/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand represents a request to auto-assign the oldest
// pending order. Carries no parameters; present for interface consistency
// with the other commands.
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a command to dispatch the oldest pending order.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DispatchPendingCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingCommandIsNotConstructed)
}
