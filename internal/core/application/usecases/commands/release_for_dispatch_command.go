package commands

import (
	"errors"

	"requisition/internal/pkg/guard"
)

var ErrReleaseForDispatchCommandIsNotConstructed = errors.New(
	"ReleaseForDispatchCommand must be created via NewReleaseForDispatchCommand constructor",
)

// ReleaseForDispatchCommand triggers the dispatch release sweep: every
// packaged requisition is promoted to ReadyForDispatch so batch planning can
// pick it up.
//
// Example:
//
//	cmd := NewReleaseForDispatchCommand()
//	handler := NewReleaseForDispatchCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Dispatch release failed: %v", err)
//	}
type ReleaseForDispatchCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseForDispatchCommand creates a new command to trigger the release sweep.
func NewReleaseForDispatchCommand() ReleaseForDispatchCommand {
	return ReleaseForDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseForDispatchCommandIsNotConstructed if validation fails.
func (c *ReleaseForDispatchCommand) Validate() error {
	return c.guard.Validate(
		ErrReleaseForDispatchCommandIsNotConstructed,
	)
}
