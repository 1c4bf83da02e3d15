package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

// RouteAction selects which leg of the route lifecycle to advance.
type RouteAction string

const (
	// RouteActionStart moves a planned route into transit.
	RouteActionStart RouteAction = "start"
	// RouteActionComplete finishes the route and the delivery behind it.
	RouteActionComplete RouteAction = "complete"
)

var (
	ErrAdvanceRouteCommandIsNotConstructed = errors.New(
		"AdvanceRouteCommand must be created via NewAdvanceRouteCommand constructor",
	)
	ErrRouteActionIsInvalid = errors.New("route action must be start or complete")
)

// AdvanceRouteCommand represents a driver's request to start or complete a
// route. Logisticians and admins may advance any route; drivers only their own.
type AdvanceRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	action    RouteAction
	actorID   kernel.UUID
	actorRole kernel.Role

	guard guard.ConstructorGuard
}

// NewAdvanceRouteCommand creates a command to advance a route's lifecycle.
func NewAdvanceRouteCommand(
	routeID kernel.UUID,
	action RouteAction,
	actorID kernel.UUID,
	actorRole kernel.Role,
) (AdvanceRouteCommand, error) {
	cmd := AdvanceRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setAction(action),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return AdvanceRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceRouteCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceRouteCommandIsNotConstructed)
}

// RouteID returns the route being advanced.
func (c AdvanceRouteCommand) RouteID() kernel.UUID { return c.routeID }

// Action returns the requested lifecycle step.
func (c AdvanceRouteCommand) Action() RouteAction { return c.action }

// ActorID returns the user advancing the route.
func (c AdvanceRouteCommand) ActorID() kernel.UUID { return c.actorID }

// ActorRole returns the acting user's role.
func (c AdvanceRouteCommand) ActorRole() kernel.Role { return c.actorRole }

func (c *AdvanceRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *AdvanceRouteCommand) setAction(action RouteAction) error {
	if action != RouteActionStart && action != RouteActionComplete {
		return ErrRouteActionIsInvalid
	}
	c.action = action
	return nil
}

func (c *AdvanceRouteCommand) setActor(actorID kernel.UUID, actorRole kernel.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
