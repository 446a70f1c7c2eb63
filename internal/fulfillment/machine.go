// Package fulfillment implements the order status state machine. The
// composite of (status, fulfillment type) is the real state: "packed" has two
// mutually exclusive successors depending on how the order is fulfilled.
package fulfillment

import (
	"errors"

	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/session"
)

var (
	// ErrIllegalTransition marks a status write outside the transition table.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrActorNotPermitted marks a legal transition attempted by the wrong role.
	ErrActorNotPermitted = errors.New("role not permitted for this transition")
)

// Actor is the kind of user allowed to trigger a transition.
type Actor int

const (
	ActorStaff Actor = iota
	ActorDriver
)

// Transition describes the single legal successor of a composite state.
type Transition struct {
	To     models.OrderStatus
	Action string
	Actor  Actor
}

type state struct {
	status models.OrderStatus
	ftype  models.FulfillmentType
}

// transitions is the full machine. POS orders never appear here: they are
// created terminal at pos_complete.
var transitions = map[state]Transition{
	{models.StatusPaid, models.FulfillmentCourier}:         {models.StatusPacked, "Pack Order", ActorStaff},
	{models.StatusPaid, models.FulfillmentPickup}:          {models.StatusPacked, "Pack Order", ActorStaff},
	{models.StatusPaid, models.FulfillmentWarehousePickup}: {models.StatusPacked, "Pack Order", ActorStaff},

	{models.StatusPacked, models.FulfillmentCourier}:         {models.StatusTransit, "Dispatch to Courier", ActorStaff},
	{models.StatusPacked, models.FulfillmentPickup}:          {models.StatusReady, "Ready for Collection", ActorStaff},
	{models.StatusPacked, models.FulfillmentWarehousePickup}: {models.StatusReady, "Ready for Collection", ActorStaff},

	{models.StatusTransit, models.FulfillmentCourier}: {models.StatusDelivered, "Delivered", ActorDriver},

	{models.StatusReady, models.FulfillmentPickup}:          {models.StatusCollected, "Mark Collected", ActorStaff},
	{models.StatusReady, models.FulfillmentWarehousePickup}: {models.StatusCollected, "Mark Collected", ActorStaff},
}

// Next returns the single legal successor of the composite state, if any.
func Next(status models.OrderStatus, ftype models.FulfillmentType) (Transition, bool) {
	tr, ok := transitions[state{status, ftype}]
	return tr, ok
}

// Validate checks that moving the order to the requested status is legal and
// that the session's capabilities permit triggering it.
func Validate(caps session.Capabilities, order *models.Order, to models.OrderStatus) error {
	tr, ok := Next(order.Status, order.FulfillmentType)
	if !ok || tr.To != to {
		return ErrIllegalTransition
	}
	switch tr.Actor {
	case ActorStaff:
		if !caps.Staff() {
			return ErrActorNotPermitted
		}
	case ActorDriver:
		if !caps.IsDriver {
			return ErrActorNotPermitted
		}
	}
	return nil
}

// IsDriverTask reports whether the order is currently an actionable driver
// task. This is a derived view over the machine and must be re-evaluated
// after every status write: a courier order is a task only while in transit,
// a pickup order only while packed (the driver moves it to the pickup point).
func IsDriverTask(order *models.Order) bool {
	switch order.FulfillmentType {
	case models.FulfillmentCourier:
		return order.Status == models.StatusTransit
	case models.FulfillmentPickup, models.FulfillmentWarehousePickup:
		return order.Status == models.StatusPacked
	}
	return false
}
