package order

import (
	"fmt"

	"domicilios/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// State transitions:
//
//	pendiente ──> preparando ──> en_camino ──> entregado
//	    │              │
//	    └──────────────┴───────> cancelado
//
// Any non-terminal state may move to any valid state via an explicit status
// update; entregado and cancelado are hard-terminal and reject further
// transitions. Status values are the Spanish strings persisted by the store
// and exposed over the API.
type Status string

const (
	// StatusPending is the initial state of every order.
	StatusPending Status = "pendiente"
	// StatusPreparing indicates the business accepted the order and is preparing it.
	StatusPreparing Status = "preparando"
	// StatusEnRoute indicates a courier is carrying the order to the customer.
	StatusEnRoute Status = "en_camino"
	// StatusDelivered is a terminal state: the order reached the customer.
	StatusDelivered Status = "entregado"
	// StatusCancelled is a terminal state: the order was abandoned.
	StatusCancelled Status = "cancelado"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusPreparing: {},
		StatusEnRoute:   {},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// Validate checks that the status is one of the five known states.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateAssign checks that an order in this status can be handed to a
// courier. Only pendiente and preparando orders are assignable.
func (s Status) ValidateAssign() error {
	if s != StatusPending && s != StatusPreparing {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order cannot be assigned in status %q", string(s)))
	}
	return nil
}

// ValidateTransition checks that the status machine allows moving to next.
// The target must be a known status and the current state must not be
// terminal.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order in terminal status %q cannot change to %q", string(s), string(next)))
	}
	return nil
}
