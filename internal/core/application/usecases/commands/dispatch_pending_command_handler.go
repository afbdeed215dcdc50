package commands

import (
	"context"
	"errors"
	"time"

	"domicilios/internal/core/domain/services"
	"domicilios/internal/pkg/errs"
)

var (
	// ErrNoPendingOrders signals that no order is waiting for dispatch.
	ErrNoPendingOrders = errors.New("no pending orders found")

	// ErrNoFreeCouriersFound signals that every courier is busy.
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// DispatchPendingCommandHandler auto-assigns the oldest pending order to the
// nearest available courier. Runs on a schedule from the dispatch job; both
// "nothing to dispatch" outcomes are reported with dedicated sentinel errors
// so the job can log them quietly instead of as failures.
//
// Example:
//
//	handler := NewDispatchPendingCommandHandler(uowFactory)
//	err := handler.Handle(ctx, NewDispatchPendingCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Debug("nothing to dispatch")
//	case errors.Is(err, services.ErrNoCourierInRange):
//	    log.Debug("no courier close enough")
//	case err != nil:
//	    log.Errorf("dispatch failed: %v", err)
//	}
type DispatchPendingCommandHandler struct {
	uowFactory DispatchUoWFactory
	matcher    services.CourierMatcher
}

// NewDispatchPendingCommandHandler creates a handler for scheduled dispatch.
func NewDispatchPendingCommandHandler(uowFactory DispatchUoWFactory) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewCourierMatcher(),
	}
}

// Handle picks the oldest pendiente order and assigns the available courier
// nearest to the order's business, within the default radius. Returns
// ErrNoPendingOrders, ErrNoFreeCouriersFound or services.ErrNoCourierInRange
// when there is nothing to do.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	o, err := orderRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	c, err := h.matcher.Nearest(
		o.Business().Location(), couriers, services.DefaultMaxDistanceKm,
	)
	if err != nil {
		return err
	}

	if err = c.Take(o.ID()); err != nil {
		return err
	}

	if err = o.Assign(c.ID(), c.Name(), c.Phone(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
