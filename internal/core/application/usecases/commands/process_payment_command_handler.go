package commands

import (
	"context"
	"fmt"
	"time"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/ports"
	"domicilios/internal/pkg/errs"
)

// ProcessPaymentCommandHandler collects payment for an order and appends the
// outcome to the payment ledger. Cash payments are settled on delivery, so
// the order keeps its pendiente payment status; card payments move it to
// pagado and trigger a confirmation notification after commit.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   ports.Notifier
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	notifier ports.Notifier,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment and returns the appended ledger record.
// Fails with NotFound when the order is absent and with InvalidState when
// the order is already pagado. The order and the ledger record are
// persisted within one unit of work.
func (h ProcessPaymentCommandHandler) Handle(
	ctx context.Context, cmd ProcessPaymentCommand,
) (*payment.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if o.IsPaid() {
		return nil, errs.NewInvalidStateError(
			fmt.Sprintf("order %d is already paid", o.ID()),
		)
	}

	status := order.PaymentPending
	if cmd.Method() == order.MethodCard {
		status = order.PaymentPaid
	}

	if err = o.RecordPayment(cmd.Method(), status); err != nil {
		return nil, err
	}

	paymentRepo := uow.PaymentRepository()
	id, err := paymentRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	record, err := payment.NewRecord(
		id, o.ID(), o.Total(), o.TipAmount(), cmd.Method(), status, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if status == order.PaymentPaid {
		h.notifier.NotifyPaymentConfirmed(o)
	}

	return record, nil
}
