package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/ports"
	"domicilios/internal/pkg/errs"
)

var (
	// ErrLocationOutsideServiceArea signals that the drop-off coordinates
	// fall outside the zone the fleet covers.
	ErrLocationOutsideServiceArea = errors.New("delivery location is outside the service area")

	// ErrOrderItemsAreRequired signals a placement request with no items.
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves the business and products from the catalog, prices the items,
// computes distance and estimated delivery time, and persists the order in
// pendiente status. The customer is notified after the transaction commits.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %d, eta %d minutes", created.ID(), created.EstimatedTime())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CreateOrderUoWFactory for transactional persistence and a
// Notifier for the post-commit customer notification.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command and returns the created order.
// Validation order is fixed: the business must exist, every product must
// exist and be available, the drop-off point must lie in the service area,
// and only then is an empty item list rejected. Estimated time is the
// business preparation time plus two minutes per kilometer of straight-line
// distance.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
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

	biz, err := uow.BusinessRepository().Get(ctx, cmd.BusinessID())
	if err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		product, err := productRepo.Get(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if product.BusinessID() != biz.ID() {
			return nil, errs.NewObjectNotFoundError("product", input.ProductID)
		}
		if !product.Available() {
			return nil, errs.NewInvalidStateError(
				fmt.Sprintf("product %q is not available", product.Name()),
			)
		}

		item, err := order.NewLineItem(
			product.ID(), product.Name(), input.Quantity, product.Price(), input.Notes,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	dropOff, err := kernel.NewGeoPoint(cmd.CustomerLat(), cmd.CustomerLng())
	if err != nil {
		return nil, err
	}
	if !dropOff.InServiceArea() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"customer_location", ErrLocationOutsideServiceArea,
		)
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("items", ErrOrderItemsAreRequired)
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(),
		order.NormalizePhone(cmd.CustomerPhone()),
		cmd.CustomerAddress(),
		dropOff,
	)
	if err != nil {
		return nil, err
	}

	distance, err := biz.Location().DistanceKm(dropOff)
	if err != nil {
		return nil, err
	}
	distance = kernel.Round2(distance)
	estimatedTime := biz.DeliveryTime() + int(math.Round(2*distance))

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	businessRef, err := order.NewBusinessRef(biz.ID(), biz.Name(), biz.Location())
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		id, customer, businessRef, items,
		cmd.PaymentMethod(), cmd.TipAmount(),
		distance, estimatedTime, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyNewOrder(created)

	return created, nil
}
