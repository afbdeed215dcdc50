package ports

import (
	"domicilios/internal/core/domain/model/order"
)

// Notifier delivers customer-facing notifications. Implementations are
// fire-and-forget: delivery failures are logged, never surfaced to the
// caller, so command handlers stay unaffected by gateway outages.
type Notifier interface {
	// NotifyNewOrder tells the customer their order was received,
	// including the id and estimated delivery time.
	NotifyNewOrder(o *order.Order)

	// NotifyPaymentConfirmed tells the customer their payment was accepted.
	NotifyPaymentConfirmed(o *order.Order)
}
