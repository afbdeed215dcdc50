package order

import (
	"errors"
	"fmt"
	"time"

	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// legacyDeliveryPersons is the fixed name list used by the deprecated
// placeholder-courier path. The index is orderID mod 4.
var legacyDeliveryPersons = [4]string{"Carlos", "María", "Pedro", "Ana"}

// HistoryEntry is one record in an order's append-only status audit trail.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
}

// Order is the aggregate root for the order lifecycle. It owns the status
// state machine, the append-only status history, the pricing snapshot, and
// the courier binding fields.
//
// Invariants:
//   - statusHistory always holds at least one entry (the initial pendiente)
//     and is never reordered or truncated
//   - total = Σ line subtotals + tip
//   - delivery status and payment status move independently
//   - terminal statuses (entregado, cancelado) reject further transitions
type Order struct {
	id       int
	customer Customer
	business BusinessRef
	items    []LineItem

	total         float64
	distanceKm    float64
	estimatedTime int
	paymentMethod PaymentMethod
	tipAmount     int
	paymentStatus PaymentStatus

	status Status

	// Courier binding. courierID/courierName/courierPhone are set by the
	// authoritative dispatch path; deliveryPerson is the legacy display
	// field that may also carry a placeholder name.
	courierID      *int
	courierName    string
	courierPhone   string
	deliveryPerson string

	createdAt     time.Time
	updatedAt     time.Time
	statusHistory []HistoryEntry

	guard guard.ConstructorGuard
}

// NewOrder creates an order in pendiente status with a single seeded history
// entry. The caller supplies the already-computed distance and estimated
// time; pricing is derived here from the line items and the tip, which is
// coerced to zero when negative.
func NewOrder(
	id int,
	customer Customer,
	business BusinessRef,
	items []LineItem,
	paymentMethod PaymentMethod,
	tipAmount int,
	distanceKm float64,
	estimatedTime int,
	now time.Time,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setBusiness(business),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	if tipAmount < 0 {
		tipAmount = 0
	}
	o.tipAmount = tipAmount

	var subtotals float64
	for _, item := range o.items {
		subtotals += item.Subtotal()
	}
	o.total = subtotals + float64(tipAmount)

	o.distanceKm = distanceKm
	o.estimatedTime = estimatedTime
	o.paymentStatus = PaymentPending
	o.status = StatusPending
	o.createdAt = now
	o.updatedAt = now
	o.statusHistory = []HistoryEntry{{Status: StatusPending, Timestamp: now}}

	return o, nil
}

// RestoreOrderParams carries the complete persisted state of an order.
type RestoreOrderParams struct {
	ID             int
	Customer       Customer
	Business       BusinessRef
	Items          []LineItem
	Total          float64
	DistanceKm     float64
	EstimatedTime  int
	PaymentMethod  PaymentMethod
	TipAmount      int
	PaymentStatus  PaymentStatus
	Status         Status
	CourierID      *int
	CourierName    string
	CourierPhone   string
	DeliveryPerson string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	StatusHistory  []HistoryEntry
}

// RestoreOrder reconstructs an order from persistent storage, preserving its
// operational state. Unlike NewOrder it does not recompute pricing or seed
// history, but it still enforces structural invariants.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(params.ID),
		o.setCustomer(params.Customer),
		o.setBusiness(params.Business),
		o.setItems(params.Items),
		o.setPaymentMethod(params.PaymentMethod),
		params.PaymentStatus.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(params.StatusHistory) == 0 {
		return nil, errs.NewValueIsRequiredError("status_history")
	}

	o.total = params.Total
	o.distanceKm = params.DistanceKm
	o.estimatedTime = params.EstimatedTime
	o.tipAmount = params.TipAmount
	o.paymentStatus = params.PaymentStatus
	o.status = params.Status
	o.courierID = params.CourierID
	o.courierName = params.CourierName
	o.courierPhone = params.CourierPhone
	o.deliveryPerson = params.DeliveryPerson
	o.createdAt = params.CreatedAt
	o.updatedAt = params.UpdatedAt
	o.statusHistory = append([]HistoryEntry(nil), params.StatusHistory...)

	return o, nil
}

// Validate checks that the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int { return o.id }

// Customer returns the customer snapshot.
func (o *Order) Customer() Customer { return o.customer }

// Business returns the business snapshot taken at creation time.
func (o *Order) Business() BusinessRef { return o.business }

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the sum of line subtotals plus the tip.
func (o *Order) Total() float64 { return o.total }

// DistanceKm returns the business-to-customer distance in km, rounded to two
// decimals.
func (o *Order) DistanceKm() float64 { return o.distanceKm }

// EstimatedTime returns the estimated delivery time in minutes.
func (o *Order) EstimatedTime() int { return o.estimatedTime }

// PaymentMethod returns the order's payment method.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// TipAmount returns the non-negative tip in whole currency units.
func (o *Order) TipAmount() int { return o.tipAmount }

// PaymentStatus returns the current payment state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// Status returns the current delivery state.
func (o *Order) Status() Status { return o.status }

// CourierID returns the authoritative courier binding, nil when unassigned.
func (o *Order) CourierID() *int { return o.courierID }

// CourierName returns the bound courier's name, empty when unassigned.
func (o *Order) CourierName() string { return o.courierName }

// CourierPhone returns the bound courier's phone, empty when unassigned.
func (o *Order) CourierPhone() string { return o.courierPhone }

// DeliveryPerson returns the legacy display name. It may carry a placeholder
// that never went through 'dispatch'.
func (o *Order) DeliveryPerson() string { return o.deliveryPerson }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// StatusHistory returns a copy of the append-only status audit trail.
func (o *Order) StatusHistory() []HistoryEntry {
	out := make([]HistoryEntry, len(o.statusHistory))
	copy(out, o.statusHistory)
	return out
}

// IsPaid reports whether the order's payment has been captured.
func (o *Order) IsPaid() bool {
	return o.paymentStatus == PaymentPaid
}

// ChangeStatus moves the order to newStatus, appending a history entry and
// refreshing updatedAt. The entry is appended even when the value did not
// change; history length only ever grows. Terminal states reject the call.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) error {
	if err := o.status.ValidateTransition(newStatus); err != nil {
		return err
	}

	o.status = newStatus
	o.appendHistory(newStatus, now)
	return nil
}

// Assign binds a courier to the order through the authoritative dispatch
// path and moves it to en_camino. Only pendiente and preparando orders can
// be assigned.
func (o *Order) Assign(courierID int, courierName string, courierPhone string, now time.Time) error {
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}

	o.courierID = &courierID
	o.courierName = courierName
	o.courierPhone = courierPhone
	o.status = StatusEnRoute
	o.appendHistory(StatusEnRoute, now)
	return nil
}

// Complete marks the order entregado on behalf of the given courier. The
// courier must hold the order's authoritative binding.
func (o *Order) Complete(courierID int, now time.Time) error {
	if o.courierID == nil || *o.courierID != courierID {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order %d is not assigned to courier %d", o.id, courierID))
	}

	o.status = StatusDelivered
	o.appendHistory(StatusDelivered, now)
	return nil
}

// BindCourierContact copies a courier's contact onto the order for display.
// This does not flip the courier's availability; the authoritative binding is
// Assign.
func (o *Order) BindCourierContact(courierID int, name string, phone string) {
	o.courierID = &courierID
	o.deliveryPerson = name
	o.courierPhone = phone
}

// EnsureDeliveryPerson fills the legacy display fields with a deterministic
// placeholder derived from the order id when no delivery person is set yet.
//
// Deprecated: compatibility path for clients that mark orders en_camino
// without dispatching a real courier. Route new callers through Assign.
func (o *Order) EnsureDeliveryPerson() {
	if o.deliveryPerson != "" {
		return
	}
	o.deliveryPerson = legacyDeliveryPersons[o.id%len(legacyDeliveryPersons)]
	o.courierPhone = fmt.Sprintf("+57 300 %d", 1000000+o.id)
}

// RecordPayment stores the outcome of a payment attempt on the order.
func (o *Order) RecordPayment(method PaymentMethod, status PaymentStatus) error {
	if err := errors.Join(method.Validate(), status.Validate()); err != nil {
		return err
	}

	o.paymentMethod = method
	o.paymentStatus = status
	return nil
}

func (o *Order) appendHistory(status Status, now time.Time) {
	o.statusHistory = append(o.statusHistory, HistoryEntry{Status: status, Timestamp: now})
	o.updatedAt = now
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setBusiness(business BusinessRef) error {
	if err := business.Validate(); err != nil {
		return err
	}
	o.business = business
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
