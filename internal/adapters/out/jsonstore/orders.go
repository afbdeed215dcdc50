package jsonstore

import (
	"context"
	"time"

	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/errs"
)

// orderItemDTO mirrors one order line in the stored JSON.
type orderItemDTO struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	Notes       string  `json:"notes"`
}

// historyDTO mirrors one status history entry in the stored JSON.
type historyDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// orderDTO mirrors the legacy on-disk order document, field names included,
// so existing data files keep working.
type orderDTO struct {
	ID              int            `json:"id"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	CustomerAddress string         `json:"customer_address"`
	CustomerLat     float64        `json:"customer_lat"`
	CustomerLng     float64        `json:"customer_lng"`
	BusinessID      int            `json:"business_id"`
	BusinessName    string         `json:"business_name"`
	BusinessLat     float64        `json:"business_lat"`
	BusinessLng     float64        `json:"business_lng"`
	Products        []orderItemDTO `json:"products"`
	Total           float64        `json:"total"`
	DistanceKm      float64        `json:"distance_km"`
	EstimatedTime   int            `json:"estimated_time"`
	PaymentMethod   string         `json:"payment_method"`
	TipAmount       int            `json:"tip_amount"`
	PaymentStatus   string         `json:"payment_status"`
	Status          string         `json:"status"`
	DeliveryPerson  string         `json:"delivery_person,omitempty"`
	CourierPhone    string         `json:"courier_phone,omitempty"`
	CourierID       *int           `json:"courier_id,omitempty"`
	CourierName     string         `json:"courier_name,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	StatusHistory   []historyDTO   `json:"status_history"`
}

func orderToDTO(o *order.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemDTO{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			Notes:       item.Notes(),
		})
	}

	history := make([]historyDTO, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, historyDTO{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		})
	}

	return orderDTO{
		ID:              o.ID(),
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone(),
		CustomerAddress: o.Customer().Address(),
		CustomerLat:     o.Customer().Location().Lat(),
		CustomerLng:     o.Customer().Location().Lng(),
		BusinessID:      o.Business().ID(),
		BusinessName:    o.Business().Name(),
		BusinessLat:     o.Business().Location().Lat(),
		BusinessLng:     o.Business().Location().Lng(),
		Products:        items,
		Total:           o.Total(),
		DistanceKm:      o.DistanceKm(),
		EstimatedTime:   o.EstimatedTime(),
		PaymentMethod:   string(o.PaymentMethod()),
		TipAmount:       o.TipAmount(),
		PaymentStatus:   string(o.PaymentStatus()),
		Status:          o.Status().String(),
		DeliveryPerson:  o.DeliveryPerson(),
		CourierPhone:    o.CourierPhone(),
		CourierID:       o.CourierID(),
		CourierName:     o.CourierName(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		StatusHistory:   history,
	}
}

func orderFromDTO(dto orderDTO) (*order.Order, error) {
	customerLoc, err := kernel.NewGeoPoint(dto.CustomerLat, dto.CustomerLng)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(
		dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress, customerLoc,
	)
	if err != nil {
		return nil, err
	}

	businessLoc, err := kernel.NewGeoPoint(dto.BusinessLat, dto.BusinessLng)
	if err != nil {
		return nil, err
	}
	businessRef, err := order.NewBusinessRef(dto.BusinessID, dto.BusinessName, businessLoc)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Products))
	for _, item := range dto.Products {
		restored, itemErr := order.NewLineItem(
			item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, restored)
	}

	history := make([]order.HistoryEntry, 0, len(dto.StatusHistory))
	for _, entry := range dto.StatusHistory {
		history = append(history, order.HistoryEntry{
			Status:    order.Status(entry.Status),
			Timestamp: entry.Timestamp,
		})
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             dto.ID,
		Customer:       customer,
		Business:       businessRef,
		Items:          items,
		Total:          dto.Total,
		DistanceKm:     dto.DistanceKm,
		EstimatedTime:  dto.EstimatedTime,
		PaymentMethod:  order.PaymentMethod(dto.PaymentMethod),
		TipAmount:      dto.TipAmount,
		PaymentStatus:  order.PaymentStatus(dto.PaymentStatus),
		Status:         order.Status(dto.Status),
		CourierID:      dto.CourierID,
		CourierName:    dto.CourierName,
		CourierPhone:   dto.CourierPhone,
		DeliveryPerson: dto.DeliveryPerson,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
		StatusHistory:  history,
	})
}

func findOrderIndex(dtos []orderDTO, id int) (int, bool) {
	for i := range dtos {
		if dtos[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func nextOrderID(dtos []orderDTO) int {
	maxID := 0
	for i := range dtos {
		if dtos[i].ID > maxID {
			maxID = dtos[i].ID
		}
	}
	return maxID + 1
}

// OrderRepository is the standalone (auto-commit) order repository over the
// store. Every call takes the store lock for its duration.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over the store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []orderDTO
	if err := r.store.readCollection(ordersFile, &dtos); err != nil {
		return err
	}
	dtos = append(dtos, orderToDTO(o))
	return r.store.writeCollection(ordersFile, dtos)
}

func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []orderDTO
	if err := r.store.readCollection(ordersFile, &dtos); err != nil {
		return err
	}

	i, ok := findOrderIndex(dtos, o.ID())
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	dtos[i] = orderToDTO(o)
	return r.store.writeCollection(ordersFile, dtos)
}

func (r *OrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []orderDTO
	if err := r.store.readCollection(ordersFile, &dtos); err != nil {
		return nil, err
	}

	i, ok := findOrderIndex(dtos, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return orderFromDTO(dtos[i])
}

func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []orderDTO
	if err := r.store.readCollection(ordersFile, &dtos); err != nil {
		return nil, err
	}
	return ordersFromDTOs(dtos)
}

func (r *OrderRepository) GetFirstPending(_ context.Context) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []orderDTO
	if err := r.store.readCollection(ordersFile, &dtos); err != nil {
		return nil, err
	}
	return firstPendingOrder(dtos)
}

func (r *OrderRepository) NextID(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []orderDTO
	if err := r.store.readCollection(ordersFile, &dtos); err != nil {
		return 0, err
	}
	return nextOrderID(dtos), nil
}

func ordersFromDTOs(dtos []orderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderFromDTO(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// firstPendingOrder relies on append order: the file is oldest-first.
func firstPendingOrder(dtos []orderDTO) (*order.Order, error) {
	for _, dto := range dtos {
		if dto.Status == order.StatusPending.String() {
			return orderFromDTO(dto)
		}
	}
	return nil, errs.NewObjectNotFoundError("order", "first pending")
}
