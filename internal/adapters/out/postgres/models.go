// Package postgres is the GORM-backed swap-in for the JSON file store.
// Same ports, same semantics; collections become tables and the unit of work
// becomes a database transaction.
package postgres

import (
	"time"

	"domicilios/internal/core/domain/model/business"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/domain/model/product"
)

// orderItem and historyEntry are stored as JSONB columns on the order row,
// mirroring the nested arrays of the file store documents.
type orderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	Notes       string  `json:"notes"`
}

type historyEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderModel is the orders table row.
type OrderModel struct {
	ID              int    `gorm:"primaryKey"`
	CustomerName    string `gorm:"not null"`
	CustomerPhone   string `gorm:"index;not null"`
	CustomerAddress string
	CustomerLat     float64
	CustomerLng     float64
	BusinessID      int `gorm:"index"`
	BusinessName    string
	BusinessLat     float64
	BusinessLng     float64
	Products        []orderItem    `gorm:"serializer:json"`
	Total           float64
	DistanceKm      float64
	EstimatedTime   int
	PaymentMethod   string
	TipAmount       int
	PaymentStatus   string
	Status          string `gorm:"index"`
	DeliveryPerson  string
	CourierPhone    string
	CourierID       *int `gorm:"index"`
	CourierName     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StatusHistory   []historyEntry `gorm:"serializer:json"`
}

// TableName keeps the table name aligned with the file store collection.
func (OrderModel) TableName() string { return "orders" }

// CourierModel is the couriers table row.
type CourierModel struct {
	ID              int `gorm:"primaryKey"`
	Name            string
	Phone           string
	Lat             float64
	Lng             float64
	Zone            string
	Available       bool `gorm:"index"`
	Vehicle         string
	Rating          float64
	CurrentOrderID  *int
	TotalDeliveries int
}

func (CourierModel) TableName() string { return "couriers" }

// BusinessModel is the businesses catalog table row.
type BusinessModel struct {
	ID           int `gorm:"primaryKey"`
	Name         string
	Category     string
	Address      string
	Latitude     float64
	Longitude    float64
	Phone        string
	Rating       float64
	IsOpen       bool
	DeliveryTime int
}

func (BusinessModel) TableName() string { return "businesses" }

// ProductModel is the products catalog table row.
type ProductModel struct {
	ID          int `gorm:"primaryKey"`
	BusinessID  int `gorm:"index"`
	Name        string
	Price       float64
	Description string
	Category    string
	Available   bool
	Image       string
}

func (ProductModel) TableName() string { return "products" }

// PaymentModel is the payments ledger table row.
type PaymentModel struct {
	ID            int `gorm:"primaryKey"`
	OrderID       int `gorm:"index"`
	Amount        float64
	TipAmount     int
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
}

func (PaymentModel) TableName() string { return "payments" }

func orderToModel(o *order.Order) OrderModel {
	items := make([]orderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItem{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			Notes:       item.Notes(),
		})
	}

	history := make([]historyEntry, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, historyEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		})
	}

	return OrderModel{
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

func orderFromModel(m OrderModel) (*order.Order, error) {
	customerLoc, err := kernel.NewGeoPoint(m.CustomerLat, m.CustomerLng)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(m.CustomerName, m.CustomerPhone, m.CustomerAddress, customerLoc)
	if err != nil {
		return nil, err
	}

	businessLoc, err := kernel.NewGeoPoint(m.BusinessLat, m.BusinessLng)
	if err != nil {
		return nil, err
	}
	businessRef, err := order.NewBusinessRef(m.BusinessID, m.BusinessName, businessLoc)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(m.Products))
	for _, item := range m.Products {
		restored, itemErr := order.NewLineItem(
			item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Notes,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, restored)
	}

	history := make([]order.HistoryEntry, 0, len(m.StatusHistory))
	for _, entry := range m.StatusHistory {
		history = append(history, order.HistoryEntry{
			Status:    order.Status(entry.Status),
			Timestamp: entry.Timestamp,
		})
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             m.ID,
		Customer:       customer,
		Business:       businessRef,
		Items:          items,
		Total:          m.Total,
		DistanceKm:     m.DistanceKm,
		EstimatedTime:  m.EstimatedTime,
		PaymentMethod:  order.PaymentMethod(m.PaymentMethod),
		TipAmount:      m.TipAmount,
		PaymentStatus:  order.PaymentStatus(m.PaymentStatus),
		Status:         order.Status(m.Status),
		CourierID:      m.CourierID,
		CourierName:    m.CourierName,
		CourierPhone:   m.CourierPhone,
		DeliveryPerson: m.DeliveryPerson,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		StatusHistory:  history,
	})
}

func courierToModel(c *courier.Courier) CourierModel {
	return CourierModel{
		ID:              c.ID(),
		Name:            c.Name(),
		Phone:           c.Phone(),
		Lat:             c.Location().Lat(),
		Lng:             c.Location().Lng(),
		Zone:            c.Zone(),
		Available:       c.Available(),
		Vehicle:         c.Vehicle(),
		Rating:          c.Rating(),
		CurrentOrderID:  c.CurrentOrderID(),
		TotalDeliveries: c.TotalDeliveries(),
	}
}

func courierFromModel(m CourierModel) (*courier.Courier, error) {
	loc, err := kernel.NewGeoPoint(m.Lat, m.Lng)
	if err != nil {
		return nil, err
	}
	return courier.RestoreCourier(
		m.ID, m.Name, m.Phone, loc, m.Zone,
		m.Available, m.Vehicle, m.Rating,
		m.CurrentOrderID, m.TotalDeliveries,
	)
}

func businessFromModel(m BusinessModel) (*business.Business, error) {
	loc, err := kernel.NewGeoPoint(m.Latitude, m.Longitude)
	if err != nil {
		return nil, err
	}
	return business.RestoreBusiness(
		m.ID, m.Name, m.Category, m.Address, loc,
		m.Phone, m.Rating, m.IsOpen, m.DeliveryTime,
	)
}

func productFromModel(m ProductModel) (*product.Product, error) {
	return product.RestoreProduct(
		m.ID, m.BusinessID, m.Name, m.Price,
		m.Description, m.Category, m.Available, m.Image,
	)
}

func paymentToModel(r *payment.Record) PaymentModel {
	return PaymentModel{
		ID:            r.ID(),
		OrderID:       r.OrderID(),
		Amount:        r.Amount(),
		TipAmount:     r.TipAmount(),
		PaymentMethod: string(r.Method()),
		Status:        string(r.Status()),
		CreatedAt:     r.CreatedAt(),
	}
}

func paymentFromModel(m PaymentModel) (*payment.Record, error) {
	return payment.NewRecord(
		m.ID, m.OrderID, m.Amount, m.TipAmount,
		order.PaymentMethod(m.PaymentMethod), order.PaymentStatus(m.Status),
		m.CreatedAt,
	)
}
