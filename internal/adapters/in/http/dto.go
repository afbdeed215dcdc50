package http

import (
	"time"

	"domicilios/internal/core/application/usecases/queries"
	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/core/domain/services"
)

// Request bodies. Field names match the legacy API so existing clients keep
// working.

type orderItemRequest struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	CustomerLat     float64            `json:"customer_lat"`
	CustomerLng     float64            `json:"customer_lng"`
	BusinessID      int                `json:"business_id"`
	Products        []orderItemRequest `json:"products"`
	PaymentMethod   string             `json:"payment_method"`
	TipAmount       int                `json:"tip_amount"`
}

type updateStatusRequest struct {
	Status    string `json:"status"`
	CourierID *int   `json:"courier_id"`
}

type processPaymentRequest struct {
	OrderID       int    `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number"`
	CardHolder    string `json:"card_holder"`
	CVV           string `json:"cvv"`
}

// Response bodies.

type errorResponse struct {
	Error string `json:"error"`
}

type orderItemResponse struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	Notes       string  `json:"notes"`
}

type historyEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type orderResponse struct {
	ID              int                    `json:"id"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	CustomerAddress string                 `json:"customer_address"`
	CustomerLat     float64                `json:"customer_lat"`
	CustomerLng     float64                `json:"customer_lng"`
	BusinessID      int                    `json:"business_id"`
	BusinessName    string                 `json:"business_name"`
	Products        []orderItemResponse    `json:"products"`
	Total           float64                `json:"total"`
	DistanceKm      float64                `json:"distance_km"`
	EstimatedTime   int                    `json:"estimated_time"`
	PaymentMethod   string                 `json:"payment_method"`
	TipAmount       int                    `json:"tip_amount"`
	PaymentStatus   string                 `json:"payment_status"`
	Status          string                 `json:"status"`
	DeliveryPerson  string                 `json:"delivery_person,omitempty"`
	CourierPhone    string                 `json:"courier_phone,omitempty"`
	CourierID       *int                   `json:"courier_id,omitempty"`
	CourierName     string                 `json:"courier_name,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	StatusHistory   []historyEntryResponse `json:"status_history"`
}

type courierResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Zone            string  `json:"zone"`
	Available       bool    `json:"available"`
	Vehicle         string  `json:"vehicle"`
	Rating          float64 `json:"rating"`
	CurrentOrderID  *int    `json:"current_order_id,omitempty"`
	TotalDeliveries int     `json:"total_deliveries"`
}

type nearbyCourierResponse struct {
	courierResponse
	DistanceKm float64 `json:"distance_km"`
}

type paymentResponse struct {
	ID            int       `json:"id"`
	OrderID       int       `json:"order_id"`
	Amount        float64   `json:"amount"`
	TipAmount     int       `json:"tip_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type orderPaymentResponse struct {
	OrderID       int              `json:"order_id"`
	Total         float64          `json:"total"`
	PaymentMethod string           `json:"payment_method"`
	PaymentStatus string           `json:"payment_status"`
	LastPayment   *paymentResponse `json:"last_payment"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			Notes:       item.Notes(),
		})
	}

	history := make([]historyEntryResponse, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		history = append(history, historyEntryResponse{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		})
	}

	return orderResponse{
		ID:              o.ID(),
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone(),
		CustomerAddress: o.Customer().Address(),
		CustomerLat:     o.Customer().Location().Lat(),
		CustomerLng:     o.Customer().Location().Lng(),
		BusinessID:      o.Business().ID(),
		BusinessName:    o.Business().Name(),
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

func toOrderResponses(orders []*order.Order) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

func toCourierResponse(c *courier.Courier) courierResponse {
	return courierResponse{
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

func toCourierResponses(couriers []*courier.Courier) []courierResponse {
	responses := make([]courierResponse, 0, len(couriers))
	for _, c := range couriers {
		responses = append(responses, toCourierResponse(c))
	}
	return responses
}

func toNearbyCourierResponses(ranked []services.RankedCourier) []nearbyCourierResponse {
	responses := make([]nearbyCourierResponse, 0, len(ranked))
	for _, r := range ranked {
		responses = append(responses, nearbyCourierResponse{
			courierResponse: toCourierResponse(r.Courier),
			DistanceKm:      r.DistanceKm,
		})
	}
	return responses
}

func toPaymentResponse(r *payment.Record) paymentResponse {
	return paymentResponse{
		ID:            r.ID(),
		OrderID:       r.OrderID(),
		Amount:        r.Amount(),
		TipAmount:     r.TipAmount(),
		PaymentMethod: string(r.Method()),
		Status:        string(r.Status()),
		CreatedAt:     r.CreatedAt(),
	}
}

func toPaymentResponses(records []*payment.Record) []paymentResponse {
	responses := make([]paymentResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toPaymentResponse(r))
	}
	return responses
}

func toOrderPaymentResponse(result queries.OrderPaymentResponse) orderPaymentResponse {
	response := orderPaymentResponse{
		OrderID:       result.Order.ID(),
		Total:         result.Order.Total(),
		PaymentMethod: string(result.Order.PaymentMethod()),
		PaymentStatus: string(result.Order.PaymentStatus()),
	}
	if result.LastRecord != nil {
		last := toPaymentResponse(result.LastRecord)
		response.LastPayment = &last
	}
	return response
}
