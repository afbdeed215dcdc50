// Package http exposes the application use cases over a REST API.
// Handlers translate between the legacy JSON field names and the command and
// query objects, and map the error taxonomy to HTTP statuses. No business
// rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"domicilios/internal/core/application/usecases/commands"
	"domicilios/internal/core/application/usecases/queries"
	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/pkg/errs"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	AssignCourier     commands.AssignCourierCommandHandler
	CompleteOrder     commands.CompleteOrderCommandHandler
	ProcessPayment    commands.ProcessPaymentCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	GetOrders         queries.GetOrdersQueryHandler
	GetOrdersByPhone  queries.GetOrdersByPhoneQueryHandler
	GetCouriers       queries.GetCouriersQueryHandler
	GetNearbyCouriers queries.GetNearbyCouriersQueryHandler
	GetPaymentHistory queries.GetPaymentHistoryQueryHandler
	GetOrderPayment   queries.GetOrderPaymentQueryHandler
}

// Server coordinates between echo and the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/phone/:phone", s.GetOrdersByPhone)

	api.GET("/couriers", s.GetCouriers)
	api.GET("/couriers/available", s.GetAvailableCouriers)
	api.GET("/couriers/nearby", s.GetNearbyCouriers)
	api.POST("/couriers/:id/assign/:orderID", s.AssignCourier)
	api.POST("/couriers/:id/complete/:orderID", s.CompleteOrder)

	api.POST("/payments", s.ProcessPayment)
	api.GET("/payments/history", s.GetPaymentHistory)
	api.GET("/payments/order/:id", s.GetOrderPayment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	items := make([]commands.ItemInput, 0, len(req.Products))
	for _, item := range req.Products {
		items = append(items, commands.ItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.CustomerName, req.CustomerPhone, req.CustomerAddress,
		req.CustomerLat, req.CustomerLng,
		req.BusinessID, items,
		order.PaymentMethod(req.PaymentMethod), req.TipAmount,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// GetOrders handles GET /api/orders with optional courier_id and business_id
// filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	courierID, err := optionalIntParam(ctx.QueryParam("courier_id"))
	if err != nil {
		return badRequest(ctx, errors.New("courier_id must be an integer"))
	}
	businessID, err := optionalIntParam(ctx.QueryParam("business_id"))
	if err != nil {
		return badRequest(ctx, errors.New("business_id must be an integer"))
	}

	query := queries.NewGetOrdersQuery(courierID, businessID)
	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Status(req.Status), req.CourierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// GetOrdersByPhone handles GET /api/orders/phone/:phone.
func (s *Server) GetOrdersByPhone(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByPhoneQuery(ctx.Param("phone"))
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByPhone.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetCouriers handles GET /api/couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	return s.listCouriers(ctx, false)
}

// GetAvailableCouriers handles GET /api/couriers/available.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	return s.listCouriers(ctx, true)
}

func (s *Server) listCouriers(ctx echo.Context, onlyAvailable bool) error {
	query := queries.NewGetCouriersQuery(onlyAvailable)
	couriers, err := s.handlers.GetCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierResponses(couriers))
}

// GetNearbyCouriers handles GET /api/couriers/nearby with lat, lng and an
// optional max_distance query parameter.
func (s *Server) GetNearbyCouriers(ctx echo.Context) error {
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return badRequest(ctx, errors.New("lat must be a number"))
	}
	lng, err := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if err != nil {
		return badRequest(ctx, errors.New("lng must be a number"))
	}

	maxDistance := 0.0
	if raw := ctx.QueryParam("max_distance"); raw != "" {
		maxDistance, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(ctx, errors.New("max_distance must be a number"))
		}
	}

	query, err := queries.NewGetNearbyCouriersQuery(lat, lng, maxDistance)
	if err != nil {
		return badRequest(ctx, err)
	}

	nearby, err := s.handlers.GetNearbyCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNearbyCourierResponses(nearby))
}

// AssignCourier handles POST /api/couriers/:id/assign/:orderID.
func (s *Server) AssignCourier(ctx echo.Context) error {
	courierID, err := intParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := intParam(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(courierID, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.handlers.AssignCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CompleteOrder handles POST /api/couriers/:id/complete/:orderID.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	courierID, err := intParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := intParam(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(courierID, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// ProcessPayment handles POST /api/payments.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	var req processPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	var card *commands.CardInput
	if req.CardNumber != "" || req.CardHolder != "" || req.CVV != "" {
		card = &commands.CardInput{
			Number: req.CardNumber,
			Holder: req.CardHolder,
			CVV:    req.CVV,
		}
	}

	cmd, err := commands.NewProcessPaymentCommand(
		req.OrderID, order.PaymentMethod(req.PaymentMethod), card,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	record, err := s.handlers.ProcessPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPaymentResponse(record))
}

// GetPaymentHistory handles GET /api/payments/history.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	query := queries.NewGetPaymentHistoryQuery()
	records, err := s.handlers.GetPaymentHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentResponses(records))
}

// GetOrderPayment handles GET /api/payments/order/:id.
func (s *Server) GetOrderPayment(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderPaymentQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.handlers.GetOrderPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPaymentResponse(result))
}

func intParam(ctx echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return value, nil
}

func optionalIntParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// writeError maps handler errors to HTTP statuses: missing entities are 404,
// rejected state transitions are 409, validation failures are 400, anything
// else is 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}
