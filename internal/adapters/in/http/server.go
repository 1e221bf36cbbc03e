// Package http provides the inbound HTTP adapter.
// It coordinates between HTTP handlers and application use cases; all
// business decisions stay behind the command and query handlers.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line in an order creation request.
type NewOrderItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// NewOrder is the order creation request body.
type NewOrder struct {
	ID    int            `json:"id"`
	Items []NewOrderItem `json:"items"`
}

// OrderItem is one order line in a response.
type OrderItem struct {
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	TaxedAmount string `json:"taxedAmount"`
	TaxAmount   string `json:"taxAmount"`
}

// Order is the full order representation in responses.
type Order struct {
	ID       int         `json:"id"`
	Status   string      `json:"status"`
	Currency string      `json:"currency"`
	Total    string      `json:"total"`
	Tax      string      `json:"tax"`
	Items    []OrderItem `json:"items"`
}

// PendingShipment is one order awaiting carrier dispatch.
type PendingShipment struct {
	ID       int    `json:"id"`
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Server handles HTTP requests for the sales order API.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	approveOrderHandler commands.ApproveOrderCommandHandler
	rejectOrderHandler  commands.RejectOrderCommandHandler
	shipOrderHandler    commands.ShipOrderCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getAwaitingShipmentsHandler queries.GetAwaitingShipmentOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAwaitingShipmentsHandler queries.GetAwaitingShipmentOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		approveOrderHandler:         approveOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		shipOrderHandler:            shipOrderHandler,
		getOrderHandler:             getOrderHandler,
		getAwaitingShipmentsHandler: getAwaitingShipmentsHandler,
	}
}

// RegisterRoutes wires the API routes onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.POST("/api/v1/orders/:id/approve", s.ApproveOrder)
	e.POST("/api/v1/orders/:id/reject", s.RejectOrder)
	e.POST("/api/v1/orders/:id/ship", s.ShipOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.GET("/api/v1/orders/awaiting-shipment", s.GetAwaitingShipments)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.SellItem, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		sellItem, err := commands.NewSellItem(item.Product, item.Quantity)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order data: " + err.Error(),
			})
		}
		items = append(items, sellItem)
	}

	cmd, err := commands.NewCreateOrderCommand(newOrder.ID, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, ok := s.orderID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, ok := s.orderID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewRejectOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, ok := s.orderID(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, ok := s.orderID(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.orderError(ctx, err)
	}

	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			Product:     item.ProductName,
			Quantity:    item.Quantity,
			TaxedAmount: item.TaxedAmount.String(),
			TaxAmount:   item.TaxAmount.String(),
		}
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:       resp.ID,
		Status:   resp.Status.String(),
		Currency: resp.Currency,
		Total:    resp.Total.String(),
		Tax:      resp.Tax.String(),
		Items:    items,
	})
}

// GetAwaitingShipments handles GET /api/v1/orders/awaiting-shipment -
// retrieves all approved orders.
func (s *Server) GetAwaitingShipments(ctx echo.Context) error {
	query := queries.NewGetAwaitingShipmentOrdersQuery()

	orders, err := s.getAwaitingShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders awaiting shipment",
		})
	}

	response := make([]PendingShipment, len(orders))
	for i, pending := range orders {
		response[i] = PendingShipment{
			ID:       pending.ID,
			Currency: pending.Currency,
			Total:    pending.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderID parses the :id path parameter. On failure it writes a 400 response
// and reports false.
func (s *Server) orderID(ctx echo.Context) (int, bool) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		_ = ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
		return 0, false
	}
	return orderID, true
}

// orderError maps use case failures onto HTTP statuses: refused transitions
// conflict with the order's current state, unknown products make the request
// unprocessable, and a missing order is simply not found.
func (s *Server) orderError(ctx echo.Context, err error) error {
	switch {
	case order.IsTransitionError(err):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, product.ErrUnknownProduct):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
