// Package http exposes the fulfillment engine over a JSON API. It
// translates requests into commands and queries and maps domain errors
// to HTTP status codes; no business rules live here.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	transitionOrderHandler    commands.TransitionOrderCommandHandler
	assignDriverHandler       commands.AssignDriverCommandHandler
	cancelDeliveryHandler     commands.CancelDeliveryCommandHandler
	rescheduleDeliveryHandler commands.RescheduleDeliveryCommandHandler
	markDeliveredHandler      commands.MarkDeliveredCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getUndeliveredHandler      queries.GetUndeliveredOrdersQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	rescheduleDeliveryHandler commands.RescheduleDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUndeliveredHandler queries.GetUndeliveredOrdersQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		transitionOrderHandler:     transitionOrderHandler,
		assignDriverHandler:        assignDriverHandler,
		cancelDeliveryHandler:      cancelDeliveryHandler,
		rescheduleDeliveryHandler:  rescheduleDeliveryHandler,
		markDeliveredHandler:       markDeliveredHandler,
		getOrderHandler:            getOrderHandler,
		getUndeliveredHandler:      getUndeliveredHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/undelivered-count", s.GetUndeliveredCount)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/status", s.TransitionOrder)
	api.POST("/orders/:orderId/assign", s.AssignDriver)
	api.POST("/orders/:orderId/delivery/cancel", s.CancelDelivery)
	api.POST("/orders/:orderId/delivery/reschedule", s.RescheduleDelivery)
	api.POST("/orders/:orderId/delivery/delivered", s.MarkDelivered)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// actorFromRequest reads the authenticated caller from the session
// headers. Authentication itself happens upstream; these headers are the
// trusted boundary.
func actorFromRequest(ctx echo.Context) (kernel.ActorContext, error) {
	userID, err := strconv.ParseInt(ctx.Request().Header.Get("X-User-Id"), 10, 64)
	if err != nil || userID <= 0 {
		return kernel.ActorContext{}, errs.NewValueIsInvalidError("X-User-Id")
	}

	role, err := kernel.ParseRole(ctx.Request().Header.Get("X-User-Role"))
	if err != nil {
		return kernel.ActorContext{}, err
	}

	return kernel.NewActorContext(userID, role)
}

func orderIDFromPath(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidError("orderId")
	}
	return id, nil
}

// writeError maps domain errors to HTTP responses. Invalid-state errors
// come back as 200 with success:false, which is how the storefront
// clients already consume transition refusals.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrPermissionDenied):
		return ctx.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusOK, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{Message: err.Error()})
}

type lineItemRequest struct {
	ProductID   int64   `json:"product_id"`
	VariationID *int64  `json:"variation_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type createOrderRequest struct {
	CustomerID     int64             `json:"customer_id"`
	CustomerPhone  string            `json:"customer_phone"`
	Amount         float64           `json:"amount"`
	DeliveryMethod string            `json:"delivery_method"`
	Items          []lineItemRequest `json:"items"`
}

// CreateOrder handles POST /api/v1/orders - checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return unauthorized(ctx, err)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	method, err := order.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.LineItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.LineItemInput{
			ProductID:   item.ProductID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, req.CustomerPhone, req.Amount, method, items)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success":  true,
		"order_id": orderID,
	})
}

type transitionOrderRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// TransitionOrder handles POST /api/v1/orders/:orderId/status. The status
// value accepts the legacy "Pending Approval" spelling so old admin
// clients keep working.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req transitionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, req.Reason, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"order_id":      result.OrderID,
		"new_status":    result.NewStatus.String(),
		"stock_reduced": result.StockReduced,
	})
}

type assignDriverRequest struct {
	DriverID  *int64 `json:"driver_id"`
	VehicleID int64  `json:"vehicle_id"`
}

// AssignDriver handles POST /api/v1/orders/:orderId/assign. A null
// driver_id unassigns the current driver while keeping the vehicle.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, req.DriverID, req.VehicleID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"delivery_id": result.DeliveryID,
		"driver_name": result.DriverName,
	})
}

type cancelDeliveryRequest struct {
	Reason string `json:"reason"`
}

// CancelDelivery handles POST /api/v1/orders/:orderId/delivery/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req cancelDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewCancelDeliveryCommand(orderID, req.Reason, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"success": true})
}

// RescheduleDelivery handles POST /api/v1/orders/:orderId/delivery/reschedule.
func (s *Server) RescheduleDelivery(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRescheduleDeliveryCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.rescheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"reschedule_count": count,
	})
}

type markDeliveredRequest struct {
	Details json.RawMessage `json:"details"`
}

// MarkDelivered handles POST /api/v1/orders/:orderId/delivery/delivered.
// The details payload is stored verbatim as proof of delivery.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req markDeliveredRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, datatypes.JSON(req.Details), actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"success": true})
}

type orderItemResponse struct {
	ProductID   int64   `json:"product_id"`
	VariationID *int64  `json:"variation_id,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type orderDeliveryResponse struct {
	ID              int64  `json:"id"`
	TrackingRef     string `json:"tracking_ref"`
	Status          string `json:"status"`
	DriverID        *int64 `json:"driver_id,omitempty"`
	VehicleID       *int64 `json:"vehicle_id,omitempty"`
	RescheduleCount int    `json:"reschedule_count"`
}

type orderResponse struct {
	ID              int64                  `json:"id"`
	CustomerID      int64                  `json:"customer_id"`
	CustomerPhone   string                 `json:"customer_phone"`
	Amount          float64                `json:"amount"`
	Status          string                 `json:"status"`
	DeliveryMethod  string                 `json:"delivery_method"`
	OrderDate       time.Time              `json:"order_date"`
	LastUpdated     time.Time              `json:"last_updated"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	Items           []orderItemResponse    `json:"items"`
	Delivery        *orderDeliveryResponse `json:"delivery,omitempty"`
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return unauthorized(ctx, err)
	}

	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ProductID:   item.ProductID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	response := orderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerPhone:   o.CustomerPhone,
		Amount:          o.Amount,
		Status:          o.Status,
		DeliveryMethod:  o.DeliveryMethod,
		OrderDate:       o.OrderDate,
		LastUpdated:     o.LastUpdated,
		RejectionReason: o.RejectionReason,
		Items:           items,
	}
	if o.Delivery != nil {
		response.Delivery = &orderDeliveryResponse{
			ID:              o.Delivery.ID,
			TrackingRef:     o.Delivery.TrackingRef,
			Status:          o.Delivery.Status,
			DriverID:        o.Delivery.DriverID,
			VehicleID:       o.Delivery.VehicleID,
			RescheduleCount: o.Delivery.RescheduleCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUndeliveredCount handles GET /api/v1/orders/undelivered-count.
func (s *Server) GetUndeliveredCount(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return unauthorized(ctx, err)
	}

	count, err := s.getUndeliveredHandler.Handle(ctx.Request().Context(), queries.NewGetUndeliveredOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{"count": count})
}

type activeDeliveryResponse struct {
	ID              int64   `json:"id"`
	OrderID         int64   `json:"order_id"`
	TrackingRef     string  `json:"tracking_ref"`
	Status          string  `json:"status"`
	DriverID        *int64  `json:"driver_id,omitempty"`
	DriverName      *string `json:"driver_name,omitempty"`
	VehicleID       *int64  `json:"vehicle_id,omitempty"`
	VehicleModel    *string `json:"vehicle_model,omitempty"`
	RescheduleCount int     `json:"reschedule_count"`
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	if _, err := actorFromRequest(ctx); err != nil {
		return unauthorized(ctx, err)
	}

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]activeDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = activeDeliveryResponse{
			ID:              d.ID,
			OrderID:         d.OrderID,
			TrackingRef:     d.TrackingRef,
			Status:          d.Status,
			DriverID:        d.DriverID,
			DriverName:      d.DriverName,
			VehicleID:       d.VehicleID,
			VehicleModel:    d.VehicleModel,
			RescheduleCount: d.RescheduleCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
