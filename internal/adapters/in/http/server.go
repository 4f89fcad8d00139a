// Package http exposes the fulfillment admin surface over Echo.
// Handlers translate between the JSON API and the application use cases;
// all domain decisions stay behind the command and query handlers.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to the application use cases.
// It coordinates between HTTP handlers and command/query handlers.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateFulfillmentOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	bulkActionHandler   commands.BulkOrderActionCommandHandler
	assignStaffHandler  commands.AssignStaffCommandHandler
	setTrackingHandler  commands.SetTrackingCommandHandler
	setRTOHandler       commands.SetRTOAddressCommandHandler
	addNoteHandler      commands.AddInternalNoteCommandHandler
	setFlagsHandler     commands.SetOrderFlagsCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listActiveHandler queries.ListActiveOrdersQueryHandler
	getStatsHandler   queries.GetOrderStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateFulfillmentOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	bulkActionHandler commands.BulkOrderActionCommandHandler,
	assignStaffHandler commands.AssignStaffCommandHandler,
	setTrackingHandler commands.SetTrackingCommandHandler,
	setRTOHandler commands.SetRTOAddressCommandHandler,
	addNoteHandler commands.AddInternalNoteCommandHandler,
	setFlagsHandler commands.SetOrderFlagsCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listActiveHandler queries.ListActiveOrdersQueryHandler,
	getStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		changeStatusHandler: changeStatusHandler,
		bulkActionHandler:   bulkActionHandler,
		assignStaffHandler:  assignStaffHandler,
		setTrackingHandler:  setTrackingHandler,
		setRTOHandler:       setRTOHandler,
		addNoteHandler:      addNoteHandler,
		setFlagsHandler:     setFlagsHandler,
		getOrderHandler:     getOrderHandler,
		listActiveHandler:   listActiveHandler,
		getStatsHandler:     getStatsHandler,
	}
}

// RegisterRoutes attaches all admin surface routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListActiveOrders)
	api.GET("/orders/stats", s.GetOrderStats)
	api.GET("/orders/:id", s.GetOrder)

	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/bulk", s.BulkOrderAction)

	api.PUT("/orders/:id/assignment", s.AssignStaff)
	api.PUT("/orders/:id/tracking", s.SetTracking)
	api.PUT("/orders/:id/rto-address", s.SetRTOAddress)
	api.PUT("/orders/:id/flags", s.SetFlags)
	api.POST("/orders/:id/notes", s.AddNote)
}

// CreateOrder handles POST /api/v1/orders - intake of a paid commerce order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	commerceOrderID, err := kernel.UUIDFromString(req.CommerceOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid commerce order ID: "+err.Error())
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID: "+err.Error())
	}
	storeID, err := kernel.UUIDFromString(req.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store ID: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID: "+err.Error())
	}

	pricing, err := pricingFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid pricing: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.Item{
			SKU:      item.SKU,
			Variant:  item.Variant,
			Quantity: item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateFulfillmentOrderCommand(
		orderID, commerceOrderID, userID, storeID,
		order.Details{
			StoreName:       req.StoreName,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			PrimarySKU:      req.PrimarySKU,
			Items:           items,
		},
		pricing,
		actorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - returns one order with full history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromView(view))
}

// ListActiveOrders handles GET /api/v1/orders - lists in-flight orders.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	views, err := s.listActiveHandler.Handle(ctx.Request().Context(), queries.NewListActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(views))
	for _, view := range views {
		response = append(response, OrderSummaryResponse{
			ID:              view.ID.String(),
			CommerceOrderID: view.CommerceOrderID.String(),
			Status:          view.Status,
			StoreName:       view.StoreName,
			CustomerName:    view.CustomerName,
			PrimarySKU:      view.PrimarySKU,
			OrderValue:      view.OrderValue,
			Profit:          view.Profit,
			TrackingNumber:  view.TrackingNumber,
			IsPriority:      view.IsPriority,
			IsDelayed:       view.IsDelayed,
			HasIssue:        view.HasIssue,
			CreatedAt:       view.CreatedAt,
			UpdatedAt:       view.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/orders/stats - dashboard metrics.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		TotalOrders:             stats.TotalOrders,
		CountsByStatus:          stats.CountsByStatus,
		ActiveOrders:            stats.ActiveOrders,
		TotalOrderValue:         stats.TotalOrderValue,
		DeliveredProfit:         stats.DeliveredProfit,
		AverageFulfillmentHours: stats.AverageFulfillmentHours,
		PriorityOrders:          stats.PriorityOrders,
		OrdersWithIssues:        stats.OrdersWithIssues,
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
// A rejected transition returns 409 with the current status and the valid
// target set.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}
	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actorID, req.Note, ctx.RealIP())
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangeStatusResponse{
		ID:     updated.ID().String(),
		Status: updated.Status().String(),
	})
}

// BulkOrderAction handles POST /api/v1/orders/bulk.
// Always returns 200 with per-order outcomes; a failed order never blocks
// the rest of the batch.
func (s *Server) BulkOrderAction(ctx echo.Context) error {
	var req BulkActionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order ID: "+err.Error())
		}
		orderIDs = append(orderIDs, id)
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor ID: "+err.Error())
	}

	target := order.Unknown
	if req.Target != "" {
		if target, err = order.ParseStatus(req.Target); err != nil {
			return badRequest(ctx, "Invalid target status: "+err.Error())
		}
	}

	var staffID *kernel.UUID
	if req.StaffID != nil {
		id, idErr := kernel.UUIDFromString(*req.StaffID)
		if idErr != nil {
			return badRequest(ctx, "Invalid staff ID: "+idErr.Error())
		}
		staffID = &id
	}

	cmd, err := commands.NewBulkOrderActionCommand(orderIDs, req.Action, target, staffID, actorID, ctx.RealIP())
	if err != nil {
		return badRequest(ctx, "Invalid bulk action: "+err.Error())
	}

	result, err := s.bulkActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := BulkActionResponse{
		Succeeded: make([]string, 0, len(result.Succeeded)),
		Failed:    make([]BulkActionFailure, 0, len(result.Failed)),
	}
	for _, id := range result.Succeeded {
		response.Succeeded = append(response.Succeeded, id.String())
	}
	for _, failure := range result.Failed {
		response.Failed = append(response.Failed, BulkActionFailure{
			OrderID: failure.OrderID.String(),
			Reason:  failure.Reason,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignStaff handles PUT /api/v1/orders/:id/assignment.
func (s *Server) AssignStaff(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req AssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := order.ParseStaffRole(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	var staffID *kernel.UUID
	if req.StaffID != nil {
		id, idErr := kernel.UUIDFromString(*req.StaffID)
		if idErr != nil {
			return badRequest(ctx, "Invalid staff ID: "+idErr.Error())
		}
		staffID = &id
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, role, staffID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if err = s.assignStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetTracking handles PUT /api/v1/orders/:id/tracking.
func (s *Server) SetTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req TrackingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetTrackingCommand(orderID, order.TrackingUpdate{
		Number:            req.TrackingNumber,
		URL:               req.TrackingURL,
		CourierName:       req.CourierName,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		return badRequest(ctx, "Invalid tracking update: "+err.Error())
	}

	if err = s.setTrackingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetRTOAddress handles PUT /api/v1/orders/:id/rto-address.
func (s *Server) SetRTOAddress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req RTOAddressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address := order.NewRTOAddress(req.Line1, req.Line2, req.City, req.State, req.PostalCode, req.Country)

	cmd, err := commands.NewSetRTOAddressCommand(orderID, address)
	if err != nil {
		return badRequest(ctx, "Invalid address update: "+err.Error())
	}

	if err = s.setRTOHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetFlags handles PUT /api/v1/orders/:id/flags.
func (s *Server) SetFlags(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req FlagsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetOrderFlagsCommand(orderID, order.FlagsUpdate{
		IsPriority:       req.IsPriority,
		IsDelayed:        req.IsDelayed,
		HasIssue:         req.HasIssue,
		IssueDescription: req.IssueDescription,
	})
	if err != nil {
		return badRequest(ctx, "Invalid flags update: "+err.Error())
	}

	if err = s.setFlagsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddNote handles POST /api/v1/orders/:id/notes.
func (s *Server) AddNote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req NoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authorID, err := kernel.UUIDFromString(req.AuthorID)
	if err != nil {
		return badRequest(ctx, "Invalid author ID: "+err.Error())
	}

	cmd, err := commands.NewAddInternalNoteCommand(orderID, authorID, req.Text)
	if err != nil {
		return badRequest(ctx, "Invalid note: "+err.Error())
	}

	if err = s.addNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps use case failures to HTTP responses. Transition rejections
// carry the current status and valid target set so the caller can recover
// without a second round trip.
func writeError(ctx echo.Context, err error) error {
	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		valid := make([]string, 0, len(transitionErr.Valid))
		for _, status := range transitionErr.Valid {
			valid = append(valid, status.String())
		}
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:             http.StatusConflict,
			Message:          err.Error(),
			CurrentStatus:    transitionErr.Current.String(),
			ValidTransitions: valid,
		})
	}

	switch {
	case errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order was modified concurrently, reload and retry",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func pricingFromRequest(req CreateOrderRequest) (order.Pricing, error) {
	orderValue, err := kernel.NewMoney(req.OrderValue)
	if err != nil {
		return order.Pricing{}, err
	}
	productCost, err := kernel.NewMoney(req.ProductCost)
	if err != nil {
		return order.Pricing{}, err
	}
	shippingCost, err := kernel.NewMoney(req.ShippingCost)
	if err != nil {
		return order.Pricing{}, err
	}
	serviceFee, err := kernel.NewMoney(req.ServiceFee)
	if err != nil {
		return order.Pricing{}, err
	}
	walletDeducted, err := kernel.NewMoney(req.WalletDeducted)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.Pricing{
		OrderValue:     orderValue,
		ProductCost:    productCost,
		ShippingCost:   shippingCost,
		ServiceFee:     serviceFee,
		WalletDeducted: walletDeducted,
	}, nil
}

func orderResponseFromView(view queries.GetOrderQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:              view.ID.String(),
		CommerceOrderID: view.CommerceOrderID.String(),
		UserID:          view.UserID.String(),
		StoreID:         view.StoreID.String(),

		Status: view.Status,

		StoreName:       view.StoreName,
		CustomerName:    view.CustomerName,
		CustomerEmail:   view.CustomerEmail,
		CustomerPhone:   view.CustomerPhone,
		ShippingAddress: view.ShippingAddress,
		PrimarySKU:      view.PrimarySKU,

		OrderValue:     view.OrderValue,
		ProductCost:    view.ProductCost,
		ShippingCost:   view.ShippingCost,
		ServiceFee:     view.ServiceFee,
		WalletDeducted: view.WalletDeducted,
		Profit:         view.Profit,

		PickerID:        uuidString(view.PickerID),
		PackerID:        uuidString(view.PackerID),
		QCID:            uuidString(view.QCID),
		CourierPersonID: uuidString(view.CourierPersonID),

		TrackingNumber:    view.TrackingNumber,
		TrackingURL:       view.TrackingURL,
		CourierName:       view.CourierName,
		EstimatedDelivery: view.EstimatedDelivery,
		ActualDelivery:    view.ActualDelivery,

		IsPriority:       view.IsPriority,
		IsDelayed:        view.IsDelayed,
		HasIssue:         view.HasIssue,
		IssueDescription: view.IssueDescription,

		Attachments: view.Attachments,
		Version:     view.Version,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}

	resp.Items = make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			SKU:      item.SKU,
			Variant:  item.Variant,
			Quantity: item.Quantity,
		})
	}

	resp.History = make([]HistoryEntryResponse, 0, len(view.History))
	for _, entry := range view.History {
		resp.History = append(resp.History, HistoryEntryResponse{
			Status:    entry.Status,
			ActorID:   entry.ActorID.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	resp.Notes = make([]NoteResponse, 0, len(view.Notes))
	for _, note := range view.Notes {
		resp.Notes = append(resp.Notes, NoteResponse{
			AuthorID:  note.AuthorID.String(),
			Timestamp: note.Timestamp,
			Text:      note.Text,
		})
	}

	return resp
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
