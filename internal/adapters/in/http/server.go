package http

import (
	"errors"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRestaurantHandler     commands.CreateRestaurantCommandHandler
	updateRestaurantInfoHandler commands.UpdateRestaurantInfoCommandHandler
	saveFeeSettingsHandler      commands.SaveFeeSettingsCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getFeeQuoteHandler     queries.GetFeeQuoteQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	updateRestaurantInfoHandler commands.UpdateRestaurantInfoCommandHandler,
	saveFeeSettingsHandler commands.SaveFeeSettingsCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getFeeQuoteHandler queries.GetFeeQuoteQueryHandler,
) *Server {
	return &Server{
		createRestaurantHandler:     createRestaurantHandler,
		updateRestaurantInfoHandler: updateRestaurantInfoHandler,
		saveFeeSettingsHandler:      saveFeeSettingsHandler,
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getFeeQuoteHandler:          getFeeQuoteHandler,
	}
}

// CreateRestaurant handles POST /api/v1/restaurants - registers a restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var newRestaurant servers.NewRestaurant
	if err := ctx.Bind(&newRestaurant); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	timezone := ""
	if newRestaurant.Timezone != nil {
		timezone = *newRestaurant.Timezone
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, newRestaurant.Name, timezone)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	if handleErr := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create restaurant")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": restaurantID.String()})
}

// UpdateRestaurant handles PATCH /api/v1/restaurants/{restaurantId} - updates settings.
func (s *Server) UpdateRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error {
	var settings servers.RestaurantSettings
	if err := ctx.Bind(&settings); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(restaurantId[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	cmd, err := commands.NewUpdateRestaurantInfoCommand(
		id,
		stringValue(settings.Phone),
		stringValue(settings.Email),
		stringValue(settings.DeliveryZone),
		stringValue(settings.DeliveryRadiusKm),
	)
	if err != nil {
		return badRequest(ctx, "Invalid settings: "+err.Error())
	}

	if handleErr := s.updateRestaurantInfoHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Restaurant not found")
		}
		return badRequest(ctx, "Invalid settings: "+handleErr.Error())
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SaveFeeSettings handles PUT /api/v1/restaurants/{restaurantId}/fee-settings.
// A draft that fails validation returns every field error at once and leaves
// the committed rule set untouched.
func (s *Server) SaveFeeSettings(ctx echo.Context, restaurantId openapi_types.UUID) error {
	var draft servers.RuleSetDraft
	if err := ctx.Bind(&draft); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(restaurantId[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	cmd, err := commands.NewSaveFeeSettingsCommand(id, toDomainDraft(draft))
	if err != nil {
		return badRequest(ctx, "Invalid fee settings: "+err.Error())
	}

	if handleErr := s.saveFeeSettingsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var validationErr *commands.FeeSettingsValidationError
		if errors.As(handleErr, &validationErr) {
			return ctx.JSON(http.StatusUnprocessableEntity, toValidationErrors(validationErr))
		}
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Restaurant not found")
		}
		return internalError(ctx, "Failed to save fee settings")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetFeeQuote handles GET /api/v1/restaurants/{restaurantId}/fee-quote.
func (s *Server) GetFeeQuote(
	ctx echo.Context, restaurantId openapi_types.UUID, params servers.GetFeeQuoteParams,
) error {
	id, err := kernel.UUIDFromBytes(restaurantId[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	subtotal, err := kernel.MoneyFromString(params.Subtotal)
	if err != nil {
		return badRequest(ctx, "Invalid subtotal: "+err.Error())
	}

	distanceKm := 0.0
	if params.DistanceKm != nil {
		distanceKm = *params.DistanceKm
	}
	isHoliday := params.Holiday != nil && *params.Holiday

	query, err := queries.NewGetFeeQuoteQuery(id, subtotal, distanceKm, isHoliday)
	if err != nil {
		return badRequest(ctx, "Invalid quote parameters: "+err.Error())
	}

	quote, err := s.getFeeQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Restaurant not found")
		}
		return internalError(ctx, "Failed to quote delivery fee")
	}

	return ctx.JSON(http.StatusOK, servers.FeeBreakdown{
		BaseFee:           quote.BaseFee,
		DistanceFee:       quote.DistanceFee,
		PeakSurcharge:     quote.PeakSurcharge,
		WeekendSurcharge:  quote.WeekendSurcharge,
		HolidaySurcharge:  quote.HolidaySurcharge,
		MinOrderSurcharge: quote.MinOrderSurcharge,
		Total:             quote.Total,
		Waived:            quote.Waived,
	})
}

// GetActiveOrders handles GET /api/v1/restaurants/{restaurantId}/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context, restaurantId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(restaurantId[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	query, err := queries.NewGetActiveOrdersQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	activeOrders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve active orders")
	}

	response := make([]servers.ActiveOrder, len(activeOrders))
	for i, activeOrder := range activeOrders {
		response[i] = servers.ActiveOrder{
			Id:          activeOrder.ID.Bytes(),
			Fulfillment: activeOrder.Fulfillment,
			Subtotal:    activeOrder.Subtotal,
			Status:      activeOrder.Status,
			PlacedAt:    activeOrder.PlacedAt,
			ScheduledAt: activeOrder.ScheduledAt,
			Late:        activeOrder.Late,
			Soon:        activeOrder.Soon,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := kernel.UUIDFromBytes(newOrder.RestaurantId[:])
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	fulfillment, err := order.FulfillmentFromString(string(newOrder.Fulfillment))
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment: "+err.Error())
	}

	subtotal, err := kernel.MoneyFromString(newOrder.Subtotal)
	if err != nil {
		return badRequest(ctx, "Invalid subtotal: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, restaurantID, fulfillment, subtotal, newOrder.ScheduledAt, newOrder.DistanceKm)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Restaurant not found")
		}
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
// Rejections map onto HTTP statuses by reason: forbidden_role is 403, the
// rest (terminal_state, invalid_transition, and lost concurrent updates)
// are 409 so clients can re-fetch and retry.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var statusChange servers.StatusChange
	if err := ctx.Bind(&statusChange); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	requested, err := order.StatusFromString(statusChange.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	role, err := order.RoleFromString(string(statusChange.Role))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, requested, role)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var rejection *order.TransitionError
		if errors.As(handleErr, &rejection) {
			status := http.StatusConflict
			if rejection.Reason == order.ReasonForbiddenRole {
				status = http.StatusForbidden
			}
			return ctx.JSON(status, servers.TransitionRejection{
				Reason:  servers.TransitionRejectionReason(rejection.Reason),
				Message: rejection.Error(),
			})
		}
		if errors.Is(handleErr, errs.ErrVersionIsInvalid) {
			return ctx.JSON(http.StatusConflict, servers.TransitionRejection{
				Reason:  servers.VersionConflict,
				Message: "Order was modified concurrently, re-fetch and retry",
			})
		}
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toDomainDraft maps the wire draft onto the domain draft without touching
// any values; validation happens in the domain in a single pass.
func toDomainDraft(draft servers.RuleSetDraft) pricing.RuleSetDraft {
	domainDraft := pricing.RuleSetDraft{
		Type:              string(draft.Type),
		BaseFee:           draft.BaseFee,
		PerKmFee:          stringValue(draft.PerKmFee),
		MaxDistanceKm:     stringValue(draft.MaxDistanceKm),
		FreeDeliveryAbove: stringValue(draft.FreeDeliveryAbove),
		WeekendFee:        stringValue(draft.WeekendFee),
		HolidayFee:        stringValue(draft.HolidayFee),
		Timezone:          stringValue(draft.Timezone),
	}

	if draft.PeakWindows != nil {
		domainDraft.PeakWindows = make([]pricing.PeakWindowDraft, len(*draft.PeakWindows))
		for i, window := range *draft.PeakWindows {
			domainDraft.PeakWindows[i] = pricing.PeakWindowDraft{
				Start:         window.Start,
				End:           window.End,
				AdditionalFee: window.AdditionalFee,
			}
		}
	}

	if draft.MinimumOrderSurcharge != nil {
		domainDraft.MinimumOrderSurcharge = &pricing.SurchargeDraft{
			Threshold: draft.MinimumOrderSurcharge.Threshold,
			Surcharge: draft.MinimumOrderSurcharge.Surcharge,
		}
	}

	return domainDraft
}

// toValidationErrors maps domain field errors onto the wire payload.
func toValidationErrors(validationErr *commands.FeeSettingsValidationError) servers.ValidationErrors {
	out := servers.ValidationErrors{}
	for _, fieldErr := range validationErr.FieldErrors {
		out.Errors = append(out.Errors, struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		}{
			Field:   fieldErr.Field,
			Message: fieldErr.Message,
		})
	}
	return out
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
