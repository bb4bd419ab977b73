package handlers

import (
	"errors"
	"net/http"

	request "smart_laundry/internal/adapter/http/dto/request"
	response "smart_laundry/internal/adapter/http/dto/response"
	"smart_laundry/internal/usecase"
	"smart_laundry/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidOrderPayload  = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for laundry orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create order
// @Description  Registers a new order in PENDING status, priced from the service list.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order intake"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	serviceType, err := payload.ResolveServiceType()
	if err != nil {
		appErr := mapOrderError(usecase.ErrInvalidServiceType)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.CustomerName, payload.PhoneNumber, payload.Weight, serviceType)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Success  200  {array}  response.OrderResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary  Get order
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  response.OrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), request.ResolveOrderID(c.Param("id")))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// TransitionOrder godoc
// @Summary      Change order status
// @Description  Advances the order to the next status. Entering PROCESSING or COMPLETED sends a WhatsApp notification; its outcome is reported in the notification block.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                          true  "Order id"
// @Param        status  body      request.TransitionOrderRequest  true  "New status"
// @Success      200     {object}  response.OrderNotificationResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	var payload request.TransitionOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	orderID := request.ResolveOrderID(c.Param("id"))
	res, err := h.usecase.Transition(c.Request.Context(), orderID, status)
	if err != nil {
		logrus.WithFields(logrus.Fields{"component": "order.handler", "order_id": orderID, "status": status}).
			WithError(err).Warn("transition rejected")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderNotification(res))
}

// RefreshNotification godoc
// @Summary  Refresh WhatsApp delivery status
// @Tags     orders
// @Produce  json
// @Param    id   path      string  true  "Order id"
// @Success  200  {object}  response.OrderNotificationResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /orders/{id}/notification/refresh [post]
func (h *OrderHandler) RefreshNotification(c *gin.Context) {
	res, err := h.usecase.RefreshNotificationStatus(c.Request.Context(), request.ResolveOrderID(c.Param("id")))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderNotification(res))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidWeight),
		errors.Is(err, usecase.ErrInvalidServiceType),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
