package order

import (
	"net/http"
	"strconv"

	"gymslot/internal/api"
	"gymslot/internal/apperr"
	"gymslot/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) respondErr(c *gin.Context, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}
	c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Error: err.Error()})
}

// CreateOrder godoc
// @Summary      Create order
// @Description  Places an order against a slot, reserving one unit of its capacity. Server assigns order id, time and status.
// @Tags         order
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Order data"
// @Success      201      {object}  Order
// @Failure      400      {object}  api.ErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /order/create_order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	principalID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Customer not authenticated"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ord, err := h.service.CreateOrder(c.Request.Context(), principalID, req)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, ord)
}

// UpdateOrderStatus godoc
// @Summary      Update order status
// @Description  Moves the order to a new status. Leaving a capacity-holding status for Cancelled releases the slot capacity.
// @Tags         order
// @Security     BearerAuth
// @Produce      json
// @Param        orderID     path      int     true  "Order ID"
// @Param        new_status  query     string  true  "Target status"
// @Success      200         {object}  api.MessageResponse
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /order/update_order_status/{orderID} [put]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	principalID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Customer not authenticated"})
		return
	}

	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid order ID"})
		return
	}

	newStatus := c.Query("new_status")
	if newStatus == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "new_status query param is required"})
		return
	}

	if _, err := h.service.UpdateOrderStatus(c.Request.Context(), principalID, orderID, newStatus); err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Order status updated to " + newStatus})
}

// CancelOrder godoc
// @Summary      Cancel order
// @Description  Cancels the order, restoring slot capacity if it was held. Idempotent.
// @Tags         order
// @Security     BearerAuth
// @Produce      json
// @Param        orderID  path      int  true  "Order ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /order/cancel_order/{orderID} [put]
func (h *Handler) CancelOrder(c *gin.Context) {
	principalID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Customer not authenticated"})
		return
	}

	orderID, err := strconv.Atoi(c.Param("orderID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid order ID"})
		return
	}

	if err := h.service.CancelOrder(c.Request.Context(), principalID, orderID); err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Order cancelled"})
}

// ListMyOrders godoc
// @Summary      List my orders
// @Tags         order
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Order
// @Failure      500  {object}  api.ErrorResponse
// @Router       /order/my_orders [get]
func (h *Handler) ListMyOrders(c *gin.Context) {
	principalID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Customer not authenticated"})
		return
	}

	orders, err := h.service.ListCustomerOrders(c.Request.Context(), principalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListGymOrders godoc
// @Summary      List orders for a gym
// @Description  Returns all orders placed against a gym the vendor owns.
// @Tags         order
// @Security     BearerAuth
// @Produce      json
// @Param        gymID  path      int  true  "Gym ID"
// @Success      200    {array}   OrderWithDetails
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /gym/{gymID}/orders [get]
func (h *Handler) ListGymOrders(c *gin.Context) {
	vendorID, exists := auth.GetPrincipalID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Vendor not authenticated"})
		return
	}

	gymID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	orders, err := h.service.ListGymOrders(c.Request.Context(), vendorID, gymID)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
