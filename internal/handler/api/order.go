package api

import (
	"errors"
	"net/http"

	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create an order referencing catalog products by id
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}
	created, err := h.cmds.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Some product was not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create order", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(created))
}

// @Summary List orders
// @Description List all orders, one customer's orders, or a single order
// @Tags orders
// @Produce json
// @Param email query string false "Customer email"
// @Param orderId query string false "Order ID (requires email)"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	email := c.Query("email")
	rawOrderID := c.Query("orderId")

	if rawOrderID != "" {
		if email == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("orderId requires email"), "Missing email", nil)
			return
		}
		orderID, err := uuid.Parse(rawOrderID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
			return
		}
		view, err := h.q.GetOne(c.Request.Context(), email, orderID)
		if err != nil {
			if errors.Is(err, queries.ErrOrderNotFound) {
				httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromOrderView(view))
		return
	}

	var (
		views []*queries.OrderView
		err   error
	)
	if email != "" {
		views, err = h.q.ListByEmail(c.Request.Context(), email)
	} else {
		views, err = h.q.List(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Delete order
// @Description Delete an order and return its last state
// @Tags orders
// @Produce json
// @Param email query string true "Customer email"
// @Param orderId query string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	email := c.Query("email")
	rawOrderID := c.Query("orderId")
	if email == "" || rawOrderID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("email and orderId are required"), "Missing email or orderId", nil)
		return
	}
	orderID, err := uuid.Parse(rawOrderID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order id", nil)
		return
	}
	removed, err := h.cmds.DeleteOrder(c.Request.Context(), email, orderID)
	if err != nil {
		if errors.Is(err, commands.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(removed))
}
