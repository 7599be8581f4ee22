package api

import (
	"errors"
	"net/http"

	reqdto "ecommerce-api/internal/handler/dto/request"
	resdto "ecommerce-api/internal/handler/dto/response"
	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary List products
// @Description List all catalog products
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} map[string]string
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Get product
// @Description Get a catalog product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Create product
// @Description Create a new catalog product
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.ProductRequest true "Create product request"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput(), originFrom(c))
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create product", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProduct(created))
}

// @Summary Update product
// @Description Replace a catalog product by ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Update product request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	updated, err := h.cmds.Update(c.Request.Context(), id, req.ToInput(), originFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update product", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(updated))
}

// @Summary Delete product
// @Description Delete a catalog product and return its last state
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	removed, err := h.cmds.Delete(c.Request.Context(), id, originFrom(c))
	if err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(removed))
}

// originFrom identifies the acting request for the audit trail. The email
// is whatever the caller asserts; there is no authentication layer.
func originFrom(c *gin.Context) commands.Origin {
	return commands.Origin{
		Email:     c.GetHeader("X-User-Email"),
		RequestID: middleware.GetRequestID(c),
	}
}
