package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itemsvc/internal/metrics"
	"itemsvc/internal/models"
	"itemsvc/internal/service"
)

// ItemHandler handles the item CRUD requests. Every handler acquires a
// session for exactly one persistence operation via the service and
// maps the outcome to an HTTP status; store failure detail is logged
// here and never echoed to the caller.
type ItemHandler struct {
	itemService *service.ItemService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

func NewItemHandler(itemService *service.ItemService, m *metrics.Metrics, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{itemService: itemService, metrics: m, logger: logger}
}

// CreateItemInput is the create request body. The binding tags mirror
// the column constraints so bad input is rejected before any store
// access.
type CreateItemInput struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var input CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), input.Name, input.Description)
	if err != nil {
		h.renderError(c, err, "failed to create item")
		return
	}

	h.metrics.ItemsCreated.Inc()
	h.logger.Info("created item", zap.Uint("id", item.ID))
	c.JSON(http.StatusCreated, item.ToResponse())
}

// ListItems handles GET /items?skip=&limit=. Limit defaults to 100 and
// is not capped beyond what the caller asks for.
func (h *ItemHandler) ListItems(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), skip, limit)
	if err != nil {
		h.renderError(c, err, "failed to fetch items")
		return
	}

	responses := make([]models.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), uint(id))
	if err != nil {
		h.renderError(c, err, "failed to fetch item")
		return
	}

	c.JSON(http.StatusOK, item.ToResponse())
}

// DeleteItem handles DELETE /items/:id. The delete is hard; repeating
// it for the same id reports not found again.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), uint(id)); err != nil {
		h.renderError(c, err, "failed to delete item")
		return
	}

	h.metrics.ItemsDeleted.Inc()
	h.logger.Info("deleted item", zap.Uint("id", uint(id)))
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// renderError maps the service error taxonomy to HTTP statuses. Not
// found is an expected outcome and is not logged as an error; anything
// unexpected gets its detail logged and a generic body returned.
func (h *ItemHandler) renderError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	default:
		h.logger.Error(generic,
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": generic})
	}
}
