package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
	"github.com/barstock/backend/internal/service"
)

// InventoryManager is the slice of the inventory service the handler needs.
type InventoryManager interface {
	List(ctx context.Context) ([]model.InventoryItem, error)
	Add(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type InventoryHandler struct {
	inventory InventoryManager
	logger    *zap.Logger
}

func NewInventoryHandler(inventory InventoryManager, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventory: inventory, logger: logger}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("", h.List)
		inventory.POST("", h.Add)
		inventory.DELETE("", h.Clear)
		inventory.DELETE("/:id", h.Remove)
		inventory.GET("/catalog", h.Catalog)
	}
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		h.logger.Error("inventory list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *InventoryHandler) Add(c *gin.Context) {
	var item model.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.inventory.Add(c.Request.Context(), item)
	if errors.Is(err, service.ErrInventoryUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory storage unavailable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, added)
}

func (h *InventoryHandler) Remove(c *gin.Context) {
	if err := h.inventory.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory storage unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) Clear(c *gin.Context) {
	if err := h.inventory.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory storage unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ingredients": Catalog()})
}
