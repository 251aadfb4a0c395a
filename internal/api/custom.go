package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
	"github.com/barstock/backend/internal/store"
)

// CustomRecipeManager is the slice of the custom recipe store the handler
// needs.
type CustomRecipeManager interface {
	List(ctx context.Context) ([]model.CustomRecipe, error)
	GetByID(ctx context.Context, id string) (*model.CustomRecipe, error)
	Create(ctx context.Context, recipe *model.CustomRecipe) error
	Update(ctx context.Context, recipe *model.CustomRecipe) error
	Delete(ctx context.Context, id string) error
}

type CustomRecipeHandler struct {
	recipes CustomRecipeManager
	logger  *zap.Logger
}

func NewCustomRecipeHandler(recipes CustomRecipeManager, logger *zap.Logger) *CustomRecipeHandler {
	return &CustomRecipeHandler{recipes: recipes, logger: logger}
}

func (h *CustomRecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/custom-recipes")
	{
		recipes.GET("", h.List)
		recipes.GET("/:id", h.Get)
		recipes.POST("", h.Create)
		recipes.PUT("/:id", h.Update)
		recipes.DELETE("/:id", h.Delete)
	}
}

// customRecipeRequest is the write payload. The identity is taken from the
// URL on update and minted by the store on create.
type customRecipeRequest struct {
	Name         string                 `json:"name" binding:"required"`
	NameEn       string                 `json:"nameEn"`
	Category     string                 `json:"category"`
	Glass        string                 `json:"glass"`
	Instructions string                 `json:"instructions"`
	Image        string                 `json:"image"`
	Ingredients  []model.IngredientSlot `json:"ingredients" binding:"required"`
}

func (r *customRecipeRequest) toModel() (*model.CustomRecipe, error) {
	slots := make(model.SlotList, 0, len(r.Ingredients))
	for _, slot := range r.Ingredients {
		if strings.TrimSpace(slot.Name) == "" {
			continue
		}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		return nil, errors.New("at least one ingredient is required")
	}
	return &model.CustomRecipe{
		Name:         strings.TrimSpace(r.Name),
		NameEn:       strings.TrimSpace(r.NameEn),
		Category:     r.Category,
		Glass:        r.Glass,
		Instructions: r.Instructions,
		Image:        r.Image,
		Ingredients:  slots,
	}, nil
}

func (h *CustomRecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		h.logger.Error("custom recipe list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list custom recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *CustomRecipeHandler) Get(c *gin.Context) {
	recipe, err := h.recipes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("custom recipe lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load custom recipe"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "custom recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *CustomRecipeHandler) Create(c *gin.Context) {
	var req customRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.recipes.Create(c.Request.Context(), recipe); err != nil {
		h.logger.Error("custom recipe create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create custom recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *CustomRecipeHandler) Update(c *gin.Context) {
	var req customRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe.ID = c.Param("id")

	err = h.recipes.Update(c.Request.Context(), recipe)
	if errors.Is(err, store.ErrCustomRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "custom recipe not found"})
		return
	}
	if err != nil {
		h.logger.Error("custom recipe update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update custom recipe"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *CustomRecipeHandler) Delete(c *gin.Context) {
	err := h.recipes.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrCustomRecipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "custom recipe not found"})
		return
	}
	if err != nil {
		h.logger.Error("custom recipe delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete custom recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}
