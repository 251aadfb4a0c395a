package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
	"github.com/barstock/backend/internal/service"
)

// AvailabilityLister is the slice of the availability service the handler
// needs.
type AvailabilityLister interface {
	Available(ctx context.Context, ingredients []string) ([]model.Cocktail, error)
}

// Resolver covers detail lookups and free-text search.
type Resolver interface {
	Resolve(ctx context.Context, id string) (*model.Cocktail, error)
	Search(ctx context.Context, query string) ([]model.Cocktail, error)
}

// OwnedNamesLister supplies the stored inventory when the caller does not
// pass ingredients explicitly.
type OwnedNamesLister interface {
	OwnedNames(ctx context.Context) ([]string, error)
}

type CocktailHandler struct {
	availability AvailabilityLister
	resolver     Resolver
	inventory    OwnedNamesLister
	logger       *zap.Logger
}

func NewCocktailHandler(availability AvailabilityLister, resolver Resolver, inventory OwnedNamesLister, logger *zap.Logger) *CocktailHandler {
	return &CocktailHandler{
		availability: availability,
		resolver:     resolver,
		inventory:    inventory,
		logger:       logger,
	}
}

func (h *CocktailHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/available", h.Available)
	router.GET("/search/:query", h.Search)
}

// Available returns every recipe makeable from the given ingredients.
// Ingredients come from the comma-separated query parameter; when it is
// absent the stored inventory is used instead.
func (h *CocktailHandler) Available(c *gin.Context) {
	var owned []string
	if raw, ok := c.GetQuery("ingredients"); ok {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				owned = append(owned, trimmed)
			}
		}
	} else if h.inventory != nil {
		names, err := h.inventory.OwnedNames(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory unavailable"})
			return
		}
		owned = names
	}

	drinks, err := h.availability.Available(c.Request.Context(), owned)
	if err != nil {
		h.logger.Error("availability query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list available cocktails"})
		return
	}
	c.JSON(http.StatusOK, model.DrinksResponse{Drinks: drinks})
}

// Search serves both detail lookups and name searches from one route: a
// value shaped like a recipe identity resolves a single record, anything
// else runs a free-text search.
func (h *CocktailHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	if service.IsDetailID(query) {
		found, err := h.resolver.Resolve(c.Request.Context(), query)
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cocktail not found"})
			return
		}
		if err != nil {
			h.logger.Error("detail lookup failed", zap.String("id", query), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve cocktail"})
			return
		}
		detail := *found
		NormalizeMeasures(&detail)
		c.JSON(http.StatusOK, model.DrinksResponse{Drinks: []model.Cocktail{detail}})
		return
	}

	drinks, err := h.resolver.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, model.DrinksResponse{Drinks: drinks})
}
