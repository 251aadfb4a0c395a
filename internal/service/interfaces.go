package service

import (
	"context"

	"github.com/barstock/backend/internal/client"
	"github.com/barstock/backend/internal/model"
)

// RecipeStore is the cache of previously resolved cocktails. A nil store is
// a configuration-absence case: the source simply contributes nothing.
type RecipeStore interface {
	GetByID(ctx context.Context, id string) (*model.Cocktail, error)
	SearchByName(ctx context.Context, query string, limit int) ([]model.Cocktail, error)
	List(ctx context.Context, limit int) ([]model.Cocktail, error)
	SaveIfAbsent(ctx context.Context, cocktail *model.Cocktail) error
}

// CustomRecipes exposes user-authored recipes to the aggregator.
type CustomRecipes interface {
	List(ctx context.Context) ([]model.CustomRecipe, error)
	GetByID(ctx context.Context, id string) (*model.CustomRecipe, error)
}

// StaticDataset is the bundled recipe list.
type StaticDataset interface {
	All() []model.Cocktail
	FindByID(id string) *model.Cocktail
}

// CocktailAPI is the primary external recipe API.
type CocktailAPI interface {
	SearchByName(ctx context.Context, name string) ([]model.Cocktail, error)
	FilterByIngredient(ctx context.Context, ingredientName string) ([]client.CocktailStub, error)
	LookupByID(ctx context.Context, id string) (*model.Cocktail, error)
}

// NinjaAPI is the secondary, keyword-gated external recipe API.
type NinjaAPI interface {
	Enabled() bool
	SearchByName(ctx context.Context, name string) ([]model.Cocktail, error)
	LookupByID(ctx context.Context, id string) (*model.Cocktail, error)
}
