package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/barstock/backend/internal/model"
)

// ErrCustomRecipeNotFound is returned for operations on a custom recipe ID
// that does not exist.
var ErrCustomRecipeNotFound = errors.New("custom recipe not found")

// CustomRecipeStore handles user-authored recipes.
type CustomRecipeStore struct {
	db *gorm.DB
}

// NewCustomRecipeStore creates a CustomRecipeStore instance.
func NewCustomRecipeStore(db *gorm.DB) *CustomRecipeStore {
	return &CustomRecipeStore{db: db}
}

// List returns all custom recipes, oldest first.
func (s *CustomRecipeStore) List(ctx context.Context) ([]model.CustomRecipe, error) {
	var recipes []model.CustomRecipe
	err := s.db.WithContext(ctx).Order("created_at").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByID retrieves one custom recipe, or nil when absent.
func (s *CustomRecipeStore) GetByID(ctx context.Context, id string) (*model.CustomRecipe, error) {
	var recipe model.CustomRecipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

// Create stores a new recipe. A missing ID is assigned the
// custom-<unix-millis> form the web app has always used.
func (s *CustomRecipeStore) Create(ctx context.Context, recipe *model.CustomRecipe) error {
	if strings.TrimSpace(recipe.ID) == "" {
		recipe.ID = fmt.Sprintf("%s%d", model.CustomIDPrefix, time.Now().UnixMilli())
	}
	return s.db.WithContext(ctx).Create(recipe).Error
}

// Update replaces an existing recipe, keeping its identity.
func (s *CustomRecipeStore) Update(ctx context.Context, recipe *model.CustomRecipe) error {
	result := s.db.WithContext(ctx).
		Model(&model.CustomRecipe{}).
		Where("id = ?", recipe.ID).
		Select("Name", "NameEn", "Category", "Glass", "Instructions", "Image", "Ingredients").
		Updates(recipe)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomRecipeNotFound
	}
	return nil
}

// Delete removes a recipe by ID.
func (s *CustomRecipeStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.CustomRecipe{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomRecipeNotFound
	}
	return nil
}
