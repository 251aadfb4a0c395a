// Package store is the relational layer: the read-through recipe cache and
// the user-authored custom recipes.
package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barstock/backend/internal/model"
)

// RecipeStore persists cocktails resolved from external sources so repeat
// lookups stay local. Inserts are insert-if-absent; a cached row is never
// overwritten.
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a RecipeStore instance.
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// GetByID retrieves a cached cocktail, or nil when the ID is unknown.
func (s *RecipeStore) GetByID(ctx context.Context, id string) (*model.Cocktail, error) {
	var cocktail model.Cocktail
	err := s.db.WithContext(ctx).First(&cocktail, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cocktail, nil
}

// SearchByName runs a case-insensitive substring search over display names.
func (s *RecipeStore) SearchByName(ctx context.Context, query string, limit int) ([]model.Cocktail, error) {
	var cocktails []model.Cocktail
	like := "%" + strings.ToLower(query) + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		Limit(limit).
		Find(&cocktails).Error
	if err != nil {
		return nil, err
	}
	return cocktails, nil
}

// List returns up to limit cached cocktails.
func (s *RecipeStore) List(ctx context.Context, limit int) ([]model.Cocktail, error) {
	var cocktails []model.Cocktail
	err := s.db.WithContext(ctx).Limit(limit).Find(&cocktails).Error
	if err != nil {
		return nil, err
	}
	return cocktails, nil
}

// SaveIfAbsent inserts a cocktail unless a row with the same ID already
// exists. Existing rows win; the incoming record is discarded.
func (s *RecipeStore) SaveIfAbsent(ctx context.Context, cocktail *model.Cocktail) error {
	if cocktail == nil || strings.TrimSpace(cocktail.ID) == "" {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(cocktail).Error
}
