package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barstock/backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Cocktail{}, &model.CustomRecipe{}))
	return db
}

func TestRecipeStoreSaveAndGet(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()

	cocktail := &model.Cocktail{
		ID:           "11007",
		Name:         "Margarita",
		Category:     "Ordinary Drink",
		Instructions: "Shake with ice.",
		Ingredients: model.SlotList{
			{Name: "Tequila", Measure: "1 1/2 oz"},
			{Name: "Triple sec", Measure: "1/2 oz"},
		},
	}
	require.NoError(t, s.SaveIfAbsent(ctx, cocktail))

	got, err := s.GetByID(ctx, "11007")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Margarita", got.Name)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "Tequila", got.Ingredients[0].Name)
}

func TestRecipeStoreGetMissing(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))

	got, err := s.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeStoreSaveIfAbsentKeepsFirst(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SaveIfAbsent(ctx, &model.Cocktail{ID: "11007", Name: "Margarita"}))
	require.NoError(t, s.SaveIfAbsent(ctx, &model.Cocktail{ID: "11007", Name: "Impostor"}))

	got, err := s.GetByID(ctx, "11007")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Margarita", got.Name)
}

func TestRecipeStoreSaveIfAbsentSkipsBlankID(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SaveIfAbsent(ctx, &model.Cocktail{ID: "  ", Name: "Ghost"}))
	list, err := s.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecipeStoreSearchByName(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.SaveIfAbsent(ctx, &model.Cocktail{ID: "11007", Name: "Margarita"}))
	require.NoError(t, s.SaveIfAbsent(ctx, &model.Cocktail{ID: "11118", Name: "Blue Margarita"}))
	require.NoError(t, s.SaveIfAbsent(ctx, &model.Cocktail{ID: "11000", Name: "Mojito"}))

	results, err := s.SearchByName(ctx, "MARGARITA", 30)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = s.SearchByName(ctx, "margarita", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestCustomRecipeCRUD(t *testing.T) {
	s := NewCustomRecipeStore(setupTestDB(t))
	ctx := context.Background()

	recipe := &model.CustomRecipe{
		Name:         "우리집 하이볼",
		NameEn:       "House Highball",
		Category:     "Ordinary Drink",
		Glass:        "Highball glass",
		Instructions: "Build over ice.",
		Ingredients: model.SlotList{
			{Name: "whiskey", Measure: "2 oz"},
			{Name: "soda water", Measure: "4 oz"},
		},
	}
	require.NoError(t, s.Create(ctx, recipe))
	assert.Contains(t, recipe.ID, model.CustomIDPrefix)

	got, err := s.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "House Highball", got.NameEn)

	got.Instructions = "Build over plenty of ice."
	require.NoError(t, s.Update(ctx, got))

	updated, err := s.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build over plenty of ice.", updated.Instructions)
	assert.Equal(t, recipe.ID, updated.ID)

	require.NoError(t, s.Delete(ctx, recipe.ID))
	gone, err := s.GetByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCustomRecipeUpdateMissing(t *testing.T) {
	s := NewCustomRecipeStore(setupTestDB(t))

	err := s.Update(context.Background(), &model.CustomRecipe{ID: "custom-0", Name: "ghost"})
	assert.ErrorIs(t, err, ErrCustomRecipeNotFound)

	err = s.Delete(context.Background(), "custom-0")
	assert.ErrorIs(t, err, ErrCustomRecipeNotFound)
}

func TestCustomRecipeToCocktail(t *testing.T) {
	recipe := model.CustomRecipe{
		ID:     "custom-1700000000000",
		Name:   "우리집 하이볼",
		NameEn: "House Highball",
		Ingredients: model.SlotList{
			{Name: "whiskey", Measure: "2 oz"},
		},
	}
	cocktail := recipe.ToCocktail()
	assert.Equal(t, recipe.ID, cocktail.ID)
	assert.Equal(t, "House Highball", cocktail.Name)
	assert.True(t, cocktail.IsCustom())
	assert.Equal(t, []string{"whiskey"}, cocktail.IngredientNames())
}
