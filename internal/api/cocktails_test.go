package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
	"github.com/barstock/backend/internal/service"
)

type fakeAvailability struct {
	drinks   []model.Cocktail
	err      error
	gotOwned []string
}

func (f *fakeAvailability) Available(_ context.Context, ingredients []string) ([]model.Cocktail, error) {
	f.gotOwned = ingredients
	if f.err != nil {
		return nil, f.err
	}
	if f.drinks == nil {
		return []model.Cocktail{}, nil
	}
	return f.drinks, nil
}

type fakeResolver struct {
	byID     map[string]model.Cocktail
	searched []model.Cocktail
	err      error
	gotQuery string
}

func (f *fakeResolver) Resolve(_ context.Context, id string) (*model.Cocktail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if cocktail, ok := f.byID[id]; ok {
		return &cocktail, nil
	}
	return nil, service.ErrNotFound
}

func (f *fakeResolver) Search(_ context.Context, query string) ([]model.Cocktail, error) {
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.searched, nil
}

type fakeOwned struct {
	names []string
	err   error
}

func (f *fakeOwned) OwnedNames(context.Context) ([]string, error) {
	return f.names, f.err
}

func setupCocktailRouter(availability *fakeAvailability, resolver *fakeResolver, owned *fakeOwned) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCocktailHandler(availability, resolver, owned, zap.NewNop())
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func decodeDrinks(t *testing.T, body []byte) model.DrinksResponse {
	t.Helper()
	var response model.DrinksResponse
	require.NoError(t, json.Unmarshal(body, &response))
	return response
}

func TestAvailableEndpointParsesIngredients(t *testing.T) {
	availability := &fakeAvailability{drinks: []model.Cocktail{{ID: "11007", Name: "Margarita"}}}
	router := setupCocktailRouter(availability, &fakeResolver{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/available?ingredients=vodka,%20lime%20,,gin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"vodka", "lime", "gin"}, availability.gotOwned)
	response := decodeDrinks(t, w.Body.Bytes())
	require.Len(t, response.Drinks, 1)
	assert.Equal(t, "Margarita", response.Drinks[0].Name)
}

func TestAvailableEndpointEmptyQueryIsOK(t *testing.T) {
	availability := &fakeAvailability{}
	router := setupCocktailRouter(availability, &fakeResolver{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/available?ingredients=", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"drinks":[]}`, w.Body.String())
}

func TestAvailableEndpointFallsBackToInventory(t *testing.T) {
	availability := &fakeAvailability{}
	owned := &fakeOwned{names: []string{"Gin", "Campari"}}
	router := setupCocktailRouter(availability, &fakeResolver{}, owned)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/available", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []string{"Gin", "Campari"}, availability.gotOwned)
}

func TestSearchEndpointDetailID(t *testing.T) {
	resolver := &fakeResolver{byID: map[string]model.Cocktail{
		"11007": {ID: "11007", Name: "Margarita", Ingredients: model.SlotList{
			{Name: "Tequila", Measure: "4.5 cl"},
		}},
	}}
	router := setupCocktailRouter(&fakeAvailability{}, resolver, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/11007", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	response := decodeDrinks(t, w.Body.Bytes())
	require.Len(t, response.Drinks, 1)
	assert.Equal(t, "11007", response.Drinks[0].ID)
	// Metric measures are converted for display.
	assert.Equal(t, "2 oz (45 ml)", response.Drinks[0].Ingredients[0].Measure)
}

func TestSearchEndpointDetailNotFound(t *testing.T) {
	router := setupCocktailRouter(&fakeAvailability{}, &fakeResolver{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/99999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}

func TestSearchEndpointFreeText(t *testing.T) {
	resolver := &fakeResolver{searched: []model.Cocktail{
		{ID: "11000", Name: "Mojito"},
		{ID: "11001", Name: "Dirty Mojito"},
	}}
	router := setupCocktailRouter(&fakeAvailability{}, resolver, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/mojito", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "mojito", resolver.gotQuery)
	response := decodeDrinks(t, w.Body.Bytes())
	assert.Len(t, response.Drinks, 2)
}

func TestSearchEndpointFailure(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("all sources down")}
	router := setupCocktailRouter(&fakeAvailability{}, resolver, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/search/mojito", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
}
