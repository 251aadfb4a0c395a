package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/client"
	"github.com/barstock/backend/internal/dataset"
	"github.com/barstock/backend/internal/model"
)

// fakeStore is an in-memory RecipeStore.
type fakeStore struct {
	mu       sync.Mutex
	recipes  map[string]model.Cocktail
	order    []string
	failAll  bool
	failSave bool
}

func newFakeStore(recipes ...model.Cocktail) *fakeStore {
	s := &fakeStore{recipes: make(map[string]model.Cocktail)}
	for _, recipe := range recipes {
		s.recipes[recipe.ID] = recipe
		s.order = append(s.order, recipe.ID)
	}
	return s
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*model.Cocktail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store down")
	}
	if recipe, ok := s.recipes[id]; ok {
		return &recipe, nil
	}
	return nil, nil
}

func (s *fakeStore) SearchByName(_ context.Context, query string, limit int) ([]model.Cocktail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store down")
	}
	var results []model.Cocktail
	for _, id := range s.order {
		recipe := s.recipes[id]
		if len(results) < limit && containsFold(recipe.Name, query) {
			results = append(results, recipe)
		}
	}
	return results, nil
}

func (s *fakeStore) List(_ context.Context, limit int) ([]model.Cocktail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store down")
	}
	var results []model.Cocktail
	for _, id := range s.order {
		if len(results) == limit {
			break
		}
		results = append(results, s.recipes[id])
	}
	return results, nil
}

func (s *fakeStore) SaveIfAbsent(_ context.Context, cocktail *model.Cocktail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll || s.failSave {
		return errors.New("store down")
	}
	if _, ok := s.recipes[cocktail.ID]; ok {
		return nil
	}
	s.recipes[cocktail.ID] = *cocktail
	s.order = append(s.order, cocktail.ID)
	return nil
}

// fakeCustom is an in-memory CustomRecipes source.
type fakeCustom struct {
	recipes []model.CustomRecipe
	fail    bool
}

func (c *fakeCustom) List(context.Context) ([]model.CustomRecipe, error) {
	if c.fail {
		return nil, errors.New("custom store down")
	}
	return c.recipes, nil
}

func (c *fakeCustom) GetByID(_ context.Context, id string) (*model.CustomRecipe, error) {
	if c.fail {
		return nil, errors.New("custom store down")
	}
	for i := range c.recipes {
		if c.recipes[i].ID == id {
			return &c.recipes[i], nil
		}
	}
	return nil, nil
}

// fakeCocktailAPI is a canned CocktailAPI.
type fakeCocktailAPI struct {
	searchResults []model.Cocktail
	filterResults map[string][]client.CocktailStub
	lookupResults map[string]model.Cocktail
	fail          bool
}

func (a *fakeCocktailAPI) SearchByName(context.Context, string) ([]model.Cocktail, error) {
	if a.fail {
		return nil, errors.New("api down")
	}
	return a.searchResults, nil
}

func (a *fakeCocktailAPI) FilterByIngredient(_ context.Context, name string) ([]client.CocktailStub, error) {
	if a.fail {
		return nil, errors.New("api down")
	}
	return a.filterResults[name], nil
}

func (a *fakeCocktailAPI) LookupByID(_ context.Context, id string) (*model.Cocktail, error) {
	if a.fail {
		return nil, errors.New("api down")
	}
	if cocktail, ok := a.lookupResults[id]; ok {
		return &cocktail, nil
	}
	return nil, nil
}

// fakeNinja is a canned NinjaAPI.
type fakeNinja struct {
	results []model.Cocktail
	enabled bool
	fail    bool
}

func (n *fakeNinja) Enabled() bool { return n.enabled }

func (n *fakeNinja) SearchByName(context.Context, string) ([]model.Cocktail, error) {
	if n.fail {
		return nil, errors.New("ninja down")
	}
	return n.results, nil
}

func (n *fakeNinja) LookupByID(_ context.Context, id string) (*model.Cocktail, error) {
	if n.fail {
		return nil, errors.New("ninja down")
	}
	for i := range n.results {
		if n.results[i].ID == id {
			return &n.results[i], nil
		}
	}
	return nil, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func drink(id, name string, ingredients ...string) model.Cocktail {
	slots := make(model.SlotList, 0, len(ingredients))
	for _, ing := range ingredients {
		slots = append(slots, model.IngredientSlot{Name: ing})
	}
	return model.Cocktail{ID: id, Name: name, Ingredients: slots}
}

func TestAvailableBasicScenarios(t *testing.T) {
	d := dataset.New([]model.Cocktail{
		drink("local-1", "Vodka Soda", "vodka", "lime", "soda water"),
		drink("local-2", "Screwdriver", "vodka", "orange juice"),
		drink("local-3", "Daiquiri", "white rum", "lime", "sugar"),
		drink("local-4", "Ice Water", "water", "ice"),
	})
	s := NewAvailabilityService(nil, nil, d, nil, zap.NewNop())

	// Vodka satisfies vodka recipes; lime and soda are ignored.
	available, err := s.Available(context.Background(), []string{"vodka"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"local-1", "local-2"}, ids(available))

	// Gin does not satisfy a vodka recipe.
	available, err = s.Available(context.Background(), []string{"gin"})
	require.NoError(t, err)
	assert.Empty(t, available)

	// Alias group: owning rum covers white rum.
	available, err = s.Available(context.Background(), []string{"rum"})
	require.NoError(t, err)
	assert.Equal(t, []string{"local-3"}, ids(available))

	// A recipe of only ignorable ingredients is never available.
	available, err = s.Available(context.Background(), []string{"vodka", "rum", "gin", "whiskey"})
	require.NoError(t, err)
	assert.NotContains(t, ids(available), "local-4")
}

func TestAvailableRequiresAlcoholicInventory(t *testing.T) {
	d := dataset.New([]model.Cocktail{drink("local-1", "Vodka Soda", "vodka", "soda water")})
	api := &fakeCocktailAPI{fail: true}
	s := NewAvailabilityService(nil, nil, d, api, zap.NewNop())

	// Only non-alcoholic names: no source is consulted, empty result.
	available, err := s.Available(context.Background(), []string{"lime", "ice", ""})
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestAvailableNameDedupAcrossSources(t *testing.T) {
	// The same drink under different identities in the store and dataset.
	store := newFakeStore(drink("11007", "Margarita", "tequila", "triple sec", "lime"))
	d := dataset.New([]model.Cocktail{
		drink("local-9", "Margarita!", "tequila", "triple sec", "lime juice"),
	})
	s := NewAvailabilityService(store, nil, d, nil, zap.NewNop())

	available, err := s.Available(context.Background(), []string{"tequila", "triple sec"})
	require.NoError(t, err)
	require.Len(t, available, 1)
	// Store precedence: the cached identity wins.
	assert.Equal(t, "11007", available[0].ID)
}

func TestAvailableSurvivesFailingSources(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	custom := &fakeCustom{fail: true}
	d := dataset.New([]model.Cocktail{drink("local-1", "Vodka Soda", "vodka", "soda water")})
	api := &fakeCocktailAPI{fail: true}
	s := NewAvailabilityService(store, custom, d, api, zap.NewNop())

	available, err := s.Available(context.Background(), []string{"vodka"})
	require.NoError(t, err)
	assert.Equal(t, []string{"local-1"}, ids(available))
}

func TestAvailableIncludesCustomRecipes(t *testing.T) {
	custom := &fakeCustom{recipes: []model.CustomRecipe{{
		ID:     "custom-1700000000000",
		Name:   "홈 다이키리",
		NameEn: "Home Daiquiri",
		Ingredients: model.SlotList{
			{Name: "white rum", Measure: "2 oz"},
			{Name: "lime juice", Measure: "1 oz"},
		},
	}}}
	s := NewAvailabilityService(nil, custom, dataset.Empty(), nil, zap.NewNop())

	available, err := s.Available(context.Background(), []string{"white rum"})
	require.NoError(t, err)
	assert.Equal(t, []string{"custom-1700000000000"}, ids(available))
}

func TestAvailableExternalBackfill(t *testing.T) {
	api := &fakeCocktailAPI{
		filterResults: map[string][]client.CocktailStub{
			"vodka": {{ID: "12345", Name: "Moscow Mule"}},
		},
		lookupResults: map[string]model.Cocktail{
			"12345": drink("12345", "Moscow Mule", "vodka", "ginger beer", "lime"),
		},
	}
	s := NewAvailabilityService(nil, nil, dataset.Empty(), api, zap.NewNop())

	available, err := s.Available(context.Background(), []string{"vodka"})
	require.NoError(t, err)
	assert.Equal(t, []string{"12345"}, ids(available))
	require.Len(t, available[0].Ingredients, 3)
}

func TestCollectStubsAnnotatesMultiMatches(t *testing.T) {
	api := &fakeCocktailAPI{
		filterResults: map[string][]client.CocktailStub{
			"vodka":  {{ID: "1", Name: "Long Island"}, {ID: "2", Name: "Screwdriver"}},
			"rum":    {{ID: "1", Name: "Long Island"}},
			"brandy": nil,
		},
	}
	s := NewAvailabilityService(nil, nil, dataset.Empty(), api, zap.NewNop())

	stubs := s.CollectStubs(context.Background(), []string{"vodka", "rum", "brandy"})
	require.Len(t, stubs, 2)
	byID := map[string]string{}
	for _, stub := range stubs {
		byID[stub.ID] = stub.Name
	}
	assert.Contains(t, byID["1"], "Long Island")
	assert.Contains(t, byID["1"], "(")
	assert.Equal(t, "Screwdriver", byID["2"])
}

func TestDedupByIDIdempotent(t *testing.T) {
	recipes := []model.Cocktail{
		drink("1", "One"),
		drink("2", "Two"),
	}
	merged := append(append([]model.Cocktail{}, recipes...), recipes...)
	deduped := DedupByID(merged)
	assert.Equal(t, ids(recipes), ids(deduped))

	// Deduping again changes nothing.
	assert.Equal(t, ids(deduped), ids(DedupByID(deduped)))
}

func TestIsMakeableEmptyRequiredNeverAvailable(t *testing.T) {
	iceWater := drink("local-0", "Ice Water", "water", "ice")
	assert.False(t, IsMakeable(&iceWater, []string{"vodka", "rum", "gin"}))

	empty := drink("local-00", "Nothing")
	assert.False(t, IsMakeable(&empty, []string{"vodka"}))
}

func ids(cocktails []model.Cocktail) []string {
	result := make([]string, 0, len(cocktails))
	for i := range cocktails {
		result = append(result, cocktails[i].ID)
	}
	return result
}
