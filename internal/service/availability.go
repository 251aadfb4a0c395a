package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/barstock/backend/internal/client"
	"github.com/barstock/backend/internal/ingredient"
	"github.com/barstock/backend/internal/model"
)

const (
	// maxAvailableResults bounds the available-cocktails response.
	maxAvailableResults = 300
	// maxLookupBackfill bounds how many filter-result IDs get resolved to
	// full detail per request.
	maxLookupBackfill = 120
	// maxOutboundConcurrency caps parallel requests against the external
	// filter/lookup endpoints, which are rate limited.
	maxOutboundConcurrency = 8
)

// AvailabilityService answers the app's central question: which cocktails
// can be made from a given inventory. It fans out to every configured
// source, merges, dedups and filters. Any source may be absent or failing;
// the answer is built from whatever responded.
type AvailabilityService struct {
	store      RecipeStore
	custom     CustomRecipes
	dataset    StaticDataset
	cocktailDB CocktailAPI
	logger     *zap.Logger
}

// NewAvailabilityService creates an AvailabilityService. store, custom and
// cocktailDB may be nil when unconfigured; dataset and logger must not be.
func NewAvailabilityService(store RecipeStore, custom CustomRecipes, dataset StaticDataset, cocktailDB CocktailAPI, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:      store,
		custom:     custom,
		dataset:    dataset,
		cocktailDB: cocktailDB,
		logger:     logger,
	}
}

// Available returns every recipe, across all sources, whose required
// alcoholic ingredients are all owned. Non-alcoholic entries in the input
// are dropped up front; with no alcoholic ingredient the answer is empty
// without touching any source.
func (s *AvailabilityService) Available(ctx context.Context, ingredients []string) ([]model.Cocktail, error) {
	owned := make([]string, 0, len(ingredients))
	for _, name := range ingredients {
		normalized := ingredient.Normalize(name)
		if normalized == "" || !ingredient.IsAlcoholic(normalized) {
			continue
		}
		owned = append(owned, normalized)
	}
	if len(owned) == 0 {
		return []model.Cocktail{}, nil
	}

	// Independent sources, queried in parallel. Index is precedence order:
	// user recipes, then the store cache, the bundled dataset and finally
	// the external API.
	contributions := make([][]model.Cocktail, 4)
	var wg sync.WaitGroup

	if s.custom != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			recipes, err := s.custom.List(ctx)
			if err != nil {
				s.logger.Warn("custom recipes unavailable", zap.Error(err))
				return
			}
			cocktails := make([]model.Cocktail, 0, len(recipes))
			for i := range recipes {
				cocktails = append(cocktails, recipes[i].ToCocktail())
			}
			contributions[0] = cocktails
		}()
	}

	if s.store != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cached, err := s.store.List(ctx, 3000)
			if err != nil {
				s.logger.Warn("recipe store unavailable", zap.Error(err))
				return
			}
			contributions[1] = cached
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		contributions[2] = s.dataset.All()
	}()

	if s.cocktailDB != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			contributions[3] = s.fetchExternalByIngredients(ctx, owned)
		}()
	}

	wg.Wait()

	merged := make([]model.Cocktail, 0, len(contributions[2]))
	for _, list := range contributions {
		merged = append(merged, list...)
	}

	deduped := DedupByName(DedupByID(merged))

	available := make([]model.Cocktail, 0, len(deduped))
	for i := range deduped {
		if !IsMakeable(&deduped[i], owned) {
			continue
		}
		available = append(available, deduped[i])
		if len(available) == maxAvailableResults {
			break
		}
	}
	return available, nil
}

// IsMakeable reports whether every required ingredient of the cocktail is
// satisfied by the owned list. A recipe with no required alcoholic
// ingredient is never makeable; without this guard an all-mixer recipe
// would pass vacuously.
func IsMakeable(cocktail *model.Cocktail, owned []string) bool {
	required := ingredient.RequiredOwned(cocktail.IngredientNames())
	if len(required) == 0 {
		return false
	}
	for _, name := range required {
		if !ingredient.IsAvailable(name, owned) {
			return false
		}
	}
	return true
}

// DedupByID keeps the first occurrence of every identity, preserving order.
// Callers encode source precedence in the input order.
func DedupByID(cocktails []model.Cocktail) []model.Cocktail {
	seen := make(map[string]struct{}, len(cocktails))
	result := make([]model.Cocktail, 0, len(cocktails))
	for i := range cocktails {
		id := cocktails[i].ID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, cocktails[i])
	}
	return result
}

// DedupByName collapses recipes that appear under different identities with
// the same normalized display name, keeping the first occurrence.
func DedupByName(cocktails []model.Cocktail) []model.Cocktail {
	seen := make(map[string]struct{}, len(cocktails))
	result := make([]model.Cocktail, 0, len(cocktails))
	for i := range cocktails {
		key := ingredient.NormalizeName(cocktails[i].Name)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, cocktails[i])
	}
	return result
}

// CollectStubs runs the filter-by-ingredient endpoint once per owned
// ingredient and accumulates the results by identity. When the same recipe
// matches several queried ingredients its display name is annotated with
// each extra match instead of duplicating the entry. Failed queries
// contribute nothing.
func (s *AvailabilityService) CollectStubs(ctx context.Context, owned []string) []client.CocktailStub {
	var (
		mu    sync.Mutex
		byID  = make(map[string]int)
		stubs []client.CocktailStub
	)

	sem := make(chan struct{}, maxOutboundConcurrency)
	var wg sync.WaitGroup
	for _, name := range owned {
		wg.Add(1)
		go func(ingredientName string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			found, err := s.cocktailDB.FilterByIngredient(ctx, ingredientName)
			if err != nil {
				s.logger.Warn("ingredient filter failed",
					zap.String("ingredient", ingredientName),
					zap.Error(err))
				return
			}

			mu.Lock()
			defer mu.Unlock()
			for _, stub := range found {
				if stub.ID == "" {
					continue
				}
				if idx, ok := byID[stub.ID]; ok {
					stubs[idx].Name += " (" + ingredientName + ")"
					continue
				}
				byID[stub.ID] = len(stubs)
				stubs = append(stubs, stub)
			}
		}(name)
	}
	wg.Wait()
	return stubs
}

// fetchExternalByIngredients resolves filter stubs to full records via
// by-ID lookups, bounded both in count and in concurrency.
func (s *AvailabilityService) fetchExternalByIngredients(ctx context.Context, owned []string) []model.Cocktail {
	stubs := s.CollectStubs(ctx, owned)
	if len(stubs) > maxLookupBackfill {
		stubs = stubs[:maxLookupBackfill]
	}

	resolved := make([]*model.Cocktail, len(stubs))
	sem := make(chan struct{}, maxOutboundConcurrency)
	var wg sync.WaitGroup
	for i := range stubs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			cocktail, err := s.cocktailDB.LookupByID(ctx, stubs[idx].ID)
			if err != nil {
				s.logger.Warn("recipe lookup failed",
					zap.String("id", stubs[idx].ID),
					zap.Error(err))
				return
			}
			resolved[idx] = cocktail
		}(i)
	}
	wg.Wait()

	cocktails := make([]model.Cocktail, 0, len(resolved))
	for _, cocktail := range resolved {
		if cocktail != nil {
			cocktails = append(cocktails, *cocktail)
		}
	}
	return cocktails
}
