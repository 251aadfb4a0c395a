package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
)

// ErrNotFound is returned once every source has been exhausted for an ID.
// It is terminal; callers surface it as a 404 and never retry.
var ErrNotFound = errors.New("cocktail not found")

// maxSearchResults bounds the name-search response.
const maxSearchResults = 30

// writeBackTimeout bounds the fire-and-forget store write that follows a
// successful external resolution.
const writeBackTimeout = 10 * time.Second

// ResolveService turns a recipe identity into full detail, and runs
// name searches across the store and both external APIs. Resolved external
// recipes are written back to the store so the next lookup stays local.
type ResolveService struct {
	store      RecipeStore
	custom     CustomRecipes
	dataset    StaticDataset
	cocktailDB CocktailAPI
	ninja      NinjaAPI
	logger     *zap.Logger

	// wb tracks in-flight write-backs so tests can wait for them.
	wb sync.WaitGroup
}

// NewResolveService creates a ResolveService. store, custom, cocktailDB and
// ninja may be nil when unconfigured.
func NewResolveService(store RecipeStore, custom CustomRecipes, dataset StaticDataset, cocktailDB CocktailAPI, ninja NinjaAPI, logger *zap.Logger) *ResolveService {
	return &ResolveService{
		store:      store,
		custom:     custom,
		dataset:    dataset,
		cocktailDB: cocktailDB,
		ninja:      ninja,
		logger:     logger,
	}
}

// IsDetailID reports whether the value names a single recipe rather than a
// search query: numeric CocktailDB IDs and the local-/ninja-/custom-
// synthetic forms.
func IsDetailID(value string) bool {
	if strings.HasPrefix(value, model.LocalIDPrefix) ||
		strings.HasPrefix(value, model.NinjaIDPrefix) ||
		strings.HasPrefix(value, model.CustomIDPrefix) {
		return true
	}
	return isNumeric(value)
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Resolve walks the detail state machine: store hit, else route on the ID
// shape to the owning source, else not-found. A successful external
// resolution is written back to the store without delaying the response.
func (s *ResolveService) Resolve(ctx context.Context, id string) (*model.Cocktail, error) {
	if s.store != nil {
		cached, err := s.store.GetByID(ctx, id)
		if err != nil {
			s.logger.Warn("store lookup failed", zap.String("id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	// The bundled dataset carries both local- and numeric identities, so it
	// is consulted for every shape before going over the network. This keeps
	// detail lookups working with zero configured external sources.
	if found := s.dataset.FindByID(id); found != nil {
		s.writeBack(found)
		return found, nil
	}

	var (
		found *model.Cocktail
		err   error
	)
	switch {
	case strings.HasPrefix(id, model.CustomIDPrefix):
		found, err = s.resolveCustom(ctx, id)
	case isNumeric(id):
		if s.cocktailDB != nil {
			found, err = s.cocktailDB.LookupByID(ctx, id)
		}
	case strings.HasPrefix(id, model.NinjaIDPrefix):
		if s.ninja != nil {
			found, err = s.ninja.LookupByID(ctx, id)
		}
	}
	if err != nil {
		s.logger.Warn("external lookup failed", zap.String("id", id), zap.Error(err))
	}
	if found == nil {
		return nil, ErrNotFound
	}

	if !found.IsCustom() {
		s.writeBack(found)
	}
	return found, nil
}

func (s *ResolveService) resolveCustom(ctx context.Context, id string) (*model.Cocktail, error) {
	if s.custom == nil {
		return nil, nil
	}
	recipe, err := s.custom.GetByID(ctx, id)
	if err != nil || recipe == nil {
		return nil, err
	}
	cocktail := recipe.ToCocktail()
	return &cocktail, nil
}

// Search runs a free-text name search across the store and both external
// APIs concurrently. Store rows win the identity dedup; externally
// discovered recipes the store lacks are written back in the background.
func (s *ResolveService) Search(ctx context.Context, query string) ([]model.Cocktail, error) {
	var (
		storeResults []model.Cocktail
		dbResults    []model.Cocktail
		ninjaResults []model.Cocktail
	)

	var wg sync.WaitGroup
	if s.store != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := s.store.SearchByName(ctx, query, maxSearchResults)
			if err != nil {
				s.logger.Warn("store search failed", zap.String("query", query), zap.Error(err))
				return
			}
			storeResults = results
		}()
	}
	if s.cocktailDB != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := s.cocktailDB.SearchByName(ctx, query)
			if err != nil {
				s.logger.Warn("cocktaildb search failed", zap.String("query", query), zap.Error(err))
				return
			}
			dbResults = results
		}()
	}
	if s.ninja != nil && s.ninja.Enabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := s.ninja.SearchByName(ctx, query)
			if err != nil {
				s.logger.Warn("ninja search failed", zap.String("query", query), zap.Error(err))
				return
			}
			ninjaResults = results
		}()
	}
	wg.Wait()

	known := make(map[string]struct{}, len(storeResults))
	for i := range storeResults {
		known[storeResults[i].ID] = struct{}{}
	}
	for _, external := range [][]model.Cocktail{dbResults, ninjaResults} {
		for i := range external {
			if _, ok := known[external[i].ID]; ok {
				continue
			}
			s.writeBack(&external[i])
		}
	}

	merged := make([]model.Cocktail, 0, len(storeResults)+len(dbResults)+len(ninjaResults))
	merged = append(merged, storeResults...)
	merged = append(merged, dbResults...)
	merged = append(merged, ninjaResults...)

	results := DedupByID(merged)
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

// writeBack persists a resolved cocktail without blocking the response
// path. It is detached from the caller's request lifetime; a failed write
// is logged, never retried.
func (s *ResolveService) writeBack(cocktail *model.Cocktail) {
	if s.store == nil || cocktail == nil {
		return
	}
	copied := *cocktail
	s.wb.Add(1)
	go func() {
		defer s.wb.Done()
		ctx, cancel := context.WithTimeout(context.Background(), writeBackTimeout)
		defer cancel()
		if err := s.store.SaveIfAbsent(ctx, &copied); err != nil {
			s.logger.Warn("recipe write-back failed", zap.String("id", copied.ID), zap.Error(err))
		}
	}()
}

// WaitWriteBacks blocks until pending write-backs finish. Used in tests and
// during graceful shutdown.
func (s *ResolveService) WaitWriteBacks() {
	s.wb.Wait()
}
