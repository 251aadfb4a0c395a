// Package client holds the outbound HTTP clients for the two external
// recipe APIs. Both degrade to empty results under the aggregator's
// source-failure policy; the error returns here exist so callers can log
// what went wrong.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
)

// DefaultCocktailDBURL is the public CocktailDB v1 endpoint.
const DefaultCocktailDBURL = "https://www.thecocktaildb.com/api/json/v1/1"

// CocktailStub is the partial record returned by the filter-by-ingredient
// endpoint: identity plus display metadata, no instructions or slots.
type CocktailStub struct {
	ID        string `json:"idDrink"`
	Name      string `json:"strDrink"`
	Thumbnail string `json:"strDrinkThumb"`
}

// CocktailDBClient talks to the primary recipe API: search by name, filter
// by ingredient, lookup by ID.
type CocktailDBClient struct {
	client *resty.Client
	logger *zap.Logger
}

// NewCocktailDBClient creates a CocktailDB client. baseURL falls back to the
// public endpoint when empty.
func NewCocktailDBClient(baseURL string, timeout time.Duration, logger *zap.Logger) *CocktailDBClient {
	if baseURL == "" {
		baseURL = DefaultCocktailDBURL
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &CocktailDBClient{
		client: client,
		logger: logger,
	}
}

// drinkDoc mirrors the upstream flat record with its fifteen numbered
// ingredient/measure fields. Slots are read through explicit fields, never
// by constructing field names.
type drinkDoc struct {
	IDDrink              string  `json:"idDrink"`
	StrDrink             string  `json:"strDrink"`
	StrCategory          string  `json:"strCategory"`
	StrAlcoholic         string  `json:"strAlcoholic"`
	StrGlass             string  `json:"strGlass"`
	StrInstructions      string  `json:"strInstructions"`
	StrInstructionsES    *string `json:"strInstructionsES"`
	StrInstructionsDE    *string `json:"strInstructionsDE"`
	StrInstructionsFR    *string `json:"strInstructionsFR"`
	StrInstructionsIT    *string `json:"strInstructionsIT"`
	StrDrinkThumb        string  `json:"strDrinkThumb"`
	StrTags              *string `json:"strTags"`
	StrIBA               *string `json:"strIBA"`
	StrImageSource       *string `json:"strImageSource"`
	StrIngredient1       *string `json:"strIngredient1"`
	StrIngredient2       *string `json:"strIngredient2"`
	StrIngredient3       *string `json:"strIngredient3"`
	StrIngredient4       *string `json:"strIngredient4"`
	StrIngredient5       *string `json:"strIngredient5"`
	StrIngredient6       *string `json:"strIngredient6"`
	StrIngredient7       *string `json:"strIngredient7"`
	StrIngredient8       *string `json:"strIngredient8"`
	StrIngredient9       *string `json:"strIngredient9"`
	StrIngredient10      *string `json:"strIngredient10"`
	StrIngredient11      *string `json:"strIngredient11"`
	StrIngredient12      *string `json:"strIngredient12"`
	StrIngredient13      *string `json:"strIngredient13"`
	StrIngredient14      *string `json:"strIngredient14"`
	StrIngredient15      *string `json:"strIngredient15"`
	StrMeasure1          *string `json:"strMeasure1"`
	StrMeasure2          *string `json:"strMeasure2"`
	StrMeasure3          *string `json:"strMeasure3"`
	StrMeasure4          *string `json:"strMeasure4"`
	StrMeasure5          *string `json:"strMeasure5"`
	StrMeasure6          *string `json:"strMeasure6"`
	StrMeasure7          *string `json:"strMeasure7"`
	StrMeasure8          *string `json:"strMeasure8"`
	StrMeasure9          *string `json:"strMeasure9"`
	StrMeasure10         *string `json:"strMeasure10"`
	StrMeasure11         *string `json:"strMeasure11"`
	StrMeasure12         *string `json:"strMeasure12"`
	StrMeasure13         *string `json:"strMeasure13"`
	StrMeasure14         *string `json:"strMeasure14"`
	StrMeasure15         *string `json:"strMeasure15"`
}

type drinksDoc struct {
	Drinks []drinkDoc `json:"drinks"`
}

type stubsDoc struct {
	Drinks []CocktailStub `json:"drinks"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toCocktail converts the upstream record into the common shape. Slot i is
// kept only when its ingredient is populated; the measure may be empty.
func (d *drinkDoc) toCocktail() model.Cocktail {
	pairs := [model.MaxIngredientSlots][2]*string{
		{d.StrIngredient1, d.StrMeasure1},
		{d.StrIngredient2, d.StrMeasure2},
		{d.StrIngredient3, d.StrMeasure3},
		{d.StrIngredient4, d.StrMeasure4},
		{d.StrIngredient5, d.StrMeasure5},
		{d.StrIngredient6, d.StrMeasure6},
		{d.StrIngredient7, d.StrMeasure7},
		{d.StrIngredient8, d.StrMeasure8},
		{d.StrIngredient9, d.StrMeasure9},
		{d.StrIngredient10, d.StrMeasure10},
		{d.StrIngredient11, d.StrMeasure11},
		{d.StrIngredient12, d.StrMeasure12},
		{d.StrIngredient13, d.StrMeasure13},
		{d.StrIngredient14, d.StrMeasure14},
		{d.StrIngredient15, d.StrMeasure15},
	}

	slots := make(model.SlotList, 0, model.MaxIngredientSlots)
	for _, pair := range pairs {
		name := deref(pair[0])
		if name == "" {
			continue
		}
		slots = append(slots, model.IngredientSlot{
			Name:    name,
			Measure: deref(pair[1]),
		})
	}

	localized := model.LocalizedText{}
	for locale, text := range map[string]*string{
		"es": d.StrInstructionsES,
		"de": d.StrInstructionsDE,
		"fr": d.StrInstructionsFR,
		"it": d.StrInstructionsIT,
	} {
		if v := deref(text); v != "" {
			localized[locale] = v
		}
	}

	return model.Cocktail{
		ID:                   d.IDDrink,
		Name:                 d.StrDrink,
		Category:             d.StrCategory,
		Alcoholic:            d.StrAlcoholic,
		Glass:                d.StrGlass,
		Instructions:         d.StrInstructions,
		LocalizedInstruction: localized,
		Thumbnail:            d.StrDrinkThumb,
		Tags:                 deref(d.StrTags),
		IBA:                  deref(d.StrIBA),
		ImageSource:          deref(d.StrImageSource),
		Ingredients:          slots,
	}
}

// SearchByName runs search.php?s=… and returns full records. A null drinks
// field means no results, not an error.
func (c *CocktailDBClient) SearchByName(ctx context.Context, name string) ([]model.Cocktail, error) {
	var doc drinksDoc
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("s", name).
		SetResult(&doc).
		Get("/search.php")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cocktaildb search: unexpected status %d", resp.StatusCode())
	}
	return docsToCocktails(doc.Drinks), nil
}

// SearchByFirstLetter runs search.php?f=… and returns full records. Used by
// the dataset harvester to walk the whole catalog a letter at a time.
func (c *CocktailDBClient) SearchByFirstLetter(ctx context.Context, letter string) ([]model.Cocktail, error) {
	var doc drinksDoc
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("f", letter).
		SetResult(&doc).
		Get("/search.php")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cocktaildb search: unexpected status %d", resp.StatusCode())
	}
	return docsToCocktails(doc.Drinks), nil
}

// FilterByIngredient runs filter.php?i=… and returns partial stubs that need
// a LookupByID pass before they carry instructions or slots.
func (c *CocktailDBClient) FilterByIngredient(ctx context.Context, ingredientName string) ([]CocktailStub, error) {
	var doc stubsDoc
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", ingredientName).
		SetResult(&doc).
		Get("/filter.php")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cocktaildb filter: unexpected status %d", resp.StatusCode())
	}
	return doc.Drinks, nil
}

// LookupByID resolves one full record via lookup.php?i=…. Returns nil when
// the ID is unknown upstream.
func (c *CocktailDBClient) LookupByID(ctx context.Context, id string) (*model.Cocktail, error) {
	var doc drinksDoc
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("i", id).
		SetResult(&doc).
		Get("/lookup.php")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("cocktaildb lookup: unexpected status %d", resp.StatusCode())
	}
	if len(doc.Drinks) == 0 {
		return nil, nil
	}
	cocktail := doc.Drinks[0].toCocktail()
	return &cocktail, nil
}

func docsToCocktails(docs []drinkDoc) []model.Cocktail {
	cocktails := make([]model.Cocktail, 0, len(docs))
	for i := range docs {
		cocktails = append(cocktails, docs[i].toCocktail())
	}
	return cocktails
}
