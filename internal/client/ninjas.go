package client

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
)

// DefaultNinjaURL is the API Ninjas v1 endpoint.
const DefaultNinjaURL = "https://api.api-ninjas.com/v1"

// ninjaThumbnail is the stock image assigned to Ninja-sourced recipes, which
// carry no imagery of their own.
const ninjaThumbnail = "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&w=800&q=80"

var (
	leadingQuantity = regexp.MustCompile(`^\d+(?:[./]\d+)?\s*`)
	leadingUnit     = regexp.MustCompile(`^(oz|ml|cl|cup|cups|tbsp|tsp|dash|dashes|part|parts|slice|slices|leaf|leaves|piece|pieces)\s+`)
	slugInvalid     = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces      = regexp.MustCompile(`\s+`)
	slugDashes      = regexp.MustCompile(`-+`)
)

// NinjaClient talks to the secondary, keyword-gated recipe API. It only
// supports name search; identities are synthesized locally so repeated
// fetches of the same recipe stay cacheable.
type NinjaClient struct {
	client *resty.Client
	apiKey string
	logger *zap.Logger
}

// NewNinjaClient creates an API Ninjas client. With an empty key the client
// is disabled and contributes nothing.
func NewNinjaClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *NinjaClient {
	if baseURL == "" {
		baseURL = DefaultNinjaURL
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &NinjaClient{
		client: client,
		apiKey: apiKey,
		logger: logger,
	}
}

// Enabled reports whether an API key is configured.
func (c *NinjaClient) Enabled() bool {
	return c.apiKey != ""
}

type ninjaRecipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// SearchByName queries /cocktail?name=… and maps the results into the
// common shape. Records missing a name, ingredients or instructions are
// skipped.
func (c *NinjaClient) SearchByName(ctx context.Context, name string) ([]model.Cocktail, error) {
	if !c.Enabled() {
		return nil, nil
	}

	var recipes []ninjaRecipe
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", c.apiKey).
		SetQueryParam("name", name).
		SetResult(&recipes).
		Get("/cocktail")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ninja search: unexpected status %d", resp.StatusCode())
	}

	cocktails := make([]model.Cocktail, 0, len(recipes))
	for _, recipe := range recipes {
		if cocktail := recipe.toCocktail(); cocktail != nil {
			cocktails = append(cocktails, *cocktail)
		}
	}
	return cocktails, nil
}

// LookupByID resolves a ninja- identity by inferring the recipe name from
// the slug, re-running the name search and matching on the recomputed
// synthetic ID. Falls back to the first hit when the exact ID is gone
// upstream (the fingerprint shifts when the source edits ingredients).
func (c *NinjaClient) LookupByID(ctx context.Context, id string) (*model.Cocktail, error) {
	if !c.Enabled() || !strings.HasPrefix(id, model.NinjaIDPrefix) {
		return nil, nil
	}

	name := InferNinjaName(id)
	if name == "" {
		return nil, nil
	}

	candidates, err := c.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if candidates[i].ID == id {
			return &candidates[i], nil
		}
	}
	if len(candidates) > 0 {
		return &candidates[0], nil
	}
	return nil, nil
}

func (r *ninjaRecipe) toCocktail() *model.Cocktail {
	name := strings.TrimSpace(r.Name)
	instructions := strings.TrimSpace(r.Instructions)
	if name == "" || instructions == "" {
		return nil
	}

	ingredients := make([]string, 0, len(r.Ingredients))
	for _, raw := range r.Ingredients {
		if cleaned := ExtractIngredientName(raw); cleaned != "" {
			ingredients = append(ingredients, cleaned)
		}
	}
	if len(ingredients) == 0 {
		return nil
	}

	slots := make(model.SlotList, 0, len(ingredients))
	for i, ingredientName := range ingredients {
		if i == model.MaxIngredientSlots {
			break
		}
		slots = append(slots, model.IngredientSlot{Name: ingredientName})
	}

	return &model.Cocktail{
		ID:           BuildNinjaID(name, ingredients),
		Name:         name,
		Category:     "API Ninjas",
		Alcoholic:    "Alcoholic",
		Glass:        "Cocktail glass",
		Instructions: instructions,
		Thumbnail:    ninjaThumbnail,
		Tags:         "api-ninjas",
		ImageSource:  "API Ninjas",
		Ingredients:  slots,
	}
}

// ExtractIngredientName strips a leading quantity ("1", "1/2", "0.5") and a
// leading unit word from a raw ingredient string, lowercased and trimmed.
func ExtractIngredientName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = leadingQuantity.ReplaceAllString(s, "")
	s = leadingUnit.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Slugify lowercases, drops everything outside [a-z0-9 -] and joins words
// with single dashes.
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugDashes.ReplaceAllString(s, "-")
}

// StableHash is the 32-bit rolling hash used in the synthetic ID
// fingerprint: h = h*31 + c over UTF-16 code-unit-equivalent runes, wrapped
// to 32 bits, absolute value, base-36. Collisions are tolerated; a clash
// only means an occasional wrong cache hit, never corruption.
func StableHash(value string) string {
	var h int32
	for _, r := range value {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

// BuildNinjaID derives the deterministic identity for a Ninja-sourced
// recipe from its name and cleaned ingredient list.
func BuildNinjaID(name string, ingredients []string) string {
	fingerprint := name + "|" + strings.Join(ingredients, "|")
	return model.NinjaIDPrefix + Slugify(name) + "-" + StableHash(fingerprint)
}

// InferNinjaName recovers the display name from a ninja- identity by
// dropping the trailing hash segment and de-slugging the rest.
func InferNinjaName(id string) string {
	withoutPrefix := strings.TrimPrefix(id, model.NinjaIDPrefix)
	idx := strings.LastIndex(withoutPrefix, "-")
	slugName := withoutPrefix
	if idx >= 0 {
		slugName = withoutPrefix[:idx]
	}
	return strings.TrimSpace(strings.ReplaceAll(slugName, "-", " "))
}
