package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"
)

// MaxIngredientSlots is the maximum number of ingredient/measure pairs a
// cocktail can carry, matching the upstream CocktailDB record layout.
const MaxIngredientSlots = 15

// ID prefixes identify which source minted a cocktail identity. CocktailDB
// identities are plain numeric strings without a prefix.
const (
	LocalIDPrefix  = "local-"
	NinjaIDPrefix  = "ninja-"
	CustomIDPrefix = "custom-"
)

// IngredientSlot is one (ingredient, measure) pair of a cocktail recipe.
// A slot is either fully populated or absent; empty-name slots are dropped
// during conversion.
type IngredientSlot struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// SlotList is an ordered list of ingredient slots stored as JSONB.
type SlotList []IngredientSlot

// Value implements the driver.Valuer interface
func (s SlotList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	if len(s) > MaxIngredientSlots {
		s = s[:MaxIngredientSlots]
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *SlotList) Scan(value interface{}) error {
	if value == nil {
		*s = SlotList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// LocalizedText holds per-locale instruction variants keyed by locale code
// (e.g. "kr", "es"). Stored as JSONB.
type LocalizedText map[string]string

// Value implements the driver.Valuer interface
func (t LocalizedText) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "{}", nil
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface
func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = LocalizedText{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, t)
}

// Cocktail is the common recipe shape every source is normalized into.
// Identity is source-specific: numeric strings from CocktailDB, prefixed
// synthetic IDs for the bundled dataset and the Ninja API, and
// custom-<timestamp> for user recipes.
type Cocktail struct {
	ID                   string        `gorm:"primaryKey;size:64" json:"idDrink"`
	Name                 string        `gorm:"size:255;not null;index" json:"strDrink"`
	Category             string        `gorm:"size:100" json:"strCategory"`
	Alcoholic            string        `gorm:"size:50" json:"strAlcoholic"`
	Glass                string        `gorm:"size:100" json:"strGlass"`
	Instructions         string        `gorm:"type:text" json:"strInstructions"`
	LocalizedInstruction LocalizedText `gorm:"type:jsonb;default:'{}'" json:"localizedInstructions,omitempty"`
	Thumbnail            string        `gorm:"size:512" json:"strDrinkThumb"`
	Tags                 string        `gorm:"size:255" json:"strTags,omitempty"`
	IBA                  string        `gorm:"size:100" json:"strIBA,omitempty"`
	ImageSource          string        `gorm:"size:255" json:"strImageSource,omitempty"`
	Ingredients          SlotList      `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	DateModified         *time.Time    `json:"dateModified,omitempty"`
	CreatedAt            time.Time     `json:"-"`
	UpdatedAt            time.Time     `json:"-"`
}

// TableName keeps the table name the original schema used.
func (Cocktail) TableName() string {
	return "cocktailrecipe"
}

// IngredientNames returns the populated ingredient names in slot order.
// Absent slots are skipped regardless of position.
func (c *Cocktail) IngredientNames() []string {
	names := make([]string, 0, len(c.Ingredients))
	for _, slot := range c.Ingredients {
		if strings.TrimSpace(slot.Name) == "" {
			continue
		}
		names = append(names, slot.Name)
	}
	return names
}

// IsCustom reports whether the cocktail is a user-authored recipe.
func (c *Cocktail) IsCustom() bool {
	return strings.HasPrefix(c.ID, CustomIDPrefix)
}

// DrinksResponse is the wire envelope shared with the upstream recipe APIs:
// a nullable list of cocktails.
type DrinksResponse struct {
	Drinks []Cocktail `json:"drinks"`
}
