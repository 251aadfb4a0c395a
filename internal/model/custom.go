package model

import "time"

// CustomRecipe is a user-authored recipe. Unlike the 15-slot upstream shape
// it carries a free-length ingredient list; it is mapped into Cocktail when
// it participates in aggregation.
type CustomRecipe struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	NameEn       string    `gorm:"size:255" json:"nameEn"`
	Category     string    `gorm:"size:100" json:"category"`
	Glass        string    `gorm:"size:100" json:"glass"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	Image        string    `gorm:"size:512" json:"image"`
	Ingredients  SlotList  `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName keeps custom recipes in their own table.
func (CustomRecipe) TableName() string {
	return "customrecipe"
}

// ToCocktail maps a custom recipe into the common cocktail shape so it can
// flow through the aggregator alongside every other source.
func (r *CustomRecipe) ToCocktail() Cocktail {
	name := r.Name
	if r.NameEn != "" {
		name = r.NameEn
	}
	return Cocktail{
		ID:           r.ID,
		Name:         name,
		Category:     r.Category,
		Alcoholic:    "Alcoholic",
		Glass:        r.Glass,
		Instructions: r.Instructions,
		Thumbnail:    r.Image,
		Tags:         "custom",
		Ingredients:  r.Ingredients,
	}
}
