package model

// Inventory categories. Advisory grouping for the UI; the matcher only ever
// looks at NameEn.
const (
	CategoryBase    = "base"
	CategoryLiqueur = "liqueur"
	CategoryMixer   = "mixer"
	CategoryOther   = "other"
)

// InventoryItem is one ingredient a user owns. Name carries the display
// name in the UI language, NameEn the canonical English name used for
// matching.
type InventoryItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameEn   string `json:"nameEn"`
	Category string `json:"category"`
}

// ValidCategory reports whether c is one of the known inventory categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryBase, CategoryLiqueur, CategoryMixer, CategoryOther:
		return true
	}
	return false
}

// CatalogEntry is one selectable ingredient in the fixed catalog offered to
// the inventory page.
type CatalogEntry struct {
	Name     string `json:"name"`
	NameEn   string `json:"nameEn"`
	Category string `json:"category"`
}
