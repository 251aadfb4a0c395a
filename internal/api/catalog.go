package api

import "github.com/barstock/backend/internal/model"

// ingredientCatalog is the fixed pick-list offered on the inventory page.
// Name is the Korean display name, NameEn the canonical matcher name.
var ingredientCatalog = []model.CatalogEntry{
	{Name: "보드카", NameEn: "Vodka", Category: model.CategoryBase},
	{Name: "진", NameEn: "Gin", Category: model.CategoryBase},
	{Name: "럼", NameEn: "Rum", Category: model.CategoryBase},
	{Name: "화이트 럼", NameEn: "White Rum", Category: model.CategoryBase},
	{Name: "다크 럼", NameEn: "Dark Rum", Category: model.CategoryBase},
	{Name: "스파이스드 럼", NameEn: "Spiced Rum", Category: model.CategoryBase},
	{Name: "데킬라", NameEn: "Tequila", Category: model.CategoryBase},
	{Name: "위스키", NameEn: "Whiskey", Category: model.CategoryBase},
	{Name: "스카치 위스키", NameEn: "Scotch", Category: model.CategoryBase},
	{Name: "버번", NameEn: "Bourbon", Category: model.CategoryBase},
	{Name: "라이 위스키", NameEn: "Rye Whiskey", Category: model.CategoryBase},
	{Name: "브랜디", NameEn: "Brandy", Category: model.CategoryBase},
	{Name: "꼬냑", NameEn: "Cognac", Category: model.CategoryBase},
	{Name: "소주", NameEn: "Soju", Category: model.CategoryBase},
	{Name: "트리플 섹", NameEn: "Triple Sec", Category: model.CategoryLiqueur},
	{Name: "쿠앵트로", NameEn: "Cointreau", Category: model.CategoryLiqueur},
	{Name: "블루 큐라소", NameEn: "Blue Curacao", Category: model.CategoryLiqueur},
	{Name: "깔루아", NameEn: "Kahlua", Category: model.CategoryLiqueur},
	{Name: "커피 리큐르", NameEn: "Coffee Liqueur", Category: model.CategoryLiqueur},
	{Name: "아마레또", NameEn: "Amaretto", Category: model.CategoryLiqueur},
	{Name: "캄파리", NameEn: "Campari", Category: model.CategoryLiqueur},
	{Name: "아페롤", NameEn: "Aperol", Category: model.CategoryLiqueur},
	{Name: "베르무트", NameEn: "Vermouth", Category: model.CategoryLiqueur},
	{Name: "스위트 베르무트", NameEn: "Sweet Vermouth", Category: model.CategoryLiqueur},
	{Name: "드라이 베르무트", NameEn: "Dry Vermouth", Category: model.CategoryLiqueur},
	{Name: "피치 슈냅스", NameEn: "Peach Schnapps", Category: model.CategoryLiqueur},
	{Name: "말리부", NameEn: "Malibu", Category: model.CategoryLiqueur},
	{Name: "미도리", NameEn: "Midori", Category: model.CategoryLiqueur},
	{Name: "베일리스", NameEn: "Baileys", Category: model.CategoryLiqueur},
	{Name: "예거마이스터", NameEn: "Jagermeister", Category: model.CategoryLiqueur},
	{Name: "사케", NameEn: "Sake", Category: model.CategoryOther},
	{Name: "와인", NameEn: "Wine", Category: model.CategoryOther},
	{Name: "레드 와인", NameEn: "Red Wine", Category: model.CategoryOther},
	{Name: "샴페인", NameEn: "Champagne", Category: model.CategoryOther},
	{Name: "프로세코", NameEn: "Prosecco", Category: model.CategoryOther},
	{Name: "맥주", NameEn: "Beer", Category: model.CategoryOther},
	{Name: "사이다", NameEn: "Cider", Category: model.CategoryOther},
	{Name: "압생트", NameEn: "Absinthe", Category: model.CategoryBase},
	{Name: "비터스", NameEn: "Bitters", Category: model.CategoryOther},
	{Name: "그레나딘", NameEn: "Grenadine", Category: model.CategoryMixer},
}

// Catalog returns the fixed ingredient catalog.
func Catalog() []model.CatalogEntry {
	return ingredientCatalog
}
