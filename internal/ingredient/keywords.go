package ingredient

// Literal classification data. These lists are deliberately maintained by
// hand; do not regenerate them. The matcher is a coarse heuristic and the
// entries below are the contract.

// alcoholKeywords marks an ingredient as alcoholic when any entry is a
// substring of its normalized name.
var alcoholKeywords = []string{
	"vodka",
	"gin",
	"rum",
	"whiskey",
	"whisky",
	"bourbon",
	"scotch",
	"brandy",
	"cognac",
	"tequila",
	"mezcal",
	"liqueur",
	"kahlua",
	"amaretto",
	"campari",
	"aperol",
	"vermouth",
	"wine",
	"champagne",
	"port",
	"sherry",
	"madeira",
	"beer",
	"pisco",
	"schnapps",
	"baileys",
	"drambuie",
	"fernet",
	"galliano",
	"cassis",
	"curacao",
	"cointreau",
	"grand marnier",
}

// ignoredIngredients never count toward the must-own set: mixers, garnishes,
// ice and common juices. Matched by equality or substring containment.
var ignoredIngredients = []string{
	"water",
	"ice",
	"cubed ice",
	"crushed ice",
	"ice cubes",
	"soda water",
	"tonic water",
	"cola",
	"sprite",
	"7-up",
	"soda",
	"soft drink",
	"lemon",
	"lime",
	"orange",
	"mint",
	"sugar",
	"salt",
	"cream",
	"egg",
	"egg white",
	"bitters",
	"cranberry juice",
	"orange juice",
	"pineapple juice",
	"grapefruit juice",
	"apple juice",
	"tomato juice",
}

// aliasGroups are families of interchangeable ingredients: a recipe calling
// for "rum" is satisfiable by a bottle of "dark rum" and vice versa. Groups
// are static and never mutated after process start.
var aliasGroups = [][]string{
	{"rum", "white rum", "light rum", "dark rum", "gold rum", "spiced rum", "coconut rum", "vanilla rum"},
	{"whiskey", "whisky", "bourbon", "scotch", "irish whiskey", "rye whiskey"},
	{"tequila", "silver tequila", "gold tequila", "mezcal"},
	{"vermouth", "dry vermouth", "sweet vermouth"},
	{"orange liqueur", "triple sec", "cointreau", "curacao", "blue curacao", "grand marnier"},
}
