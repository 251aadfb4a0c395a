package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "dark rum", Normalize("  Dark Rum  "))
	assert.Equal(t, "lime juice freshly squeezed", Normalize("Lime juice (freshly squeezed)"))
	assert.Equal(t, "st germain", Normalize("St. Germain"))
	assert.Equal(t, "", Normalize("  ,. ()  "))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Dark Rum",
		"Lime juice (freshly squeezed)",
		"  TRIPLE   sec , please. ",
		"소주",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", input)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "pina colada", NormalizeName("Pina-Colada!"))
	assert.Equal(t, "7 and 7", NormalizeName("7 & 7"))
	one := NormalizeName("Mai-Tai")
	assert.Equal(t, one, NormalizeName(one))
}

func TestIsAlcoholic(t *testing.T) {
	assert.True(t, IsAlcoholic("Vodka"))
	assert.True(t, IsAlcoholic("Spiced Rum"))
	assert.True(t, IsAlcoholic("Amaretto"))
	assert.True(t, IsAlcoholic("Grand Marnier"))
	assert.False(t, IsAlcoholic("Cream"))
	assert.False(t, IsAlcoholic("Lime juice"))
}

func TestIsIgnored(t *testing.T) {
	assert.True(t, IsIgnored("Ice"))
	assert.True(t, IsIgnored("Crushed ice"))
	assert.True(t, IsIgnored("Fresh lime juice"))
	assert.True(t, IsIgnored("Soda water"))
	assert.False(t, IsIgnored("Vodka"))
	assert.False(t, IsIgnored("Dry Vermouth"))
}

func TestAliasCandidates(t *testing.T) {
	candidates := AliasCandidates("rum")
	assert.Contains(t, candidates, "rum")
	assert.Contains(t, candidates, "dark rum")
	assert.Contains(t, candidates, "white rum")

	// The name itself is always a candidate, even without a group.
	assert.Equal(t, []string{"absinthe"}, AliasCandidates("absinthe"))

	// Superstrings of a group member still pull in the whole group.
	candidates = AliasCandidates("aged dark rum")
	assert.Contains(t, candidates, "spiced rum")
}

func TestIsAvailable(t *testing.T) {
	// Exact ownership.
	assert.True(t, IsAvailable("vodka", []string{"vodka"}))
	assert.False(t, IsAvailable("vodka", []string{"gin"}))

	// Alias group, both directions.
	assert.True(t, IsAvailable("rum", []string{"white rum"}))
	assert.True(t, IsAvailable("white rum", []string{"rum"}))
	assert.True(t, IsAvailable("dark rum", []string{"rum"}))
	assert.True(t, IsAvailable("rum", []string{"dark rum"}))

	// Containment without an alias group.
	assert.True(t, IsAvailable("scotch whiskey", []string{"scotch"}))
	assert.True(t, IsAvailable("scotch", []string{"scotch whiskey"}))

	// Normalization applies to both sides.
	assert.True(t, IsAvailable("Vodka (premium)", []string{"  VODKA "}))

	assert.False(t, IsAvailable("tequila", []string{"vodka", "gin", "campari"}))
}

func TestAliasSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"rum", "dark rum"},
		{"whiskey", "bourbon"},
		{"tequila", "mezcal"},
		{"triple sec", "cointreau"},
		{"vermouth", "dry vermouth"},
	}
	for _, pair := range pairs {
		assert.True(t, IsAvailable(pair[0], []string{pair[1]}), "%q should be satisfied by %q", pair[0], pair[1])
		assert.True(t, IsAvailable(pair[1], []string{pair[0]}), "%q should be satisfied by %q", pair[1], pair[0])
	}
}

func TestRequiredOwned(t *testing.T) {
	assert.Empty(t, RequiredOwned(nil))
	assert.Empty(t, RequiredOwned([]string{}))

	// Mixers and garnishes never block a match.
	required := RequiredOwned([]string{"vodka", "lime", "soda water"})
	assert.Equal(t, []string{"vodka"}, required)

	// A recipe of only ignorable ingredients has nothing required.
	assert.Empty(t, RequiredOwned([]string{"water", "ice"}))

	// Ignore wins over the alcohol classification: an ignored entry that
	// happens to contain an alcohol keyword must not become required.
	assert.Empty(t, RequiredOwned([]string{"rum soda water"}))
}
