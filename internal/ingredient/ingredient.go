// Package ingredient classifies cocktail ingredients and decides whether a
// recipe ingredient is satisfied by a user's inventory. All functions are
// pure and operate on plain strings; callers hand in whatever they loaded
// from storage or parsed from a request.
package ingredient

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes an ingredient name: lowercase, trimmed, with
// `().,` replaced by spaces and runs of whitespace collapsed. Normalizing
// an already-normalized name is a no-op.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '.', ',':
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeName is the looser form used to dedup display names across
// sources: every non-letter, non-digit rune becomes a space before
// collapsing. "Piña Colada!" and "pina colada" still differ (no transliteration),
// but punctuation and casing never split a drink into two entries.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// IsAlcoholic reports whether the name contains any known alcohol keyword.
// Coarse by design: "cream" does not match, "amaretto" does.
func IsAlcoholic(name string) bool {
	normalized := Normalize(name)
	for _, keyword := range alcoholKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// IsIgnored reports whether the name is a non-defining ingredient (mixer,
// garnish, ice, common juice). Equality or containment both count, so
// "fresh lime juice" is ignored via "lime".
func IsIgnored(name string) bool {
	normalized := Normalize(name)
	for _, ignored := range ignoredIngredients {
		if normalized == ignored || strings.Contains(normalized, ignored) {
			return true
		}
	}
	return false
}

// AliasCandidates expands a normalized ingredient name to the set of names
// that should satisfy it. The name itself is always a candidate; every
// member of any alias group the name touches (contains or is contained by a
// group member) is added. A name may span multiple groups.
func AliasCandidates(name string) []string {
	normalized := Normalize(name)
	seen := map[string]struct{}{normalized: {}}
	candidates := []string{normalized}
	for _, group := range aliasGroups {
		matched := false
		for _, entry := range group {
			if strings.Contains(normalized, entry) || strings.Contains(entry, normalized) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, entry := range group {
			if _, ok := seen[entry]; ok {
				continue
			}
			seen[entry] = struct{}{}
			candidates = append(candidates, entry)
		}
	}
	return candidates
}

// IsAvailable reports whether a cocktail ingredient is satisfied by the
// user's ingredient list. Each alias candidate is tested for exact equality
// against the owned names, then for containment in both directions so that
// "scotch whiskey" matches an owned "scotch" and "rum" matches an owned
// "white rum". Both directions are required; dropping either silently
// breaks one of those cases.
func IsAvailable(cocktailIngredient string, userIngredients []string) bool {
	owned := make([]string, 0, len(userIngredients))
	ownedSet := make(map[string]struct{}, len(userIngredients))
	for _, name := range userIngredients {
		normalized := Normalize(name)
		owned = append(owned, normalized)
		ownedSet[normalized] = struct{}{}
	}

	for _, candidate := range AliasCandidates(cocktailIngredient) {
		if _, ok := ownedSet[candidate]; ok {
			return true
		}
		for _, name := range owned {
			if strings.Contains(name, candidate) || strings.Contains(candidate, name) {
				return true
			}
		}
	}
	return false
}

// RequiredOwned filters a recipe's ingredient list down to the names that
// must all be owned for the recipe to be makeable: not ignored, and
// alcoholic. The ignore test runs first so a mixer that happens to contain
// an alcohol keyword can never become a must-own ingredient.
func RequiredOwned(names []string) []string {
	required := make([]string, 0, len(names))
	for _, name := range names {
		if IsIgnored(name) {
			continue
		}
		if IsAlcoholic(name) {
			required = append(required, name)
		}
	}
	return required
}
