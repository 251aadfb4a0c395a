package api

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/barstock/backend/internal/model"
)

// metricMeasure matches quantities written in centiliters or deciliters,
// e.g. "4.5 cl" or "1 dl". CocktailDB records mix metric and imperial
// measures; the client expects ounces.
var metricMeasure = regexp.MustCompile(`(?i)([\d.]+)\s*(cl|dl)`)

const (
	clToOz = 0.33814
	dlToOz = 3.3814
)

// ConvertMeasure rewrites a cl/dl measure into "N oz (M ml)". Small
// quantities snap to the pour sizes recipes are conventionally written in:
// up to 0.2 oz becomes 0, up to 0.7 becomes a half ounce, up to a full
// ounce becomes 1, anything larger rounds to the nearest whole ounce.
// Measures in any other unit pass through untouched.
func ConvertMeasure(measure string) string {
	match := metricMeasure.FindStringSubmatch(measure)
	if match == nil {
		return measure
	}
	quantity, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return measure
	}

	oz := quantity * clToOz
	ml := quantity * 10
	if strings.EqualFold(match[2], "dl") {
		oz = quantity * dlToOz
		ml = quantity * 100
	}

	switch {
	case oz <= 0.2:
		oz = 0
	case oz <= 0.7:
		oz = 0.5
	case oz <= 1.0:
		oz = 1
	default:
		oz = math.Round(oz)
	}

	formatted := strconv.FormatFloat(oz, 'f', -1, 64)
	return formatted + " oz (" + strconv.Itoa(int(math.Floor(ml))) + " ml)"
}

// NormalizeMeasures applies ConvertMeasure to every ingredient slot of a
// cocktail in place.
func NormalizeMeasures(cocktail *model.Cocktail) {
	for i := range cocktail.Ingredients {
		cocktail.Ingredients[i].Measure = ConvertMeasure(cocktail.Ingredients[i].Measure)
	}
}
