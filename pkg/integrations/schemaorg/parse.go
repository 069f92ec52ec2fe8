package schemaorg

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// UnitToTaste is used for lines that carry no quantity, such as "salt".
	UnitToTaste = "по вкусу"
	// UnitPieces is used for counted items without a unit, such as "2 eggs".
	UnitPieces = "шт."
)

var ErrInvalidDuration = errors.New("invalid ISO 8601 duration")

// IngredientLine is one parsed line of a recipe's ingredient list.
type IngredientLine struct {
	Name   string
	Unit   string
	Amount int
}

// unitAliases maps spellings found on recipe pages to the catalog units.
var unitAliases = map[string]string{
	"g": "г", "gr": "г", "gram": "г", "grams": "г", "г": "г", "гр": "г", "грамм": "г",
	"kg": "кг", "kilogram": "кг", "kilograms": "кг", "кг": "кг",
	"ml": "мл", "milliliter": "мл", "milliliters": "мл", "мл": "мл",
	"l": "л", "liter": "л", "liters": "л", "litre": "л", "litres": "л", "л": "л",
	"tsp": "ч. л.", "teaspoon": "ч. л.", "teaspoons": "ч. л.", "ч.л.": "ч. л.",
	"tbsp": "ст. л.", "tablespoon": "ст. л.", "tablespoons": "ст. л.", "ст.л.": "ст. л.",
	"cup": "стакан", "cups": "стакан", "стакан": "стакан", "стакана": "стакан",
	"pcs": UnitPieces, "pc": UnitPieces, "piece": UnitPieces, "pieces": UnitPieces, "шт": UnitPieces,
	"clove": "зубчик", "cloves": "зубчик", "зубчик": "зубчик", "зубчика": "зубчик",
	"pinch": "щепотка", "щепотка": "щепотка",
}

var (
	quantityPattern = regexp.MustCompile(`^(\d+(?:[.,]\d+)?(?:\s*/\s*\d+)?)(?:\s*[-–]\s*(\d+(?:[.,]\d+)?))?\s*`)
	durationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)
	vulgarFractions = strings.NewReplacer("½", "1/2", "¼", "1/4", "¾", "3/4", "⅓", "1/3", "⅔", "2/3")
)

// ParseIngredientLine splits "200 g flour" into amount, unit and name. A range
// takes its upper bound and fractions round up, so amounts are at least 1.
func ParseIngredientLine(line string) (IngredientLine, bool) {
	line = strings.TrimSpace(vulgarFractions.Replace(line))
	if len(line) == 0 {
		return IngredientLine{}, false
	}

	match := quantityPattern.FindStringSubmatch(line)
	if match == nil {
		return IngredientLine{Name: cleanName(line), Unit: UnitToTaste, Amount: 1}, true
	}

	quantity := match[1]
	if len(match[2]) > 0 {
		quantity = match[2]
	}

	amount := parseQuantity(quantity)
	rest := strings.TrimSpace(line[len(match[0]):])

	unit := UnitPieces
	if word, tail, found := cutUnit(rest); found {
		unit = word
		rest = tail
	}

	name := cleanName(rest)
	if len(name) == 0 {
		return IngredientLine{}, false
	}

	return IngredientLine{Name: name, Unit: unit, Amount: amount}, true
}

func parseQuantity(quantity string) int {
	quantity = strings.ReplaceAll(strings.ReplaceAll(quantity, " ", ""), ",", ".")

	var value float64

	if numerator, denominator, found := strings.Cut(quantity, "/"); found {
		n, errN := strconv.ParseFloat(numerator, 64)
		d, errD := strconv.ParseFloat(denominator, 64)
		if errN == nil && errD == nil && d > 0 {
			value = n / d
		}
	} else {
		value, _ = strconv.ParseFloat(quantity, 64)
	}

	return max(int(math.Ceil(value)), 1)
}

// cutUnit recognises a leading unit, including two-word units like "ст. л.".
func cutUnit(text string) (string, string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", text, false
	}

	if len(fields) > 1 {
		joined := strings.ToLower(fields[0] + fields[1])
		if unit, found := unitAliases[joined]; found {
			return unit, strings.Join(fields[2:], " "), true
		}
	}

	word := strings.ToLower(strings.TrimSuffix(fields[0], "."))
	if unit, found := unitAliases[word]; found {
		return unit, strings.Join(fields[1:], " "), true
	}

	return "", text, false
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "of ")
	name, _, _ = strings.Cut(name, ",")
	name = strings.TrimFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})

	return strings.ToLower(name)
}

// ParseDuration returns the whole minutes of an ISO 8601 duration such as
// "PT1H30M", rounding seconds up. An empty string is zero.
func ParseDuration(value string) (int, error) {
	if len(value) == 0 {
		return 0, nil
	}

	match := durationPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(value)))
	if match == nil || value == "P" || strings.HasSuffix(value, "T") {
		return 0, ErrInvalidDuration
	}

	days, _ := strconv.Atoi(match[1])
	hours, _ := strconv.Atoi(match[2])
	minutes, _ := strconv.Atoi(match[3])
	seconds, _ := strconv.ParseFloat(match[4], 64)

	return days*24*60 + hours*60 + minutes + int(math.Ceil(seconds/60)), nil
}
