package schemaorg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "droscher.com/Foodgram/pkg/integrations/schemaorg"
)

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		line     string
		expected IngredientLine
	}{
		{"200 g flour", IngredientLine{Name: "flour", Unit: "г", Amount: 200}},
		{"200 g flour, sifted", IngredientLine{Name: "flour", Unit: "г", Amount: 200}},
		{"100г муки", IngredientLine{Name: "муки", Unit: "г", Amount: 100}},
		{"2 eggs", IngredientLine{Name: "eggs", Unit: UnitPieces, Amount: 2}},
		{"1/2 cup of sugar", IngredientLine{Name: "sugar", Unit: "стакан", Amount: 1}},
		{"½ tsp baking soda", IngredientLine{Name: "baking soda", Unit: "ч. л.", Amount: 1}},
		{"1,5 kg potatoes", IngredientLine{Name: "potatoes", Unit: "кг", Amount: 2}},
		{"2-3 cloves garlic", IngredientLine{Name: "garlic", Unit: "зубчик", Amount: 3}},
		{"2 ст. л. Сахара", IngredientLine{Name: "сахара", Unit: "ст. л.", Amount: 2}},
		{"Salt, to taste", IngredientLine{Name: "salt", Unit: UnitToTaste, Amount: 1}},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			parsed, ok := ParseIngredientLine(test.line)
			require.True(t, ok)
			assert.Equal(t, test.expected, parsed)
		})
	}
}

func TestParseIngredientLine_Rejects(t *testing.T) {
	for _, line := range []string{"", "   ", "200 g"} {
		_, ok := ParseIngredientLine(line)
		assert.False(t, ok, line)
	}
}

func TestParseDuration(t *testing.T) {
	tests := map[string]int{
		"":         0,
		"PT20M":    20,
		"PT1H30M":  90,
		"PT45S":    1,
		"P1DT2H":   26 * 60,
		"pt10m":    10,
		"PT0H5M0S": 5,
	}

	for value, minutes := range tests {
		parsed, err := ParseDuration(value)
		require.NoError(t, err, value)
		assert.Equal(t, minutes, parsed, value)
	}

	for _, value := range []string{"P", "PT", "20 minutes", "PT1.5H"} {
		_, err := ParseDuration(value)
		require.ErrorIs(t, err, ErrInvalidDuration, value)
	}
}
