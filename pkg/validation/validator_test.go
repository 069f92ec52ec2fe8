package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
	"droscher.com/Foodgram/pkg/validation"
)

func validRecipe() *apiv1.CreateRecipeRequest {
	return &apiv1.CreateRecipeRequest{
		Ingredients: []apiv1.IngredientAmount{{ID: 1, Amount: 10}, {ID: 2, Amount: 1}},
		Tags:        []uint64{1, 2},
		Image:       "data:image/png;base64,AAAA",
		Name:        "Borscht",
		Text:        "Boil the beets",
		CookingTime: 90,
	}
}

func fieldsOf(t *testing.T, err error) map[string]validation.FieldError {
	t.Helper()

	var validationErr *validation.Error
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)

	fields := make(map[string]validation.FieldError, len(validationErr.Fields))
	for _, field := range validationErr.Fields {
		fields[field.Field] = field
	}

	return fields
}

func TestStruct_Valid(t *testing.T) {
	validator := validation.New(configs.Recipes{MinCookingTime: 1, MinIngredientAmount: 1})

	assert.NoError(t, validator.Struct(validRecipe()))
	assert.NoError(t, validator.Struct(&apiv1.UpdateRecipeRequest{ID: 1}))
}

func TestStruct_RecipeRules(t *testing.T) {
	validator := validation.New(configs.Recipes{MinCookingTime: 1, MinIngredientAmount: 1})

	tests := []struct {
		name    string
		mutate  func(request *apiv1.CreateRecipeRequest)
		field   string
		message string
	}{
		{
			name:    "missing ingredients",
			mutate:  func(r *apiv1.CreateRecipeRequest) { r.Ingredients = nil },
			field:   "ingredients",
			message: "this field is required",
		},
		{
			name:    "empty ingredients",
			mutate:  func(r *apiv1.CreateRecipeRequest) { r.Ingredients = []apiv1.IngredientAmount{} },
			field:   "ingredients",
			message: "must contain at least 1 item(s)",
		},
		{
			name: "duplicate ingredients",
			mutate: func(r *apiv1.CreateRecipeRequest) {
				r.Ingredients = []apiv1.IngredientAmount{{ID: 1, Amount: 1}, {ID: 1, Amount: 2}}
			},
			field:   "ingredients",
			message: "must not contain duplicates",
		},
		{
			name:    "zero amount",
			mutate:  func(r *apiv1.CreateRecipeRequest) { r.Ingredients[1].Amount = 0 },
			field:   "ingredients[1].amount",
			message: "must be at least 1",
		},
		{
			name:    "duplicate tags",
			mutate:  func(r *apiv1.CreateRecipeRequest) { r.Tags = []uint64{2, 2} },
			field:   "tags",
			message: "must not contain duplicates",
		},
		{
			name:    "long name",
			mutate:  func(r *apiv1.CreateRecipeRequest) { r.Name = string(make([]byte, 201)) },
			field:   "name",
			message: "must be at most 200 characters long",
		},
		{
			name:    "cooking time",
			mutate:  func(r *apiv1.CreateRecipeRequest) { r.CookingTime = 0 },
			field:   "cooking_time",
			message: "must be at least 1 minute(s)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := validRecipe()
			test.mutate(request)

			err := validator.Struct(request)
			require.ErrorIs(t, err, model.ErrValidation)

			fields := fieldsOf(t, err)
			require.Contains(t, fields, test.field)
			assert.Equal(t, test.message, fields[test.field].Message)
		})
	}
}

func TestStruct_ConfiguredLimits(t *testing.T) {
	validator := validation.New(configs.Recipes{MinCookingTime: 5, MinIngredientAmount: 10})

	request := validRecipe()
	request.CookingTime = 4

	fields := fieldsOf(t, validator.Struct(request))
	assert.Equal(t, "must be at least 5 minute(s)", fields["cooking_time"].Message)
	assert.Equal(t, "must be at least 10", fields["ingredients[1].amount"].Message)
	assert.Equal(t, "cooking_time", fields["cooking_time"].Tag)
}

func TestStruct_UpdatePresentListsMustNotBeEmpty(t *testing.T) {
	validator := validation.New(configs.Recipes{MinCookingTime: 1, MinIngredientAmount: 1})

	err := validator.Struct(&apiv1.UpdateRecipeRequest{ID: 1, Tags: []uint64{}, CookingTime: pointy.Int(0)})
	fields := fieldsOf(t, err)

	assert.Contains(t, fields, "tags")
	assert.Contains(t, fields, "cooking_time")
	assert.ErrorContains(t, err, "validation error: ")
}
