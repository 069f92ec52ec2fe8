package repository_test

import (
	"context"
	"slices"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

type ShoppingListStoreSuite struct {
	StoreSuite
}

func TestShoppingListStoreSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListStoreSuite))
}

func (suite *ShoppingListStoreSuite) TestGetShoppingList_SumsByNameAndUnit() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")
	flour := suite.addIngredient("Flour", "g")
	eggs := suite.addIngredient("Eggs", "pcs")
	sugar := suite.addIngredient("Sugar", "pcs")

	a := suite.addRecipe(alice, "A", amount(flour, 200), amount(eggs, 2))
	b := suite.addRecipe(bob, "B", amount(flour, 300), amount(sugar, 1))
	other := suite.addRecipe(bob, "C", amount(flour, 1000))

	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, b.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, a.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, bob.ID, other.ID))

	list, err := suite.repository.GetShoppingList(ctx, alice.ID)
	suite.Require().NoError(err)

	suite.Equal([]string{"A", "B"}, slices.Collect(list.Recipes()))
	suite.Equal([]model.ShoppingListItem{
		{Name: "Eggs", MeasurementUnit: "pcs", TotalAmount: 2},
		{Name: "Flour", MeasurementUnit: "g", TotalAmount: 500},
		{Name: "Sugar", MeasurementUnit: "pcs", TotalAmount: 1},
	}, slices.Collect(list.Ingredients()))
}

func (suite *ShoppingListStoreSuite) TestGetShoppingList_KeepsUnitsApart() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	grams := suite.addIngredient("Salt", "g")
	spoons := suite.addIngredient("Salt", "tsp")

	a := suite.addRecipe(alice, "Soup", amount(grams, 5))
	b := suite.addRecipe(alice, "Stew", amount(spoons, 1), amount(grams, 3))

	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, a.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, b.ID))

	list, err := suite.repository.GetShoppingList(ctx, alice.ID)
	suite.Require().NoError(err)

	suite.Equal([]model.ShoppingListItem{
		{Name: "Salt", MeasurementUnit: "g", TotalAmount: 8},
		{Name: "Salt", MeasurementUnit: "tsp", TotalAmount: 1},
	}, list.Items)
}

func (suite *ShoppingListStoreSuite) TestGetShoppingList_DuplicateRecipeNamesCollapse() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")
	eggs := suite.addIngredient("Eggs", "pcs")

	first := suite.addRecipe(alice, "Omelette", amount(eggs, 2))
	second := suite.addRecipe(bob, "Omelette", amount(eggs, 3))

	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, first.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, second.ID))

	list, err := suite.repository.GetShoppingList(ctx, alice.ID)
	suite.Require().NoError(err)

	suite.Equal([]string{"Omelette"}, list.RecipeNames)
	suite.Equal([]model.ShoppingListItem{{Name: "Eggs", MeasurementUnit: "pcs", TotalAmount: 5}}, list.Items)
}

func (suite *ShoppingListStoreSuite) TestGetShoppingList_EmptyCart() {
	alice := suite.addUser("alice")

	list, err := suite.repository.GetShoppingList(suite.T().Context(), alice.ID)
	suite.Require().NoError(err)

	suite.True(list.IsEmpty())
	suite.NotNil(list.RecipeNames)
	suite.NotNil(list.Items)
}

type ShoppingListTestSuite struct {
	RepositorySuite
}

func TestShoppingListTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListTestSuite))
}

func (suite *ShoppingListTestSuite) TestGetShoppingList_ReadsBothSetsInOneTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT DISTINCT recipes\.name FROM "recipes" INNER JOIN shopping_carts sc ON sc\.recipe_id = recipes\.id WHERE sc\.user_id = \$1 ORDER BY recipes\.name ASC`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("A"))
	suite.mock.ExpectQuery(`SELECT i\.name AS name, i\.measurement_unit AS measurement_unit, SUM\(iir\.amount\) AS total_amount FROM ingredient_in_recipes iir (.+) GROUP BY i\.name, i\.measurement_unit ORDER BY i\.name ASC, i\.measurement_unit ASC`).
		WithArgs(3).
		WillReturnError(gorm.ErrInvalidData)
	suite.mock.ExpectRollback()

	list, err := suite.repository.GetShoppingList(context.Background(), 3)

	suite.Nil(list)
	suite.EqualError(err, "unsupported data")
	suite.Equal(1, suite.observedLogs.FilterMessage("error building shopping list").Len())
	suite.NoError(suite.mock.ExpectationsWereMet())
}
