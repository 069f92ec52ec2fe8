package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type RecipeTestSuite struct {
	RepositorySuite
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func (suite *RecipeTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *RecipeTestSuite) TestGetRecipe_AnnotatesInTheSameQuery() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT recipes.*, EXISTS (SELECT 1 FROM favorite_recipes fr WHERE fr.recipe_id = recipes.id AND fr.user_id = $1) AS is_favorited, EXISTS (SELECT 1 FROM shopping_carts sc WHERE sc.recipe_id = recipes.id AND sc.user_id = $2) AS is_in_shopping_cart FROM "recipes" WHERE recipes.id = $3 LIMIT $4`)).
		WithArgs(5, 5, 10, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "author_id", "is_favorited", "is_in_shopping_cart"}).
			AddRow(10, "Борщ", 3, true, false))
	suite.mock.ExpectQuery(`SELECT users\.\*, EXISTS \(SELECT 1 FROM subscriptions s WHERE s\.author_id = users\.id AND s\.user_id = \$1\) AS is_subscribed FROM "users" WHERE "users"\."id" = \$2 AND "users"\."deleted_at" IS NULL`).
		WithArgs(5, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_subscribed"}).AddRow(3, "chef", true))
	suite.mock.ExpectQuery(`SELECT \* FROM "ingredient_in_recipes" WHERE "ingredient_in_recipes"\."recipe_id" = \$1 ORDER BY ingredient_in_recipes\.id ASC`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "recipe_id", "ingredient_id", "amount"}).AddRow(1, 10, 7, 300))
	suite.mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE "ingredients"\."id" = \$1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).AddRow(7, "свекла", "г"))
	suite.mock.ExpectQuery(`SELECT \* FROM "recipe_tags" WHERE "recipe_tags"\."recipe_id" = \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "tag_id"}).AddRow(10, 2))
	suite.mock.ExpectQuery(`SELECT \* FROM "tags" WHERE "tags"\."id" = \$1 ORDER BY tags\.name ASC`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(2, "Обед", "lunch"))

	suite.mock.MatchExpectationsInOrder(false)

	recipe, err := suite.repository.GetRecipe(context.Background(), &model.User{Model: gorm.Model{ID: 5}}, 10)
	suite.Require().NoError(err)

	suite.Equal("Борщ", recipe.Name)
	suite.True(recipe.IsFavorited)
	suite.False(recipe.IsInShoppingCart)
	suite.True(recipe.Author.IsSubscribed)
	suite.Require().Len(recipe.Ingredients, 1)
	suite.Equal("свекла", recipe.Ingredients[0].Ingredient.Name)
	suite.Require().Len(recipe.Tags, 1)
	suite.Equal("lunch", recipe.Tags[0].Slug)
}

func (suite *RecipeTestSuite) TestGetRecipe_MapsMissingRow() {
	suite.mock.ExpectQuery(`SELECT recipes\.\*, (.+) FROM "recipes" WHERE recipes\.id = \$3 LIMIT \$4`).
		WithArgs(0, 0, 42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	recipe, err := suite.repository.GetRecipe(context.Background(), nil, 42)

	suite.Nil(recipe)
	suite.ErrorIs(err, repository.ErrRecipeNotFound)
	suite.ErrorIs(err, model.ErrNotFound)
}

func (suite *RecipeTestSuite) TestCreateRecipe_RollsBackOnUnknownIngredient() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "ingredients" WHERE id IN ($1,$2)`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectRollback()

	recipe, err := suite.repository.CreateRecipe(context.Background(), 3, model.RecipeInput{
		Name:        "Пирог",
		Text:        "Испечь",
		CookingTime: 40,
		Ingredients: []model.IngredientAmount{{IngredientID: 1, Amount: 1}, {IngredientID: 2, Amount: 5}},
	})

	suite.Nil(recipe)
	suite.ErrorIs(err, repository.ErrUnknownIngredients)
	suite.ErrorIs(err, model.ErrValidation)
	suite.Equal(1, suite.observedLogs.FilterMessage("error creating recipe").Len())
}

func (suite *RecipeTestSuite) TestUpdateRecipe_TagsOfRemovedRecipeIsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "tags" WHERE id IN ($1)`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipe_tags" WHERE recipe_id = $1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectExec(`^INSERT INTO "recipe_tags"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_recipe_tags_recipe"})
	suite.mock.ExpectRollback()

	err := suite.repository.UpdateRecipe(context.Background(), 9, model.RecipeUpdate{TagIDs: []uint{2}})

	suite.ErrorIs(err, repository.ErrRecipeNotFound)
	suite.ErrorIs(err, model.ErrNotFound)
}

func (suite *RecipeTestSuite) TestUpdateRecipe_IngredientsOfRemovedRecipeIsNotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "ingredients" WHERE id IN ($1)`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ingredient_in_recipes" WHERE recipe_id = $1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectQuery(`^INSERT INTO "ingredient_in_recipes"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_recipes_ingredients"})
	suite.mock.ExpectRollback()

	err := suite.repository.UpdateRecipe(context.Background(), 9, model.RecipeUpdate{
		Ingredients: []model.IngredientAmount{{IngredientID: 7, Amount: 300}},
	})

	suite.ErrorIs(err, repository.ErrRecipeNotFound)
}

func (suite *RecipeTestSuite) TestDeleteRecipe_ReturnsNotFoundWhenNothingDeleted() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "recipes" WHERE "recipes"."id" = $1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteRecipe(context.Background(), 9)

	suite.ErrorIs(err, repository.ErrRecipeNotFound)
}

func (suite *RecipeTestSuite) TestListRecipes_ReturnsStoreError() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "recipes"`).WillReturnError(gorm.ErrInvalidDB)

	recipes, total, err := suite.repository.ListRecipes(context.Background(), nil, model.RecipeFilter{})

	suite.Nil(recipes)
	suite.Zero(total)
	suite.True(errors.Is(err, gorm.ErrInvalidDB))
}

type RecipeStoreSuite struct {
	StoreSuite
}

func TestRecipeStoreSuite(t *testing.T) {
	suite.Run(t, new(RecipeStoreSuite))
}

func (suite *RecipeStoreSuite) TestListRecipes_AnnotatesForViewer() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")
	flour := suite.addIngredient("Flour", "g")

	first := suite.addRecipe(alice, "First", amount(flour, 100))
	second := suite.addRecipe(alice, "Second", amount(flour, 200))

	suite.Require().NoError(suite.repository.AddFavorite(ctx, bob.ID, first.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, bob.ID, second.ID))
	suite.Require().NoError(suite.repository.Subscribe(ctx, bob.ID, alice.ID))

	recipes, total, err := suite.repository.ListRecipes(ctx, bob, model.RecipeFilter{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(recipes, 2)

	suite.Equal("Second", recipes[0].Name)
	suite.False(recipes[0].IsFavorited)
	suite.True(recipes[0].IsInShoppingCart)
	suite.Equal("First", recipes[1].Name)
	suite.True(recipes[1].IsFavorited)
	suite.False(recipes[1].IsInShoppingCart)

	for _, recipe := range recipes {
		suite.Equal("alice", recipe.Author.Username)
		suite.True(recipe.Author.IsSubscribed)
		suite.Require().Len(recipe.Ingredients, 1)
		suite.Equal("Flour", recipe.Ingredients[0].Ingredient.Name)
	}
}

func (suite *RecipeStoreSuite) TestListRecipes_AnonymousViewerSeesNoFlags() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	recipe := suite.addRecipe(alice, "Soup")

	suite.Require().NoError(suite.repository.AddFavorite(ctx, alice.ID, recipe.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, recipe.ID))

	recipes, _, err := suite.repository.ListRecipes(ctx, nil, model.RecipeFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(recipes, 1)

	suite.False(recipes[0].IsFavorited)
	suite.False(recipes[0].IsInShoppingCart)
	suite.False(recipes[0].Author.IsSubscribed)
}

func (suite *RecipeStoreSuite) TestListRecipes_QueryCountDoesNotGrowWithRows() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	flour := suite.addIngredient("Flour", "g")

	suite.addRecipe(alice, "One", amount(flour, 1))

	queries := 0
	suite.Require().NoError(suite.DB.Callback().Query().After("gorm:query").Register("test:count_queries", func(*gorm.DB) {
		queries++
	}))

	_, _, err := suite.repository.ListRecipes(ctx, alice, model.RecipeFilter{})
	suite.Require().NoError(err)
	single := queries

	for _, name := range []string{"Two", "Three", "Four", "Five"} {
		suite.addRecipe(suite.addUser(name), name, amount(flour, 2))
	}

	queries = 0
	recipes, _, err := suite.repository.ListRecipes(ctx, alice, model.RecipeFilter{})
	suite.Require().NoError(err)
	suite.Len(recipes, 5)
	suite.Equal(single, queries)
}

func (suite *RecipeStoreSuite) TestListRecipes_Filters() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")

	lunch := model.Tag{Name: "Обед", Slug: "lunch", Color: pointy.String("#49B64E")}
	dinner := model.Tag{Name: "Ужин", Slug: "dinner", Color: pointy.String("#8775D2")}
	suite.Require().NoError(suite.DB.Create(&lunch).Error)
	suite.Require().NoError(suite.DB.Create(&dinner).Error)

	soup, err := suite.repository.CreateRecipe(ctx, alice.ID, model.RecipeInput{Name: "Soup", Text: "t", CookingTime: 5, TagIDs: []uint{lunch.ID}})
	suite.Require().NoError(err)
	steak, err := suite.repository.CreateRecipe(ctx, bob.ID, model.RecipeInput{Name: "Steak", Text: "t", CookingTime: 5, TagIDs: []uint{dinner.ID}})
	suite.Require().NoError(err)
	_, err = suite.repository.CreateRecipe(ctx, bob.ID, model.RecipeInput{Name: "Tea", Text: "t", CookingTime: 5})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddFavorite(ctx, alice.ID, steak.ID))

	names := func(filter model.RecipeFilter) []string {
		recipes, total, err := suite.repository.ListRecipes(ctx, alice, filter)
		suite.Require().NoError(err)
		if filter.Page.Size == 0 {
			suite.Equal(int64(len(recipes)), total)
		}

		result := make([]string, 0, len(recipes))
		for _, recipe := range recipes {
			result = append(result, recipe.Name)
		}

		return result
	}

	suite.Equal([]string{"Soup"}, names(model.RecipeFilter{TagSlugs: []string{"lunch"}}))
	suite.Equal([]string{"Steak", "Soup"}, names(model.RecipeFilter{TagSlugs: []string{"lunch", "dinner"}}))
	suite.Equal([]string{"Tea", "Steak"}, names(model.RecipeFilter{AuthorID: pointy.Uint(bob.ID)}))
	suite.Equal([]string{"Steak"}, names(model.RecipeFilter{IsFavorited: pointy.Bool(true)}))
	suite.Equal([]string{"Tea", "Soup"}, names(model.RecipeFilter{IsFavorited: pointy.Bool(false)}))
	suite.Empty(names(model.RecipeFilter{IsInShoppingCart: pointy.Bool(true)}))

	paged, total, err := suite.repository.ListRecipes(ctx, alice, model.RecipeFilter{Page: model.Page{Number: 3, Size: 1}})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(paged, 1)
	suite.Equal(soup.Name, paged[0].Name)
}

func (suite *RecipeStoreSuite) TestCreateRecipe_RejectsUnknownTag() {
	alice := suite.addUser("alice")

	recipe, err := suite.repository.CreateRecipe(suite.T().Context(), alice.ID, model.RecipeInput{
		Name: "Soup", Text: "t", CookingTime: 5, TagIDs: []uint{404},
	})

	suite.Nil(recipe)
	suite.ErrorIs(err, repository.ErrUnknownTags)

	var count int64
	suite.Require().NoError(suite.DB.Model(&model.Recipe{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *RecipeStoreSuite) TestUpdateRecipe_ReplacesIngredients() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	flour := suite.addIngredient("Flour", "g")
	eggs := suite.addIngredient("Eggs", "pcs")
	milk := suite.addIngredient("Milk", "ml")

	recipe := suite.addRecipe(alice, "Pancakes", amount(flour, 200), amount(eggs, 2))

	err := suite.repository.UpdateRecipe(ctx, recipe.ID, model.RecipeUpdate{
		Name:        pointy.String("Crepes"),
		Ingredients: []model.IngredientAmount{amount(milk, 500)},
	})
	suite.Require().NoError(err)

	updated, err := suite.repository.GetRecipe(ctx, alice, recipe.ID)
	suite.Require().NoError(err)

	suite.Equal("Crepes", updated.Name)
	suite.Equal(alice.ID, updated.AuthorID)
	suite.Require().Len(updated.Ingredients, 1)
	suite.Equal("Milk", updated.Ingredients[0].Ingredient.Name)
	suite.Equal(500, updated.Ingredients[0].Amount)
}

func (suite *RecipeStoreSuite) TestUpdateRecipe_KeepsOldIngredientsWhenReplacementFails() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	flour := suite.addIngredient("Flour", "g")

	recipe := suite.addRecipe(alice, "Bread", amount(flour, 500))

	err := suite.repository.UpdateRecipe(ctx, recipe.ID, model.RecipeUpdate{
		Name:        pointy.String("Cake"),
		Ingredients: []model.IngredientAmount{{IngredientID: 404, Amount: 1}},
	})
	suite.ErrorIs(err, repository.ErrUnknownIngredients)

	unchanged, err := suite.repository.GetRecipe(ctx, alice, recipe.ID)
	suite.Require().NoError(err)

	suite.Equal("Bread", unchanged.Name)
	suite.Require().Len(unchanged.Ingredients, 1)
	suite.Equal(500, unchanged.Ingredients[0].Amount)
}

func (suite *RecipeStoreSuite) TestDeleteRecipe_CascadesToEdges() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	flour := suite.addIngredient("Flour", "g")
	recipe := suite.addRecipe(alice, "Bread", amount(flour, 500))

	suite.Require().NoError(suite.repository.AddFavorite(ctx, alice.ID, recipe.ID))
	suite.Require().NoError(suite.repository.AddToShoppingCart(ctx, alice.ID, recipe.ID))

	suite.Require().NoError(suite.repository.DeleteRecipe(ctx, recipe.ID))

	for _, table := range []any{&model.IngredientInRecipe{}, &model.FavoriteRecipe{}, &model.ShoppingCart{}} {
		var count int64
		suite.Require().NoError(suite.DB.Model(table).Count(&count).Error)
		suite.Zero(count)
	}

	_, err := suite.repository.GetRecipe(ctx, alice, recipe.ID)
	suite.ErrorIs(err, repository.ErrRecipeNotFound)
}
