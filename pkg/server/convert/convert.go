package convert

import (
	"go.openly.dev/pointy"

	"droscher.com/Foodgram/pkg/model"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
)

func TagsFromModel(tags []*model.Tag) []*apiv1.Tag {
	pbTags := make([]*apiv1.Tag, 0, len(tags))

	for _, tag := range tags {
		pbTags = append(pbTags, TagFromModel(*tag))
	}

	return pbTags
}

func TagFromModel(tag model.Tag) *apiv1.Tag {
	return &apiv1.Tag{
		ID:    uint64(tag.ID),
		Name:  tag.Name,
		Color: pointy.StringValue(tag.Color, ""),
		Slug:  tag.Slug,
	}
}

func IngredientsFromModel(ingredients []*model.Ingredient) []*apiv1.Ingredient {
	pbIngredients := make([]*apiv1.Ingredient, 0, len(ingredients))

	for _, ingredient := range ingredients {
		pbIngredients = append(pbIngredients, IngredientFromModel(*ingredient))
	}

	return pbIngredients
}

func IngredientFromModel(ingredient model.Ingredient) *apiv1.Ingredient {
	return &apiv1.Ingredient{
		ID:              uint64(ingredient.ID),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func UsersFromModel(users []*model.User) []*apiv1.User {
	pbUsers := make([]*apiv1.User, 0, len(users))

	for _, user := range users {
		pbUsers = append(pbUsers, UserFromModel(*user))
	}

	return pbUsers
}

func UserFromModel(user model.User) *apiv1.User {
	return &apiv1.User{
		ID:           uint64(user.ID),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: user.IsSubscribed,
	}
}

// AuthorFromModel keeps at most recipesLimit recipes when a limit is given.
func AuthorFromModel(user model.User, recipesLimit *int) *apiv1.Author {
	recipes := user.Recipes
	if recipesLimit != nil && *recipesLimit < len(recipes) {
		recipes = recipes[:*recipesLimit]
	}

	author := apiv1.Author{
		User:         *UserFromModel(user),
		Recipes:      make([]*apiv1.ShortRecipe, 0, len(recipes)),
		RecipesCount: user.RecipesCount,
	}

	for _, recipe := range recipes {
		author.Recipes = append(author.Recipes, ShortRecipeFromModel(recipe))
	}

	return &author
}

func AuthorsFromModel(users []*model.User, recipesLimit *int) []*apiv1.Author {
	authors := make([]*apiv1.Author, 0, len(users))

	for _, user := range users {
		authors = append(authors, AuthorFromModel(*user, recipesLimit))
	}

	return authors
}

func ShortRecipeFromModel(recipe model.Recipe) *apiv1.ShortRecipe {
	return &apiv1.ShortRecipe{
		ID:          uint64(recipe.ID),
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}

func RecipesFromModel(recipes []*model.Recipe) []*apiv1.Recipe {
	pbRecipes := make([]*apiv1.Recipe, 0, len(recipes))

	for _, recipe := range recipes {
		pbRecipes = append(pbRecipes, RecipeFromModel(*recipe))
	}

	return pbRecipes
}

func RecipeFromModel(recipe model.Recipe) *apiv1.Recipe {
	pbRecipe := apiv1.Recipe{
		ID:               uint64(recipe.ID),
		Tags:             make([]*apiv1.Tag, 0, len(recipe.Tags)),
		Author:           UserFromModel(recipe.Author),
		Ingredients:      make([]*apiv1.RecipeIngredient, 0, len(recipe.Ingredients)),
		IsFavorited:      recipe.IsFavorited,
		IsInShoppingCart: recipe.IsInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}

	for _, tag := range recipe.Tags {
		pbRecipe.Tags = append(pbRecipe.Tags, TagFromModel(tag))
	}

	for _, ingredient := range recipe.Ingredients {
		pbRecipe.Ingredients = append(pbRecipe.Ingredients, &apiv1.RecipeIngredient{
			ID:              uint64(ingredient.IngredientID),
			Name:            ingredient.Ingredient.Name,
			MeasurementUnit: ingredient.Ingredient.MeasurementUnit,
			Amount:          ingredient.Amount,
		})
	}

	return &pbRecipe
}

func RecipeInputFromRequest(request *apiv1.CreateRecipeRequest) model.RecipeInput {
	return model.RecipeInput{
		Name:        request.Name,
		Text:        request.Text,
		Image:       request.Image,
		CookingTime: request.CookingTime,
		TagIDs:      tagIDs(request.Tags),
		Ingredients: ingredientAmounts(request.Ingredients),
	}
}

func RecipeUpdateFromRequest(request *apiv1.UpdateRecipeRequest) model.RecipeUpdate {
	return model.RecipeUpdate{
		Name:        request.Name,
		Text:        request.Text,
		Image:       request.Image,
		CookingTime: request.CookingTime,
		TagIDs:      tagIDs(request.Tags),
		Ingredients: ingredientAmounts(request.Ingredients),
	}
}

func RecipeFilterFromRequest(request *apiv1.ListRecipesRequest, page model.Page) model.RecipeFilter {
	filter := model.RecipeFilter{
		TagSlugs:         request.Tags,
		IsFavorited:      request.IsFavorited,
		IsInShoppingCart: request.IsInShoppingCart,
		Page:             page,
	}

	if request.Author != nil {
		filter.AuthorID = pointy.Uint(uint(*request.Author))
	}

	return filter
}

// tagIDs keeps nil as nil, so an absent list stays distinguishable from an empty one.
func tagIDs(ids []uint64) []uint {
	if ids == nil {
		return nil
	}

	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		result = append(result, uint(id))
	}

	return result
}

func ingredientAmounts(ingredients []apiv1.IngredientAmount) []model.IngredientAmount {
	if ingredients == nil {
		return nil
	}

	result := make([]model.IngredientAmount, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, model.IngredientAmount{IngredientID: uint(ingredient.ID), Amount: ingredient.Amount})
	}

	return result
}
