package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

type CollectionRepository interface {
	AddFavorite(ctx context.Context, userID uint, recipeID uint) error
	AddToShoppingCart(ctx context.Context, userID uint, recipeID uint) error
	GetShoppingList(ctx context.Context, userID uint) (*model.ShoppingList, error)
	RemoveFavorite(ctx context.Context, userID uint, recipeID uint) error
	RemoveFromShoppingCart(ctx context.Context, userID uint, recipeID uint) error
}

func (r *Repository) AddFavorite(ctx context.Context, userID uint, recipeID uint) error {
	if err := r.requireRecipe(ctx, recipeID); err != nil {
		return err
	}

	edge := model.FavoriteRecipe{UserID: userID, RecipeID: recipeID}

	return addEdge(ctx, r, &edge, model.FavoriteConstraint, ErrAlreadyFavorited, ErrRecipeNotFound)
}

func (r *Repository) RemoveFavorite(ctx context.Context, userID uint, recipeID uint) error {
	if err := r.requireRecipe(ctx, recipeID); err != nil {
		return err
	}

	return removeEdge[model.FavoriteRecipe](ctx, r, "recipe_id", userID, recipeID, ErrNotFavorited)
}

func (r *Repository) AddToShoppingCart(ctx context.Context, userID uint, recipeID uint) error {
	if err := r.requireRecipe(ctx, recipeID); err != nil {
		return err
	}

	edge := model.ShoppingCart{UserID: userID, RecipeID: recipeID}

	return addEdge(ctx, r, &edge, model.ShoppingCartConstraint, ErrAlreadyInCart, ErrRecipeNotFound)
}

func (r *Repository) RemoveFromShoppingCart(ctx context.Context, userID uint, recipeID uint) error {
	if err := r.requireRecipe(ctx, recipeID); err != nil {
		return err
	}

	return removeEdge[model.ShoppingCart](ctx, r, "recipe_id", userID, recipeID, ErrNotInCart)
}

func (r *Repository) requireRecipe(ctx context.Context, recipeID uint) error {
	var count int64

	if err := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// addEdge inserts a collection edge. The named unique constraint is the only
// arbiter between concurrent inserts: the loser gets conflict. A target removed
// after the existence check surfaces as missing.
func addEdge[E any](ctx context.Context, r *Repository, edge *E, constraint string, conflict error, missing error) error {
	err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(edge).Error

	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err, constraint):
		return conflict
	case isForeignKeyViolation(err):
		return missing
	default:
		r.Logger.Error("error adding collection edge", zap.String("constraint", constraint), zap.Error(err))

		return err
	}
}

// removeEdge deletes exactly the edge between userID and targetID. A missing
// edge is an error, not a no-op.
func removeEdge[E any](ctx context.Context, r *Repository, targetColumn string, userID uint, targetID uint, missing error) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND "+targetColumn+" = ?", userID, targetID).
		Delete(new(E))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return missing
	}

	return nil
}
