package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

type RecipeRepository interface {
	CreateRecipe(ctx context.Context, authorID uint, input model.RecipeInput) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uint) error
	GetRecipe(ctx context.Context, viewer *model.User, recipeID uint) (*model.Recipe, error)
	ListRecipes(ctx context.Context, viewer *model.User, filter model.RecipeFilter) ([]*model.Recipe, int64, error)
	UpdateRecipe(ctx context.Context, recipeID uint, update model.RecipeUpdate) error
}

func (r *Repository) ListRecipes(ctx context.Context, viewer *model.User, filter model.RecipeFilter) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		total   int64
	)

	viewerID := model.ViewerID(viewer)

	result := filterRecipes(r.DB.WithContext(ctx).Model(&model.Recipe{}), viewerID, filter).Count(&total)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	query := annotateRecipes(r.DB.WithContext(ctx), viewerID)
	query = filterRecipes(query, viewerID, filter).Order(newestFirst)

	if result := paginate(query, filter.Page).Find(&recipes); result.Error != nil {
		r.Logger.Error("error listing recipes", zap.Uint("viewer_id", viewerID), zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return recipes, total, nil
}

func (r *Repository) GetRecipe(ctx context.Context, viewer *model.User, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := annotateRecipes(r.DB.WithContext(ctx), model.ViewerID(viewer)).
		Where("recipes.id = ?", recipeID).
		Take(&recipe)
	if result.Error != nil {
		return nil, notFound(result.Error, ErrRecipeNotFound)
	}

	return &recipe, nil
}

// CreateRecipe inserts the recipe with its tag links and ingredient rows as one unit.
func (r *Repository) CreateRecipe(ctx context.Context, authorID uint, input model.RecipeInput) (*model.Recipe, error) {
	recipe := model.Recipe{
		Name:        input.Name,
		Text:        input.Text,
		Image:       input.Image,
		CookingTime: input.CookingTime,
		AuthorID:    authorID,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkTags(tx, input.TagIDs); err != nil {
			return err
		}

		if err := checkIngredients(tx, input.Ingredients); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(&recipe).Error; err != nil {
			return err
		}

		if err := insertTags(tx, recipe.ID, input.TagIDs); err != nil {
			return err
		}

		return insertIngredients(tx, recipe.ID, input.Ingredients)
	})
	if err != nil {
		r.Logger.Error("error creating recipe", zap.Uint("author_id", authorID), zap.String("name", input.Name), zap.Error(err))

		return nil, err
	}

	return &recipe, nil
}

// UpdateRecipe applies a partial update. Tags and ingredients, when present,
// are replaced wholesale inside the same transaction as the scalar fields.
func (r *Repository) UpdateRecipe(ctx context.Context, recipeID uint, update model.RecipeUpdate) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if fields := updatedFields(update); len(fields) > 0 {
			result := tx.Model(&model.Recipe{ID: recipeID}).Updates(fields)
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return ErrRecipeNotFound
			}
		}

		if update.TagIDs != nil {
			if err := checkTags(tx, update.TagIDs); err != nil {
				return err
			}

			if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeTag{}).Error; err != nil {
				return err
			}

			if err := insertTags(tx, recipeID, update.TagIDs); err != nil {
				return missingRecipe(err)
			}
		}

		if update.Ingredients != nil {
			if err := checkIngredients(tx, update.Ingredients); err != nil {
				return err
			}

			if err := tx.Where("recipe_id = ?", recipeID).Delete(&model.IngredientInRecipe{}).Error; err != nil {
				return err
			}

			return missingRecipe(insertIngredients(tx, recipeID, update.Ingredients))
		}

		return nil
	})
	if err != nil {
		r.Logger.Error("error updating recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
	}

	return err
}

// DeleteRecipe removes the recipe. Ingredient rows, tag links and collection
// edges go with it through their ON DELETE CASCADE foreign keys.
func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Recipe{}, recipeID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// missingRecipe reports a foreign key failure on a recipe's child rows as the
// recipe being gone. Tags and ingredients are checked before the insert.
func missingRecipe(err error) error {
	if isForeignKeyViolation(err) {
		return ErrRecipeNotFound
	}

	return err
}

func updatedFields(update model.RecipeUpdate) map[string]any {
	fields := make(map[string]any)

	if update.Name != nil {
		fields["name"] = *update.Name
	}

	if update.Text != nil {
		fields["text"] = *update.Text
	}

	if update.Image != nil {
		fields["image"] = *update.Image
	}

	if update.CookingTime != nil {
		fields["cooking_time"] = *update.CookingTime
	}

	return fields
}

func checkTags(tx *gorm.DB, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&model.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(tagIDs)) {
		return ErrUnknownTags
	}

	return nil
}

func checkIngredients(tx *gorm.DB, ingredients []model.IngredientAmount) error {
	if len(ingredients) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ids = append(ids, ingredient.IngredientID)
	}

	var count int64
	if err := tx.Model(&model.Ingredient{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(ids)) {
		return ErrUnknownIngredients
	}

	return nil
}

func insertTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]model.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, model.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}

	return tx.Create(&links).Error
}

func insertIngredients(tx *gorm.DB, recipeID uint, ingredients []model.IngredientAmount) error {
	if len(ingredients) == 0 {
		return nil
	}

	rows := make([]model.IngredientInRecipe, 0, len(ingredients))
	for _, ingredient := range ingredients {
		rows = append(rows, model.IngredientInRecipe{
			RecipeID:     recipeID,
			IngredientID: ingredient.IngredientID,
			Amount:       ingredient.Amount,
		})
	}

	return tx.Omit(clause.Associations).Create(&rows).Error
}
