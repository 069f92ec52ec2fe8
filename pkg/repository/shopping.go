package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

// GetShoppingList reduces the user's shopping cart to distinct recipe names and
// ingredient totals grouped by (name, unit). Both reads share one snapshot; cart
// changes committed while they run are not reflected.
func (r *Repository) GetShoppingList(ctx context.Context, userID uint) (*model.ShoppingList, error) {
	list := model.ShoppingList{
		RecipeNames: []string{},
		Items:       []model.ShoppingListItem{},
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table("recipes").
			Joins("INNER JOIN shopping_carts sc ON sc.recipe_id = recipes.id").
			Where("sc.user_id = ?", userID).
			Distinct("recipes.name").
			Order("recipes.name ASC").
			Pluck("recipes.name", &list.RecipeNames)
		if result.Error != nil {
			return result.Error
		}

		return tx.Table("ingredient_in_recipes iir").
			Select("i.name AS name, i.measurement_unit AS measurement_unit, SUM(iir.amount) AS total_amount").
			Joins("INNER JOIN ingredients i ON i.id = iir.ingredient_id").
			Joins("INNER JOIN shopping_carts sc ON sc.recipe_id = iir.recipe_id").
			Where("sc.user_id = ?", userID).
			Group("i.name, i.measurement_unit").
			Order("i.name ASC, i.measurement_unit ASC").
			Scan(&list.Items).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		r.Logger.Error("error building shopping list", zap.Uint("user_id", userID), zap.Error(err))

		return nil, err
	}

	return &list, nil
}
