package repository

import (
	"context"
	"strings"

	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

type CatalogRepository interface {
	GetIngredient(ctx context.Context, ingredientID uint) (*model.Ingredient, error)
	GetTag(ctx context.Context, tagID uint) (*model.Tag, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	SearchIngredients(ctx context.Context, query string) ([]*model.Ingredient, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *Repository) ListTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Order("name ASC").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetTag(ctx context.Context, tagID uint) (*model.Tag, error) {
	var tag model.Tag

	if result := r.DB.WithContext(ctx).First(&tag, tagID); result.Error != nil {
		return nil, notFound(result.Error, ErrTagNotFound)
	}

	return &tag, nil
}

func (r *Repository) GetIngredient(ctx context.Context, ingredientID uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient

	if result := r.DB.WithContext(ctx).First(&ingredient, ingredientID); result.Error != nil {
		return nil, notFound(result.Error, ErrIngredientNotFound)
	}

	return &ingredient, nil
}

// SearchIngredients returns ingredients whose name contains query, ignoring
// case. Names starting with the query rank first, ties are broken by name.
func (r *Repository) SearchIngredients(ctx context.Context, query string) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	db := r.DB.WithContext(ctx)

	if len(query) == 0 {
		if result := db.Order("name ASC").Find(&ingredients); result.Error != nil {
			return nil, result.Error
		}

		return ingredients, nil
	}

	escaped := likeEscaper.Replace(query)

	result := db.Where("name ILIKE ?", "%"+escaped+"%").
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN name ILIKE ? THEN 0 ELSE 1 END, name ASC",
			Vars:               []any{escaped + "%"},
			WithoutParentheses: true,
		}}).
		Find(&ingredients)
	if result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

// GetOrCreateIngredient returns the catalog ingredient with this name and unit, creating it if needed.
func (r *Repository) GetOrCreateIngredient(ctx context.Context, name string, unit string) (*model.Ingredient, error) {
	ingredient := model.Ingredient{Name: name, MeasurementUnit: unit}

	result := r.DB.WithContext(ctx).
		Where(model.Ingredient{Name: name, MeasurementUnit: unit}).
		FirstOrCreate(&ingredient)
	if result.Error != nil {
		return nil, result.Error
	}

	return &ingredient, nil
}

// LoadTags bulk inserts tags. It is a no-op when the table already holds rows.
func (r *Repository) LoadTags(ctx context.Context, tags []model.Tag) (bool, error) {
	return loadIfEmpty(ctx, r, &model.Tag{}, tags)
}

// LoadIngredients bulk inserts ingredients. It is a no-op when the table already holds rows.
func (r *Repository) LoadIngredients(ctx context.Context, ingredients []model.Ingredient) (bool, error) {
	return loadIfEmpty(ctx, r, &model.Ingredient{}, ingredients)
}

const loadBatchSize = 500

func loadIfEmpty[T any](ctx context.Context, r *Repository, table *T, rows []T) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(table).Count(&count).Error; err != nil {
		return false, err
	}

	if count > 0 || len(rows) == 0 {
		return false, nil
	}

	if err := r.DB.WithContext(ctx).CreateInBatches(&rows, loadBatchSize).Error; err != nil {
		return false, err
	}

	return true, nil
}
