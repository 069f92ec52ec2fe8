package repository

import (
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

// Correlated sub-queries computing the viewer-relative fields. Each one is
// parameterised by the viewer id and evaluated by the store against the outer
// row, so an annotated listing costs a single round trip whatever its size.
const (
	isFavoritedExpr      = "EXISTS (SELECT 1 FROM favorite_recipes fr WHERE fr.recipe_id = recipes.id AND fr.user_id = ?)"
	isInShoppingCartExpr = "EXISTS (SELECT 1 FROM shopping_carts sc WHERE sc.recipe_id = recipes.id AND sc.user_id = ?)"
	isSubscribedExpr     = "EXISTS (SELECT 1 FROM subscriptions s WHERE s.author_id = users.id AND s.user_id = ?)"
	recipesCountExpr     = "(SELECT COUNT(*) FROM recipes r WHERE r.author_id = users.id)"
)

const (
	annotatedRecipeColumns = "recipes.*, " + isFavoritedExpr + " AS is_favorited, " + isInShoppingCartExpr + " AS is_in_shopping_cart"
	annotatedUserColumns   = "users.*, " + isSubscribedExpr + " AS is_subscribed"
	annotatedAuthorColumns = annotatedUserColumns + ", " + recipesCountExpr + " AS recipes_count"
	newestFirst            = "recipes.created_at DESC, recipes.id DESC"
)

// annotateRecipes selects recipe rows with is_favorited and is_in_shopping_cart
// for the viewer, and preloads authors annotated with is_subscribed together
// with tags and ingredients. Anonymous viewers (id 0) get false everywhere.
func annotateRecipes(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Model(&model.Recipe{}).
		Select(annotatedRecipeColumns, viewerID, viewerID).
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return annotateUsers(db, viewerID)
		}).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredient_in_recipes.id ASC")
		}).
		Preload("Ingredients.Ingredient")
}

func annotateUsers(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Select(annotatedUserColumns, viewerID)
}

// annotateAuthors extends the user annotation with recipes_count and preloads
// the author's recipes, newest first.
func annotateAuthors(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Model(&model.User{}).
		Select(annotatedAuthorColumns, viewerID).
		Preload("Recipes", func(db *gorm.DB) *gorm.DB {
			return db.Order(newestFirst)
		})
}

// filterRecipes narrows a recipe query without touching its select list, so the
// same conditions serve both the count and the page.
func filterRecipes(db *gorm.DB, viewerID uint, filter model.RecipeFilter) *gorm.DB {
	if len(filter.TagSlugs) > 0 {
		db = db.Where("recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt INNER JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)", filter.TagSlugs)
	}

	if filter.AuthorID != nil {
		db = db.Where("recipes.author_id = ?", *filter.AuthorID)
	}

	if filter.IsFavorited != nil {
		db = db.Where(negateUnless(*filter.IsFavorited, isFavoritedExpr), viewerID)
	}

	if filter.IsInShoppingCart != nil {
		db = db.Where(negateUnless(*filter.IsInShoppingCart, isInShoppingCartExpr), viewerID)
	}

	return db
}

func negateUnless(keep bool, expr string) string {
	if keep {
		return expr
	}

	return "NOT " + expr
}

func paginate(db *gorm.DB, page model.Page) *gorm.DB {
	if page.Size <= 0 {
		return db
	}

	return db.Offset(page.Offset()).Limit(page.Size)
}
