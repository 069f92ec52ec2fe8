package model

import (
	"fmt"
	"time"
)

type Recipe struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Text        string `gorm:"not null"`
	Image       string
	CookingTime int       `gorm:"not null"`
	AuthorID    uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Author      User                 `gorm:"foreignKey:AuthorID"`
	Tags        []Tag                `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE"`
	Ingredients []IngredientInRecipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`

	// Viewer-relative fields, only populated by annotated queries.
	IsFavorited      bool `gorm:"->;-:migration"`
	IsInShoppingCart bool `gorm:"->;-:migration"`
}

func (r Recipe) String() string {
	return fmt.Sprintf("Recipe(%d, %s)", r.ID, r.Name)
}

// RecipeTag is the join row between recipes and tags.
type RecipeTag struct {
	RecipeID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey"`
}

type IngredientInRecipe struct {
	ID           uint `gorm:"primaryKey"`
	RecipeID     uint `gorm:"not null;index"`
	IngredientID uint `gorm:"not null"`
	Amount       int  `gorm:"not null"`

	Ingredient Ingredient `gorm:"constraint:OnDelete:CASCADE"`
}

func (i IngredientInRecipe) String() string {
	return fmt.Sprintf("IngredientInRecipe(%d, %d x%d)", i.RecipeID, i.IngredientID, i.Amount)
}

// IngredientAmount references a catalog ingredient with the amount used by a recipe.
type IngredientAmount struct {
	IngredientID uint
	Amount       int
}

// RecipeInput holds the writable fields of a recipe.
type RecipeInput struct {
	Name        string
	Text        string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []IngredientAmount
}

// RecipeUpdate holds a partial recipe change. Nil fields are left untouched.
type RecipeUpdate struct {
	Name        *string
	Text        *string
	Image       *string
	CookingTime *int
	TagIDs      []uint
	Ingredients []IngredientAmount
}

type RecipeFilter struct {
	TagSlugs         []string
	AuthorID         *uint
	IsFavorited      *bool
	IsInShoppingCart *bool
	Page             Page
}
