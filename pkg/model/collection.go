package model

import (
	"fmt"
	"time"
)

// Names of the unique constraints guarding the collection edges.
const (
	FavoriteConstraint     = "user_recipe_favoriterecipe"
	ShoppingCartConstraint = "user_recipe_shoppingcart"
	SubscriptionConstraint = "user_author_subscriptions"
)

type FavoriteRecipe struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:user_recipe_favoriterecipe"`
	RecipeID  uint `gorm:"not null;uniqueIndex:user_recipe_favoriterecipe"`
	CreatedAt time.Time

	User   User   `gorm:"constraint:OnDelete:CASCADE"`
	Recipe Recipe `gorm:"constraint:OnDelete:CASCADE"`
}

func (f FavoriteRecipe) String() string {
	return fmt.Sprintf("FavoriteRecipe(%d, user %d, recipe %d)", f.ID, f.UserID, f.RecipeID)
}

type ShoppingCart struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:user_recipe_shoppingcart"`
	RecipeID  uint `gorm:"not null;uniqueIndex:user_recipe_shoppingcart"`
	CreatedAt time.Time

	User   User   `gorm:"constraint:OnDelete:CASCADE"`
	Recipe Recipe `gorm:"constraint:OnDelete:CASCADE"`
}

func (s ShoppingCart) String() string {
	return fmt.Sprintf("ShoppingCart(%d, user %d, recipe %d)", s.ID, s.UserID, s.RecipeID)
}

type Subscription struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:user_author_subscriptions"`
	AuthorID  uint `gorm:"not null;uniqueIndex:user_author_subscriptions"`
	CreatedAt time.Time

	User   User `gorm:"constraint:OnDelete:CASCADE"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (s Subscription) String() string {
	return fmt.Sprintf("Subscription(%d, user %d, author %d)", s.ID, s.UserID, s.AuthorID)
}
