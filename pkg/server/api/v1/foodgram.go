// Package apiv1 holds the request and response messages of the Foodgram API.
// Messages travel as JSON; field names follow the json tags.
package apiv1

type Empty struct{}

type Tag struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type Ingredient struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type User struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// Author is a user as shown in subscription listings.
type Author struct {
	User
	Recipes      []*ShortRecipe `json:"recipes"`
	RecipesCount int64          `json:"recipes_count"`
}

type RecipeIngredient struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type Recipe struct {
	ID               uint64              `json:"id"`
	Tags             []*Tag              `json:"tags"`
	Author           *User               `json:"author"`
	Ingredients      []*RecipeIngredient `json:"ingredients"`
	IsFavorited      bool                `json:"is_favorited"`
	IsInShoppingCart bool                `json:"is_in_shopping_cart"`
	Name             string              `json:"name"`
	Image            string              `json:"image"`
	Text             string              `json:"text"`
	CookingTime      int                 `json:"cooking_time"`
}

type ShortRecipe struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

type ByIDRequest struct {
	ID uint64 `json:"id" validate:"required"`
}
