package apiv1

type ListRecipesRequest struct {
	Page             int      `json:"page"                validate:"min=0"`
	Limit            int      `json:"limit"               validate:"min=0"`
	Tags             []string `json:"tags"                validate:"omitempty,dive,required"`
	Author           *uint64  `json:"author"`
	IsFavorited      *bool    `json:"is_favorited"`
	IsInShoppingCart *bool    `json:"is_in_shopping_cart"`
}

type ListRecipesResponse struct {
	Count   int64     `json:"count"`
	Results []*Recipe `json:"results"`
}

type IngredientAmount struct {
	ID     uint64 `json:"id"     validate:"required"`
	Amount int    `json:"amount" validate:"ingredient_amount"`
}

type CreateRecipeRequest struct {
	Ingredients []IngredientAmount `json:"ingredients"  validate:"required,min=1,unique=ID,dive"`
	Tags        []uint64           `json:"tags"         validate:"required,min=1,unique,dive,required"`
	Image       string             `json:"image"        validate:"required"`
	Name        string             `json:"name"         validate:"required,max=200"`
	Text        string             `json:"text"         validate:"required"`
	CookingTime int                `json:"cooking_time" validate:"cooking_time"`
}

// UpdateRecipeRequest changes only the fields that are present. A present
// ingredient or tag list replaces the stored one and must not be empty.
type UpdateRecipeRequest struct {
	ID          uint64             `json:"id"           validate:"required"`
	Ingredients []IngredientAmount `json:"ingredients"  validate:"omitempty,min=1,unique=ID,dive"`
	Tags        []uint64           `json:"tags"         validate:"omitempty,min=1,unique,dive,required"`
	Image       *string            `json:"image"        validate:"omitempty,min=1"`
	Name        *string            `json:"name"         validate:"omitempty,min=1,max=200"`
	Text        *string            `json:"text"         validate:"omitempty,min=1"`
	CookingTime *int               `json:"cooking_time" validate:"omitempty,cooking_time"`
}

type DownloadShoppingCartResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}
