package apiv1

type ListUsersRequest struct {
	Page  int `json:"page"  validate:"min=0"`
	Limit int `json:"limit" validate:"min=0"`
}

type ListUsersResponse struct {
	Count   int64   `json:"count"`
	Results []*User `json:"results"`
}

type SubscribeRequest struct {
	ID           uint64 `json:"id"            validate:"required"`
	RecipesLimit *int   `json:"recipes_limit" validate:"omitempty,min=0"`
}

type ListSubscriptionsRequest struct {
	Page         int  `json:"page"          validate:"min=0"`
	Limit        int  `json:"limit"         validate:"min=0"`
	RecipesLimit *int `json:"recipes_limit" validate:"omitempty,min=0"`
}

type ListSubscriptionsResponse struct {
	Count   int64     `json:"count"`
	Results []*Author `json:"results"`
}
