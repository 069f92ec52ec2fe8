package apiv1

type ListTagsResponse struct {
	Tags []*Tag `json:"tags"`
}

type ListIngredientsRequest struct {
	Name string `json:"name"`
}

type ListIngredientsResponse struct {
	Ingredients []*Ingredient `json:"ingredients"`
}
