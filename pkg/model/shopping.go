package model

import (
	"iter"
	"slices"
)

// ShoppingListItem is one aggregation group: an ingredient name under a single unit.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	TotalAmount     int64
}

// ShoppingList is the reduced content of a user's shopping cart.
type ShoppingList struct {
	RecipeNames []string
	Items       []ShoppingListItem
}

func (s *ShoppingList) Recipes() iter.Seq[string] {
	return slices.Values(s.RecipeNames)
}

func (s *ShoppingList) Ingredients() iter.Seq[ShoppingListItem] {
	return slices.Values(s.Items)
}

func (s *ShoppingList) IsEmpty() bool {
	return len(s.RecipeNames) == 0 && len(s.Items) == 0
}
