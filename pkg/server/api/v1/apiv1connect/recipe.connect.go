package apiv1connect

import (
	"context"
	"net/http"

	"github.com/bufbuild/connect-go"

	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
)

type RecipeServiceHandler interface {
	ListRecipes(context.Context, *connect.Request[apiv1.ListRecipesRequest]) (*connect.Response[apiv1.ListRecipesResponse], error)
	GetRecipe(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error)
	CreateRecipe(context.Context, *connect.Request[apiv1.CreateRecipeRequest]) (*connect.Response[apiv1.Recipe], error)
	UpdateRecipe(context.Context, *connect.Request[apiv1.UpdateRecipeRequest]) (*connect.Response[apiv1.Recipe], error)
	DeleteRecipe(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error)
	AddFavorite(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error)
	RemoveFavorite(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error)
	AddToShoppingCart(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error)
	RemoveFromShoppingCart(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error)
	DownloadShoppingCart(context.Context, *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.DownloadShoppingCartResponse], error)
}

func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()

	handle(mux, RecipeServiceListRecipes, svc.ListRecipes, opts)
	handle(mux, RecipeServiceGetRecipe, svc.GetRecipe, opts)
	handle(mux, RecipeServiceCreateRecipe, svc.CreateRecipe, opts)
	handle(mux, RecipeServiceUpdateRecipe, svc.UpdateRecipe, opts)
	handle(mux, RecipeServiceDeleteRecipe, svc.DeleteRecipe, opts)
	handle(mux, RecipeServiceAddFavorite, svc.AddFavorite, opts)
	handle(mux, RecipeServiceRemoveFavorite, svc.RemoveFavorite, opts)
	handle(mux, RecipeServiceAddToShoppingCart, svc.AddToShoppingCart, opts)
	handle(mux, RecipeServiceRemoveFromShoppingCart, svc.RemoveFromShoppingCart, opts)
	handle(mux, RecipeServiceDownloadShoppingCart, svc.DownloadShoppingCart, opts)

	return "/" + RecipeServiceName + "/", mux
}

// UnimplementedRecipeServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedRecipeServiceHandler struct{}

func (UnimplementedRecipeServiceHandler) ListRecipes(context.Context, *connect.Request[apiv1.ListRecipesRequest]) (*connect.Response[apiv1.ListRecipesResponse], error) {
	return nil, unimplemented(RecipeServiceListRecipes)
}

func (UnimplementedRecipeServiceHandler) GetRecipe(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error) {
	return nil, unimplemented(RecipeServiceGetRecipe)
}

func (UnimplementedRecipeServiceHandler) CreateRecipe(context.Context, *connect.Request[apiv1.CreateRecipeRequest]) (*connect.Response[apiv1.Recipe], error) {
	return nil, unimplemented(RecipeServiceCreateRecipe)
}

func (UnimplementedRecipeServiceHandler) UpdateRecipe(context.Context, *connect.Request[apiv1.UpdateRecipeRequest]) (*connect.Response[apiv1.Recipe], error) {
	return nil, unimplemented(RecipeServiceUpdateRecipe)
}

func (UnimplementedRecipeServiceHandler) DeleteRecipe(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	return nil, unimplemented(RecipeServiceDeleteRecipe)
}

func (UnimplementedRecipeServiceHandler) AddFavorite(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error) {
	return nil, unimplemented(RecipeServiceAddFavorite)
}

func (UnimplementedRecipeServiceHandler) RemoveFavorite(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	return nil, unimplemented(RecipeServiceRemoveFavorite)
}

func (UnimplementedRecipeServiceHandler) AddToShoppingCart(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error) {
	return nil, unimplemented(RecipeServiceAddToShoppingCart)
}

func (UnimplementedRecipeServiceHandler) RemoveFromShoppingCart(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	return nil, unimplemented(RecipeServiceRemoveFromShoppingCart)
}

func (UnimplementedRecipeServiceHandler) DownloadShoppingCart(context.Context, *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.DownloadShoppingCartResponse], error) {
	return nil, unimplemented(RecipeServiceDownloadShoppingCart)
}
