package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/metrics"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/render"
	"droscher.com/Foodgram/pkg/repository"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
	"droscher.com/Foodgram/pkg/server/api/v1/apiv1connect"
	"droscher.com/Foodgram/pkg/server/convert"
	"droscher.com/Foodgram/pkg/validation"
)

type RecipeServer struct {
	apiv1connect.UnimplementedRecipeServiceHandler
	recipeRepository     repository.RecipeRepository
	collectionRepository repository.CollectionRepository
	validator            *validation.Validator
	renderer             render.Renderer
	conf                 configs.Recipes
	logger               *zap.Logger
}

func NewRecipeServer(
	recipeRepo repository.RecipeRepository,
	collectionRepo repository.CollectionRepository,
	validator *validation.Validator,
	renderer render.Renderer,
	conf configs.Recipes,
	logger *zap.Logger,
) *RecipeServer {
	return &RecipeServer{
		recipeRepository:     recipeRepo,
		collectionRepository: collectionRepo,
		validator:            validator,
		renderer:             renderer,
		conf:                 conf,
		logger:               logger,
	}
}

func (r *RecipeServer) ListRecipes(ctx context.Context, request *connect.Request[apiv1.ListRecipesRequest]) (*connect.Response[apiv1.ListRecipesResponse], error) {
	if err := r.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	filter := convert.RecipeFilterFromRequest(request.Msg, pageOf(r.conf, request.Msg.Page, request.Msg.Limit))

	recipes, total, err := r.recipeRepository.ListRecipes(ctx, auth.UserFromContext(ctx), filter)
	if err != nil {
		return nil, err
	}

	response := apiv1.ListRecipesResponse{Count: total, Results: convert.RecipesFromModel(recipes)}

	return connect.NewResponse(&response), nil
}

func (r *RecipeServer) GetRecipe(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error) {
	if err := r.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	return r.annotatedRecipe(ctx, auth.UserFromContext(ctx), uint(request.Msg.ID))
}

func (r *RecipeServer) CreateRecipe(ctx context.Context, request *connect.Request[apiv1.CreateRecipeRequest]) (*connect.Response[apiv1.Recipe], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	recipe, err := r.recipeRepository.CreateRecipe(ctx, user.ID, convert.RecipeInputFromRequest(request.Msg))
	if err != nil {
		return nil, err
	}

	r.logger.Info("recipe created", zap.Uint("recipe_id", recipe.ID), zap.Uint("author_id", user.ID))

	return r.annotatedRecipe(ctx, user, recipe.ID)
}

func (r *RecipeServer) UpdateRecipe(ctx context.Context, request *connect.Request[apiv1.UpdateRecipeRequest]) (*connect.Response[apiv1.Recipe], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	recipeID := uint(request.Msg.ID)
	if err := r.checkAuthor(ctx, user, recipeID); err != nil {
		return nil, err
	}

	if err := r.recipeRepository.UpdateRecipe(ctx, recipeID, convert.RecipeUpdateFromRequest(request.Msg)); err != nil {
		return nil, err
	}

	return r.annotatedRecipe(ctx, user, recipeID)
}

func (r *RecipeServer) DeleteRecipe(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	recipeID := uint(request.Msg.ID)
	if err := r.checkAuthor(ctx, user, recipeID); err != nil {
		return nil, err
	}

	if err := r.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return nil, err
	}

	r.logger.Info("recipe deleted", zap.Uint("recipe_id", recipeID), zap.Uint("user_id", user.ID))

	return connect.NewResponse(&apiv1.Empty{}), nil
}

func (r *RecipeServer) AddFavorite(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error) {
	return r.addToCollection(ctx, request.Msg, r.collectionRepository.AddFavorite)
}

func (r *RecipeServer) RemoveFavorite(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	return r.removeFromCollection(ctx, request.Msg, r.collectionRepository.RemoveFavorite)
}

func (r *RecipeServer) AddToShoppingCart(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Recipe], error) {
	return r.addToCollection(ctx, request.Msg, r.collectionRepository.AddToShoppingCart)
}

func (r *RecipeServer) RemoveFromShoppingCart(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	return r.removeFromCollection(ctx, request.Msg, r.collectionRepository.RemoveFromShoppingCart)
}

func (r *RecipeServer) DownloadShoppingCart(ctx context.Context, _ *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.DownloadShoppingCartResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	list, err := r.collectionRepository.GetShoppingList(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	metrics.ShoppingListGroups.Observe(float64(len(list.Items)))

	document, err := r.renderer.Render(ctx, list.Recipes(), list.Ingredients())
	if err != nil {
		return nil, err
	}

	response := connect.NewResponse(&apiv1.DownloadShoppingCartResponse{
		Filename:    document.Filename,
		ContentType: document.ContentType,
		Content:     document.Content,
	})
	response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.Filename))

	return response, nil
}

type collectionEdit func(ctx context.Context, userID uint, recipeID uint) error

func (r *RecipeServer) addToCollection(ctx context.Context, request *apiv1.ByIDRequest, add collectionEdit) (*connect.Response[apiv1.Recipe], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.validator.Struct(request); err != nil {
		return nil, err
	}

	if err := add(ctx, user.ID, uint(request.ID)); err != nil {
		return nil, err
	}

	return r.annotatedRecipe(ctx, user, uint(request.ID))
}

func (r *RecipeServer) removeFromCollection(ctx context.Context, request *apiv1.ByIDRequest, remove collectionEdit) (*connect.Response[apiv1.Empty], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.validator.Struct(request); err != nil {
		return nil, err
	}

	if err := remove(ctx, user.ID, uint(request.ID)); err != nil {
		return nil, err
	}

	return connect.NewResponse(&apiv1.Empty{}), nil
}

func (r *RecipeServer) checkAuthor(ctx context.Context, user *model.User, recipeID uint) error {
	recipe, err := r.recipeRepository.GetRecipe(ctx, user, recipeID)
	if err != nil {
		return err
	}

	if !user.CanModify(recipe.AuthorID) {
		return ErrNotRecipeAuthor
	}

	return nil
}

func (r *RecipeServer) annotatedRecipe(ctx context.Context, viewer *model.User, recipeID uint) (*connect.Response[apiv1.Recipe], error) {
	recipe, err := r.recipeRepository.GetRecipe(ctx, viewer, recipeID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(convert.RecipeFromModel(*recipe)), nil
}
