package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/repository"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
	"droscher.com/Foodgram/pkg/server/api/v1/apiv1connect"
	"droscher.com/Foodgram/pkg/server/convert"
)

// CatalogServer exposes the read-only tag and ingredient catalogs.
type CatalogServer struct {
	apiv1connect.UnimplementedCatalogServiceHandler
	catalogRepository repository.CatalogRepository
	logger            *zap.Logger
}

func NewCatalogServer(catalogRepo repository.CatalogRepository, logger *zap.Logger) *CatalogServer {
	return &CatalogServer{catalogRepository: catalogRepo, logger: logger}
}

func (c *CatalogServer) ListTags(ctx context.Context, _ *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.ListTagsResponse], error) {
	tags, err := c.catalogRepository.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&apiv1.ListTagsResponse{Tags: convert.TagsFromModel(tags)}), nil
}

func (c *CatalogServer) GetTag(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Tag], error) {
	tag, err := c.catalogRepository.GetTag(ctx, uint(request.Msg.ID))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(convert.TagFromModel(*tag)), nil
}

func (c *CatalogServer) ListIngredients(ctx context.Context, request *connect.Request[apiv1.ListIngredientsRequest]) (*connect.Response[apiv1.ListIngredientsResponse], error) {
	ingredients, err := c.catalogRepository.SearchIngredients(ctx, request.Msg.Name)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&apiv1.ListIngredientsResponse{Ingredients: convert.IngredientsFromModel(ingredients)}), nil
}

func (c *CatalogServer) GetIngredient(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Ingredient], error) {
	ingredient, err := c.catalogRepository.GetIngredient(ctx, uint(request.Msg.ID))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(convert.IngredientFromModel(*ingredient)), nil
}
