package apiv1connect

import (
	"context"
	"errors"
	"net/http"

	"github.com/bufbuild/connect-go"

	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
)

type CatalogServiceHandler interface {
	ListTags(context.Context, *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.ListTagsResponse], error)
	GetTag(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Tag], error)
	ListIngredients(context.Context, *connect.Request[apiv1.ListIngredientsRequest]) (*connect.Response[apiv1.ListIngredientsResponse], error)
	GetIngredient(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Ingredient], error)
}

func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()

	handle(mux, CatalogServiceListTags, svc.ListTags, opts)
	handle(mux, CatalogServiceGetTag, svc.GetTag, opts)
	handle(mux, CatalogServiceListIngredients, svc.ListIngredients, opts)
	handle(mux, CatalogServiceGetIngredient, svc.GetIngredient, opts)

	return "/" + CatalogServiceName + "/", mux
}

// UnimplementedCatalogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCatalogServiceHandler struct{}

func (UnimplementedCatalogServiceHandler) ListTags(context.Context, *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.ListTagsResponse], error) {
	return nil, unimplemented(CatalogServiceListTags)
}

func (UnimplementedCatalogServiceHandler) GetTag(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Tag], error) {
	return nil, unimplemented(CatalogServiceGetTag)
}

func (UnimplementedCatalogServiceHandler) ListIngredients(context.Context, *connect.Request[apiv1.ListIngredientsRequest]) (*connect.Response[apiv1.ListIngredientsResponse], error) {
	return nil, unimplemented(CatalogServiceListIngredients)
}

func (UnimplementedCatalogServiceHandler) GetIngredient(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Ingredient], error) {
	return nil, unimplemented(CatalogServiceGetIngredient)
}

func unimplemented(procedure Procedure) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New(procedure.Name[1:]+" is not implemented"))
}
