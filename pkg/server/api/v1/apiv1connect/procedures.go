// Package apiv1connect binds the Foodgram services to connect handlers. Every
// procedure is declared once below together with the access it requires.
package apiv1connect

import (
	"cmp"
	"context"
	"net/http"
	"slices"

	"github.com/bufbuild/connect-go"
)

const (
	RecipeServiceName  = "foodgram.v1.RecipeService"
	UserServiceName    = "foodgram.v1.UserService"
	CatalogServiceName = "foodgram.v1.CatalogService"
)

// Access is the identity a procedure requires from its caller.
type Access int

const (
	// Public procedures accept anonymous callers.
	Public Access = iota
	// Authenticated procedures reject anonymous callers.
	Authenticated
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

type Procedure struct {
	Name   string
	Access Access
}

var (
	RecipeServiceListRecipes            = Procedure{"/" + RecipeServiceName + "/ListRecipes", Public}
	RecipeServiceGetRecipe              = Procedure{"/" + RecipeServiceName + "/GetRecipe", Public}
	RecipeServiceCreateRecipe           = Procedure{"/" + RecipeServiceName + "/CreateRecipe", Authenticated}
	RecipeServiceUpdateRecipe           = Procedure{"/" + RecipeServiceName + "/UpdateRecipe", Authenticated}
	RecipeServiceDeleteRecipe           = Procedure{"/" + RecipeServiceName + "/DeleteRecipe", Authenticated}
	RecipeServiceAddFavorite            = Procedure{"/" + RecipeServiceName + "/AddFavorite", Authenticated}
	RecipeServiceRemoveFavorite         = Procedure{"/" + RecipeServiceName + "/RemoveFavorite", Authenticated}
	RecipeServiceAddToShoppingCart      = Procedure{"/" + RecipeServiceName + "/AddToShoppingCart", Authenticated}
	RecipeServiceRemoveFromShoppingCart = Procedure{"/" + RecipeServiceName + "/RemoveFromShoppingCart", Authenticated}
	RecipeServiceDownloadShoppingCart   = Procedure{"/" + RecipeServiceName + "/DownloadShoppingCart", Authenticated}

	UserServiceListUsers         = Procedure{"/" + UserServiceName + "/ListUsers", Public}
	UserServiceGetUser           = Procedure{"/" + UserServiceName + "/GetUser", Public}
	UserServiceMe                = Procedure{"/" + UserServiceName + "/Me", Authenticated}
	UserServiceSubscribe         = Procedure{"/" + UserServiceName + "/Subscribe", Authenticated}
	UserServiceUnsubscribe       = Procedure{"/" + UserServiceName + "/Unsubscribe", Authenticated}
	UserServiceListSubscriptions = Procedure{"/" + UserServiceName + "/ListSubscriptions", Authenticated}

	CatalogServiceListTags        = Procedure{"/" + CatalogServiceName + "/ListTags", Public}
	CatalogServiceGetTag          = Procedure{"/" + CatalogServiceName + "/GetTag", Public}
	CatalogServiceListIngredients = Procedure{"/" + CatalogServiceName + "/ListIngredients", Public}
	CatalogServiceGetIngredient   = Procedure{"/" + CatalogServiceName + "/GetIngredient", Public}
)

var procedures = map[string]Procedure{}

func init() {
	for _, procedure := range []Procedure{
		RecipeServiceListRecipes, RecipeServiceGetRecipe, RecipeServiceCreateRecipe, RecipeServiceUpdateRecipe,
		RecipeServiceDeleteRecipe, RecipeServiceAddFavorite, RecipeServiceRemoveFavorite,
		RecipeServiceAddToShoppingCart, RecipeServiceRemoveFromShoppingCart, RecipeServiceDownloadShoppingCart,
		UserServiceListUsers, UserServiceGetUser, UserServiceMe, UserServiceSubscribe, UserServiceUnsubscribe,
		UserServiceListSubscriptions,
		CatalogServiceListTags, CatalogServiceGetTag, CatalogServiceListIngredients, CatalogServiceGetIngredient,
	} {
		procedures[procedure.Name] = procedure
	}
}

// AccessFor returns the access declared for a procedure path. Unknown paths
// require an authenticated caller.
func AccessFor(name string) Access {
	procedure, found := procedures[name]
	if !found {
		return Authenticated
	}

	return procedure.Access
}

// Procedures lists every declared procedure, ordered by path.
func Procedures() []Procedure {
	result := make([]Procedure, 0, len(procedures))
	for _, procedure := range procedures {
		result = append(result, procedure)
	}

	slices.SortFunc(result, func(a, b Procedure) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return result
}

func handle[Req, Res any](
	mux *http.ServeMux,
	procedure Procedure,
	unary func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error),
	opts []connect.HandlerOption,
) {
	mux.Handle(procedure.Name, connect.NewUnaryHandler(procedure.Name, unary, opts...))
}
