package apiv1connect

import (
	"context"
	"net/http"

	"github.com/bufbuild/connect-go"

	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
)

type UserServiceHandler interface {
	ListUsers(context.Context, *connect.Request[apiv1.ListUsersRequest]) (*connect.Response[apiv1.ListUsersResponse], error)
	GetUser(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.User], error)
	Me(context.Context, *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.User], error)
	Subscribe(context.Context, *connect.Request[apiv1.SubscribeRequest]) (*connect.Response[apiv1.Author], error)
	Unsubscribe(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error)
	ListSubscriptions(context.Context, *connect.Request[apiv1.ListSubscriptionsRequest]) (*connect.Response[apiv1.ListSubscriptionsResponse], error)
}

func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()

	handle(mux, UserServiceListUsers, svc.ListUsers, opts)
	handle(mux, UserServiceGetUser, svc.GetUser, opts)
	handle(mux, UserServiceMe, svc.Me, opts)
	handle(mux, UserServiceSubscribe, svc.Subscribe, opts)
	handle(mux, UserServiceUnsubscribe, svc.Unsubscribe, opts)
	handle(mux, UserServiceListSubscriptions, svc.ListSubscriptions, opts)

	return "/" + UserServiceName + "/", mux
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) ListUsers(context.Context, *connect.Request[apiv1.ListUsersRequest]) (*connect.Response[apiv1.ListUsersResponse], error) {
	return nil, unimplemented(UserServiceListUsers)
}

func (UnimplementedUserServiceHandler) GetUser(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.User], error) {
	return nil, unimplemented(UserServiceGetUser)
}

func (UnimplementedUserServiceHandler) Me(context.Context, *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.User], error) {
	return nil, unimplemented(UserServiceMe)
}

func (UnimplementedUserServiceHandler) Subscribe(context.Context, *connect.Request[apiv1.SubscribeRequest]) (*connect.Response[apiv1.Author], error) {
	return nil, unimplemented(UserServiceSubscribe)
}

func (UnimplementedUserServiceHandler) Unsubscribe(context.Context, *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	return nil, unimplemented(UserServiceUnsubscribe)
}

func (UnimplementedUserServiceHandler) ListSubscriptions(context.Context, *connect.Request[apiv1.ListSubscriptionsRequest]) (*connect.Response[apiv1.ListSubscriptionsResponse], error) {
	return nil, unimplemented(UserServiceListSubscriptions)
}
