package server

import (
	"context"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
	"droscher.com/Foodgram/pkg/server/api/v1/apiv1connect"
	"droscher.com/Foodgram/pkg/server/convert"
	"droscher.com/Foodgram/pkg/validation"
)

type UserServer struct {
	apiv1connect.UnimplementedUserServiceHandler
	userRepository         repository.UserRepository
	subscriptionRepository repository.SubscriptionRepository
	validator              *validation.Validator
	conf                   configs.Recipes
	logger                 *zap.Logger
}

func NewUserServer(
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
	validator *validation.Validator,
	conf configs.Recipes,
	logger *zap.Logger,
) *UserServer {
	return &UserServer{
		userRepository:         userRepo,
		subscriptionRepository: subscriptionRepo,
		validator:              validator,
		conf:                   conf,
		logger:                 logger,
	}
}

func (u *UserServer) ListUsers(ctx context.Context, request *connect.Request[apiv1.ListUsersRequest]) (*connect.Response[apiv1.ListUsersResponse], error) {
	if err := u.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	page := pageOf(u.conf, request.Msg.Page, request.Msg.Limit)

	users, total, err := u.userRepository.ListUsers(ctx, auth.UserFromContext(ctx), page)
	if err != nil {
		return nil, err
	}

	response := apiv1.ListUsersResponse{Count: total, Results: convert.UsersFromModel(users)}

	return connect.NewResponse(&response), nil
}

func (u *UserServer) GetUser(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.User], error) {
	if err := u.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	user, err := u.userRepository.GetUser(ctx, auth.UserFromContext(ctx), uint(request.Msg.ID))
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(convert.UserFromModel(*user)), nil
}

func (u *UserServer) Me(ctx context.Context, _ *connect.Request[apiv1.Empty]) (*connect.Response[apiv1.User], error) {
	viewer, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepository.GetUser(ctx, viewer, viewer.ID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(convert.UserFromModel(*user)), nil
}

// Subscribe rejects subscribing to oneself before anything else is checked.
func (u *UserServer) Subscribe(ctx context.Context, request *connect.Request[apiv1.SubscribeRequest]) (*connect.Response[apiv1.Author], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	authorID := uint(request.Msg.ID)
	if authorID == user.ID {
		return nil, model.ErrSelfSubscription
	}

	if err := u.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	if err := u.subscriptionRepository.Subscribe(ctx, user.ID, authorID); err != nil {
		return nil, err
	}

	author, err := u.subscriptionRepository.GetAuthor(ctx, user, authorID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(convert.AuthorFromModel(*author, request.Msg.RecipesLimit)), nil
}

func (u *UserServer) Unsubscribe(ctx context.Context, request *connect.Request[apiv1.ByIDRequest]) (*connect.Response[apiv1.Empty], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	if err := u.subscriptionRepository.Unsubscribe(ctx, user.ID, uint(request.Msg.ID)); err != nil {
		return nil, err
	}

	return connect.NewResponse(&apiv1.Empty{}), nil
}

func (u *UserServer) ListSubscriptions(ctx context.Context, request *connect.Request[apiv1.ListSubscriptionsRequest]) (*connect.Response[apiv1.ListSubscriptionsResponse], error) {
	user, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.validator.Struct(request.Msg); err != nil {
		return nil, err
	}

	page := pageOf(u.conf, request.Msg.Page, request.Msg.Limit)

	authors, total, err := u.subscriptionRepository.ListSubscriptions(ctx, *user, page)
	if err != nil {
		return nil, err
	}

	response := apiv1.ListSubscriptionsResponse{
		Count:   total,
		Results: convert.AuthorsFromModel(authors, request.Msg.RecipesLimit),
	}

	return connect.NewResponse(&response), nil
}
