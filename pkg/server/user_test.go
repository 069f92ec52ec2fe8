package server_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bufbuild/connect-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/server"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
	"droscher.com/Foodgram/pkg/validation"
)

type UserTestSuite struct {
	suite.Suite
	userRepo         *mocks.UserRepository
	subscriptionRepo *mocks.SubscriptionRepository
	service          *server.UserServer
	user             *model.User
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (suite *UserTestSuite) SetupTest() {
	suite.userRepo = mocks.NewUserRepository(suite.T())
	suite.subscriptionRepo = mocks.NewSubscriptionRepository(suite.T())
	suite.service = server.NewUserServer(
		suite.userRepo,
		suite.subscriptionRepo,
		validation.New(recipeLimits),
		recipeLimits,
		zaptest.NewLogger(suite.T()),
	)

	suite.user = &model.User{Username: "reader", Email: "reader@example.com"}
	suite.user.ID = 4
}

func author(id uint, recipes int) *model.User {
	user := &model.User{Username: fmt.Sprintf("author%d", id), IsSubscribed: true, RecipesCount: int64(recipes)}
	user.ID = id

	for i := range recipes {
		user.Recipes = append(user.Recipes, model.Recipe{ID: uint(100 + i), Name: fmt.Sprintf("Recipe %d", i), AuthorID: id})
	}

	return user
}

func (suite *UserTestSuite) TestSubscribe_SelfIsRejectedBeforeStore() {
	ctx := withUser(context.Background(), suite.user)

	response, err := suite.service.Subscribe(ctx, connect.NewRequest(&apiv1.SubscribeRequest{ID: 4, RecipesLimit: pointy.Int(-1)}))
	suite.Require().ErrorIs(err, model.ErrSelfSubscription)
	suite.Require().ErrorIs(err, model.ErrValidation)
	suite.Nil(response)
	suite.subscriptionRepo.AssertNotCalled(suite.T(), "Subscribe", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserTestSuite) TestSubscribe_Conflict() {
	ctx := withUser(context.Background(), suite.user)
	conflict := fmt.Errorf("%w: already subscribed to this author", model.ErrConflict)

	suite.subscriptionRepo.EXPECT().Subscribe(ctx, uint(4), uint(8)).Return(conflict)

	response, err := suite.service.Subscribe(ctx, connect.NewRequest(&apiv1.SubscribeRequest{ID: 8}))
	suite.Require().ErrorIs(err, model.ErrConflict)
	suite.Nil(response)
}

func (suite *UserTestSuite) TestSubscribe_TruncatesRecipes() {
	ctx := withUser(context.Background(), suite.user)

	suite.subscriptionRepo.EXPECT().Subscribe(ctx, uint(4), uint(8)).Return(nil)
	suite.subscriptionRepo.EXPECT().GetAuthor(ctx, suite.user, uint(8)).Return(author(8, 3), nil)

	response, err := suite.service.Subscribe(ctx, connect.NewRequest(&apiv1.SubscribeRequest{ID: 8, RecipesLimit: pointy.Int(2)}))
	suite.Require().NoError(err)
	suite.True(response.Msg.IsSubscribed)
	suite.Equal(int64(3), response.Msg.RecipesCount)
	suite.Len(response.Msg.Recipes, 2)
}

func (suite *UserTestSuite) TestSubscribe_NegativeLimitRejected() {
	ctx := withUser(context.Background(), suite.user)

	response, err := suite.service.Subscribe(ctx, connect.NewRequest(&apiv1.SubscribeRequest{ID: 8, RecipesLimit: pointy.Int(-1)}))
	suite.Require().ErrorIs(err, model.ErrValidation)
	suite.Nil(response)
}

func (suite *UserTestSuite) TestUnsubscribe_NotInCollection() {
	ctx := withUser(context.Background(), suite.user)

	suite.subscriptionRepo.EXPECT().Unsubscribe(ctx, uint(4), uint(8)).Return(model.ErrNotInCollection)

	response, err := suite.service.Unsubscribe(ctx, connect.NewRequest(&apiv1.ByIDRequest{ID: 8}))
	suite.Require().ErrorIs(err, model.ErrNotInCollection)
	suite.Nil(response)
}

func (suite *UserTestSuite) TestListSubscriptions() {
	ctx := withUser(context.Background(), suite.user)

	suite.subscriptionRepo.EXPECT().ListSubscriptions(ctx, *suite.user, model.Page{Number: 2, Size: 1}).
		Return([]*model.User{author(9, 4)}, int64(2), nil)

	response, err := suite.service.ListSubscriptions(ctx, connect.NewRequest(&apiv1.ListSubscriptionsRequest{
		Page:         2,
		Limit:        1,
		RecipesLimit: pointy.Int(0),
	}))
	suite.Require().NoError(err)
	suite.Equal(int64(2), response.Msg.Count)
	suite.Require().Len(response.Msg.Results, 1)
	suite.Empty(response.Msg.Results[0].Recipes)
	suite.Equal(int64(4), response.Msg.Results[0].RecipesCount)
}

func (suite *UserTestSuite) TestListSubscriptions_RequiresUser() {
	response, err := suite.service.ListSubscriptions(context.Background(), connect.NewRequest(&apiv1.ListSubscriptionsRequest{}))
	suite.Equal(connect.CodeUnauthenticated, connect.CodeOf(err))
	suite.Nil(response)
}

func (suite *UserTestSuite) TestListUsers_Anonymous() {
	ctx := context.Background()

	suite.userRepo.EXPECT().ListUsers(ctx, (*model.User)(nil), model.Page{Number: 1, Size: 6}).
		Return([]*model.User{suite.user}, int64(1), nil)

	response, err := suite.service.ListUsers(ctx, connect.NewRequest(&apiv1.ListUsersRequest{}))
	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Msg.Count)
	suite.Equal("reader", response.Msg.Results[0].Username)
	suite.False(response.Msg.Results[0].IsSubscribed)
}

func (suite *UserTestSuite) TestGetUser_NotFound() {
	ctx := context.Background()

	suite.userRepo.EXPECT().GetUser(ctx, (*model.User)(nil), uint(42)).Return(nil, model.ErrNotFound)

	response, err := suite.service.GetUser(ctx, connect.NewRequest(&apiv1.ByIDRequest{ID: 42}))
	suite.Require().ErrorIs(err, model.ErrNotFound)
	suite.Nil(response)
}

func (suite *UserTestSuite) TestMe() {
	ctx := withUser(context.Background(), suite.user)

	suite.userRepo.EXPECT().GetUser(ctx, suite.user, uint(4)).Return(suite.user, nil)

	response, err := suite.service.Me(ctx, connect.NewRequest(&apiv1.Empty{}))
	suite.Require().NoError(err)
	suite.Equal("reader@example.com", response.Msg.Email)
}
