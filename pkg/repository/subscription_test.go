package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type SubscriptionTestSuite struct {
	RepositorySuite
}

func TestSubscriptionTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionTestSuite))
}

func (suite *SubscriptionTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *SubscriptionTestSuite) TestSubscribe_DuplicateIsConflict() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE id = $1 AND "users"."deleted_at" IS NULL`)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "subscriptions"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: model.SubscriptionConstraint})
	suite.mock.ExpectRollback()

	err := suite.repository.Subscribe(context.Background(), 3, 9)

	suite.ErrorIs(err, repository.ErrAlreadySubscribed)
	suite.Equal("conflict: already subscribed to this author", err.Error())
}

func (suite *SubscriptionTestSuite) TestUnsubscribe_MissingAuthor() {
	suite.mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := suite.repository.Unsubscribe(context.Background(), 3, 9)

	suite.ErrorIs(err, repository.ErrUserNotFound)
}

type SubscriptionStoreSuite struct {
	StoreSuite
}

func TestSubscriptionStoreSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionStoreSuite))
}

func (suite *SubscriptionStoreSuite) TestListSubscriptions_AnnotatesAuthors() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")
	carol := suite.addUser("carol")

	suite.addRecipe(alice, "Soup")
	suite.addRecipe(alice, "Stew")

	suite.Require().NoError(suite.repository.Subscribe(ctx, carol.ID, alice.ID))
	suite.Require().NoError(suite.repository.Subscribe(ctx, carol.ID, bob.ID))

	authors, total, err := suite.repository.ListSubscriptions(ctx, *carol, model.Page{})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(authors, 2)

	suite.Equal("alice", authors[0].Username)
	suite.True(authors[0].IsSubscribed)
	suite.Equal(int64(2), authors[0].RecipesCount)
	suite.Require().Len(authors[0].Recipes, 2)
	suite.Equal("Stew", authors[0].Recipes[0].Name)

	suite.Equal("bob", authors[1].Username)
	suite.True(authors[1].IsSubscribed)
	suite.Zero(authors[1].RecipesCount)
	suite.Empty(authors[1].Recipes)
}

func (suite *SubscriptionStoreSuite) TestUnsubscribe_RemovesOnlyThatEdge() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")

	suite.Require().NoError(suite.repository.Subscribe(ctx, bob.ID, alice.ID))
	suite.Require().NoError(suite.repository.Subscribe(ctx, alice.ID, bob.ID))
	suite.Require().NoError(suite.repository.Unsubscribe(ctx, bob.ID, alice.ID))

	suite.ErrorIs(suite.repository.Unsubscribe(ctx, bob.ID, alice.ID), repository.ErrNotSubscribed)

	author, err := suite.repository.GetAuthor(ctx, bob, alice.ID)
	suite.Require().NoError(err)
	suite.False(author.IsSubscribed)

	author, err = suite.repository.GetAuthor(ctx, alice, bob.ID)
	suite.Require().NoError(err)
	suite.True(author.IsSubscribed)
}

func (suite *SubscriptionStoreSuite) TestSubscribe_Twice() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")

	suite.Require().NoError(suite.repository.Subscribe(ctx, bob.ID, alice.ID))
	suite.ErrorIs(suite.repository.Subscribe(ctx, bob.ID, alice.ID), repository.ErrAlreadySubscribed)
}

func (suite *SubscriptionStoreSuite) TestGetUser_AnnotatesForViewer() {
	ctx := suite.T().Context()
	alice := suite.addUser("alice")
	bob := suite.addUser("bob")

	suite.Require().NoError(suite.repository.Subscribe(ctx, bob.ID, alice.ID))

	user, err := suite.repository.GetUser(ctx, bob, alice.ID)
	suite.Require().NoError(err)
	suite.True(user.IsSubscribed)

	user, err = suite.repository.GetUser(ctx, nil, alice.ID)
	suite.Require().NoError(err)
	suite.False(user.IsSubscribed)

	users, total, err := suite.repository.ListUsers(ctx, bob, model.Page{Number: 1, Size: 1})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(users, 1)
	suite.Equal("alice", users[0].Username)
	suite.True(users[0].IsSubscribed)

	_, err = suite.repository.GetUser(ctx, bob, 404)
	suite.ErrorIs(err, repository.ErrUserNotFound)
}

func (suite *SubscriptionStoreSuite) TestGetUserFromEmail() {
	alice := suite.addUser("alice")

	user, err := suite.repository.GetUserFromEmail(suite.T().Context(), "alice@foodgram.test")
	suite.Require().NoError(err)
	suite.Equal(alice.ID, user.ID)

	_, err = suite.repository.GetUserFromEmail(suite.T().Context(), "nobody@foodgram.test")
	suite.ErrorIs(err, repository.ErrUserNotFound)
}
