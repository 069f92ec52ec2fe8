package repository_test

import (
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

// RepositorySuite runs against a mocked postgres connection and asserts the SQL sent to it.
type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

// StoreSuite runs against a migrated in-memory sqlite database, for behaviour
// that depends on real rows rather than on query text.
type StoreSuite struct {
	suite.Suite
	DB         *gorm.DB
	repository repository.Repository
}

func (suite *StoreSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(repository.Migrate(db))

	suite.DB = db
	suite.repository = repository.Repository{DB: db, Logger: zap.NewNop()}
}

func (suite *StoreSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *StoreSuite) addUser(username string) *model.User {
	user, err := suite.repository.AddUser(suite.T().Context(), model.User{Username: username, Email: username + "@foodgram.test"})
	suite.Require().NoError(err)

	return user
}

func (suite *StoreSuite) addIngredient(name string, unit string) *model.Ingredient {
	ingredient, err := suite.repository.GetOrCreateIngredient(suite.T().Context(), name, unit)
	suite.Require().NoError(err)

	return ingredient
}

func (suite *StoreSuite) addRecipe(author *model.User, name string, ingredients ...model.IngredientAmount) *model.Recipe {
	recipe, err := suite.repository.CreateRecipe(suite.T().Context(), author.ID, model.RecipeInput{
		Name:        name,
		Text:        name + " text",
		Image:       "recipes/images/" + name + ".png",
		CookingTime: 10,
		Ingredients: ingredients,
	})
	suite.Require().NoError(err)

	return recipe
}

func amount(ingredient *model.Ingredient, value int) model.IngredientAmount {
	return model.IngredientAmount{IngredientID: ingredient.ID, Amount: value}
}
