package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"foodgram"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Recipes struct {
	MinCookingTime      int `default:"1"`
	MinIngredientAmount int `default:"1"`
	PageSize            int `default:"6"`
	MaxPageSize         int `default:"100"`
}

type Integrations struct {
	RecipeDomains []string
}

type ShoppingList struct {
	Title  string `default:"Foodgram"`
	Footer string
}

type Config struct {
	DB           DB
	Server       Server
	Auth         Auth
	Recipes      Recipes
	Integrations Integrations
	ShoppingList ShoppingList
}

type Auth struct {
	SecretKey string
	Audience  string
	Domain    string
}

const envPrefix = "FOODGRAM" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Recipes.PageSize > config.Recipes.MaxPageSize {
		return nil, fmt.Errorf("%w: Recipes.PageSize must not exceed Recipes.MaxPageSize", ErrConfiguration)
	}

	return &config, nil
}
