package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/integrations"
	"droscher.com/Foodgram/pkg/integrations/schemaorg"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/validation"
)

type ImportRecipeCmd struct {
	ConfigFile  string   `default:".foodgram.toml" help:"Path to config file"                          short:"c"`
	URL         string   `arg:""                   help:"Recipe page to import"`
	AuthorEmail string   `help:"Email of the recipe author" required:""`
	Tags        []string `help:"Tag slugs used when no recipe category matches a tag"`
	Integration string   `default:"schema_org"     help:"Integration used to read the page"`
}

func (i *ImportRecipeCmd) Run(ctx *Context) error {
	logger := adminLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(i.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	integration := integrations.GetIntegration(i.Integration, conf.Integrations.RecipeDomains, logger)
	if integration == nil {
		return fmt.Errorf("unknown integration %q, expected %q", i.Integration, schemaorg.IntegrationName)
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	background := context.Background()

	author, err := repo.GetUserFromEmail(background, i.AuthorEmail)
	if err != nil {
		logger.Error("error finding author", zap.String("email", i.AuthorEmail), zap.Error(err))

		return err
	}

	importer := integrations.NewImporter(integration, repo, validation.New(conf.Recipes), logger)

	recipe, err := importer.Import(background, i.URL, author.ID, i.Tags)
	if err != nil {
		logger.Error("error importing recipe", zap.String("url", i.URL), zap.Error(err))

		return err
	}

	logger.Info("recipe imported", zap.Stringer("recipe", recipe))

	return nil
}
