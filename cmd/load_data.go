package cmd

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/dataset"
	"droscher.com/Foodgram/pkg/repository"
)

type LoadDataCmd struct {
	ConfigFile string `default:".foodgram.toml" help:"Path to config file"                short:"c"`
	DataDir    string `default:"data"           help:"Directory holding the seed files" short:"d"`
}

// Run loads ingredients.json and tags.json. Without tags.json the tags are
// generated from tags.txt and written back as tags.json.
func (l *LoadDataCmd) Run(ctx *Context) error {
	logger := adminLogger(ctx)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(l.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	background := context.Background()

	var errs error

	multierr.AppendInto(&errs, l.loadIngredients(background, repo, logger))
	multierr.AppendInto(&errs, l.loadTags(background, repo, logger))

	return errs
}

func (l *LoadDataCmd) loadIngredients(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	ingredients, err := dataset.ReadIngredients(l.DataDir)
	if err != nil {
		logger.Error("ingredients not loaded", zap.String("file", dataset.IngredientsFile), zap.Error(err))

		return err
	}

	loaded, err := repo.LoadIngredients(ctx, ingredients)
	if err != nil {
		logger.Error("ingredients not loaded", zap.Error(err))

		return err
	}

	logLoad(logger, "ingredients", loaded, len(ingredients))

	return nil
}

func (l *LoadDataCmd) loadTags(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	tags, err := dataset.ReadTags(l.DataDir)
	if err == nil {
		loaded, err := repo.LoadTags(ctx, tags)
		if err != nil {
			logger.Error("tags not loaded", zap.Error(err))

			return err
		}

		logLoad(logger, "tags", loaded, len(tags))

		return nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		logger.Error("tags not loaded", zap.String("file", dataset.TagsFile), zap.Error(err))

		return err
	}

	logger.Info("tags.json not found, generating tags", zap.String("file", dataset.TagNamesFile))

	names, err := dataset.ReadTagNames(l.DataDir)
	if err != nil {
		return err
	}

	generated, err := dataset.GenerateTags(names, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))) //nolint:gosec // colors need no crypto
	if err != nil {
		return err
	}

	loaded, err := repo.LoadTags(ctx, dataset.ToModel(generated))
	if err != nil {
		logger.Error("generated tags not loaded", zap.Error(err))

		return err
	}

	logLoad(logger, "tags", loaded, len(generated))

	if !loaded {
		return nil
	}

	if err := dataset.WriteTags(l.DataDir, generated); err != nil {
		return err
	}

	logger.Info("tags saved", zap.String("file", dataset.TagsFile))

	return nil
}

func logLoad(logger *zap.Logger, table string, loaded bool, rows int) {
	if loaded {
		logger.Info("table loaded", zap.String("table", table), zap.Int("rows", rows))

		return
	}

	logger.Info("table already has data, skipped", zap.String("table", table))
}
