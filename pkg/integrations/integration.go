package integrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/integrations/schemaorg"
	"droscher.com/Foodgram/pkg/metrics"
	"droscher.com/Foodgram/pkg/model"
	apiv1 "droscher.com/Foodgram/pkg/server/api/v1"
	"droscher.com/Foodgram/pkg/server/convert"
	"droscher.com/Foodgram/pkg/validation"
)

var ErrNoTags = fmt.Errorf("%w: none of the recipe categories match a tag", model.ErrValidation)

type Integration interface {
	FindRecipe(ctx context.Context, url string) (*schemaorg.ScrapedRecipe, error)
}

func GetIntegration(name string, allowedDomains []string, logger *zap.Logger) Integration {
	if name == schemaorg.IntegrationName {
		return schemaorg.NewSchemaOrgIntegration(allowedDomains, logger)
	}

	return nil
}

// Store is the part of the repository an import writes through.
type Store interface {
	GetOrCreateIngredient(ctx context.Context, name string, unit string) (*model.Ingredient, error)
	ListTags(ctx context.Context) ([]*model.Tag, error)
	CreateRecipe(ctx context.Context, authorID uint, input model.RecipeInput) (*model.Recipe, error)
}

type Importer struct {
	integration Integration
	store       Store
	validator   *validation.Validator
	logger      *zap.Logger
}

func NewImporter(integration Integration, store Store, validator *validation.Validator, logger *zap.Logger) *Importer {
	return &Importer{integration: integration, store: store, validator: validator, logger: logger}
}

// Import scrapes a recipe page and stores it for the author. Ingredients are
// taken from the catalog or created, categories are matched to tags by slug,
// and fallbackTags are used when no category matches.
func (i *Importer) Import(ctx context.Context, url string, authorID uint, fallbackTags []string) (*model.Recipe, error) {
	recipe, err := i.importRecipe(ctx, url, authorID, fallbackTags)
	if err != nil {
		metrics.ImportedRecipes.WithLabelValues("failed").Inc()

		return nil, err
	}

	metrics.ImportedRecipes.WithLabelValues("imported").Inc()

	return recipe, nil
}

func (i *Importer) importRecipe(ctx context.Context, url string, authorID uint, fallbackTags []string) (*model.Recipe, error) {
	scraped, err := i.integration.FindRecipe(ctx, url)
	if err != nil {
		return nil, err
	}

	tagIDs, err := i.matchTags(ctx, scraped.Categories, fallbackTags)
	if err != nil {
		return nil, err
	}

	request := apiv1.CreateRecipeRequest{
		Tags:        tagIDs,
		Image:       scraped.Image,
		Name:        scraped.Name,
		Text:        scraped.Text,
		CookingTime: scraped.CookingTime,
	}

	request.Ingredients, err = i.resolveIngredients(ctx, scraped.Ingredients)
	if err != nil {
		return nil, err
	}

	if err := i.validator.Struct(&request); err != nil {
		return nil, err
	}

	recipe, err := i.store.CreateRecipe(ctx, authorID, convert.RecipeInputFromRequest(&request))
	if err != nil {
		return nil, err
	}

	i.logger.Info("imported recipe", zap.String("url", url), zap.Uint("recipe_id", recipe.ID), zap.Int("ingredients", len(request.Ingredients)))

	return recipe, nil
}

// resolveIngredients maps parsed lines to catalog ids. Lines naming the same
// catalog ingredient are merged by adding their amounts.
func (i *Importer) resolveIngredients(ctx context.Context, lines []schemaorg.IngredientLine) ([]apiv1.IngredientAmount, error) {
	var (
		errs    error
		amounts []apiv1.IngredientAmount
	)

	positions := make(map[uint]int, len(lines))

	for _, line := range lines {
		ingredient, err := i.store.GetOrCreateIngredient(ctx, line.Name, line.Unit)
		if multierr.AppendInto(&errs, err) {
			i.logger.Error("failed to resolve ingredient", zap.String("name", line.Name), zap.Error(err))

			continue
		}

		if position, found := positions[ingredient.ID]; found {
			amounts[position].Amount += line.Amount

			continue
		}

		positions[ingredient.ID] = len(amounts)
		amounts = append(amounts, apiv1.IngredientAmount{ID: uint64(ingredient.ID), Amount: line.Amount})
	}

	if errs != nil {
		return nil, errs
	}

	return amounts, nil
}

func (i *Importer) matchTags(ctx context.Context, categories []string, fallbackTags []string) ([]uint64, error) {
	tags, err := i.store.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	bySlug := make(map[string]uint, len(tags))
	for _, tag := range tags {
		bySlug[tag.Slug] = tag.ID
		bySlug[slug.Make(tag.Name)] = tag.ID
	}

	lookup := func(names []string) []uint64 {
		var ids []uint64

		seen := map[uint]bool{}

		for _, name := range names {
			id, found := bySlug[slug.Make(strings.TrimSpace(name))]
			if found && !seen[id] {
				seen[id] = true
				ids = append(ids, uint64(id))
			}
		}

		return ids
	}

	if ids := lookup(categories); len(ids) > 0 {
		return ids, nil
	}

	if ids := lookup(fallbackTags); len(ids) > 0 {
		return ids, nil
	}

	return nil, fmt.Errorf("%w (categories: %s)", ErrNoTags, strings.Join(categories, ", "))
}
