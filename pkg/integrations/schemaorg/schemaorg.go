// Package schemaorg imports recipes published as schema.org Recipe JSON-LD.
package schemaorg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	IntegrationName = "schema_org"
	userAgent       = "Mozilla/5.0 (compatible; FoodgramImporter/1.0)"
)

var ErrNoRecipe = errors.New("no schema.org recipe found")

// ScrapedRecipe is the recipe as published by the page, before catalog matching.
type ScrapedRecipe struct {
	SourceURL   string
	Name        string
	Text        string
	Image       string
	CookingTime int
	Ingredients []IngredientLine
	Categories  []string
}

type SchemaOrgIntegration struct {
	allowedDomains []string
	logger         *zap.Logger
}

func NewSchemaOrgIntegration(allowedDomains []string, logger *zap.Logger) *SchemaOrgIntegration {
	return &SchemaOrgIntegration{allowedDomains: allowedDomains, logger: logger}
}

// FindRecipe visits the page and returns the first Recipe node of its JSON-LD blocks.
func (s *SchemaOrgIntegration) FindRecipe(ctx context.Context, url string) (*ScrapedRecipe, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains(s.allowedDomains...),
		colly.UserAgent(userAgent),
		colly.StdlibContext(ctx),
	)

	var (
		errs   error
		recipe *ScrapedRecipe
	)

	collector.OnHTML("script[type='application/ld+json']", func(element *colly.HTMLElement) {
		if recipe != nil {
			return
		}

		node, err := findRecipeNode([]byte(element.Text))
		if multierr.AppendInto(&errs, err) {
			s.logger.Warn("failed to parse JSON-LD block", zap.String("url", url), zap.Error(err))

			return
		}

		if node == nil {
			return
		}

		recipe = node.toScraped(url)
		s.logger.Info("successfully scraped recipe", zap.String("url", url), zap.String("name", recipe.Name))
	})

	collector.OnError(func(response *colly.Response, err error) {
		s.logger.Error("error while scraping recipe page", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	s.logger.Info("scraping recipe page", zap.String("url", url))

	if err := collector.Visit(url); err != nil {
		return nil, fmt.Errorf("visiting %s: %w", url, err)
	}

	if recipe == nil {
		return nil, multierr.Append(fmt.Errorf("%w at %s", ErrNoRecipe, url), errs)
	}

	return recipe, nil
}

// stringList accepts either a single string or a list of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = stringList{single}

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	*l = many

	return nil
}

func (l stringList) contains(value string) bool {
	for _, item := range l {
		if strings.EqualFold(item, value) {
			return true
		}
	}

	return false
}

type recipeNode struct {
	Type         stringList      `json:"@type"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Image        json.RawMessage `json:"image"`
	Ingredients  []string        `json:"recipeIngredient"`
	Instructions json.RawMessage `json:"recipeInstructions"`
	TotalTime    string          `json:"totalTime"`
	CookTime     string          `json:"cookTime"`
	PrepTime     string          `json:"prepTime"`
	Category     stringList      `json:"recipeCategory"`
}

// findRecipeNode walks a JSON-LD document, which may be a single node, a
// list of nodes or a node with an @graph, and returns the first Recipe.
func findRecipeNode(data []byte) (*recipeNode, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, nil //nolint:nilnil // empty block
	}

	if data[0] == '[' {
		var nodes []json.RawMessage
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, err
		}

		for _, raw := range nodes {
			node, err := findRecipeNode(raw)
			if err != nil || node != nil {
				return node, err
			}
		}

		return nil, nil //nolint:nilnil // no recipe in this list
	}

	var envelope struct {
		Graph []json.RawMessage `json:"@graph"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Graph) > 0 {
		raw, err := json.Marshal(envelope.Graph)
		if err != nil {
			return nil, err
		}

		return findRecipeNode(raw)
	}

	var node recipeNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	if !node.Type.contains("Recipe") {
		return nil, nil //nolint:nilnil // some other node type
	}

	return &node, nil
}

func (n *recipeNode) toScraped(url string) *ScrapedRecipe {
	scraped := ScrapedRecipe{
		SourceURL:   url,
		Name:        strings.TrimSpace(n.Name),
		Image:       imageURL(n.Image),
		Categories:  n.Category,
		CookingTime: cookingMinutes(n),
	}

	steps := instructions(n.Instructions)
	switch {
	case len(steps) > 0 && len(n.Description) > 0:
		scraped.Text = strings.TrimSpace(n.Description) + "\n\n" + strings.Join(steps, "\n")
	case len(steps) > 0:
		scraped.Text = strings.Join(steps, "\n")
	default:
		scraped.Text = strings.TrimSpace(n.Description)
	}

	for _, line := range n.Ingredients {
		if parsed, ok := ParseIngredientLine(line); ok {
			scraped.Ingredients = append(scraped.Ingredients, parsed)
		}
	}

	return &scraped
}

func cookingMinutes(n *recipeNode) int {
	if minutes, err := ParseDuration(n.TotalTime); err == nil && minutes > 0 {
		return minutes
	}

	cook, _ := ParseDuration(n.CookTime)
	prep, _ := ParseDuration(n.PrepTime)

	return cook + prep
}

// imageURL accepts a URL, a list of URLs or ImageObjects, or a single ImageObject.
func imageURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var url string
	if err := json.Unmarshal(raw, &url); err == nil {
		return url
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, item := range list {
			if url := imageURL(item); len(url) > 0 {
				return url
			}
		}

		return ""
	}

	var object struct {
		URL        string `json:"url"`
		ContentURL string `json:"contentUrl"`
	}
	if err := json.Unmarshal(raw, &object); err == nil {
		if len(object.URL) > 0 {
			return object.URL
		}

		return object.ContentURL
	}

	return ""
}

// instructions flattens text, HowToStep lists and HowToSection lists into lines.
func instructions(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			return nil
		}

		return []string{text}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		var steps []string
		for _, item := range list {
			steps = append(steps, instructions(item)...)
		}

		return steps
	}

	var step struct {
		Text     string          `json:"text"`
		Elements json.RawMessage `json:"itemListElement"`
	}
	if err := json.Unmarshal(raw, &step); err != nil {
		return nil
	}

	if len(step.Elements) > 0 {
		return instructions(step.Elements)
	}

	if text := strings.TrimSpace(step.Text); len(text) > 0 {
		return []string{text}
	}

	return nil
}
