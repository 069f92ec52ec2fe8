// Package dataset reads and writes the seed files for the tag and ingredient catalogs.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gosimple/slug"
	"go.openly.dev/pointy"

	"droscher.com/Foodgram/pkg/model"
)

const (
	IngredientsFile = "ingredients.json"
	TagsFile        = "tags.json"
	TagNamesFile    = "tags.txt"

	slugLanguage = "ru"
)

var (
	ErrNotUnique  = errors.New("tag data is not unique")
	ErrInvalidRow = errors.New("invalid seed row")
	slugPattern   = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	colorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)
	validate      = newValidator()
)

type Ingredient struct {
	Name            string `json:"name"             validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

type Tag struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Slug  string `json:"slug"  validate:"required,max=200,tag_slug"`
	Color string `json:"color" validate:"omitempty,tag_color"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("tag_slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("tag_color", func(fl validator.FieldLevel) bool {
		return colorPattern.MatchString(fl.Field().String())
	})

	return v
}

// validateRows rejects the file at the first row that breaks a field rule.
func validateRows[T any](file string, rows []T) error {
	for i := range rows {
		if err := validate.Struct(rows[i]); err != nil {
			return fmt.Errorf("%w: %s row %d: %w", ErrInvalidRow, file, i+1, err)
		}
	}

	return nil
}

func ReadIngredients(dir string) ([]model.Ingredient, error) {
	var rows []Ingredient
	if err := readJSON(filepath.Join(dir, IngredientsFile), &rows); err != nil {
		return nil, err
	}

	if err := validateRows(IngredientsFile, rows); err != nil {
		return nil, err
	}

	ingredients := make([]model.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, model.Ingredient{Name: row.Name, MeasurementUnit: row.MeasurementUnit})
	}

	return ingredients, nil
}

func ReadTags(dir string) ([]model.Tag, error) {
	var rows []Tag
	if err := readJSON(filepath.Join(dir, TagsFile), &rows); err != nil {
		return nil, err
	}

	if err := validateRows(TagsFile, rows); err != nil {
		return nil, err
	}

	return ToModel(rows), nil
}

// ReadTagNames reads the comma separated tag names of tags.txt.
func ReadTagNames(dir string) ([]string, error) {
	content, err := os.ReadFile(filepath.Join(dir, TagNamesFile))
	if err != nil {
		return nil, err
	}

	var names []string

	for name := range strings.SplitSeq(string(content), ",") {
		if name = strings.TrimSpace(name); len(name) > 0 {
			names = append(names, name)
		}
	}

	return names, nil
}

// GenerateTags builds tags with transliterated slugs and distinct random colors.
// Names and slugs must be unique.
func GenerateTags(names []string, random *rand.Rand) ([]Tag, error) {
	seenNames := make(map[string]bool, len(names))
	seenSlugs := make(map[string]bool, len(names))
	seenColors := make(map[string]bool, len(names))

	tags := make([]Tag, 0, len(names))

	for _, name := range names {
		tagSlug := slug.MakeLang(name, slugLanguage)
		if seenNames[name] || seenSlugs[tagSlug] {
			return nil, fmt.Errorf("%w: %q", ErrNotUnique, name)
		}

		seenNames[name] = true
		seenSlugs[tagSlug] = true

		color := randomColor(random)
		for seenColors[color] {
			color = randomColor(random)
		}

		seenColors[color] = true

		tags = append(tags, Tag{Name: name, Slug: tagSlug, Color: color})
	}

	if err := validateRows(TagsFile, tags); err != nil {
		return nil, err
	}

	return tags, nil
}

func randomColor(random *rand.Rand) string {
	return fmt.Sprintf("#%06X", random.IntN(0x1000000))
}

// WriteTags stores generated tags as tags.json so later loads reuse them.
func WriteTags(dir string, tags []Tag) error {
	content, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, TagsFile), content, 0o644) //nolint:gosec // seed data is not secret
}

func ToModel(rows []Tag) []model.Tag {
	tags := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		tag := model.Tag{Name: row.Name, Slug: row.Slug}
		if len(row.Color) > 0 {
			tag.Color = pointy.String(row.Color)
		}

		tags = append(tags, tag)
	}

	return tags
}

func readJSON(path string, target any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(content, target); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	return nil
}
