package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	ErrRecipeNotFound     = fmt.Errorf("recipe %w", model.ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", model.ErrNotFound)
	ErrTagNotFound        = fmt.Errorf("tag %w", model.ErrNotFound)
	ErrIngredientNotFound = fmt.Errorf("ingredient %w", model.ErrNotFound)

	ErrAlreadyFavorited  = fmt.Errorf("%w: recipe is already in favorites", model.ErrConflict)
	ErrAlreadyInCart     = fmt.Errorf("%w: recipe is already in the shopping cart", model.ErrConflict)
	ErrAlreadySubscribed = fmt.Errorf("%w: already subscribed to this author", model.ErrConflict)

	ErrNotFavorited  = fmt.Errorf("%w: recipe is not in favorites", model.ErrNotInCollection)
	ErrNotInCart     = fmt.Errorf("%w: recipe is not in the shopping cart", model.ErrNotInCollection)
	ErrNotSubscribed = fmt.Errorf("%w: not subscribed to this author", model.ErrNotInCollection)

	ErrUnknownTags        = fmt.Errorf("%w: tags: unknown tag id", model.ErrValidation)
	ErrUnknownIngredients = fmt.Errorf("%w: ingredients: unknown ingredient id", model.ErrValidation)
)

// isUniqueViolation reports whether err was raised by the named unique constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolation
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}

	return err
}
