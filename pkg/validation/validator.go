// Package validation checks API requests with go-playground/validator. Field
// names in errors follow the json tags of the request, and the recipe limits
// come from configuration.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

const (
	tagCookingTime      = "cooking_time"
	tagIngredientAmount = "ingredient_amount"
)

// FieldError is a single failed rule on a request field.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Error holds every failed rule of one request. It matches model.ErrValidation with errors.Is.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Error())
	}

	return model.ErrValidation.Error() + ": " + strings.Join(messages, "; ")
}

func (e *Error) Unwrap() error {
	return model.ErrValidation
}

type Validator struct {
	validate *validator.Validate
	limits   configs.Recipes
}

func New(limits configs.Recipes) *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation(tagCookingTime, func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= int64(limits.MinCookingTime)
	})
	_ = validate.RegisterValidation(tagIngredientAmount, func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= int64(limits.MinIngredientAmount)
	})

	return &Validator{validate: validate, limits: limits}
}

// Struct validates a request. It returns nil or an *Error.
func (v *Validator) Struct(request any) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", model.ErrValidation, err)
	}

	result := &Error{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fieldError := range validationErrors {
		result.Fields = append(result.Fields, FieldError{
			Field:   fieldName(fieldError),
			Tag:     fieldError.Tag(),
			Param:   fieldError.Param(),
			Message: v.message(fieldError),
		})
	}

	return result
}

// fieldName drops the request type from the namespace, so nested fields read
// like "ingredients[1].amount".
func fieldName(fieldError validator.FieldError) string {
	_, name, found := strings.Cut(fieldError.Namespace(), ".")
	if !found {
		return fieldError.Field()
	}

	return name
}

func (v *Validator) message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if fieldError.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fieldError.Param())
		}

		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "max":
		if fieldError.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fieldError.Param())
		}

		return fmt.Sprintf("must be at most %s", fieldError.Param())
	case "unique":
		return "must not contain duplicates"
	case tagCookingTime:
		return fmt.Sprintf("must be at least %d minute(s)", v.limits.MinCookingTime)
	case tagIngredientAmount:
		return fmt.Sprintf("must be at least %d", v.limits.MinIngredientAmount)
	default:
		return fmt.Sprintf("failed on the %q rule", fieldError.Tag())
	}
}
