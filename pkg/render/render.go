// Package render turns an aggregated shopping list into a downloadable document.
package render

import (
	"bytes"
	"context"
	"fmt"
	"iter"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Renderer consumes the recipe names and ingredient groups of a shopping list.
// Both sequences may be empty.
type Renderer interface {
	Render(ctx context.Context, recipes iter.Seq[string], ingredients iter.Seq[model.ShoppingListItem]) (*Document, error)
}

const (
	textFilename    = "shopping_list.txt"
	textContentType = "text/plain; charset=utf-8"
	defaultTitle    = "Foodgram"
)

type TextRenderer struct {
	Title  string
	Footer string
}

func NewTextRenderer(conf configs.ShoppingList) *TextRenderer {
	return &TextRenderer{Title: conf.Title, Footer: conf.Footer}
}

func (t *TextRenderer) Render(ctx context.Context, recipes iter.Seq[string], ingredients iter.Seq[model.ShoppingListItem]) (*Document, error) {
	var buffer bytes.Buffer

	title := t.Title
	if len(title) == 0 {
		title = defaultTitle
	}

	fmt.Fprintf(&buffer, "%s\n\n", title)

	buffer.WriteString("Список рецептов:\n")

	for name := range recipes {
		fmt.Fprintf(&buffer, "• %s\n", name)
	}

	buffer.WriteString("\nСписок ингредиентов:\n")

	for item := range ingredients {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Fprintf(&buffer, "• %s (%s) - %d\n", item.Name, item.MeasurementUnit, item.TotalAmount)
	}

	footer := t.Footer
	if len(footer) == 0 {
		footer = title
	}

	fmt.Fprintf(&buffer, "\n%s\n", footer)

	return &Document{Filename: textFilename, ContentType: textContentType, Content: buffer.Bytes()}, nil
}
