package server

import (
	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
)

// pageOf resolves page parameters against the configured defaults. Page
// numbers start at 1, a zero limit means the default page size.
func pageOf(conf configs.Recipes, number int, limit int) model.Page {
	page := model.Page{Number: max(number, 1), Size: limit}

	if page.Size <= 0 {
		page.Size = conf.PageSize
	}

	if conf.MaxPageSize > 0 && page.Size > conf.MaxPageSize {
		page.Size = conf.MaxPageSize
	}

	return page
}
