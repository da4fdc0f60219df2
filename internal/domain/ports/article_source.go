package ports

import (
	"context"

	"techstudio/internal/domain/model"
)

// Filter is an equality constraint on a single article field.
type Filter struct {
	Field string
	Value string
}

// ArticleQuery describes one list request against the CMS.
type ArticleQuery struct {
	Filters []Filter
	Sort    string
}

// ArticleSource retrieves article records from the CMS.
type ArticleSource interface {
	ListArticles(ctx context.Context, query ArticleQuery) (*model.ArticlePage, error)
}
