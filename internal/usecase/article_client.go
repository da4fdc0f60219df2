package usecase

import (
	"context"

	"techstudio/internal/domain/model"
	"techstudio/internal/domain/ports"
)

const publishedDateDesc = "publishedDate:desc"

// ArticleClient answers the rendering layer's article queries. It never
// returns an error: every failure is logged and reported as an empty or
// absent result.
type ArticleClient struct {
	source ports.ArticleSource
	logger ports.Logger
}

// NewArticleClient constructs an ArticleClient over the given source.
func NewArticleClient(source ports.ArticleSource, logger ports.Logger) *ArticleClient {
	return &ArticleClient{
		source: source,
		logger: logger,
	}
}

// FetchArticles returns every article, newest first as ordered by the CMS.
func (c *ArticleClient) FetchArticles(ctx context.Context) []model.Article {
	return c.list(ctx, "fetch articles", ports.ArticleQuery{Sort: publishedDateDesc})
}

// FetchArticleBySlug returns the first article whose slug matches, or nil.
func (c *ArticleClient) FetchArticleBySlug(ctx context.Context, slug string) *model.Article {
	articles := c.list(ctx, "fetch article", ports.ArticleQuery{
		Filters: []ports.Filter{{Field: "slug", Value: slug}},
	})
	if len(articles) == 0 {
		return nil
	}
	return &articles[0]
}

// FetchArticlesByCategory returns the articles in category, newest first as
// ordered by the CMS.
func (c *ArticleClient) FetchArticlesByCategory(ctx context.Context, category string) []model.Article {
	return c.list(ctx, "fetch articles by category", ports.ArticleQuery{
		Filters: []ports.Filter{{Field: "category", Value: category}},
		Sort:    publishedDateDesc,
	})
}

func (c *ArticleClient) list(ctx context.Context, operation string, query ports.ArticleQuery) []model.Article {
	if c.source == nil {
		c.logError(ctx, operation, errNoSource)
		return []model.Article{}
	}

	page, err := c.source.ListArticles(ctx, query)
	if err != nil {
		c.logError(ctx, operation, err)
		return []model.Article{}
	}
	if page == nil || page.Articles == nil {
		return []model.Article{}
	}

	if page.Pagination != nil && page.Pagination.PageCount > 1 && c.logger != nil {
		c.logger.Debug(ctx, "only the first page was fetched",
			"operation", operation,
			"page_count", page.Pagination.PageCount,
			"total", page.Pagination.Total,
		)
	}

	return page.Articles
}

func (c *ArticleClient) logError(ctx context.Context, operation string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Error(ctx, "article fetch failed", "operation", operation, "error", err)
}
