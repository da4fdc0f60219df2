package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"techstudio/internal/domain/model"
	"techstudio/internal/domain/ports"
	"techstudio/internal/usecase"
)

const (
	refreshTimeout = 2 * time.Minute
	stopTimeout    = 5 * time.Second
)

// App owns the article client and the watch scheduler.
type App struct {
	cron     *cron.Cron
	articles *usecase.ArticleClient
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(articles *usecase.ArticleClient, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		articles: articles,
		logger:   logger,
		schedule: schedule,
	}
}

// Articles returns the client used by one-shot commands.
func (a *App) Articles() *usecase.ArticleClient {
	return a.articles
}

// Run probes the CMS once immediately and then according to the cron
// schedule until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first refresh immediately")
	a.Refresh(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

// Refresh fetches the article listing and logs what the CMS currently serves.
func (a *App) Refresh(ctx context.Context) []model.Article {
	start := time.Now()
	articles := a.articles.FetchArticles(ctx)

	args := []any{"count", len(articles), "duration", time.Since(start)}
	if len(articles) > 0 {
		args = append(args, "latest_slug", articles[0].Slug, "latest_published", articles[0].PublishedDate)
	}
	a.logger.Info(ctx, "articles refreshed", args...)
	return articles
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		a.Refresh(ctx)
	})
	return err
}
