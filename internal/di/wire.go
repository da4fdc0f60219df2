//go:build wireinject

package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"techstudio/internal/adapter/logging"
	"techstudio/internal/adapter/strapi"
	"techstudio/internal/app"
	"techstudio/internal/config"
	"techstudio/internal/domain/ports"
	"techstudio/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(file config.File) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideArticleSource,
		usecase.NewArticleClient,
		app.New,
		provideSchedule,
	)
	return nil, nil
}

// Logs go to stderr; stdout carries command output.
func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stderr, cfg.LogLevel)
}

func provideArticleSource(cfg *config.Config, logger ports.Logger) ports.ArticleSource {
	return strapi.NewClient(cfg.StrapiURL, cfg.RequestTimeout, logger)
}

func provideSchedule(cfg *config.Config) string {
	return cfg.RefreshCron
}
