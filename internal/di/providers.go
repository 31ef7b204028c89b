package di

import (
	"log/slog"
	"os"
	"time"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/news"
)

// AppName scopes the config directory and file name
const AppName = "headlines"

func provideSlogLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func provideConfigStore() *config.Store {
	return config.DefaultStore(AppName)
}

func provideNewsClient(settings *config.Settings, logger *slog.Logger) *news.Client {
	// The per-fetch deadline comes from the caller's context; the client timeout is only a ceiling
	return news.NewClient(
		news.WithQuerySource(settings),
		news.WithTimeout(config.MaxRequestTimeout*time.Second),
		news.WithLogger(logger),
	)
}
