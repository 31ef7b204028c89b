//go:build wireinject

package di

import (
	"fyne.io/fyne/v2"
	"github.com/google/wire"

	"github.com/ytget/headlines/internal/app"
	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/news"
	"github.com/ytget/headlines/internal/refresh"
	"github.com/ytget/headlines/internal/ui"
)

// InitializeApp wires the application components together.
func InitializeApp(fyneApp fyne.App, window fyne.Window) (*app.App, error) {
	wire.Build(
		provideSlogLogger,
		config.NewSettings,
		provideConfigStore,
		provideNewsClient,
		wire.Bind(new(news.Fetcher), new(*news.Client)),
		ui.NewRootUI,
		refresh.NewScheduler,
		app.New,
	)
	return nil, nil
}
