package news

import (
	"context"

	"github.com/ytget/headlines/internal/model"
)

// Fetcher defines the interface for the headline source.
type Fetcher interface {
	// Fetch returns the current headlines for apiKey, or an empty slice on any error
	Fetch(ctx context.Context, apiKey string) []model.Article
}
