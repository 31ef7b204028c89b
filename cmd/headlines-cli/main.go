// Command headlines-cli prints the current top headlines using the API key
// saved by the desktop app.
//
// Country and page size are the app's defaults (us, 20). The values chosen in
// the app's settings dialog live in the Fyne preferences, which the CLI does
// not read, so it works without a display.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/model"
	"github.com/ytget/headlines/internal/news"
)

const appName = "headlines"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := config.DefaultStore(appName)
	cfg := store.Load()
	if !cfg.HasAPIKey() {
		log.Fatalf("no API key in %s; set one in the Headlines app first", store.Path())
	}

	articles, err := newClient().TopHeadlines(ctx, cfg.APIKey)
	if err != nil {
		var apiErr *news.APIError
		if errors.As(err, &apiErr) {
			log.Fatalf("news API rejected the request: %s", apiErr.Message)
		}
		log.Fatalf("failed to fetch headlines: %v", err)
	}

	if err := printArticles(os.Stdout, articles); err != nil {
		log.Fatalf("failed to print headlines: %v", err)
	}
}

// newClient builds a news client with the app's default country and page size
func newClient(opts ...news.Option) *news.Client {
	base := []news.Option{
		news.WithCountry(config.DefaultCountry),
		news.WithPageSize(config.DefaultPageSize),
	}
	return news.NewClient(append(base, opts...)...)
}

// printArticles writes one numbered row per article followed by its link
func printArticles(w io.Writer, articles []model.Article) error {
	if len(articles) == 0 {
		_, err := fmt.Fprintln(w, "No headlines")
		return err
	}

	writer := tabwriter.NewWriter(w, 0, 2, 4, ' ', 0)
	if _, err := fmt.Fprintln(writer, "Number\tTitle"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, article := range articles {
		if _, err := fmt.Fprintf(writer, "%d\t%s\n", i+1, article.DisplayTitle()); err != nil {
			return fmt.Errorf("failed to write article data: %w", err)
		}
		if article.URL != "" {
			if _, err := fmt.Fprintf(writer, "\t  %s\n", article.URL); err != nil {
				return fmt.Errorf("failed to write article link: %w", err)
			}
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}
