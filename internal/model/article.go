package model

import (
	"strings"

	"github.com/google/uuid"
)

// DescriptionPlaceholder is shown when an article has no description
const DescriptionPlaceholder = "..."

// TitleMarker prefixes every card title
const TitleMarker = "► "

// Article is one displayed headline
type Article struct {
	ID          string
	Title       string
	Description string
	URL         string
}

// NewArticle builds an Article, substituting the placeholder for a blank
// description. The ID is derived from the URL so the same story keeps the same
// ID across fetches; it is not a uniqueness key.
func NewArticle(title, description, url string) Article {
	description = strings.TrimSpace(description)
	if description == "" {
		description = DescriptionPlaceholder
	}

	return Article{
		ID:          ArticleID(url, title),
		Title:       strings.TrimSpace(title),
		Description: description,
		URL:         strings.TrimSpace(url),
	}
}

// ArticleID returns a name-based UUID for the article, keyed on URL or, when
// the URL is blank, on title
func ArticleID(url, title string) string {
	key := strings.TrimSpace(url)
	if key == "" {
		key = strings.TrimSpace(title)
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// DisplayTitle returns the title as rendered on a card
func (a Article) DisplayTitle() string {
	return TitleMarker + a.Title
}

// HasLink reports whether the article carries a URL worth linking to
func (a Article) HasLink() bool {
	return strings.HasPrefix(a.URL, "http://") || strings.HasPrefix(a.URL, "https://")
}
