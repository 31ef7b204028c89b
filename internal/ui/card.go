package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/headlines/internal/model"
)

// NewsCard renders one article: title, description, a right-aligned link and a separator
type NewsCard struct {
	article model.Article

	title *widget.Label
	desc  *widget.Label
	link  *widget.Hyperlink
	root  *fyne.Container
}

// NewNewsCard creates a card. onOpen is called when the link is tapped.
func NewNewsCard(article model.Article, readMore string, visited bool, onOpen func(model.Article)) *NewsCard {
	c := &NewsCard{article: article}

	c.title = widget.NewLabelWithStyle(article.DisplayTitle(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	c.title.Wrapping = fyne.TextWrapWord

	c.desc = widget.NewLabel(article.Description)
	c.desc.Wrapping = fyne.TextWrapWord

	var linkURL *url.URL
	if article.HasLink() {
		if u, err := url.Parse(article.URL); err == nil {
			linkURL = u
		}
	}
	c.link = widget.NewHyperlink(readMore+ReadMoreSuffix, linkURL)
	c.link.OnTapped = func() {
		c.SetVisited(true)
		if onOpen != nil {
			onOpen(c.article)
		}
	}
	if linkURL == nil {
		c.link.Hide()
	}

	c.SetVisited(visited)

	c.root = container.NewVBox(
		c.title,
		c.desc,
		container.NewHBox(layout.NewSpacer(), c.link),
		widget.NewSeparator(),
	)
	return c
}

// Article returns the card's article
func (c *NewsCard) Article() model.Article {
	return c.article
}

// SetVisited dims the title once the article has been opened
func (c *NewsCard) SetVisited(visited bool) {
	if visited {
		c.title.Importance = widget.LowImportance
	} else {
		c.title.Importance = widget.MediumImportance
	}
	c.title.Refresh()
}

// Visited reports whether the card is rendered as visited
func (c *NewsCard) Visited() bool {
	return c.title.Importance == widget.LowImportance
}

// Object returns the card's canvas object
func (c *NewsCard) Object() fyne.CanvasObject {
	return c.root
}
