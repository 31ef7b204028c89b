package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/model"
	"github.com/ytget/headlines/internal/news"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	store        *config.Store
	fetcher      news.Fetcher
	logger       *slog.Logger
	localization *Localization

	// cfg is read from the refresh goroutine, everything else below lives on the UI goroutine
	cfgMutex          sync.Mutex
	cfg               config.Config
	apiKeyInitialized bool

	articles []model.Article
	cardList []*NewsCard
	visited  map[string]bool
	status   model.FeedStatus
	loading  atomic.Bool
	// pending is set by every reload request; the running reload fetches again while it is set
	pending atomic.Bool

	// OnSettingsChanged is called after the settings dialog saved
	OnSettingsChanged func()

	// Header
	titleLabel  *widget.Label
	statusLabel *widget.Label
	refreshBtn  *widget.Button
	themeBtn    *widget.Button

	// Body
	cards    *fyne.Container
	scroll   *container.Scroll
	keyPanel *KeyPanel
	body     *fyne.Container

	// Footer
	apiSourceLabel *widget.Label
	madeWithLink   *widget.Hyperlink
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, store *config.Store, fetcher news.Fetcher, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	cfg := store.Load()

	ui := &RootUI{
		window:            window,
		app:               app,
		settings:          settings,
		store:             store,
		fetcher:           fetcher,
		logger:            logger,
		localization:      localization,
		cfg:               cfg,
		apiKeyInitialized: cfg.HasAPIKey(),
		visited:           make(map[string]bool),
		status:            model.FeedStatusIdle,
	}

	logger.Info("config loaded", "path", store.Path(), "dark_mode", cfg.DarkMode, "api_key_set", cfg.HasAPIKey())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.applyTheme()
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header: title on the left, refresh and theme toggle on the right
	ui.titleLabel = widget.NewLabelWithStyle(IconNotebook+TitleSeparator+ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	ui.refreshBtn = widget.NewButton(IconRefresh, ui.onRefreshClick)
	ui.refreshBtn.Importance = widget.LowImportance

	ui.themeBtn = widget.NewButton(themeIcon(ui.DarkMode()), ui.ToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	header := container.NewVBox(
		container.NewBorder(nil, nil, ui.titleLabel, container.NewHBox(ui.refreshBtn, ui.themeBtn)),
		ui.statusLabel,
		widget.NewSeparator(),
	)

	// Body: either the key panel or the scrolling cards
	ui.cards = container.NewVBox()
	ui.scroll = container.NewVScroll(container.NewPadded(ui.cards))
	ui.keyPanel = NewKeyPanel(ui.localization, ui.SubmitAPIKey)
	ui.keyPanel.OnCancel = ui.updatePanels
	ui.body = container.NewStack(ui.scroll, ui.keyPanel.Object())

	// Footer
	ui.apiSourceLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAPISource), fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	fyneURL, _ := url.Parse(FyneURL)
	ui.madeWithLink = widget.NewHyperlink(ui.localization.GetText(KeyMadeWith), fyneURL)
	ui.madeWithLink.Alignment = fyne.TextAlignCenter
	footer := container.NewVBox(
		widget.NewSeparator(),
		ui.apiSourceLabel,
		ui.madeWithLink,
	)

	ui.updatePanels()

	ui.window.SetContent(container.NewBorder(header, footer, nil, nil, ui.body))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	apiKeyItem := fyne.NewMenuItem(ui.localization.GetText(KeyAPIKeyMenu), ui.ShowKeyPanel)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), apiKeyItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(IconNotebook + TitleSeparator + ui.localization.GetText(KeyAppTitle))
	ui.apiSourceLabel.SetText(ui.localization.GetText(KeyAPISource))
	ui.madeWithLink.SetText(ui.localization.GetText(KeyMadeWith))
	ui.keyPanel.Refresh()
	ui.updateStatusLabel()
	ui.rebuildCards()
}

// DarkMode reports the in-memory theme flag
func (ui *RootUI) DarkMode() bool {
	ui.cfgMutex.Lock()
	defer ui.cfgMutex.Unlock()
	return ui.cfg.DarkMode
}

// APIKeyInitialized reports whether a key has been loaded or committed
func (ui *RootUI) APIKeyInitialized() bool {
	ui.cfgMutex.Lock()
	defer ui.cfgMutex.Unlock()
	return ui.apiKeyInitialized
}

// Articles returns the articles currently shown
func (ui *RootUI) Articles() []model.Article {
	out := make([]model.Article, len(ui.articles))
	copy(out, ui.articles)
	return out
}

// Status returns the feed status
func (ui *RootUI) Status() model.FeedStatus {
	return ui.status
}

func (ui *RootUI) apiKey() string {
	ui.cfgMutex.Lock()
	defer ui.cfgMutex.Unlock()
	return ui.cfg.APIKey
}

// ToggleTheme flips dark mode in memory. The flag is persisted with the next key commit.
func (ui *RootUI) ToggleTheme() {
	ui.cfgMutex.Lock()
	ui.cfg.DarkMode = !ui.cfg.DarkMode
	dark := ui.cfg.DarkMode
	ui.cfgMutex.Unlock()

	ui.applyTheme()
	if ui.themeBtn != nil {
		ui.themeBtn.SetText(themeIcon(dark))
	}
}

func (ui *RootUI) applyTheme() {
	ui.app.Settings().SetTheme(NewHeadlinesTheme(ui.DarkMode()))
}

// themeIcon shows the current mode rather than the target one
func themeIcon(dark bool) string {
	if dark {
		return IconDarkMode
	}
	return IconLightMode
}

// SubmitAPIKey commits a key: both config fields are persisted together and
// the headlines are reloaded. A failed save is logged and otherwise ignored.
func (ui *RootUI) SubmitAPIKey(key string) {
	ui.cfgMutex.Lock()
	ui.cfg.APIKey = key
	ui.apiKeyInitialized = true
	cfg := ui.cfg
	ui.cfgMutex.Unlock()

	if err := ui.store.Save(cfg); err != nil {
		ui.logger.Error("failed to save config", "path", ui.store.Path(), "error", err)
	}

	ui.updatePanels()
	ui.StartReload()
}

// ShowKeyPanel brings back the key panel with the current key filled in.
// Once a key exists the panel can be cancelled back to the cards.
func (ui *RootUI) ShowKeyPanel() {
	ui.keyPanel.SetKey(ui.apiKey())
	ui.keyPanel.SetCancelable(ui.APIKeyInitialized())
	ui.scroll.Hide()
	ui.keyPanel.Object().Show()
	ui.window.Canvas().Focus(ui.keyPanel.Entry())
}

// updatePanels shows the key panel until a key exists, then the cards
func (ui *RootUI) updatePanels() {
	if ui.APIKeyInitialized() {
		ui.keyPanel.Object().Hide()
		ui.scroll.Show()
		return
	}
	ui.scroll.Hide()
	ui.keyPanel.Object().Show()
}

func (ui *RootUI) onRefreshClick() {
	ui.StartReload()
}

// StartReload reloads headlines in the background
func (ui *RootUI) StartReload() {
	go ui.Reload(context.Background())
}

// Reload fetches headlines and applies them on the UI goroutine. It blocks
// until the fetch is done. When another reload is running the request is
// queued instead: the running reload fetches once more with the current key,
// and Reload returns false.
func (ui *RootUI) Reload(ctx context.Context) bool {
	ui.pending.Store(true)
	if !ui.loading.CompareAndSwap(false, true) {
		ui.logger.Debug("reload queued, fetch already running")
		return false
	}

	for {
		for ui.pending.Swap(false) {
			ui.fetchOnce(ctx)
		}
		ui.loading.Store(false)

		// A request may have arrived between the last check and the release
		if !ui.pending.Load() || !ui.loading.CompareAndSwap(false, true) {
			return true
		}
	}
}

func (ui *RootUI) fetchOnce(ctx context.Context) {
	fyne.Do(func() {
		ui.setStatus(model.FeedStatusLoading)
	})

	ctx, cancel := context.WithTimeout(ctx, ui.settings.GetRequestTimeout())
	defer cancel()

	articles := ui.fetcher.Fetch(ctx, ui.apiKey())
	ui.logger.Info("headlines loaded", "count", len(articles))

	fyne.Do(func() {
		ui.setArticles(articles)
	})
}

// setArticles replaces the shown articles; must run on the UI goroutine
func (ui *RootUI) setArticles(articles []model.Article) {
	ui.articles = articles
	ui.rebuildCards()
	ui.setStatus(model.StatusForCount(len(articles)))
	ui.scroll.ScrollToTop()
}

func (ui *RootUI) setStatus(status model.FeedStatus) {
	ui.status = status
	ui.updateStatusLabel()
	if status.IsBusy() {
		ui.refreshBtn.Disable()
	} else {
		ui.refreshBtn.Enable()
	}
}

func (ui *RootUI) updateStatusLabel() {
	switch ui.status {
	case model.FeedStatusLoading:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusLoading))
	case model.FeedStatusEmpty:
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusEmpty))
	case model.FeedStatusReady:
		ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyStatusReady), len(ui.articles)))
	default:
		ui.statusLabel.SetText("")
	}
}

func (ui *RootUI) rebuildCards() {
	readMore := ui.localization.GetText(KeyReadMore)

	ui.cardList = make([]*NewsCard, 0, len(ui.articles))
	objects := make([]fyne.CanvasObject, 0, len(ui.articles))
	for _, article := range ui.articles {
		card := NewNewsCard(article, readMore, ui.visited[article.ID], ui.openArticle)
		ui.cardList = append(ui.cardList, card)
		objects = append(objects, card.Object())
	}

	ui.cards.Objects = objects
	ui.cards.Refresh()
}

// openArticle marks the article visited and opens it in the browser
func (ui *RootUI) openArticle(article model.Article) {
	ui.visited[article.ID] = true

	u, err := url.Parse(article.URL)
	if err != nil {
		ui.logger.Error("invalid article url", "url", article.URL, "error", err)
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		ui.logger.Error("failed to open article", "url", article.URL, "error", err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		if ui.localization.GetCurrentLanguage() != resolveLanguage(ui.settings.GetLanguage()) {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.refreshUITexts()
			ui.createMenu()
		}
		if ui.OnSettingsChanged != nil {
			ui.OnSettingsChanged()
		}
	}).Show()
}
