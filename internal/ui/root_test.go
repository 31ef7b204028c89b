package ui

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/model"
)

type fakeFetcher struct {
	mu       sync.Mutex
	articles []model.Article
	keys     []string
	called   chan string
}

func newFakeFetcher(articles ...model.Article) *fakeFetcher {
	return &fakeFetcher{articles: articles, called: make(chan string, 8)}
}

func (f *fakeFetcher) Fetch(_ context.Context, apiKey string) []model.Article {
	f.mu.Lock()
	f.keys = append(f.keys, apiKey)
	f.mu.Unlock()

	select {
	case f.called <- apiKey:
	default:
	}

	if apiKey == "" {
		return []model.Article{}
	}
	return f.articles
}

func newTestRootUI(t *testing.T, store *config.Store, fetcher *fakeFetcher) (*RootUI, fyne.App) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	ui := NewRootUI(window, app, config.NewSettings(app), store, fetcher, nil)
	return ui, app
}

func newTempStore(t *testing.T) *config.Store {
	t.Helper()
	return config.NewStore(filepath.Join(t.TempDir(), "headlines", "headlines.toml"))
}

func TestNewRootUI_NoConfigShowsKeyPanel(t *testing.T) {
	ui, _ := newTestRootUI(t, newTempStore(t), newFakeFetcher())

	if ui.APIKeyInitialized() {
		t.Error("Expected API key not to be initialized without config")
	}
	if !ui.DarkMode() {
		t.Error("Expected dark mode by default")
	}
	if !ui.keyPanel.Object().Visible() {
		t.Error("Expected key panel to be visible")
	}
	if ui.scroll.Visible() {
		t.Error("Expected cards to be hidden until a key is set")
	}
	if ui.Status() != model.FeedStatusIdle {
		t.Errorf("Expected idle status, got %s", ui.Status())
	}
}

func TestNewRootUI_StoredKeyShowsCards(t *testing.T) {
	store := newTempStore(t)
	if err := store.Save(config.Config{DarkMode: false, APIKey: "stored"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	ui, app := newTestRootUI(t, store, newFakeFetcher())

	if !ui.APIKeyInitialized() {
		t.Error("Expected API key to be initialized from config")
	}
	if ui.DarkMode() {
		t.Error("Expected light mode from config")
	}
	if ui.keyPanel.Object().Visible() {
		t.Error("Expected key panel to be hidden")
	}
	th, ok := app.Settings().Theme().(*HeadlinesTheme)
	if !ok {
		t.Fatalf("Expected HeadlinesTheme, got %T", app.Settings().Theme())
	}
	if th.IsDark() {
		t.Error("Expected light theme to be applied")
	}
}

func TestReload_ShowsArticles(t *testing.T) {
	store := newTempStore(t)
	store.Save(config.Config{DarkMode: true, APIKey: "k"})

	fetcher := newFakeFetcher(
		model.NewArticle("One", "first", "https://example.com/1"),
		model.NewArticle("Two", "", "https://example.com/2"),
	)
	ui, _ := newTestRootUI(t, store, fetcher)

	if !ui.Reload(context.Background()) {
		t.Fatal("Expected reload to run")
	}

	articles := ui.Articles()
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	if ui.Status() != model.FeedStatusReady {
		t.Errorf("Expected ready status, got %s", ui.Status())
	}
	if len(ui.cards.Objects) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(ui.cards.Objects))
	}
	if ui.cardList[1].desc.Text != model.DescriptionPlaceholder {
		t.Errorf("Expected placeholder on second card, got %q", ui.cardList[1].desc.Text)
	}
	if fetcher.keys[0] != "k" {
		t.Errorf("Expected fetch with stored key, got %q", fetcher.keys[0])
	}
}

func TestReload_EmptyResult(t *testing.T) {
	ui, _ := newTestRootUI(t, newTempStore(t), newFakeFetcher())

	ui.Reload(context.Background())

	if len(ui.Articles()) != 0 {
		t.Errorf("Expected no articles, got %d", len(ui.Articles()))
	}
	if ui.Status() != model.FeedStatusEmpty {
		t.Errorf("Expected empty status, got %s", ui.Status())
	}
	if ui.statusLabel.Text != ui.localization.GetText(KeyStatusEmpty) {
		t.Errorf("Unexpected status text %q", ui.statusLabel.Text)
	}
}

func TestReload_QueuedWhileRunning(t *testing.T) {
	fetcher := newFakeFetcher()
	ui, _ := newTestRootUI(t, newTempStore(t), fetcher)

	ui.loading.Store(true)
	if ui.Reload(context.Background()) {
		t.Error("Expected overlapping reload not to run itself")
	}
	if !ui.pending.Load() {
		t.Error("Expected overlapping reload to be queued")
	}
	if len(fetcher.keys) != 0 {
		t.Errorf("Expected no fetch from the queued call, got %v", fetcher.keys)
	}
}

// blockingFetcher holds fetches for blockKey until release is closed
type blockingFetcher struct {
	*fakeFetcher
	blockKey string
	started  chan struct{}
	release  chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context, apiKey string) []model.Article {
	if apiKey == f.blockKey {
		close(f.started)
		<-f.release
		f.mu.Lock()
		f.keys = append(f.keys, apiKey)
		f.mu.Unlock()
		return []model.Article{}
	}
	return f.fakeFetcher.Fetch(ctx, apiKey)
}

func TestSubmitAPIKey_DuringRunningFetch(t *testing.T) {
	store := newTempStore(t)
	if err := store.Save(config.Config{DarkMode: true, APIKey: "bad"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fetcher := &blockingFetcher{
		fakeFetcher: newFakeFetcher(model.NewArticle("One", "first", "https://example.com/1")),
		blockKey:    "bad",
		started:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)
	ui := NewRootUI(window, app, config.NewSettings(app), store, fetcher, nil)

	done := make(chan bool, 1)
	go func() { done <- ui.Reload(context.Background()) }()

	select {
	case <-fetcher.started:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected first fetch to start")
	}

	ui.SubmitAPIKey("good")

	deadline := time.Now().Add(2 * time.Second)
	for !ui.pending.Load() {
		if time.Now().After(deadline) {
			t.Fatal("Expected key commit to queue a reload")
		}
		time.Sleep(5 * time.Millisecond)
	}
	close(fetcher.release)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected running reload to finish")
	}

	fetcher.mu.Lock()
	keys := append([]string(nil), fetcher.keys...)
	fetcher.mu.Unlock()
	if len(keys) != 2 || keys[0] != "bad" || keys[1] != "good" {
		t.Fatalf("Expected fetches [bad good], got %v", keys)
	}
	if len(ui.Articles()) != 1 {
		t.Errorf("Expected 1 article from the new key, got %d", len(ui.Articles()))
	}
	if ui.Status() != model.FeedStatusReady {
		t.Errorf("Expected ready status, got %s", ui.Status())
	}
	if ui.loading.Load() {
		t.Error("Expected loading to be released")
	}
}

func TestShowKeyPanel_CancelReturnsToCards(t *testing.T) {
	store := newTempStore(t)
	store.Save(config.Config{DarkMode: true, APIKey: "existing"})
	ui, _ := newTestRootUI(t, store, newFakeFetcher())

	ui.ShowKeyPanel()
	if !ui.keyPanel.Cancelable() {
		t.Fatal("Expected key panel to be cancelable with a stored key")
	}

	test.Tap(ui.keyPanel.cancelBtn)

	if ui.keyPanel.Object().Visible() {
		t.Error("Expected key panel to hide after cancel")
	}
	if !ui.scroll.Visible() {
		t.Error("Expected cards to be shown after cancel")
	}
	if store.Load().APIKey != "existing" {
		t.Error("Cancel should not change the stored key")
	}
}

func TestShowKeyPanel_NotCancelableWithoutKey(t *testing.T) {
	ui, _ := newTestRootUI(t, newTempStore(t), newFakeFetcher())

	ui.ShowKeyPanel()

	if ui.keyPanel.Cancelable() {
		t.Error("Expected no cancel before a key was committed")
	}
}

func TestToggleTheme_NotPersistedUntilKeyCommit(t *testing.T) {
	store := newTempStore(t)
	store.Save(config.Config{DarkMode: true, APIKey: "old"})

	fetcher := newFakeFetcher()
	ui, app := newTestRootUI(t, store, fetcher)

	ui.ToggleTheme()
	if ui.DarkMode() {
		t.Error("Expected dark mode to be off after toggle")
	}
	if ui.themeBtn.Text != IconLightMode {
		t.Errorf("Expected light mode icon, got %q", ui.themeBtn.Text)
	}
	if th := app.Settings().Theme().(*HeadlinesTheme); th.IsDark() {
		t.Error("Expected light theme after toggle")
	}
	if !store.Load().DarkMode {
		t.Error("Theme toggle should not be persisted on its own")
	}

	ui.SubmitAPIKey("new")

	saved := store.Load()
	if saved.DarkMode || saved.APIKey != "new" {
		t.Errorf("Expected {false, new} after commit, got %+v", saved)
	}

	select {
	case key := <-fetcher.called:
		if key != "new" {
			t.Errorf("Expected reload with new key, got %q", key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected key commit to trigger a reload")
	}
}

func TestSubmitAPIKey_FromKeyPanel(t *testing.T) {
	store := newTempStore(t)
	fetcher := newFakeFetcher()
	ui, _ := newTestRootUI(t, store, fetcher)

	entry := ui.keyPanel.Entry()

	// Blank input is rejected
	entry.SetText("   ")
	entry.OnSubmitted(entry.Text)
	if ui.APIKeyInitialized() {
		t.Fatal("Blank key should not initialize")
	}

	entry.SetText("  abc  ")
	entry.OnSubmitted(entry.Text)

	if !ui.APIKeyInitialized() {
		t.Fatal("Expected key to be initialized")
	}
	if got := store.Load(); got.APIKey != "abc" || !got.DarkMode {
		t.Errorf("Expected {true, abc} persisted, got %+v", got)
	}
	if ui.keyPanel.Object().Visible() {
		t.Error("Expected key panel to hide after commit")
	}

	select {
	case <-fetcher.called:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected reload after commit")
	}
}

func TestSubmitAPIKey_SaveFailureKeepsKeyInMemory(t *testing.T) {
	ui, _ := newTestRootUI(t, &config.Store{}, newFakeFetcher())

	ui.SubmitAPIKey("k")

	if !ui.APIKeyInitialized() {
		t.Error("Expected key to be initialized despite save failure")
	}
	if ui.apiKey() != "k" {
		t.Errorf("Expected in-memory key 'k', got %q", ui.apiKey())
	}
}

func TestShowKeyPanel_PrefillsKey(t *testing.T) {
	store := newTempStore(t)
	store.Save(config.Config{DarkMode: true, APIKey: "existing"})
	ui, _ := newTestRootUI(t, store, newFakeFetcher())

	ui.ShowKeyPanel()

	if !ui.keyPanel.Object().Visible() {
		t.Error("Expected key panel to be visible")
	}
	if ui.keyPanel.Entry().Text != "existing" {
		t.Errorf("Expected entry pre-filled with key, got %q", ui.keyPanel.Entry().Text)
	}
}

func TestOnLanguageChange(t *testing.T) {
	ui, app := newTestRootUI(t, newTempStore(t), newFakeFetcher())

	ui.onLanguageChange("pt")

	if ui.localization.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", ui.localization.GetCurrentLanguage())
	}
	if config.NewSettings(app).GetLanguage() != "pt" {
		t.Error("Expected language to be saved in settings")
	}
	if ui.apiSourceLabel.Text != "Fonte da API: newsapi.org" {
		t.Errorf("Expected footer to be translated, got %q", ui.apiSourceLabel.Text)
	}
}
