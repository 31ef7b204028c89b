package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_NoFileYieldsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "headlines", "headlines.toml"))

	cfg := store.Load()
	if !cfg.DarkMode {
		t.Error("Expected default dark mode to be true")
	}
	if cfg.APIKey != "" {
		t.Errorf("Expected empty default API key, got %q", cfg.APIKey)
	}
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "headlines", "headlines.toml"))

	tests := []Config{
		{DarkMode: false, APIKey: "abc123"},
		{DarkMode: true, APIKey: "key with \"quotes\" and spaces"},
		{DarkMode: false, APIKey: ""},
	}

	for _, want := range tests {
		if err := store.Save(want); err != nil {
			t.Fatalf("Save(%+v) failed: %v", want, err)
		}

		got := store.Load()
		if got != want {
			t.Errorf("Load() = %+v, expected %+v", got, want)
		}
	}
}

func TestSave_WritesTOMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.toml")
	store := NewStore(path)

	if err := store.Save(Config{DarkMode: true, APIKey: "k"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	content := string(data)
	for _, key := range []string{"dark_mode = true", `api_key = "k"`} {
		if !strings.Contains(content, key) {
			t.Errorf("Expected config to contain %q, got:\n%s", key, content)
		}
	}
}

func TestLoad_CorruptFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.toml")
	if err := os.WriteFile(path, []byte("dark_mode = [not toml"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	cfg := NewStore(path).Load()
	if cfg != Default() {
		t.Errorf("Expected defaults for corrupt file, got %+v", cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headlines.toml")
	if err := os.WriteFile(path, []byte(`api_key = "only-key"`), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	cfg := NewStore(path).Load()
	if !cfg.DarkMode {
		t.Error("Expected missing dark_mode to keep default true")
	}
	if cfg.APIKey != "only-key" {
		t.Errorf("Expected API key 'only-key', got %q", cfg.APIKey)
	}
}

func TestStore_NoPath(t *testing.T) {
	store := &Store{}

	if cfg := store.Load(); cfg != Default() {
		t.Errorf("Expected defaults without a path, got %+v", cfg)
	}

	err := store.Save(Config{APIKey: "x"})
	if !errors.Is(err, ErrNoConfigPath) {
		t.Errorf("Expected ErrNoConfigPath, got %v", err)
	}
}

func TestSave_FailsWhenParentIsFile(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	store := NewStore(filepath.Join(blocker, "headlines.toml"))
	if err := store.Save(Default()); err == nil {
		t.Error("Expected error when parent path is a file")
	}
}

func TestDefaultStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	store := DefaultStore("headlines")
	if store.Path() == "" {
		t.Fatal("Expected resolved config path")
	}
	if filepath.Base(store.Path()) != "headlines.toml" {
		t.Errorf("Expected 'headlines.toml', got %s", store.Path())
	}

	if cfg := store.Load(); cfg != Default() {
		t.Errorf("Expected defaults for fresh location, got %+v", cfg)
	}
}

func TestConfig_HasAPIKey(t *testing.T) {
	if Default().HasAPIKey() {
		t.Error("Default config should not have an API key")
	}
	if !(Config{APIKey: "k"}).HasAPIKey() {
		t.Error("Config with key should report HasAPIKey")
	}
}
