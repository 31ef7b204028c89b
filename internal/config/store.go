package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ytget/headlines/internal/platform"
)

// ErrNoConfigPath is returned by Save when the config location could not be resolved
var ErrNoConfigPath = errors.New("config path is not set")

// Default values for the persisted config
const (
	DefaultDarkMode = true
	DefaultAPIKey   = ""
)

// Config is the persisted user record
type Config struct {
	DarkMode bool   `toml:"dark_mode"`
	APIKey   string `toml:"api_key"`
}

// Default returns the config used when nothing could be loaded
func Default() Config {
	return Config{
		DarkMode: DefaultDarkMode,
		APIKey:   DefaultAPIKey,
	}
}

// HasAPIKey reports whether an API key has been entered
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// Store reads and writes Config as a TOML file
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a store at the platform config location for appName.
// When that location cannot be resolved the store has no path: Load yields
// defaults and Save fails with ErrNoConfigPath.
func DefaultStore(appName string) *Store {
	path, err := platform.GetAppConfigFile(appName)
	if err != nil {
		return &Store{}
	}
	return &Store{path: path}
}

// Path returns the backing file path, empty when unresolved
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored config, or Default on any read or parse error
func (s *Store) Load() Config {
	cfg, err := s.load()
	if err != nil {
		return Default()
	}
	return cfg
}

func (s *Store) load() (Config, error) {
	if s.path == "" {
		return Config{}, ErrNoConfigPath
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save persists cfg, creating the config directory if needed
func (s *Store) Save(cfg Config) error {
	if s.path == "" {
		return ErrNoConfigPath
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := platform.WriteFileAtomic(s.path, buf.Bytes()); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
