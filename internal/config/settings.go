package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCountry         = "country"
	KeyPageSize        = "page_size"
	KeyRequestTimeout  = "request_timeout_seconds"
	KeyRefreshSchedule = "refresh_schedule"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultCountry         = "us"
	DefaultPageSize        = 20
	DefaultRequestTimeout  = 30
	DefaultRefreshSchedule = "@every 30m"
	DefaultLanguage        = "system"
)

// Limits
const (
	MinPageSize       = 1
	MaxPageSize       = 100
	MinRequestTimeout = 5
	MaxRequestTimeout = 120
)

// refreshDisabled marks an explicitly cleared schedule, distinct from an unset key
const refreshDisabled = "off"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCountry returns the configured headline country code
func (s *Settings) GetCountry() string {
	country := s.app.Preferences().String(KeyCountry)
	if country == "" {
		s.SetCountry(DefaultCountry)
		return DefaultCountry
	}
	return country
}

// SetCountry sets the headline country code
func (s *Settings) SetCountry(country string) {
	if country == "" {
		country = DefaultCountry
	}
	s.app.Preferences().SetString(KeyCountry, country)
}

// GetPageSize returns the number of headlines requested per fetch
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the number of headlines requested per fetch
func (s *Settings) SetPageSize(size int) {
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetRequestTimeoutSeconds returns the fetch timeout in seconds
func (s *Settings) GetRequestTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeoutSeconds sets the fetch timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the fetch timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetRefreshSchedule returns the cron spec for auto-refresh; empty means disabled
func (s *Settings) GetRefreshSchedule() string {
	schedule := s.app.Preferences().String(KeyRefreshSchedule)
	switch schedule {
	case "":
		s.app.Preferences().SetString(KeyRefreshSchedule, DefaultRefreshSchedule)
		return DefaultRefreshSchedule
	case refreshDisabled:
		return ""
	}
	return schedule
}

// SetRefreshSchedule sets the cron spec for auto-refresh; empty disables it
func (s *Settings) SetRefreshSchedule(schedule string) {
	if schedule == "" {
		schedule = refreshDisabled
	}
	s.app.Preferences().SetString(KeyRefreshSchedule, schedule)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCountryOptions returns the countries offered in the settings dialog
func (s *Settings) GetCountryOptions() []string {
	return []string{"us", "gb", "de", "fr", "ru", "br"}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
