package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the headline cards, the API key panel, the theme toggle and the
// settings dialog, and wires them to the config store and the news fetcher.
// All UI strings are localized via Localization.
