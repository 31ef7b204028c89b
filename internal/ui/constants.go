package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconNotebook  = "📓"
	IconRefresh   = "🔄"
	IconDarkMode  = "🌙"
	IconLightMode = "🔆"
	IconKey       = "🔑"
)

// Text fragments
const (
	ReadMoreSuffix = " »"
	TitleSeparator = " "
)

// Links
const (
	NewsAPIURL = "https://newsapi.org"
	FyneURL    = "https://fyne.io"
)

// Layout sizing
const (
	KeyPanelWidth   float32 = 360
	SettingsWidth   float32 = 460
	SettingsHeight  float32 = 420
	KeyEntryMinChar         = 32
)
