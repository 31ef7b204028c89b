package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// HeadlinesTheme is a compact theme pinned to a light or dark variant,
// independent of the OS setting
type HeadlinesTheme struct {
	variant fyne.ThemeVariant
}

// NewHeadlinesTheme creates the theme for the given mode
func NewHeadlinesTheme(dark bool) fyne.Theme {
	if dark {
		return &HeadlinesTheme{variant: theme.VariantDark}
	}
	return &HeadlinesTheme{variant: theme.VariantLight}
}

// IsDark reports whether the theme renders the dark variant
func (t *HeadlinesTheme) IsDark() bool {
	return t.variant == theme.VariantDark
}

// Color returns theme colors; the requested variant is ignored in favour of the pinned one
func (t *HeadlinesTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameHyperlink:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan links on dark
		}
		return color.RGBA{R: 0, G: 102, B: 204, A: 255}
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *HeadlinesTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *HeadlinesTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *HeadlinesTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameScrollBar:
		return 12 // Reduced from default 16
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameSubHeadingText:
		return 14 // Card titles
	case theme.SizeNameCaptionText:
		return 10 // Footer
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	return theme.DefaultTheme().Size(name)
}
