package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestHeadlinesTheme_PinsVariant(t *testing.T) {
	dark := NewHeadlinesTheme(true)
	light := NewHeadlinesTheme(false)

	// The requested variant must not leak through
	darkBg := dark.Color(theme.ColorNameBackground, theme.VariantLight)
	lightBg := light.Color(theme.ColorNameBackground, theme.VariantDark)

	if darkBg == lightBg {
		t.Error("Expected dark and light backgrounds to differ")
	}

	r, g, b, _ := darkBg.RGBA()
	if r>>8 != 18 || g>>8 != 18 || b>>8 != 18 {
		t.Errorf("Unexpected dark background: %v", darkBg)
	}
}

func TestHeadlinesTheme_IsDark(t *testing.T) {
	if !NewHeadlinesTheme(true).(*HeadlinesTheme).IsDark() {
		t.Error("Expected dark theme to report IsDark")
	}
	if NewHeadlinesTheme(false).(*HeadlinesTheme).IsDark() {
		t.Error("Expected light theme not to report IsDark")
	}
}

func TestHeadlinesTheme_Sizes(t *testing.T) {
	th := NewHeadlinesTheme(true)
	if th.Size(theme.SizeNamePadding) != 3 {
		t.Errorf("Expected compact padding 3, got %v", th.Size(theme.SizeNamePadding))
	}
	if th.Size(theme.SizeNameSeparatorThickness) != theme.DefaultTheme().Size(theme.SizeNameSeparatorThickness) {
		t.Error("Expected unlisted sizes to fall back to the default theme")
	}
}
