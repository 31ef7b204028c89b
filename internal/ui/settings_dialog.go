package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/headlines/internal/config"
	"github.com/ytget/headlines/internal/refresh"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	countrySelect  *widget.Select
	pageSizeEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	scheduleEntry  *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.countrySelect = widget.NewSelect(sd.settings.GetCountryOptions(), nil)

	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder(strconv.Itoa(config.MinPageSize) + "-" + strconv.Itoa(config.MaxPageSize))
	sd.pageSizeEntry.Validator = validateInt

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))
	sd.timeoutEntry.Validator = validateInt

	sd.scheduleEntry = widget.NewEntry()
	sd.scheduleEntry.SetPlaceHolder(config.DefaultRefreshSchedule)
	sd.scheduleEntry.Validator = func(s string) error {
		return refresh.ValidateSchedule(strings.TrimSpace(s))
	}

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyNewsSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyCountry)+":"),
		sd.countrySelect,

		widget.NewLabel(l.GetText(KeyPageSize)+":"),
		sd.pageSizeEntry,

		widget.NewLabel(l.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(l.GetText(KeyRefreshSchedule)+":"),
		sd.scheduleEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.countrySelect.SetSelected(sd.settings.GetCountry())
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetPageSize()))
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeoutSeconds()))
	sd.scheduleEntry.SetText(sd.settings.GetRefreshSchedule())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values that pass validation; invalid ones keep the stored value
func (sd *SettingsDialog) apply() {
	if sd.countrySelect.Selected != "" {
		sd.settings.SetCountry(sd.countrySelect.Selected)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(sd.pageSizeEntry.Text)); err == nil {
		sd.settings.SetPageSize(n)
	}

	if n, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(n)
	}

	schedule := strings.TrimSpace(sd.scheduleEntry.Text)
	if refresh.ValidateSchedule(schedule) == nil {
		sd.settings.SetRefreshSchedule(schedule)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}

func validateInt(s string) error {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err
}
