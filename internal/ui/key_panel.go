package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// KeyPanel asks for the newsapi.org key; it is shown until a key has been committed
type KeyPanel struct {
	localization *Localization
	onSubmit     func(string)

	// OnCancel is called by the cancel button, which is only shown while cancelable
	OnCancel func()

	prompt    *widget.Label
	entry     *widget.Entry
	hint      *widget.Label
	link      *widget.Hyperlink
	cancelBtn *widget.Button
	root      *fyne.Container
}

// NewKeyPanel creates the panel; onSubmit receives the trimmed, non-empty key
func NewKeyPanel(localization *Localization, onSubmit func(string)) *KeyPanel {
	p := &KeyPanel{
		localization: localization,
		onSubmit:     onSubmit,
	}

	p.prompt = widget.NewLabelWithStyle(localization.GetText(KeyEnterAPIKey), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	p.entry = widget.NewEntry()
	p.entry.SetPlaceHolder(strings.Repeat("•", KeyEntryMinChar))
	p.entry.OnSubmitted = p.submit

	p.hint = widget.NewLabelWithStyle(localization.GetText(KeyAPIKeyHint), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	newsAPI, _ := url.Parse(NewsAPIURL)
	p.link = widget.NewHyperlink(localization.GetText(KeyGetAPIKey), newsAPI)
	p.link.Alignment = fyne.TextAlignCenter

	p.cancelBtn = widget.NewButton(localization.GetText(KeyCancel), p.cancel)
	p.cancelBtn.Importance = widget.LowImportance
	p.cancelBtn.Hide()

	sized := container.NewGridWrap(fyne.NewSize(KeyPanelWidth, p.entry.MinSize().Height), p.entry)

	p.root = container.NewCenter(container.NewVBox(
		widget.NewLabel(IconKey),
		p.prompt,
		sized,
		p.hint,
		p.link,
		p.cancelBtn,
	))
	return p
}

// SetKey pre-fills the entry
func (p *KeyPanel) SetKey(key string) {
	p.entry.SetText(key)
}

// SetCancelable shows or hides the cancel button
func (p *KeyPanel) SetCancelable(cancelable bool) {
	if cancelable {
		p.cancelBtn.Show()
	} else {
		p.cancelBtn.Hide()
	}
}

// Cancelable reports whether the cancel button is shown
func (p *KeyPanel) Cancelable() bool {
	return p.cancelBtn.Visible()
}

// Refresh re-reads localized texts
func (p *KeyPanel) Refresh() {
	p.prompt.SetText(p.localization.GetText(KeyEnterAPIKey))
	p.hint.SetText(p.localization.GetText(KeyAPIKeyHint))
	p.link.SetText(p.localization.GetText(KeyGetAPIKey))
	p.cancelBtn.SetText(p.localization.GetText(KeyCancel))
}

// Object returns the panel's canvas object
func (p *KeyPanel) Object() fyne.CanvasObject {
	return p.root
}

// Entry returns the key entry widget
func (p *KeyPanel) Entry() *widget.Entry {
	return p.entry
}

func (p *KeyPanel) submit(text string) {
	key := strings.TrimSpace(text)
	if key == "" {
		p.hint.SetText(p.localization.GetText(KeyAPIKeyRequired))
		return
	}
	p.hint.SetText(p.localization.GetText(KeyAPIKeyHint))
	if p.onSubmit != nil {
		p.onSubmit(key)
	}
}

func (p *KeyPanel) cancel() {
	p.hint.SetText(p.localization.GetText(KeyAPIKeyHint))
	if p.OnCancel != nil {
		p.OnCancel()
	}
}
