package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focusflow/internal/core/model"
)

// UI bounds for the configured durations. The timer itself trusts its
// inputs; these limits live at the edit surface only.
const (
	MaxWorkMinutes  = 180
	MaxBreakMinutes = 60
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   model.Settings
	onSave     func(model.Settings)
	workEntry  *widget.Entry
	breakEntry *widget.Entry
	themePick  *widget.Select
}

// New creates a preferences window. onSave receives the validated
// settings when the user confirms.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("FocusFlow Settings")

	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	workEntry.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))

	themePick := widget.NewSelect([]string{string(model.ThemeDark), string(model.ThemeLight)}, nil)
	themePick.SetSelected(string(settings.Theme))

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work duration"), workEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break duration"), breakEntry, widget.NewLabel("min")),
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Theme"), themePick),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 240))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		workEntry:  workEntry,
		breakEntry: breakEntry,
		themePick:  themePick,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	prefs.breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))
	prefs.themePick.SetSelected(string(settings.Theme))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parseBoundedInt(prefs.workEntry.Text, MaxWorkMinutes); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parseBoundedInt(prefs.breakEntry.Text, MaxBreakMinutes); ok {
		settings.BreakMinutes = minutes
	}
	if theme := model.Theme(prefs.themePick.Selected); theme.Valid() {
		settings.Theme = theme
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseBoundedInt(value string, max int) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 || parsed > max {
		return 0, false
	}
	return parsed, true
}
