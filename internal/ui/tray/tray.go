package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"focusflow/internal/core/timer"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart           func()
	OnPause           func()
	OnReset           func()
	OnPreferences     func()
	OnToggleAutostart func(enabled bool)
	OnQuit            func()
}

// Manager handles system tray state. The disabled status item doubles as
// the tray label: phase letter plus mm:ss.
type Manager struct {
	app           desktop.App
	statusItem    *fyne.MenuItem
	pauseItem     *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem(FormatStatus(timer.PhaseWork, false, 0), nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.autostartItem = fyne.NewMenuItem("Launch at login", nil)
	manager.autostartItem.Action = func() {
		manager.autostartItem.Checked = !manager.autostartItem.Checked
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart(manager.autostartItem.Checked)
		}
		manager.refreshMenu()
	}

	manager.refreshMenu()
	return manager
}

// SetCountdown updates the tray label from the latest timer event.
func (manager *Manager) SetCountdown(phase timer.Phase, running bool, remaining time.Duration) {
	manager.statusItem.Label = FormatStatus(phase, running, remaining)
	manager.pauseItem.Disabled = !running
	manager.refreshMenu()
}

// SetAutostart reflects the persisted autostart state in the menu.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("FocusFlow",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Start", func() {
			if manager.callbacks.OnStart != nil {
				manager.callbacks.OnStart()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.autostartItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

// FormatStatus renders the tray label: "F 24:59" during work, "B 04:59"
// during a break, zeros while idle.
func FormatStatus(phase timer.Phase, running bool, remaining time.Duration) string {
	letter := "F"
	if phase == timer.PhaseBreak {
		letter = "B"
	}
	if !running {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%s %02d:%02d", letter, seconds/60, seconds%60)
}
