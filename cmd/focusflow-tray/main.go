package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"focusflow/internal/core/model"
	"focusflow/internal/core/timer"
	"focusflow/internal/platform"
	"focusflow/internal/storage"
	"focusflow/internal/ui/preferences"
	"focusflow/internal/ui/tray"
	"focusflow/resources"
)

const frontendName = "focusflow-tray"

func main() {
	guard, err := platform.AcquireSingleInstance(frontendName)
	if err != nil {
		log.Fatal("another tray instance is running", "err", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings()
	if err != nil {
		log.Warn("settings unavailable, using defaults", "err", err)
	}
	options, err := storage.LoadAppOptions()
	if err != nil {
		log.Warn("runtime options unavailable, using defaults", "err", err)
	}

	fyneApp := app.NewWithID("com.focusflow.app")
	fyneApp.SetIcon(resources.MustLogo("focusflow_active.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Fatal("system tray unsupported on this platform")
	}

	trayWindow := fyneApp.NewWindow("FocusFlow")
	trayWindow.SetContent(widget.NewLabel("FocusFlow is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	engine := timer.NewEngine(settings.TimerConfig(), timer.Options{TickInterval: options.TickInterval})
	chime := platform.NewChimePlayer(options.ChimeCommand)
	platformService := platform.NewService()

	prefsWindow := preferences.New(fyneApp, settings, func(updated model.Settings) {
		settings = updated
		if err := storage.SaveSettings(updated); err != nil {
			log.Warn("persist settings", "err", err)
		}
		engine.UpdateConfig(updated.TimerConfig())
	})

	activeIcon := resources.MustLogo("focusflow_active.png")
	pausedIcon := resources.MustLogo("focusflow_paused.png")
	desktopApp.SetSystemTrayIcon(pausedIcon)

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnStart: func() {
			engine.Start()
			desktopApp.SetSystemTrayIcon(activeIcon)
			snapshot := engine.Snapshot()
			notifyPhase(fyneApp, chime, snapshot.Phase)
		},
		OnPause: func() {
			engine.Pause()
			desktopApp.SetSystemTrayIcon(pausedIcon)
		},
		OnReset: func() {
			engine.Reset()
			desktopApp.SetSystemTrayIcon(pausedIcon)
		},
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnToggleAutostart: func(enabled bool) {
			if err := applyAutostart(platformService, enabled); err != nil {
				log.Warn("autostart", "enabled", enabled, "err", err)
			}
		},
		OnQuit: func() {
			engine.Stop()
			fyneApp.Quit()
		},
	})

	events := engine.Subscribe(5)
	go func() {
		for event := range events {
			switch event.Type {
			case timer.EventTick:
				trayManager.SetCountdown(event.Phase, event.Running, event.Remaining)
			case timer.EventPhaseChange:
				phase := event.Phase
				fyne.Do(func() {
					notifyPhase(fyneApp, chime, phase)
				})
			}
		}
	}()

	engine.Run()
	log.Info("tray front-end started", "work_minutes", settings.WorkMinutes, "break_minutes", settings.BreakMinutes)
	fyneApp.Run()
}

func notifyPhase(fyneApp fyne.App, chime platform.ChimePlayer, phase timer.Phase) {
	title, body := "Focus", "Back to work. Stay focused."
	if phase == timer.PhaseBreak {
		title, body = "Break", "Take a break. Recharge."
	}
	fyneApp.SendNotification(fyne.NewNotification(title, body))
	go func() {
		if err := chime.Play(); err != nil {
			log.Debug("chime", "err", err)
		}
	}()
}

func applyAutostart(service platform.Service, enabled bool) error {
	if !enabled {
		return service.DisableAutostart("FocusFlow")
	}
	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	return service.EnableAutostart("FocusFlow", execPath)
}
