package main

import (
	"fmt"
	"log"
	"os"

	"multitimer/internal/core/engine"
	"multitimer/internal/core/history"
	"multitimer/internal/core/model"
	"multitimer/internal/core/store"
	"multitimer/internal/notify"
	"multitimer/internal/platform"
	"multitimer/internal/storage"
	"multitimer/internal/ui/editor"
	"multitimer/internal/ui/preferences"
	"multitimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const appName = "MultiTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("io.multitimer.app")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow("MultiTimer")
	trayWindow.SetContent(widget.NewLabel("MultiTimer is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	timers, err := storage.LoadTimers(appName)
	if err != nil {
		log.Printf("load timers: %v", err)
	}
	entries, err := storage.LoadHistory(appName)
	if err != nil {
		log.Printf("load history: %v", err)
	}

	files := storage.Files{AppName: appName}
	timerStore := store.New(files, timers, func(err error) {
		log.Printf("storage: %v", err)
	})
	recorder := history.NewRecorder(files, entries, func(err error) {
		log.Printf("history: %v", err)
	})

	timerEngine := engine.New(timerStore, engine.Config{})
	timerEngine.SetRecorder(recorder)

	notifier := notify.FyneNotifier{App: fyneApp}
	notificationsOn := settings.Notifications

	var trayManager *tray.Manager
	refreshTray := func() {
		snapshot := timerStore.Snapshot()
		trayManager.Refresh(model.GroupByCategory(snapshot))
		trayManager.SetStatus(statusLine(snapshot))
	}

	editorWindow := editor.New(fyneApp, func(spec store.Spec) error {
		if _, err := timerEngine.CreateTimer(spec); err != nil {
			return err
		}
		refreshTray()
		return nil
	})

	platformService := platform.NewService()
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		notificationsOn = updated.Notifications
		if err := storage.SaveSettings(appName, updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		applyAutostart(platformService, updated.Autostart)
	})

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnAddTimer:    editorWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnTimerAction: func(timerID string, action model.Action) {
			timerEngine.Dispatch(action, timerID)
			refreshTray()
		},
		OnCategoryAction: func(category string, action model.Action) {
			timerEngine.DispatchCategory(action, category)
			refreshTray()
		},
		OnQuit: func() {
			timerEngine.Stop()
			timerStore.Close()
			recorder.Close()
			fyneApp.Quit()
		},
	})
	refreshTray()

	events := timerEngine.Subscribe(8)
	go func() {
		for event := range events {
			switch event.Type {
			case engine.EventHalfway:
				if notificationsOn {
					notifier.Notify("Halfway there", fmt.Sprintf(
						"%s has %s left.", event.Timer.Name, tray.FormatRemaining(event.Timer.Remaining)))
				}
			case engine.EventCompleted:
				if notificationsOn {
					notifier.Notify("Timer finished", fmt.Sprintf(
						"%s (%s) is done.", event.Timer.Name, event.Timer.Category))
				}
			}
			fyne.Do(refreshTray)
		}
	}()

	timerEngine.Start()
	fyneApp.Run()
}

func statusLine(timers []model.Timer) string {
	running := 0
	for _, timer := range timers {
		if timer.Status == model.StatusRunning {
			running++
		}
	}
	switch running {
	case 0:
		return "no timers running"
	case 1:
		return "1 timer running"
	default:
		return fmt.Sprintf("%d timers running", running)
	}
}

func applyAutostart(service platform.Service, enabled bool) {
	if !enabled {
		if err := service.DisableAutostart(appName); err != nil {
			log.Printf("autostart: %v", err)
		}
		return
	}
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("autostart: resolve executable: %v", err)
		return
	}
	if err := service.EnableAutostart(appName, execPath); err != nil {
		log.Printf("autostart: %v", err)
	}
}
