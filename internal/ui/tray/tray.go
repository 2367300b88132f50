package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"multitimer/internal/core/model"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnAddTimer       func()
	OnPreferences    func()
	OnTimerAction    func(timerID string, action model.Action)
	OnCategoryAction func(category string, action model.Action)
	OnQuit           func()
}

// Manager handles system tray state. The menu is rebuilt as a whole
// from the latest category projection on every refresh.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusLabel string
	groups      []model.CategoryGroup
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}
	manager.rebuildMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.rebuildMenu()
}

// Refresh replaces the category groups shown in the menu.
func (manager *Manager) Refresh(groups []model.CategoryGroup) {
	manager.groups = groups
	manager.rebuildMenu()
}

func (manager *Manager) rebuildMenu() {
	if manager.app == nil {
		return
	}

	status := fyne.NewMenuItem(fmt.Sprintf("Status: %s", manager.statusLabel), nil)
	status.Disabled = true

	items := []*fyne.MenuItem{
		status,
		fyne.NewMenuItem("Add Timer", func() {
			if manager.callbacks.OnAddTimer != nil {
				manager.callbacks.OnAddTimer()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
	}

	for _, group := range manager.groups {
		items = append(items, manager.categoryItem(group))
	}

	items = append(items, fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	}))

	manager.app.SetSystemTrayMenu(fyne.NewMenu("MultiTimer", items...))
}

func (manager *Manager) categoryItem(group model.CategoryGroup) *fyne.MenuItem {
	item := fyne.NewMenuItem(group.Name, nil)

	children := []*fyne.MenuItem{
		manager.categoryActionItem("Start all", group.Name, model.ActionStart),
		manager.categoryActionItem("Pause all", group.Name, model.ActionPause),
		manager.categoryActionItem("Reset all", group.Name, model.ActionReset),
	}
	for _, timer := range group.Timers {
		children = append(children, manager.timerItem(timer))
	}

	item.ChildMenu = fyne.NewMenu("", children...)
	return item
}

func (manager *Manager) categoryActionItem(label, category string, action model.Action) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if manager.callbacks.OnCategoryAction != nil {
			manager.callbacks.OnCategoryAction(category, action)
		}
	})
}

func (manager *Manager) timerItem(timer model.Timer) *fyne.MenuItem {
	label := fmt.Sprintf("%s  %s (%s)", timer.Name, FormatRemaining(timer.Remaining), timer.Status)
	item := fyne.NewMenuItem(label, nil)
	item.ChildMenu = fyne.NewMenu("",
		manager.timerActionItem("Start", timer.ID, model.ActionStart),
		manager.timerActionItem("Pause", timer.ID, model.ActionPause),
		manager.timerActionItem("Reset", timer.ID, model.ActionReset),
	)
	return item
}

func (manager *Manager) timerActionItem(label, timerID string, action model.Action) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if manager.callbacks.OnTimerAction != nil {
			manager.callbacks.OnTimerAction(timerID, action)
		}
	})
}

// FormatRemaining renders seconds as mm:ss for menu labels.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
