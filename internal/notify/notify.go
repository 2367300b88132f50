package notify

import "fyne.io/fyne/v2"

// Notifier delivers best-effort user alerts. A failed or dropped
// delivery must never affect timer state.
type Notifier interface {
	Notify(title, message string)
}

// FyneNotifier sends desktop notifications through the running app.
type FyneNotifier struct {
	App fyne.App
}

func (notifier FyneNotifier) Notify(title, message string) {
	notifier.App.SendNotification(fyne.NewNotification(title, message))
}
