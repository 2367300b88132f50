package editor

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"multitimer/internal/core/store"
)

// Window collects input for a new countdown timer.
type Window struct {
	window   fyne.Window
	name     *widget.Entry
	category *widget.Entry
	duration *widget.Entry
	halfway  *widget.Check
	status   *widget.Label
	onCreate func(store.Spec) error
}

// New creates the add-timer window. onCreate receives the validated
// spec; a returned error is shown inline and keeps the window open.
func New(app fyne.App, onCreate func(store.Spec) error) *Window {
	window := app.NewWindow("Add Timer")

	name := widget.NewEntry()
	name.SetPlaceHolder("Timer name")

	category := widget.NewEntry()
	category.SetPlaceHolder("Category")

	duration := widget.NewEntry()
	duration.SetPlaceHolder("Duration in seconds")

	halfway := widget.NewCheck("Alert at the halfway point", nil)

	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		container.NewHBox(widget.NewLabel("Name"), name),
		container.NewHBox(widget.NewLabel("Category"), category),
		container.NewHBox(widget.NewLabel("Duration"), duration, widget.NewLabel("sec")),
		halfway,
		status,
	)

	addButton := widget.NewButton("Add", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(addButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 260))
	window.SetCloseIntercept(window.Hide)

	editor := &Window{
		window:   window,
		name:     name,
		category: category,
		duration: duration,
		halfway:  halfway,
		status:   status,
		onCreate: onCreate,
	}

	addButton.OnTapped = editor.handleAdd
	cancelButton.OnTapped = window.Hide

	return editor
}

// Show clears the form and displays the window.
func (editor *Window) Show() {
	editor.name.SetText("")
	editor.category.SetText("")
	editor.duration.SetText("")
	editor.halfway.SetChecked(false)
	editor.status.SetText("")
	editor.window.Show()
	editor.window.RequestFocus()
}

func (editor *Window) handleAdd() {
	spec, err := store.ParseSpec(
		editor.name.Text,
		editor.category.Text,
		editor.duration.Text,
		editor.halfway.Checked,
	)
	if err != nil {
		editor.status.SetText(err.Error())
		return
	}

	if editor.onCreate != nil {
		if err := editor.onCreate(spec); err != nil {
			editor.status.SetText(err.Error())
			return
		}
	}
	editor.window.Hide()
}
