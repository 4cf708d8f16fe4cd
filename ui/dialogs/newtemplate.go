// Package dialogs provides application dialogs.
package dialogs

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ShowNewTemplateDialog prompts for a template name and dimensions and
// invokes onCreate when the user confirms with valid values.
func ShowNewTemplateDialog(window fyne.Window, onCreate func(name string, width, height float64)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Shelf label")

	widthEntry := widget.NewEntry()
	widthEntry.SetText("50")

	heightEntry := widget.NewEntry()
	heightEntry.SetText("30")

	form := widget.NewForm(
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Width (mm)", widthEntry),
		widget.NewFormItem("Height (mm)", heightEntry),
	)

	dlg := dialog.NewCustomConfirm(
		"New Template",
		"Create",
		"Cancel",
		form,
		func(create bool) {
			if !create {
				return
			}
			width, werr := strconv.ParseFloat(widthEntry.Text, 64)
			height, herr := strconv.ParseFloat(heightEntry.Text, 64)
			if werr != nil || herr != nil || width <= 0 || height <= 0 {
				dialog.ShowError(fmt.Errorf("dimensions must be positive numbers"), window)
				return
			}
			onCreate(nameEntry.Text, width, height)
		},
		window,
	)
	dlg.Resize(fyne.NewSize(360, 220))
	dlg.Show()
}
