// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"label-studio/internal/app"
	"label-studio/internal/editor"
	"label-studio/internal/label"
	"label-studio/internal/render"
	"label-studio/internal/version"
	"label-studio/ui/canvas"
	"label-studio/ui/panels"
	"label-studio/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	ed      *editor.Editor
	symbols *render.SymbolCache
	canvas  *canvas.LabelCanvas

	templatesPanel *panels.TemplatesPanel
	propertySheet  *panels.PropertySheet
	printPanel     *panels.PrintPanel
	statusBar      *widget.Label

	canvasArea *fyne.Container
	snapCheck  *widget.Check
	gridCheck  *widget.Check
}

// New creates the main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Label Studio " + version.Version)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupShortcuts()

	w := float32(p.Float(prefs.KeyWindowWidth, 1100))
	h := float32(p.Float(prefs.KeyWindowHeight, 700))
	win.Resize(fyne.NewSize(w, h))

	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		if mw.ed != nil {
			mw.ed.Flush()
		}
		win.Close()
	})

	return mw
}

func (mw *MainWindow) setupUI() {
	mw.statusBar = widget.NewLabel("Ready")
	mw.canvasArea = container.NewStack(widget.NewLabel("Open a template to start designing"))

	mw.propertySheet = panels.NewPropertySheet()
	mw.printPanel = panels.NewPrintPanel(mw.state, mw.Window)
	mw.templatesPanel = panels.NewTemplatesPanel(mw.state, mw.Window, func(id string) {
		mw.OpenTemplate(id)
	})

	sideTabs := container.NewAppTabs(
		container.NewTabItem("Templates", mw.templatesPanel.Container()),
		container.NewTabItem("Element", mw.propertySheet.Container()),
		container.NewTabItem("Print", mw.printPanel.Container()),
	)

	canvasWithToolbar := container.NewBorder(
		mw.createToolbar(), nil, nil, nil,
		mw.canvasArea,
	)

	split := container.NewHSplit(sideTabs, canvasWithToolbar)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil, nil,
		split,
	)
	mw.SetContent(content)
}

func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	addText := widget.NewButton("Text", func() { mw.addElement(label.ElementText) })
	addBarcode := widget.NewButton("Barcode", func() { mw.addElement(label.ElementBarcode) })
	addQR := widget.NewButton("QR", func() { mw.addElement(label.ElementQR) })
	addShape := widget.NewButton("Shape", func() { mw.addElement(label.ElementShape) })
	addImage := widget.NewButton("Image", mw.addImageElement)

	undoBtn := widget.NewButton("Undo", func() { mw.withEditor((*editor.Editor).Undo) })
	redoBtn := widget.NewButton("Redo", func() { mw.withEditor((*editor.Editor).Redo) })
	delBtn := widget.NewButton("Delete", func() { mw.withEditor((*editor.Editor).DeleteSelected) })

	mw.snapCheck = widget.NewCheck("Snap", func(on bool) {
		if mw.ed != nil {
			mw.ed.SetSnap(on)
		}
		mw.prefs.SetBool(prefs.KeySnapToGrid, on)
	})
	mw.snapCheck.SetChecked(mw.prefs.Bool(prefs.KeySnapToGrid, true))

	mw.gridCheck = widget.NewCheck("Grid", func(on bool) {
		if mw.canvas != nil {
			mw.canvas.SetShowGrid(on)
		}
		mw.prefs.SetBool(prefs.KeyShowGrid, on)
	})
	mw.gridCheck.SetChecked(mw.prefs.Bool(prefs.KeyShowGrid, true))

	zoomOut := widget.NewButton("-", func() {
		if mw.canvas != nil {
			mw.canvas.ZoomOut()
		}
	})
	zoomIn := widget.NewButton("+", func() {
		if mw.canvas != nil {
			mw.canvas.ZoomIn()
		}
	})

	return container.NewHBox(
		widget.NewLabel("Add:"),
		addText, addBarcode, addQR, addShape, addImage,
		widget.NewSeparator(),
		undoBtn, redoBtn, delBtn,
		widget.NewSeparator(),
		mw.snapCheck, mw.gridCheck,
		widget.NewLabel("Zoom:"), zoomOut, zoomIn,
	)
}

func (mw *MainWindow) setupShortcuts() {
	c := mw.Canvas()

	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.withEditor((*editor.Editor).Undo) })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { mw.withEditor((*editor.Editor).Redo) })

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyDelete {
			mw.withEditor((*editor.Editor).DeleteSelected)
		}
	})
}

// OpenTemplate loads a template from the store into the designer.
func (mw *MainWindow) OpenTemplate(id string) {
	if mw.ed != nil {
		mw.ed.Flush()
	}

	t, err := mw.state.Store.GetByID(id)
	if err != nil {
		log.Printf("Open template %s: %v", id, err)
		dialog.ShowError(err, mw.Window)
		return
	}

	mw.symbols = render.NewSymbolCache()
	mw.ed = editor.New(mw.state.Store, t, mw.state.Sample)
	mw.ed.SetSymbolCache(mw.symbols)
	mw.ed.SetSnap(mw.snapCheck.Checked)
	mw.ed.OnChange(mw.onEditorChange)

	mw.canvas = canvas.NewLabelCanvas(mw.ed, mw.symbols)
	mw.canvas.SetShowGrid(mw.gridCheck.Checked)
	mw.canvasArea.Objects = []fyne.CanvasObject{mw.canvas.Container()}
	mw.canvasArea.Refresh()

	mw.propertySheet.SetEditor(mw.ed)
	mw.state.SetCurrent(t)
	mw.prefs.SetString(prefs.KeyLastTemplate, id)

	mw.statusBar.SetText(fmt.Sprintf("Editing %s (%.0fx%.0fmm)", t.Name, t.Width, t.Height))
}

// onEditorChange runs after every editor mutation, selection change, and
// undo/redo.
func (mw *MainWindow) onEditorChange() {
	if mw.canvas != nil {
		mw.canvas.Refresh()
	}
	mw.propertySheet.Refresh()
	mw.state.Emit(app.EventElementsChanged, nil)
}

func (mw *MainWindow) withEditor(fn func(*editor.Editor)) {
	if mw.ed != nil {
		fn(mw.ed)
	}
}

func (mw *MainWindow) addElement(t label.ElementType) {
	if mw.ed == nil {
		return
	}
	mw.ed.AddElement(t)
}

// addImageElement prompts for an image file, then adds an image element
// whose content is the chosen path.
func (mw *MainWindow) addImageElement() {
	if mw.ed == nil {
		return
	}
	dialog.ShowFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		path := uri.URI().Path()
		uri.Close()

		mw.ed.AddElement(label.ElementImage)
		mw.ed.SetContent(path)
	}, mw.Window)
}

// SavePreferences persists window geometry and designer toggles.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))

	if err := mw.prefs.Save(); err != nil {
		log.Printf("Preferences: save failed: %v", err)
	}
}
