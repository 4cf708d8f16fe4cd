package panels

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"label-studio/internal/app"
	"label-studio/internal/printer"
	"label-studio/internal/render"
)

// PrintPanel drives the print pipeline: it lists the targets compatible
// with the open template, and offers print and PNG export actions.
type PrintPanel struct {
	state    *app.State
	window   fyne.Window
	resolver *printer.Resolver

	targetSel *widget.Select
	statusLbl *widget.Label
	printBtn  *widget.Button
}

// NewPrintPanel creates the print panel.
func NewPrintPanel(state *app.State, window fyne.Window) *PrintPanel {
	pp := &PrintPanel{
		state:    state,
		window:   window,
		resolver: printer.NewResolver(),
	}

	pp.statusLbl = widget.NewLabel("No template open")
	pp.statusLbl.Wrapping = fyne.TextWrapWord

	pp.targetSel = widget.NewSelect(nil, func(name string) {
		pp.onTargetChosen(name)
	})
	pp.targetSel.PlaceHolder = "Select print target"

	pp.printBtn = widget.NewButton("Print", pp.onPrint)
	pp.printBtn.Disable()

	state.On(app.EventTemplateLoaded, func(_ interface{}) { pp.reload() })
	state.On(app.EventTemplatesChanged, func(_ interface{}) { pp.reload() })

	return pp
}

// Container returns the panel widget for embedding.
func (pp *PrintPanel) Container() fyne.CanvasObject {
	exportBtn := widget.NewButton("Export PNG...", pp.onExport)

	return container.NewVBox(
		widget.NewCard("Print", "", container.NewVBox(
			pp.targetSel,
			pp.statusLbl,
			pp.printBtn,
		)),
		widget.NewCard("Export", "", exportBtn),
	)
}

// reload resets the target list for the open template. Switching templates
// always clears the target selection.
func (pp *PrintPanel) reload() {
	pp.resolver.SelectTemplate(pp.state.Current)
	pp.printBtn.Disable()

	if pp.state.Current == nil {
		pp.targetSel.Options = nil
		pp.targetSel.ClearSelected()
		pp.statusLbl.SetText("No template open")
		pp.targetSel.Refresh()
		return
	}

	targets := pp.resolver.AvailableTargets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	pp.targetSel.Options = names
	pp.targetSel.ClearSelected()
	pp.targetSel.Refresh()

	pp.statusLbl.SetText(fmt.Sprintf("%d of %d targets support %.0fx%.0fmm",
		len(targets), len(printer.Targets()),
		pp.state.Current.Width, pp.state.Current.Height))
}

func (pp *PrintPanel) onTargetChosen(name string) {
	for _, t := range printer.Targets() {
		if t.Name != name {
			continue
		}
		if err := pp.resolver.SelectTarget(t.ID); err != nil {
			pp.statusLbl.SetText(err.Error())
			pp.printBtn.Disable()
			return
		}
		pp.statusLbl.SetText(fmt.Sprintf("%s, %.0f dpi", t.Name, t.DPI))
		pp.printBtn.Enable()
		return
	}
}

func (pp *PrintPanel) onPrint() {
	path, err := printer.Print(pp.resolver, pp.state.Sample)
	if err != nil {
		dialog.ShowError(err, pp.window)
		return
	}
	pp.statusLbl.SetText("Printed: " + filepath.Base(path))
}

func (pp *PrintPanel) onExport() {
	t := pp.state.Current
	if t == nil {
		return
	}
	dialog.ShowFileSave(func(uri fyne.URIWriteCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		path := uri.URI().Path()
		uri.Close()
		if err := render.ExportPNG(t, pp.state.Sample, 300, path); err != nil {
			dialog.ShowError(err, pp.window)
			return
		}
		pp.statusLbl.SetText("Exported: " + filepath.Base(path))
	}, pp.window)
}
