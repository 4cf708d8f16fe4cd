// Package panels provides the side panels of the main window.
package panels

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"label-studio/internal/app"
	"label-studio/internal/label"
	"label-studio/ui/dialogs"
)

// TemplatesPanel lists the stored templates and offers create, duplicate,
// delete, and set-default actions. Selecting a row opens the template in
// the designer.
type TemplatesPanel struct {
	state  *app.State
	window fyne.Window

	list      *widget.List
	templates []*label.Template

	onOpen func(id string)
}

// NewTemplatesPanel creates the template list panel.
func NewTemplatesPanel(state *app.State, window fyne.Window, onOpen func(id string)) *TemplatesPanel {
	tp := &TemplatesPanel{
		state:  state,
		window: window,
		onOpen: onOpen,
	}

	tp.list = widget.NewList(
		func() int { return len(tp.templates) },
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			t := tp.templates[i]
			text := fmt.Sprintf("%s  (%.0fx%.0fmm)", t.Name, t.Width, t.Height)
			if t.IsDefault {
				text += "  *"
			}
			obj.(*widget.Label).SetText(text)
		},
	)
	tp.list.OnSelected = func(i widget.ListItemID) {
		if i >= 0 && i < len(tp.templates) && tp.onOpen != nil {
			tp.onOpen(tp.templates[i].ID)
		}
	}

	tp.reload()
	state.On(app.EventTemplatesChanged, func(_ interface{}) { tp.reload() })

	return tp
}

// Container returns the panel widget for embedding.
func (tp *TemplatesPanel) Container() fyne.CanvasObject {
	newBtn := widget.NewButton("New", tp.onNew)
	dupBtn := widget.NewButton("Duplicate", tp.onDuplicate)
	delBtn := widget.NewButton("Delete", tp.onDelete)
	defBtn := widget.NewButton("Set Default", tp.onSetDefault)

	buttons := container.NewGridWithColumns(2, newBtn, dupBtn, delBtn, defBtn)
	return container.NewBorder(nil, buttons, nil, nil, tp.list)
}

func (tp *TemplatesPanel) reload() {
	tp.templates = tp.state.Store.GetAll()
	tp.list.Refresh()
}

func (tp *TemplatesPanel) onNew() {
	dialogs.ShowNewTemplateDialog(tp.window, func(name string, width, height float64) {
		t, err := label.NewTemplate(name, width, height)
		if err != nil {
			dialog.ShowError(err, tp.window)
			return
		}
		if t, err = tp.state.Store.Create(t); err != nil {
			dialog.ShowError(err, tp.window)
			return
		}
		tp.state.Emit(app.EventTemplatesChanged, nil)
		if tp.onOpen != nil {
			tp.onOpen(t.ID)
		}
	})
}

func (tp *TemplatesPanel) onDuplicate() {
	cur := tp.state.Current
	if cur == nil {
		return
	}
	dup, err := tp.state.Store.Duplicate(cur.ID)
	if err != nil {
		dialog.ShowError(err, tp.window)
		return
	}
	tp.state.Emit(app.EventTemplatesChanged, nil)
	if tp.onOpen != nil {
		tp.onOpen(dup.ID)
	}
}

func (tp *TemplatesPanel) onDelete() {
	cur := tp.state.Current
	if cur == nil {
		return
	}
	dialog.ShowConfirm("Delete Template",
		fmt.Sprintf("Delete %q? This cannot be undone.", cur.Name),
		func(ok bool) {
			if !ok {
				return
			}
			if err := tp.state.Store.Delete(cur.ID); err != nil {
				log.Printf("Templates: delete failed: %v", err)
				return
			}
			tp.state.Emit(app.EventTemplatesChanged, nil)
		},
		tp.window)
}

func (tp *TemplatesPanel) onSetDefault() {
	cur := tp.state.Current
	if cur == nil {
		return
	}
	if err := tp.state.Store.SetDefault(cur.ID); err != nil {
		log.Printf("Templates: set default failed: %v", err)
		return
	}
	tp.state.Emit(app.EventTemplatesChanged, nil)
}
