package panels

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"label-studio/internal/editor"
	"label-studio/internal/label"
)

const bindingNone = "(literal content)"

// PropertySheet displays and edits the selected element's properties.
// Entries write through to the editor, which snapshots and autosaves.
type PropertySheet struct {
	ed *editor.Editor

	box *fyne.Container

	typeLabel *widget.Label

	contentEntry *widget.Entry
	bindingSel   *widget.Select

	xEntry        *widget.Entry
	yEntry        *widget.Entry
	widthEntry    *widget.Entry
	heightEntry   *widget.Entry
	rotationEntry *widget.Entry

	fontSizeEntry *widget.Entry
	boldCheck     *widget.Check
	colorEntry    *widget.Entry
	bgEntry       *widget.Entry
	borderWEntry  *widget.Entry
	borderCEntry  *widget.Entry
	opacityEntry  *widget.Entry
	zIndexEntry   *widget.Entry

	refreshing bool
}

// NewPropertySheet creates the element property panel.
func NewPropertySheet() *PropertySheet {
	ps := &PropertySheet{}
	ps.buildUI()
	ps.Refresh()
	return ps
}

// SetEditor points the sheet at the editor for the open template.
func (ps *PropertySheet) SetEditor(ed *editor.Editor) {
	ps.ed = ed
	ps.Refresh()
}

// Container returns the panel widget for embedding.
func (ps *PropertySheet) Container() fyne.CanvasObject {
	return container.NewVScroll(ps.box)
}

func (ps *PropertySheet) buildUI() {
	newEntry := func(onChange func(string)) *widget.Entry {
		e := widget.NewEntry()
		e.OnChanged = func(s string) {
			if ps.refreshing {
				return
			}
			onChange(s)
		}
		return e
	}

	ps.typeLabel = widget.NewLabel("(no selection)")

	ps.contentEntry = newEntry(func(s string) {
		ps.withEditor(func(ed *editor.Editor) { ed.SetContent(s) })
	})

	options := []string{bindingNone}
	for _, b := range label.Bindings() {
		options = append(options, string(b))
	}
	ps.bindingSel = widget.NewSelect(options, func(s string) {
		if ps.refreshing {
			return
		}
		b := label.BindingNone
		if s != bindingNone {
			b = label.Binding(s)
		}
		ps.withEditor(func(ed *editor.Editor) { ed.SetBinding(b) })
	})

	ps.xEntry = newEntry(func(string) { ps.applyPosition() })
	ps.yEntry = newEntry(func(string) { ps.applyPosition() })
	ps.widthEntry = newEntry(func(string) { ps.applySize() })
	ps.heightEntry = newEntry(func(string) { ps.applySize() })
	ps.rotationEntry = newEntry(func(s string) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			ps.withEditor(func(ed *editor.Editor) { ed.SetRotation(v) })
		}
	})

	ps.fontSizeEntry = newEntry(func(string) { ps.applyStyle() })
	ps.boldCheck = widget.NewCheck("Bold", func(bool) {
		if !ps.refreshing {
			ps.applyStyle()
		}
	})
	ps.colorEntry = newEntry(func(string) { ps.applyStyle() })
	ps.bgEntry = newEntry(func(string) { ps.applyStyle() })
	ps.borderWEntry = newEntry(func(string) { ps.applyStyle() })
	ps.borderCEntry = newEntry(func(string) { ps.applyStyle() })
	ps.opacityEntry = newEntry(func(string) { ps.applyStyle() })
	ps.zIndexEntry = newEntry(func(string) { ps.applyStyle() })

	contentCard := widget.NewCard("Content", "", container.NewVBox(
		ps.typeLabel,
		ps.contentEntry,
		widget.NewLabel("Variable field:"),
		ps.bindingSel,
	))

	geomCard := widget.NewCard("Geometry (mm)", "", widget.NewForm(
		widget.NewFormItem("X", ps.xEntry),
		widget.NewFormItem("Y", ps.yEntry),
		widget.NewFormItem("Width", ps.widthEntry),
		widget.NewFormItem("Height", ps.heightEntry),
		widget.NewFormItem("Rotation", ps.rotationEntry),
	))

	styleCard := widget.NewCard("Style", "", widget.NewForm(
		widget.NewFormItem("Font size", ps.fontSizeEntry),
		widget.NewFormItem("", ps.boldCheck),
		widget.NewFormItem("Color", ps.colorEntry),
		widget.NewFormItem("Background", ps.bgEntry),
		widget.NewFormItem("Border width", ps.borderWEntry),
		widget.NewFormItem("Border color", ps.borderCEntry),
		widget.NewFormItem("Opacity", ps.opacityEntry),
		widget.NewFormItem("Z-index", ps.zIndexEntry),
	))

	ps.box = container.NewVBox(contentCard, geomCard, styleCard)
}

func (ps *PropertySheet) withEditor(fn func(ed *editor.Editor)) {
	if ps.ed != nil && ps.ed.SelectedElement() != nil {
		fn(ps.ed)
	}
}

func (ps *PropertySheet) applyPosition() {
	x, xerr := strconv.ParseFloat(ps.xEntry.Text, 64)
	y, yerr := strconv.ParseFloat(ps.yEntry.Text, 64)
	if xerr != nil || yerr != nil {
		return
	}
	ps.withEditor(func(ed *editor.Editor) { ed.SetPosition(x, y) })
}

func (ps *PropertySheet) applySize() {
	w, werr := strconv.ParseFloat(ps.widthEntry.Text, 64)
	h, herr := strconv.ParseFloat(ps.heightEntry.Text, 64)
	if werr != nil || herr != nil {
		return
	}
	ps.withEditor(func(ed *editor.Editor) { ed.SetSize(w, h) })
}

func (ps *PropertySheet) applyStyle() {
	el := ps.selected()
	if el == nil {
		return
	}
	style := el.Style
	if v, err := strconv.ParseFloat(ps.fontSizeEntry.Text, 64); err == nil {
		style.FontSize = v
	}
	style.Bold = ps.boldCheck.Checked
	style.Color = ps.colorEntry.Text
	style.Background = ps.bgEntry.Text
	if v, err := strconv.ParseFloat(ps.borderWEntry.Text, 64); err == nil {
		style.BorderWidth = v
	}
	style.BorderColor = ps.borderCEntry.Text
	if v, err := strconv.ParseFloat(ps.opacityEntry.Text, 64); err == nil {
		style.Opacity = v
	}
	if v, err := strconv.Atoi(ps.zIndexEntry.Text); err == nil {
		style.ZIndex = v
	}
	ps.withEditor(func(ed *editor.Editor) { ed.SetStyle(style) })
}

func (ps *PropertySheet) selected() *label.Element {
	if ps.ed == nil {
		return nil
	}
	return ps.ed.SelectedElement()
}

// Refresh re-reads the selected element into the entries.
func (ps *PropertySheet) Refresh() {
	ps.refreshing = true
	defer func() { ps.refreshing = false }()

	el := ps.selected()
	if el == nil {
		ps.typeLabel.SetText("(no selection)")
		ps.contentEntry.SetText("")
		ps.bindingSel.SetSelected(bindingNone)
		for _, e := range []*widget.Entry{
			ps.xEntry, ps.yEntry, ps.widthEntry, ps.heightEntry,
			ps.rotationEntry, ps.fontSizeEntry, ps.colorEntry, ps.bgEntry,
			ps.borderWEntry, ps.borderCEntry, ps.opacityEntry, ps.zIndexEntry,
		} {
			e.SetText("")
		}
		ps.boldCheck.SetChecked(false)
		return
	}

	ps.typeLabel.SetText(string(el.Type))
	ps.contentEntry.SetText(el.Content)
	if el.Binding == label.BindingNone {
		ps.bindingSel.SetSelected(bindingNone)
	} else {
		ps.bindingSel.SetSelected(string(el.Binding))
	}

	ps.xEntry.SetText(fmt.Sprintf("%g", el.X))
	ps.yEntry.SetText(fmt.Sprintf("%g", el.Y))
	ps.widthEntry.SetText(fmt.Sprintf("%g", el.Width))
	ps.heightEntry.SetText(fmt.Sprintf("%g", el.Height))
	ps.rotationEntry.SetText(fmt.Sprintf("%g", el.Rotation))

	ps.fontSizeEntry.SetText(fmt.Sprintf("%g", el.Style.FontSize))
	ps.boldCheck.SetChecked(el.Style.Bold)
	ps.colorEntry.SetText(el.Style.Color)
	ps.bgEntry.SetText(el.Style.Background)
	ps.borderWEntry.SetText(fmt.Sprintf("%g", el.Style.BorderWidth))
	ps.borderCEntry.SetText(el.Style.BorderColor)
	ps.opacityEntry.SetText(fmt.Sprintf("%g", el.Style.Opacity))
	ps.zIndexEntry.SetText(strconv.Itoa(el.Style.ZIndex))
}
