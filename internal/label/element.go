// Package label provides the label template and element model.
package label

import (
	"math"

	"github.com/google/uuid"

	"label-studio/pkg/geometry"
)

// ElementType identifies the kind of content an element renders.
type ElementType string

const (
	ElementText    ElementType = "text"
	ElementImage   ElementType = "image"
	ElementBarcode ElementType = "barcode"
	ElementQR      ElementType = "qr"
	ElementShape   ElementType = "shape"
)

// Default element geometry in millimeters. Text boxes are wide and short,
// everything else starts as a 20x20 square.
const (
	DefaultTextWidth  = 40.0
	DefaultTextHeight = 8.0
	DefaultBoxSize    = 20.0
)

// Style holds the visual attributes of an element. Colors are "#RRGGBB"
// strings; ZIndex determines paint order within the template.
type Style struct {
	FontSize    float64 `json:"font_size,omitempty"`
	Bold        bool    `json:"bold,omitempty"`
	Color       string  `json:"color,omitempty"`
	Background  string  `json:"background,omitempty"`
	BorderWidth float64 `json:"border_width,omitempty"`
	BorderColor string  `json:"border_color,omitempty"`
	Opacity     float64 `json:"opacity"`
	ZIndex      int     `json:"z_index"`
}

// DefaultStyle returns the style applied to freshly created elements.
func DefaultStyle() Style {
	return Style{
		FontSize: 10,
		Color:    "#000000",
		Opacity:  1,
	}
}

// Element is one positionable unit on a label template. Position and size
// are in millimeters; Content is the literal value (text, symbol payload,
// or image path) unless a Binding redirects it to the sample record.
//
// Geometry is deliberately not validated on mutation: the editor accepts
// whatever the user types, matching the permissive reference behavior.
type Element struct {
	ID       string      `json:"id"`
	Type     ElementType `json:"type"`
	Content  string      `json:"content"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Rotation float64     `json:"rotation,omitempty"`
	Style    Style       `json:"style"`
	Binding  Binding     `json:"variable_field,omitempty"`
}

// NewElement creates an element of the given type with type-dependent
// defaults and a fresh unique id.
func NewElement(t ElementType) *Element {
	el := &Element{
		ID:     uuid.NewString(),
		Type:   t,
		X:      2,
		Y:      2,
		Width:  DefaultBoxSize,
		Height: DefaultBoxSize,
		Style:  DefaultStyle(),
	}

	switch t {
	case ElementText:
		el.Content = "Text"
		el.Width = DefaultTextWidth
		el.Height = DefaultTextHeight
	case ElementBarcode:
		el.Content = "123456"
	case ElementQR:
		el.Content = "123456"
	case ElementShape:
		el.Style.Background = "#e0e0e0"
		el.Style.BorderWidth = 0.3
		el.Style.BorderColor = "#000000"
	}
	return el
}

// Bounds returns the element's bounding rectangle in millimeters.
func (e *Element) Bounds() geometry.Rect {
	return geometry.NewRect(e.X, e.Y, e.Width, e.Height)
}

// HitTest returns true if the millimeter point (x, y) is within the element.
// Rotated elements are tested against the inverse-rotated point.
func (e *Element) HitTest(x, y float64) bool {
	p := geometry.NewPoint2D(x, y)
	if e.Rotation != 0 {
		c := e.Bounds().Center()
		inv, ok := geometry.RotationAbout(e.Rotation*math.Pi/180, c.X, c.Y).Inverse()
		if ok {
			p = inv.Apply(p)
		}
	}
	return e.Bounds().Contains(p)
}

// ResolvedContent returns the value the element should render: the bound
// sample-record field when a binding is set and resolvable, otherwise the
// literal content.
func (e *Element) ResolvedContent(rec SampleRecord) string {
	return e.Binding.Resolve(rec, e.Content)
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	c := *e
	return &c
}

// CloneElements deep-copies an element collection. Used for history
// snapshots and store round-trips.
func CloneElements(els []*Element) []*Element {
	out := make([]*Element, len(els))
	for i, el := range els {
		out[i] = el.Clone()
	}
	return out
}
