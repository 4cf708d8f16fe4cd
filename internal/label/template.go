package label

import (
	"fmt"
	"sort"
	"time"
)

// Template is a named, sized label canvas containing positioned elements.
// Dimensions are in millimeters and must be positive.
type Template struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Elements  []*Element `json:"elements"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsDefault bool       `json:"is_default,omitempty"`
}

// NewTemplate creates an empty template with the given name and dimensions.
func NewTemplate(name string, width, height float64) (*Template, error) {
	t := &Template{
		Name:     name,
		Width:    width,
		Height:   height,
		Elements: []*Element{},
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the template invariants.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("template dimensions must be positive")
	}
	return nil
}

// ElementByID returns the element with the given id, or nil.
func (t *Template) ElementByID(id string) *Element {
	for _, el := range t.Elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}

// PaintOrder returns the elements sorted by z-index, lowest first. Elements
// with equal z-index keep their collection order.
func (t *Template) PaintOrder() []*Element {
	out := make([]*Element, len(t.Elements))
	copy(out, t.Elements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Style.ZIndex < out[j].Style.ZIndex
	})
	return out
}

// Clone returns a deep copy of the template.
func (t *Template) Clone() *Template {
	c := *t
	c.Elements = CloneElements(t.Elements)
	return &c
}
