// Package printer provides print target definitions, template compatibility
// checks, and the print pipeline.
package printer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"label-studio/internal/label"
)

// Target describes one destination a label can be printed to: a physical
// printer model with a supported media range, or a virtual target such as
// PDF export that accepts any label size.
type Target struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// SupportsAny marks a target compatible with every template regardless
	// of its dimensions.
	SupportsAny bool `json:"supports_any,omitempty"`

	// Supported media range in millimeters. A zero maximum means the target
	// has no upper bound on that axis (continuous media).
	MinWidth  float64 `json:"min_width,omitempty"`
	MaxWidth  float64 `json:"max_width,omitempty"`
	MinHeight float64 `json:"min_height,omitempty"`
	MaxHeight float64 `json:"max_height,omitempty"`

	// DPI is the native resolution used when rasterizing for this target.
	DPI float64 `json:"dpi"`

	// Device is the system printer queue name, empty for virtual targets.
	Device string `json:"device,omitempty"`
}

// Compatible reports whether a template's dimensions fall inside the
// target's supported media range. Bounds are inclusive; a zero maximum is
// treated as unbounded.
func (t *Target) Compatible(tmpl *label.Template) bool {
	if t.SupportsAny {
		return true
	}
	if tmpl.Width < t.MinWidth || tmpl.Height < t.MinHeight {
		return false
	}
	if t.MaxWidth > 0 && tmpl.Width > t.MaxWidth {
		return false
	}
	if t.MaxHeight > 0 && tmpl.Height > t.MaxHeight {
		return false
	}
	return true
}

// Validate checks the target definition for internal consistency.
func (t *Target) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("target id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("target name is required")
	}
	if t.DPI <= 0 {
		return fmt.Errorf("target dpi must be positive")
	}
	if t.MaxWidth > 0 && t.MaxWidth < t.MinWidth {
		return fmt.Errorf("target width range is inverted")
	}
	if t.MaxHeight > 0 && t.MaxHeight < t.MinHeight {
		return fmt.Errorf("target height range is inverted")
	}
	return nil
}

// LoadTarget reads a custom target definition from a JSON file.
func LoadTarget(path string) (*Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var t Target
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid print target: %w", err)
	}
	return &t, nil
}

// Registry of known print targets
var registry = make(map[string]*Target)

// Register adds a print target to the registry.
func Register(t *Target) {
	registry[t.ID] = t
}

// GetTarget returns a print target by id.
func GetTarget(id string) *Target {
	if t, ok := registry[id]; ok {
		return t
	}
	return nil
}

// Targets returns all registered targets sorted by name.
func Targets() []*Target {
	out := make([]*Target, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func init() {
	// Register built-in print targets
	Register(ZebraZD420())
	Register(BrotherQL800())
	Register(DymoLW450())
	Register(PDFExport())
}
