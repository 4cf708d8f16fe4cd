package printer

import (
	"fmt"

	"label-studio/internal/label"
)

// Resolver tracks the print dialog's selection state: the template being
// printed and the chosen target. Selecting a template always clears the
// target, so a stale target can never survive a template switch.
type Resolver struct {
	template *label.Template
	target   *Target
}

// NewResolver creates a resolver with nothing selected.
func NewResolver() *Resolver {
	return &Resolver{}
}

// SelectTemplate sets the template to print and resets the target
// selection. A nil template clears both.
func (r *Resolver) SelectTemplate(t *label.Template) {
	r.template = t
	r.target = nil
}

// Template returns the selected template, or nil.
func (r *Resolver) Template() *label.Template {
	return r.template
}

// Target returns the selected target, or nil.
func (r *Resolver) Target() *Target {
	return r.target
}

// AvailableTargets returns the registered targets compatible with the
// selected template. With no template selected it returns nothing.
func (r *Resolver) AvailableTargets() []*Target {
	if r.template == nil {
		return nil
	}
	var out []*Target
	for _, t := range Targets() {
		if t.Compatible(r.template) {
			out = append(out, t)
		}
	}
	return out
}

// SelectTarget chooses a target by id. The target must be registered and
// compatible with the selected template; otherwise the selection is left
// unset and an error is returned.
func (r *Resolver) SelectTarget(id string) error {
	if r.template == nil {
		return fmt.Errorf("no template selected")
	}
	t := GetTarget(id)
	if t == nil {
		return fmt.Errorf("unknown print target %q", id)
	}
	if !t.Compatible(r.template) {
		return fmt.Errorf("target %s does not support %.0fx%.0fmm labels",
			t.Name, r.template.Width, r.template.Height)
	}
	r.target = t
	return nil
}

// CanPrint reports whether a template and a compatible target are both
// selected. The compatibility re-check guards against the template being
// mutated after target selection.
func (r *Resolver) CanPrint() bool {
	return r.template != nil && r.target != nil && r.target.Compatible(r.template)
}
