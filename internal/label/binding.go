package label

import (
	"encoding/json"
	"fmt"
	"os"
)

// Binding names a sample-record field that replaces an element's literal
// content at render time. The zero value means "unbound". Values outside
// the recognized set are carried verbatim but resolve to the literal
// content, so stale or hand-edited bindings never break rendering.
type Binding string

const (
	BindingNone        Binding = ""
	BindingName        Binding = "product.name"
	BindingSKU         Binding = "product.sku"
	BindingDescription Binding = "product.description"
	BindingSalePrice   Binding = "product.sale_price"
)

// SampleRecord is the product-like record supplied by the host application
// for variable-field preview.
type SampleRecord struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	SalePrice   float64 `json:"sale_price"`
}

// bindingAccessors maps each recognized binding to its field accessor.
var bindingAccessors = map[Binding]func(SampleRecord) string{
	BindingName:        func(r SampleRecord) string { return r.Name },
	BindingSKU:         func(r SampleRecord) string { return r.SKU },
	BindingDescription: func(r SampleRecord) string { return r.Description },
	BindingSalePrice:   func(r SampleRecord) string { return fmt.Sprintf("%.2f", r.SalePrice) },
}

// Bindings returns the recognized binding keys in a stable order for UI
// selection lists.
func Bindings() []Binding {
	return []Binding{BindingName, BindingSKU, BindingDescription, BindingSalePrice}
}

// Resolve returns the sample-record value for a recognized binding, or the
// literal fallback for an unbound or unrecognized one.
func (b Binding) Resolve(rec SampleRecord, literal string) string {
	if accessor, ok := bindingAccessors[b]; ok {
		return accessor(rec)
	}
	return literal
}

// Recognized reports whether the binding maps to a sample-record field.
func (b Binding) Recognized() bool {
	_, ok := bindingAccessors[b]
	return ok
}

// DefaultSampleRecord returns the built-in preview record used when the
// host application supplies none.
func DefaultSampleRecord() SampleRecord {
	return SampleRecord{
		Name:        "Sample Product",
		SKU:         "SKU-0001",
		Description: "Sample product description",
		SalePrice:   19.90,
	}
}

// LoadSampleRecord reads a sample record from a JSON file.
func LoadSampleRecord(path string) (SampleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SampleRecord{}, err
	}

	var rec SampleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SampleRecord{}, fmt.Errorf("invalid sample record: %w", err)
	}
	return rec, nil
}
