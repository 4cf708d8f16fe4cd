package printer

// Built-in print target definitions. Media ranges come from the vendor
// datasheets; widths and heights are in millimeters.

// ZebraZD420 returns the Zebra ZD420 desktop thermal printer target.
// 203 dpi head, continuous media up to 104mm wide.
func ZebraZD420() *Target {
	return &Target{
		ID:        "zebra-zd420",
		Name:      "Zebra ZD420",
		MinWidth:  15,
		MaxWidth:  104,
		MinHeight: 6,
		MaxHeight: 0, // continuous media, no height limit
		DPI:       203,
		Device:    "zebra-zd420",
	}
}

// BrotherQL800 returns the Brother QL-800 label printer target.
// DK roll media from 12mm to 62mm wide.
func BrotherQL800() *Target {
	return &Target{
		ID:        "brother-ql800",
		Name:      "Brother QL-800",
		MinWidth:  12,
		MaxWidth:  62,
		MinHeight: 12,
		MaxHeight: 1000, // DK continuous rolls cap at 1m per label
		DPI:       300,
		Device:    "brother-ql800",
	}
}

// DymoLW450 returns the Dymo LabelWriter 450 target.
func DymoLW450() *Target {
	return &Target{
		ID:        "dymo-lw450",
		Name:      "Dymo LabelWriter 450",
		MinWidth:  13,
		MaxWidth:  60,
		MinHeight: 13,
		MaxHeight: 190,
		DPI:       300,
		Device:    "dymo-lw450",
	}
}

// PDFExport returns the virtual export target that accepts any label size
// and renders at a fixed high resolution.
func PDFExport() *Target {
	return &Target{
		ID:          "pdf-export",
		Name:        "PDF / Sheet Export",
		SupportsAny: true,
		DPI:         300,
	}
}
