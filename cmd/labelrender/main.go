// labelrender renders a stored label template to a PNG without the UI.
// Useful for checking print output and for scripting batch exports.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"label-studio/internal/label"
	"label-studio/internal/render"
	"label-studio/internal/template"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	storePath := flag.String("store", "", "template store file (default: user config dir)")
	templateID := flag.String("template", "", "template id (default: the default template)")
	samplePath := flag.String("sample", "", "JSON file with the preview record")
	dpi := flag.Float64("dpi", 300, "output resolution")
	out := flag.String("o", "label.png", "output PNG path")
	list := flag.Bool("list", false, "list stored templates and exit")
	flag.Parse()

	var store *template.Store
	var err error
	if *storePath != "" {
		store, err = template.OpenAt(*storePath)
	} else {
		store, err = template.Open()
	}
	if err != nil {
		log.Fatalf("Open store: %v", err)
	}

	if *list {
		for _, t := range store.GetAll() {
			def := ""
			if t.IsDefault {
				def = " (default)"
			}
			fmt.Printf("%s  %s  %.0fx%.0fmm  %d elements%s\n",
				t.ID, t.Name, t.Width, t.Height, len(t.Elements), def)
		}
		return
	}

	var tmpl *label.Template
	if *templateID != "" {
		tmpl, err = store.GetByID(*templateID)
		if err != nil {
			log.Fatalf("Lookup template: %v", err)
		}
	} else {
		tmpl = store.Default()
	}

	rec := label.DefaultSampleRecord()
	if *samplePath != "" {
		rec, err = label.LoadSampleRecord(*samplePath)
		if err != nil {
			log.Fatalf("Load sample record: %v", err)
		}
	}

	if err := render.ExportPNG(tmpl, rec, *dpi, *out); err != nil {
		log.Fatalf("Render: %v", err)
	}

	if info, err := os.Stat(*out); err == nil {
		log.Printf("Rendered %s at %.0f dpi to %s (%d bytes)", tmpl.Name, *dpi, *out, info.Size())
	} else {
		log.Printf("Rendered %s at %.0f dpi to %s", tmpl.Name, *dpi, *out)
	}
}
