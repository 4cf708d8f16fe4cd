package printer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"label-studio/internal/label"
	"label-studio/internal/render"
)

// ErrNotPrintable is returned when printing is attempted without a template
// and a compatible target both selected.
var ErrNotPrintable = errors.New("select a template and a compatible print target")

// Print renders the resolver's template at the target's native DPI and
// spools it to the target device. Virtual targets skip spooling; the
// rendered file is left in place either way and its path is returned.
func Print(r *Resolver, rec label.SampleRecord) (string, error) {
	if !r.CanPrint() {
		return "", ErrNotPrintable
	}
	tmpl := r.Template()
	target := r.Target()

	dir, err := os.MkdirTemp("", "label-print-")
	if err != nil {
		return "", fmt.Errorf("create spool dir: %w", err)
	}
	path := filepath.Join(dir, tmpl.ID+".png")

	if err := render.ExportPNG(tmpl, rec, target.DPI, path); err != nil {
		return "", fmt.Errorf("render %s for %s: %w", tmpl.Name, target.Name, err)
	}

	if target.Device != "" {
		if err := spool(target.Device, path); err != nil {
			return path, fmt.Errorf("spool to %s: %w", target.Name, err)
		}
	}
	log.Printf("Print: rendered %s at %.0f dpi for %s (%s)",
		tmpl.Name, target.DPI, target.Name, path)
	return path, nil
}

// spool hands the rendered file to the system print queue.
func spool(device, path string) error {
	out, err := exec.Command("lp", "-d", device, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("lp: %v: %s", err, out)
	}
	return nil
}
