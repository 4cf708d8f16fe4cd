// Package main provides the entry point for the Label Studio application.
package main

import (
	"flag"
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"

	"label-studio/internal/app"
	"label-studio/internal/label"
	"label-studio/internal/template"
	"label-studio/internal/version"
	"label-studio/ui/mainwindow"
	"label-studio/ui/prefs"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Label Studio v%s", version.Version)

	samplePath := flag.String("sample", "", "JSON file with the preview record")
	flag.Parse()

	store, err := template.Open()
	if err != nil {
		log.Fatalf("Failed to open template store: %v", err)
	}

	appPrefs := prefs.Load()
	state := app.NewState(store)
	loadSample(state, appPrefs, *samplePath)

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.LabelStudioTheme{})

	win := mainwindow.New(fyneApp, state, appPrefs)
	win.OpenTemplate(startupTemplate(store, appPrefs, flag.Arg(0)))

	setupHotReload(win)

	win.ShowAndRun()
}

// loadSample picks the preview record: the -sample flag wins, then the
// remembered path, then built-in defaults.
func loadSample(state *app.State, p *prefs.Prefs, flagPath string) {
	path := flagPath
	if path == "" {
		path = p.String(prefs.KeySamplePath)
	}
	if path == "" {
		return
	}

	rec, err := label.LoadSampleRecord(path)
	if err != nil {
		log.Printf("Sample record: %v, using defaults", err)
		return
	}
	state.Sample = rec
	p.SetString(prefs.KeySamplePath, path)
}

// startupTemplate resolves which template to open: an explicit argument,
// the last-opened template, then the store default.
func startupTemplate(store *template.Store, p *prefs.Prefs, arg string) string {
	if arg != "" {
		if _, err := store.GetByID(arg); err == nil {
			return arg
		}
		log.Printf("Unknown template id %q, falling back", arg)
	}
	if last := p.String(prefs.KeyLastTemplate); last != "" {
		if _, err := store.GetByID(last); err == nil {
			return last
		}
	}
	return store.Default().ID
}

// setupHotReload restarts the app when the binary is recompiled underneath
// it during development.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: new binary detected, restarting")
		win.SavePreferences()
		if err := reloader.Restart(); err != nil {
			log.Printf("Hot reload: restart failed: %v", err)
		}
	})
	reloader.Start()
}
