package render

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	bold   bool
	sizePx float64
}

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font

	faceMu    sync.Mutex
	faceCache = map[faceKey]font.Face{}
)

func loadFonts() {
	var err error
	regularFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("Fonts: parse regular: %v", err)
	}
	boldFont, err = opentype.Parse(gobold.TTF)
	if err != nil {
		log.Fatalf("Fonts: parse bold: %v", err)
	}
}

// Face returns a font face at the given pixel size, caching faces so the
// canvas does not rebuild them on every repaint.
func Face(bold bool, sizePx float64) font.Face {
	fontOnce.Do(loadFonts)

	key := faceKey{bold: bold, sizePx: sizePx}
	faceMu.Lock()
	defer faceMu.Unlock()

	if f, ok := faceCache[key]; ok {
		return f
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("Fonts: build face: %v", err)
	}
	faceCache[key] = face
	return face
}
