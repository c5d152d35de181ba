package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	UI    FontName = "ui"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load builds all faces from the Go font data. No ttf asset ships with
// the game, so the gofont packages are the typeface source.
func Load() {
	loadFace(UI, goregular.TTF, 14)
	loadFace(Bold, gobold.TTF, 20)
	loadFace(Title, gobold.TTF, 36)
	loadFace(Small, goregular.TTF, 11)
}

func loadFace(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
