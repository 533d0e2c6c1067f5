package scene

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontsOnce sync.Once
	fontsErr  error
	fonts     map[FontStyle]*truetype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		fonts = make(map[FontStyle]*truetype.Font, 3)
		for style, ttf := range map[FontStyle][]byte{
			Regular: goregular.TTF,
			Bold:    gobold.TTF,
			Italic:  goitalic.TTF,
		} {
			f, err := truetype.Parse(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("parse embedded font: %w", err)
				return
			}
			fonts[style] = f
		}
	})
	return fontsErr
}

// newFace builds a font.Face for the given style and pixel size
func newFace(style FontStyle, size float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	f, ok := fonts[style]
	if !ok {
		f = fonts[Regular]
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
